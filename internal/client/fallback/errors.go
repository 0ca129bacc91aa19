package fallback

import (
	"errors"

	"github.com/dmitrijs2005/marketadmin/internal/client/models"
)

var (
	// ErrNotFound is reported for get, update and delete of an unknown ID.
	ErrNotFound = errors.New("not found")

	// ErrInvalid is reported for values outside an allowed set.
	ErrInvalid = errors.New("invalid value")

	// ErrConflict is reported when a change would break a collection invariant.
	ErrConflict = errors.New("conflict")

	// ErrLastRecord is reported when deleting a record the collection cannot
	// be left without.
	ErrLastRecord = errors.New("the last record cannot be deleted")
)

func codeOf(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return models.CodeNotFound
	case errors.Is(err, ErrInvalid):
		return models.CodeInvalid
	default:
		return models.CodeConflict
	}
}

func failure[X any](err error) *models.Envelope[X] {
	return models.Failure[X](codeOf(err), err.Error())
}
