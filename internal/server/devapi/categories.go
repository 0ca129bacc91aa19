package devapi

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/marketadmin/internal/client/models"
)

const msgNameTaken = "name already exists"

// categoryChecks validates category payloads and keeps names unique,
// ignoring case.
func (s *Server) categoryChecks() checks[models.CategoryInput, models.CategoryPatch] {
	return checks[models.CategoryInput, models.CategoryPatch]{
		create: func(ctx context.Context, in models.CategoryInput) error {
			if err := models.ValidateCategoryInput(in); err != nil {
				return err
			}
			if s.categoryNameTaken(ctx, in.Name, 0) {
				return models.ValidationError{"name": msgNameTaken}
			}
			return nil
		},
		update: func(ctx context.Context, id int64, p models.CategoryPatch) error {
			if err := models.ValidateCategoryPatch(p); err != nil {
				return err
			}
			if p.Name != nil && s.categoryNameTaken(ctx, *p.Name, id) {
				return models.ValidationError{"name": msgNameTaken}
			}
			return nil
		},
	}
}

func (s *Server) categoryNameTaken(ctx context.Context, name string, except int64) bool {
	name = strings.TrimSpace(name)
	for _, c := range s.store.Categories.All(ctx) {
		if c.ID != except && strings.EqualFold(strings.TrimSpace(c.Name), name) {
			return true
		}
	}
	return false
}
