package models

import (
	"errors"
	"sort"
	"strings"
	"unicode/utf8"
)

// Category field limits enforced by callers before invoking a facade.
const (
	CategoryNameMin        = 2
	CategoryNameMax        = 100
	CategoryDescriptionMax = 500
)

// ValidationError maps field names to messages.
type ValidationError map[string]string

func (v ValidationError) Error() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+v[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v ValidationError) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func checkCategoryName(v ValidationError, name string) {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	if n < CategoryNameMin || n > CategoryNameMax {
		v["name"] = "must be between 2 and 100 characters"
	}
}

func checkCategoryDescription(v ValidationError, d string) {
	if utf8.RuneCountInString(d) > CategoryDescriptionMax {
		v["description"] = "must be at most 500 characters"
	}
}

// ValidateCategoryInput checks a create payload.
func ValidateCategoryInput(in CategoryInput) error {
	v := ValidationError{}
	checkCategoryName(v, in.Name)
	checkCategoryDescription(v, in.Description)
	if in.Status != "" && !CategoryStatuses.Contains(in.Status) {
		v["status"] = "must be active or inactive"
	}
	return v.orNil()
}

// ValidateCategoryPatch checks the fields present in an update.
func ValidateCategoryPatch(p CategoryPatch) error {
	v := ValidationError{}
	if p.Name != nil {
		checkCategoryName(v, *p.Name)
	}
	if p.Description != nil {
		checkCategoryDescription(v, *p.Description)
	}
	if p.Status != nil && !CategoryStatuses.Contains(*p.Status) {
		v["status"] = "must be active or inactive"
	}
	return v.orNil()
}

// AsValidation extracts field messages from err when it is a ValidationError.
func AsValidation(err error) (ValidationError, bool) {
	var v ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
