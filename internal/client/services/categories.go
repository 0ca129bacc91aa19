package services

import (
	"github.com/dmitrijs2005/marketadmin/internal/client/client"
	"github.com/dmitrijs2005/marketadmin/internal/client/failover"
	"github.com/dmitrijs2005/marketadmin/internal/client/fallback"
	"github.com/dmitrijs2005/marketadmin/internal/client/models"
)

// CategoryService manages product categories. Name and description limits
// are checked by callers with models.ValidateCategoryInput before Create.
type CategoryService interface {
	CRUD[models.Category, models.CategoryInput, models.CategoryPatch]
}

type categoryService struct {
	*facade[models.Category, models.CategoryInput, models.CategoryPatch]
}

func NewCategoryService(c client.Client, local *fallback.Categories, state *failover.State) CategoryService {
	remote := client.NewResource[models.Category, models.CategoryInput, models.CategoryPatch](c, models.ResourceCategories)
	return &categoryService{newFacade[models.Category, models.CategoryInput, models.CategoryPatch](state, remote, local)}
}
