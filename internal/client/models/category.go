package models

// CategoryStatuses is the allowed status set for categories.
var CategoryStatuses = StatusSet{StatusActive, StatusInactive}

// Category is a product category of the marketplace catalog.
type Category struct {
	ID           int64  `json:"category_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Icon         string `json:"icon,omitempty"`
	Status       string `json:"status"`
	ProductCount int    `json:"product_count"`
	Timestamps
}

type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Status      string `json:"status,omitempty"`
}

type CategoryPatch struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	Icon         *string `json:"icon,omitempty"`
	Status       *string `json:"status,omitempty"`
	ProductCount *int    `json:"product_count,omitempty"`
}

func (c *Category) RecordID() int64       { return c.ID }
func (c *Category) SetRecordID(id int64)  { c.ID = id }
func (c *Category) SearchText() []string { return []string{c.Name, c.Description} }

func (c *Category) Field(name string) (string, bool) {
	switch name {
	case "category_id", "id":
		return itoa(c.ID), true
	case "name":
		return c.Name, true
	case "status":
		return c.Status, true
	case "icon":
		return c.Icon, true
	case "product_count":
		return itoa(int64(c.ProductCount)), true
	}
	return c.timeField(name)
}

// Apply merges the fields present in p into c.
func (p CategoryPatch) Apply(c *Category) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Icon != nil {
		c.Icon = *p.Icon
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.ProductCount != nil {
		c.ProductCount = *p.ProductCount
	}
}
