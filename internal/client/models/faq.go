package models

var FAQStatuses = StatusSet{StatusActive, StatusInactive}

// FAQ is a help-center question shown to buyers and sellers.
type FAQ struct {
	ID           int64  `json:"faq_id"`
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	Category     string `json:"category"`
	Status       string `json:"status"`
	DisplayOrder int    `json:"display_order"`
	Timestamps
}

type FAQInput struct {
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	Category     string `json:"category,omitempty"`
	Status       string `json:"status,omitempty"`
	DisplayOrder int    `json:"display_order,omitempty"`
}

type FAQPatch struct {
	Question     *string `json:"question,omitempty"`
	Answer       *string `json:"answer,omitempty"`
	Category     *string `json:"category,omitempty"`
	Status       *string `json:"status,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty"`
}

func (f *FAQ) RecordID() int64       { return f.ID }
func (f *FAQ) SetRecordID(id int64)  { f.ID = id }
func (f *FAQ) SearchText() []string { return []string{f.Question, f.Answer} }

func (f *FAQ) Field(name string) (string, bool) {
	switch name {
	case "faq_id", "id":
		return itoa(f.ID), true
	case "question":
		return f.Question, true
	case "category":
		return f.Category, true
	case "status":
		return f.Status, true
	case "display_order":
		return itoa(int64(f.DisplayOrder)), true
	}
	return f.timeField(name)
}

func (p FAQPatch) Apply(f *FAQ) {
	if p.Question != nil {
		f.Question = *p.Question
	}
	if p.Answer != nil {
		f.Answer = *p.Answer
	}
	if p.Category != nil {
		f.Category = *p.Category
	}
	if p.Status != nil {
		f.Status = *p.Status
	}
	if p.DisplayOrder != nil {
		f.DisplayOrder = *p.DisplayOrder
	}
}
