package models

import (
	"strconv"
	"time"
)

// Resource names used in paths, logs and failover state.
const (
	ResourceCategories   = "categories"
	ResourceFAQs         = "faqs"
	ResourceReports      = "reports"
	ResourceBankAccounts = "bank-accounts"
	ResourceStores       = "stores"
	ResourcePayments     = "payments"
)

// Resources lists every admin resource in display order.
var Resources = []string{
	ResourceCategories,
	ResourceFAQs,
	ResourceReports,
	ResourceBankAccounts,
	ResourceStores,
	ResourcePayments,
}

// Entity is implemented by pointers to every record type.
type Entity interface {
	// RecordID returns the resource-specific integer identifier.
	RecordID() int64
	// SetRecordID assigns the identifier of a freshly created record.
	SetRecordID(id int64)
	// Touch refreshes updated_at and, when created is true, created_at.
	Touch(now time.Time, created bool)
	// SearchText returns the fields matched by free-text search.
	SearchText() []string
	// Field returns a filterable or sortable attribute rendered as a string.
	Field(name string) (string, bool)
}

// Timestamps carries the bookkeeping fields shared by all records.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Timestamps) Touch(now time.Time, created bool) {
	if created {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
}

// timeField renders the timestamp attributes as unix nanoseconds so they sort
// numerically.
func (t *Timestamps) timeField(name string) (string, bool) {
	switch name {
	case "created_at":
		return strconv.FormatInt(t.CreatedAt.UnixNano(), 10), true
	case "updated_at":
		return strconv.FormatInt(t.UpdatedAt.UnixNano(), 10), true
	}
	return "", false
}

// Shared status values.
const (
	StatusActive        = "active"
	StatusInactive      = "inactive"
	StatusPending       = "pending"
	StatusInvestigating = "investigating"
	StatusResolved      = "resolved"
	StatusRejected      = "rejected"
	StatusApproved      = "approved"
	StatusSuspended     = "suspended"
	StatusVerified      = "verified"
)

// StatusSet is the allowed value set of a status attribute.
type StatusSet []string

// Contains reports whether s is one of the allowed values.
func (ss StatusSet) Contains(s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

// StatusChange is the body of status-transition actions.
type StatusChange struct {
	Status string `json:"status,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

func itoa(v int64) string { return strconv.FormatInt(v, 10) }

// Detacher is implemented by records that hold pointers. Detach replaces
// them with private copies so the record shares no memory with its source.
type Detacher interface {
	Detach()
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
