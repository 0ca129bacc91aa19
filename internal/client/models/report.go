package models

import "time"

// ReportStatuses is the allowed status set for reports. Transitions between
// them are not restricted.
var ReportStatuses = StatusSet{StatusPending, StatusInvestigating, StatusResolved, StatusRejected}

// Report is a user complaint about a product, store or user.
type Report struct {
	ID           int64      `json:"report_id"`
	ReporterName string     `json:"reporter_name"`
	ReportType   string     `json:"report_type"`
	ReportedID   int64      `json:"reported_id"`
	ReportedName string     `json:"reported_name"`
	Reason       string     `json:"reason"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	AdminNotes   string     `json:"admin_notes,omitempty"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	Timestamps
}

type ReportInput struct {
	ReporterName string `json:"reporter_name"`
	ReportType   string `json:"report_type"`
	ReportedID   int64  `json:"reported_id,omitempty"`
	ReportedName string `json:"reported_name,omitempty"`
	Reason       string `json:"reason"`
	Description  string `json:"description,omitempty"`
}

type ReportPatch struct {
	Reason      *string `json:"reason,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	AdminNotes  *string `json:"admin_notes,omitempty"`
}

func (r *Report) RecordID() int64      { return r.ID }

// Detach gives r its own copy of ResolvedAt.
func (r *Report) Detach() { r.ResolvedAt = copyTime(r.ResolvedAt) }

func (r *Report) SetRecordID(id int64) { r.ID = id }

func (r *Report) SearchText() []string {
	return []string{r.ReporterName, r.ReportedName, r.Reason, r.Description}
}

func (r *Report) Field(name string) (string, bool) {
	switch name {
	case "report_id", "id":
		return itoa(r.ID), true
	case "report_type":
		return r.ReportType, true
	case "reported_id":
		return itoa(r.ReportedID), true
	case "reporter_name":
		return r.ReporterName, true
	case "status":
		return r.Status, true
	}
	return r.timeField(name)
}

func (p ReportPatch) Apply(r *Report) {
	if p.Reason != nil {
		r.Reason = *p.Reason
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.AdminNotes != nil {
		r.AdminNotes = *p.AdminNotes
	}
}

// Closed reports whether the status ends the moderation flow in the UI.
func (r *Report) Closed() bool {
	return r.Status == StatusResolved || r.Status == StatusRejected
}
