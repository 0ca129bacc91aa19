package services

// Remote action verbs, sent as PATCH /admin/<resource>/:id/<verb>.
const (
	verbSetActive    = "set-active"
	verbToggleStatus = "toggle-status"
	verbStatus       = "status"
	verbApprove      = "approve"
	verbReject       = "reject"
)

// decision is the body of approve and reject actions.
type decision struct {
	Notes string `json:"notes,omitempty"`
}
