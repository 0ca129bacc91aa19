package models

var StoreStatuses = StatusSet{StatusPending, StatusApproved, StatusRejected, StatusSuspended}

// Store is a seller's shop awaiting or past admin verification.
type Store struct {
	ID                int64  `json:"seller_id"`
	StoreName         string `json:"store_name"`
	OwnerName         string `json:"owner_name"`
	Email             string `json:"email"`
	Phone             string `json:"phone,omitempty"`
	Address           string `json:"address,omitempty"`
	Status            string `json:"status"`
	VerificationNotes string `json:"verification_notes,omitempty"`
	ProductCount      int    `json:"product_count"`
	Timestamps
}

type StoreInput struct {
	StoreName string `json:"store_name"`
	OwnerName string `json:"owner_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
}

type StorePatch struct {
	StoreName         *string `json:"store_name,omitempty"`
	OwnerName         *string `json:"owner_name,omitempty"`
	Email             *string `json:"email,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Address           *string `json:"address,omitempty"`
	Status            *string `json:"status,omitempty"`
	VerificationNotes *string `json:"verification_notes,omitempty"`
}

func (s *Store) RecordID() int64      { return s.ID }
func (s *Store) SetRecordID(id int64) { s.ID = id }

func (s *Store) SearchText() []string {
	return []string{s.StoreName, s.OwnerName, s.Email}
}

func (s *Store) Field(name string) (string, bool) {
	switch name {
	case "seller_id", "id":
		return itoa(s.ID), true
	case "store_name":
		return s.StoreName, true
	case "owner_name":
		return s.OwnerName, true
	case "status":
		return s.Status, true
	case "product_count":
		return itoa(int64(s.ProductCount)), true
	}
	return s.timeField(name)
}

func (p StorePatch) Apply(s *Store) {
	if p.StoreName != nil {
		s.StoreName = *p.StoreName
	}
	if p.OwnerName != nil {
		s.OwnerName = *p.OwnerName
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.Phone != nil {
		s.Phone = *p.Phone
	}
	if p.Address != nil {
		s.Address = *p.Address
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.VerificationNotes != nil {
		s.VerificationNotes = *p.VerificationNotes
	}
}
