package entities

import "time"

type HandoverType string

const (
	HandoverAssignment HandoverType = "assignment"
	HandoverReturn     HandoverType = "return"
)

// Handover is one line of assignment history: a single piece of equipment
// handed to or returned by a user.
type Handover struct {
	ID          string       `json:"id"`
	EquipmentID string       `json:"equipment_id"`
	UserID      string       `json:"user_id"`
	CompanyID   string       `json:"company_id"`
	Date        time.Time    `json:"date"`
	Signature   string       `json:"signature,omitempty"`
	Type        HandoverType `json:"type"`
	Notes       string       `json:"notes,omitempty"`
}

type HandoverDocumentType string

const (
	DocumentHandover HandoverDocumentType = "handover"
	DocumentReturn   HandoverDocumentType = "return"
)

// HandoverDocument is the immutable record of a signed handover or return
// event. It is never modified after creation.
type HandoverDocument struct {
	ID             string               `json:"id"`
	Type           HandoverDocumentType `json:"type"`
	CollaboratorID string               `json:"collaborator_id"`
	EquipmentIDs   []string             `json:"equipment_ids"`
	Signature      string               `json:"signature"`
	CreatedAt      time.Time            `json:"created_at"`
}
