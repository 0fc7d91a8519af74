package entities

import "time"

type DepartureType string

const (
	DepartureDefinitive DepartureType = "definitive"
	DepartureTemporary  DepartureType = "temporary"
	DepartureTransfer   DepartureType = "transfer"
)

type ReturnRequestStatus string

const (
	ReturnPending    ReturnRequestStatus = "pending"
	ReturnInProgress ReturnRequestStatus = "in_progress"
	ReturnCompleted  ReturnRequestStatus = "completed"
)

type ReturnCondition string

const (
	ConditionOK          ReturnCondition = "ok"
	ConditionMaintenance ReturnCondition = "maintenance"
	ConditionRebut       ReturnCondition = "rebut"
)

// EquipmentReturn is one line of a return: the recorded condition of a
// single piece of equipment handed back by a departing collaborator.
type EquipmentReturn struct {
	EquipmentID string          `json:"equipment_id"`
	Status      ReturnCondition `json:"status"`
	Received    bool            `json:"received"`
	Notes       string          `json:"notes,omitempty"`
	Photo       string          `json:"photo,omitempty"`
}

// ReturnRequest is an offboarding intent. Append-only except for status,
// signature and audit fields.
type ReturnRequest struct {
	ID             string              `json:"id"`
	CollaboratorID string              `json:"collaborator_id"`
	Type           DepartureType       `json:"type"`
	DepartureDate  time.Time           `json:"departure_date"`
	CreatedAt      time.Time           `json:"created_at"`
	Status         ReturnRequestStatus `json:"status"`

	EquipmentReturns []EquipmentReturn `json:"equipment_returns"`

	Signature string     `json:"signature,omitempty"`
	SignedAt  *time.Time `json:"signed_at,omitempty"`
}
