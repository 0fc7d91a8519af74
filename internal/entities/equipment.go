package entities

import "time"

type EquipmentStatus string

const (
	EquipmentAvailable   EquipmentStatus = "available"
	EquipmentAssigned    EquipmentStatus = "assigned"
	EquipmentMaintenance EquipmentStatus = "maintenance"
	// EquipmentRebut is terminal, retired equipment never transitions again.
	EquipmentRebut EquipmentStatus = "rebut"
)

func (s EquipmentStatus) Valid() bool {
	switch s {
	case EquipmentAvailable, EquipmentAssigned, EquipmentMaintenance, EquipmentRebut:
		return true
	}
	return false
}

type Equipment struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	SerialNumber string `json:"serial_number"`
	Category     string `json:"category"`
	Description  string `json:"description,omitempty"`
	Type         string `json:"type,omitempty"`
	PurchaseYear int    `json:"purchase_year,omitempty"`

	// AmortizationEnd is the end of the accounting amortization period.
	AmortizationEnd *time.Time `json:"amortization_end,omitempty"`

	Status EquipmentStatus `json:"status"`

	// AssignedTo holds the user or collaborator id and is the single
	// authoritative ownership relation. It is set exactly when Status is
	// EquipmentAssigned.
	AssignedTo   string     `json:"assigned_to,omitempty"`
	AssignedDate *time.Time `json:"assigned_date,omitempty"`
	CompanyID    string     `json:"company_id,omitempty"`
}

// Assigned reports whether the equipment currently has an owner.
func (e Equipment) Assigned() bool {
	return e.Status == EquipmentAssigned && e.AssignedTo != ""
}
