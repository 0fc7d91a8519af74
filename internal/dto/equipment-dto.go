package dto

import (
	"time"

	"github.com/aarondl/null/v8"
)

type CreateEquipmentDTO struct {
	Name         string `json:"name" validate:"required"`
	SerialNumber string `json:"serial_number" validate:"required"`
	Category     string `json:"category" validate:"required"`

	Description     null.String `json:"description" validate:"omitempty"`
	Type            null.String `json:"type" validate:"omitempty"`
	PurchaseYear    null.Int    `json:"purchase_year" validate:"omitempty,min=1990"`
	AmortizationEnd null.Time   `json:"amortization_end" validate:"omitempty"`
}

// UpdateEquipmentDTO is a partial edit coming from the edit form. A status
// change re-derives assignee consistency in the service; the company id is
// always derived from the assignee and cannot be edited directly.
type UpdateEquipmentDTO struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1"`
	SerialNumber *string `json:"serial_number,omitempty" validate:"omitempty,min=1"`
	Category     *string `json:"category,omitempty" validate:"omitempty,min=1"`

	Description     null.String `json:"description,omitempty" validate:"omitempty"`
	Type            null.String `json:"type,omitempty" validate:"omitempty"`
	PurchaseYear    null.Int    `json:"purchase_year,omitempty" validate:"omitempty,min=1990"`
	AmortizationEnd null.Time   `json:"amortization_end,omitempty" validate:"omitempty"`

	Status     *string `json:"status,omitempty" validate:"omitempty,equipment_status"`
	AssignedTo *string `json:"assigned_to,omitempty" validate:"omitempty"`
}

type AssignEquipmentDTO struct {
	AssigneeID string `json:"assignee_id" validate:"required"`

	// Date overrides the assignment timestamp, mostly for backfills.
	Date null.Time `json:"date" validate:"omitempty"`

	Signature string `json:"signature,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type ImportResultDTO struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

type OCRSearchResultDTO struct {
	Candidates []string  `json:"candidates"`
	Fallback   string    `json:"fallback,omitempty"`
	MatchedID  string    `json:"matched_id,omitempty"`
	ScannedAt  time.Time `json:"scanned_at"`
}
