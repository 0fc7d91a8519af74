package dto

import (
	"time"

	"handover-system/internal/entities"
)

type EquipmentReturnDTO struct {
	EquipmentID string `json:"equipment_id" validate:"required"`
	Status      string `json:"status" validate:"required,return_condition"`
	Received    bool   `json:"received"`
	Notes       string `json:"notes,omitempty"`
	Photo       string `json:"photo,omitempty"`
}

type CompleteDepartureDTO struct {
	CollaboratorID string               `json:"collaborator_id" validate:"required"`
	Type           string               `json:"type" validate:"required,oneof=definitive temporary transfer"`
	DepartureDate  time.Time            `json:"departure_date" validate:"required"`
	Items          []EquipmentReturnDTO `json:"items" validate:"required,min=1,dive"`
	Signature      string               `json:"signature"`
}

// DeparturePreviewDTO is the working list for a departure: the
// collaborator's assigned equipment defaulted to ok / not received.
type DeparturePreviewDTO struct {
	Collaborator entities.CollaboratorProfile `json:"collaborator"`
	Items        []entities.EquipmentReturn   `json:"items"`
	Equipment    []entities.Equipment         `json:"equipment"`
}
