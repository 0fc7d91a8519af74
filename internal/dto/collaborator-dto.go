package dto

import "handover-system/internal/entities"

type SoftwareDTO struct {
	Name   string `json:"name" validate:"required"`
	Rights string `json:"rights" validate:"required"`
}

type CreateCollaboratorRequestDTO struct {
	Type          string `json:"type" validate:"required,oneof=new replacement"`
	ReplacedEmail string `json:"replaced_email,omitempty" validate:"omitempty,email"`

	Filiale   string `json:"filiale" validate:"required"`
	Direction string `json:"direction" validate:"required"`
	Poste     string `json:"poste" validate:"required"`
	Nom       string `json:"nom" validate:"required"`
	Prenom    string `json:"prenom" validate:"required"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`

	GroupesMail []string `json:"groupes_mail" validate:"omitempty,dive,email"`

	PCType                string        `json:"pc_type" validate:"required,oneof=fixe portable tablette"`
	EcransSupplementaires int           `json:"ecrans_supplementaires" validate:"min=0,max=3"`
	TelephoneType         string        `json:"telephone_type" validate:"required,oneof=fixe mobile both none"`
	AutresMateriels       string        `json:"autres_materiels,omitempty"`
	Logiciels             []SoftwareDTO `json:"logiciels" validate:"omitempty,dive"`
}

// ValidateRequestDTO carries the support checklist. Every requested
// equipment line and every software line must be acknowledged.
type ValidateRequestDTO struct {
	EquipmentChecked []string `json:"equipment_checked"`
	SoftwareChecked  []string `json:"software_checked"`
	ValidatedBy      string   `json:"validated_by" validate:"required"`
}

type SelectEquipmentDTO struct {
	EquipmentIDs []string `json:"equipment_ids" validate:"required,min=1"`
}

type CompleteRequestDTO struct {
	Signature string `json:"signature" validate:"required"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Telephone string `json:"telephone,omitempty"`
}

// HandoverDraftDTO is the pending handover produced before signature.
type HandoverDraftDTO struct {
	RequestID        string               `json:"request_id"`
	CollaboratorName string               `json:"collaborator_name"`
	Filiale          string               `json:"filiale"`
	Equipment        []entities.Equipment `json:"equipment"`
}

// PrefillDTO is the replacement-lookup result: organizational and software
// fields copied from an existing profile. Equipment is never copied.
type PrefillDTO struct {
	Filiale     string              `json:"filiale"`
	Direction   string              `json:"direction"`
	Poste       string              `json:"poste"`
	GroupesMail []string            `json:"groupes_mail"`
	Logiciels   []entities.Software `json:"logiciels"`
}
