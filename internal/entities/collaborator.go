package entities

import "time"

type Software struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Rights string `json:"rights"`
}

type RequestType string

const (
	RequestNew         RequestType = "new"
	RequestReplacement RequestType = "replacement"
)

type RequestStatus string

const (
	RequestPending           RequestStatus = "pending"
	RequestValidated         RequestStatus = "validated"
	RequestEquipmentAssigned RequestStatus = "equipment_assigned"
	RequestReady             RequestStatus = "ready"
	RequestCompleted         RequestStatus = "completed"
)

type PCType string

const (
	PCFixe     PCType = "fixe"
	PCPortable PCType = "portable"
	PCTablette PCType = "tablette"
)

type PhoneType string

const (
	PhoneFixe   PhoneType = "fixe"
	PhoneMobile PhoneType = "mobile"
	PhoneBoth   PhoneType = "both"
	PhoneNone   PhoneType = "none"
)

// CollaboratorRequest is an onboarding intent for a new or replacement
// employee. Once created it is append-only except for status and audit
// fields.
type CollaboratorRequest struct {
	ID            string      `json:"id"`
	Type          RequestType `json:"type"`
	ReplacedEmail string      `json:"replaced_email,omitempty"`

	Filiale   string `json:"filiale"`
	Direction string `json:"direction"`
	Poste     string `json:"poste"`
	Nom       string `json:"nom"`
	Prenom    string `json:"prenom"`
	Email     string `json:"email,omitempty"`

	GroupesMail []string `json:"groupes_mail"`

	PCType                 PCType     `json:"pc_type"`
	EcransSupplementaires  int        `json:"ecrans_supplementaires"`
	TelephoneType          PhoneType  `json:"telephone_type"`
	AutresMateriels        string     `json:"autres_materiels,omitempty"`
	Logiciels              []Software `json:"logiciels"`

	// EquipmentIDs is the concrete selection made during the
	// equipment_assigned step. Assignment itself happens on completion.
	EquipmentIDs []string `json:"equipment_ids,omitempty"`

	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	ValidatedAt *time.Time    `json:"validated_at,omitempty"`
	ValidatedBy string        `json:"validated_by,omitempty"`
}

// EquipmentLines lists the requested hardware as checklist labels. Every
// line has to be acknowledged before the request can be validated.
func (r CollaboratorRequest) EquipmentLines() []string {
	lines := []string{"pc:" + string(r.PCType)}
	if r.EcransSupplementaires > 0 {
		lines = append(lines, "ecrans")
	}
	if r.TelephoneType != PhoneNone && r.TelephoneType != "" {
		lines = append(lines, "telephone:"+string(r.TelephoneType))
	}
	if r.AutresMateriels != "" {
		lines = append(lines, "autres")
	}
	return lines
}

type CollaboratorStatus string

const (
	CollaboratorActive   CollaboratorStatus = "active"
	CollaboratorLeaving  CollaboratorStatus = "leaving"
	CollaboratorDeparted CollaboratorStatus = "departed"
)

// CollaboratorProfile is the active employee record created when an
// onboarding request completes. Equipment ownership is derived from
// Equipment.AssignedTo, not stored here.
type CollaboratorProfile struct {
	ID        string `json:"id"`
	RequestID string `json:"request_id,omitempty"`

	Nom       string `json:"nom"`
	Prenom    string `json:"prenom"`
	Email     string `json:"email"`
	Telephone string `json:"telephone,omitempty"`

	Filiale   string `json:"filiale"`
	Direction string `json:"direction"`
	Poste     string `json:"poste"`

	GroupesMail []string   `json:"groupes_mail"`
	Logiciels   []Software `json:"logiciels"`

	Photo     string             `json:"photo,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	Status    CollaboratorStatus `json:"status"`
}

func (p CollaboratorProfile) FullName() string {
	return p.Prenom + " " + p.Nom
}
