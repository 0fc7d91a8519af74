package dto

type CreateUserDTO struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	CompanyID string `json:"company_id" validate:"required"`
}

type UpdateUserDTO struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	CompanyID *string `json:"company_id,omitempty" validate:"omitempty,min=1"`
}

// UserWithEquipmentDTO is the list-view row: user plus the equipment
// currently assigned to them.
type UserWithEquipmentDTO struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	CompanyID    string   `json:"company_id"`
	EquipmentIDs []string `json:"equipment_ids"`
}
