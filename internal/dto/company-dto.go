package dto

import "github.com/aarondl/null/v8"

type CreateCompanyDTO struct {
	Name    string      `json:"name" validate:"required"`
	Address null.String `json:"address" validate:"omitempty"`
}

type UpdateCompanyDTO struct {
	Name    *string     `json:"name,omitempty" validate:"omitempty,min=1"`
	Address null.String `json:"address,omitempty" validate:"omitempty"`
}
