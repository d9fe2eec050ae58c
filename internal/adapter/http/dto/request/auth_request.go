package request

import (
	"strings"

	"delivery_hub/internal/domain/entities"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest mirrors the signup form. Vehicle defaults to "moto" when
// the field is left out, matching the form's preselected option.
type RegisterRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Phone     string `json:"phone"`
	Vehicle   string `json:"vehicle"`
	CPF       string `json:"cpf"`
	BirthDate string `json:"birth_date"`
}

func (r RegisterRequest) ToRegistration() entities.Registration {
	vehicle := strings.TrimSpace(r.Vehicle)
	if vehicle == "" {
		vehicle = entities.VehicleMoto
	}
	return entities.Registration{
		Name:      strings.TrimSpace(r.Name),
		Email:     strings.TrimSpace(r.Email),
		Password:  r.Password,
		Phone:     strings.TrimSpace(r.Phone),
		Vehicle:   vehicle,
		CPF:       strings.TrimSpace(r.CPF),
		BirthDate: strings.TrimSpace(r.BirthDate),
	}
}
