package dto

import "time"

// CreateEmployeeRequest body para POST /api/empleados.
type CreateEmployeeRequest struct {
	DocumentNumber string `json:"nro_documento"`
	Name           string `json:"nombre"`
	Surname        string `json:"apellido"`
	Age            int    `json:"edad"`
	Gender         string `json:"genero,omitempty"`
	Position       string `json:"cargo,omitempty"`
	Email          string `json:"correo,omitempty"`
	Phone          string `json:"nro_contacto,omitempty"`
	Status         string `json:"estado,omitempty"` // default: activo
	Notes          string `json:"observaciones,omitempty"`
}

// UpdateEmployeeRequest body para PUT /api/empleados/:id. null = sin cambio.
type UpdateEmployeeRequest struct {
	DocumentNumber *string `json:"nro_documento"`
	Name           *string `json:"nombre"`
	Surname        *string `json:"apellido"`
	Age            *int    `json:"edad"`
	Gender         *string `json:"genero"`
	Position       *string `json:"cargo"`
	Email          *string `json:"correo"`
	Phone          *string `json:"nro_contacto"`
	Status         *string `json:"estado"`
	Notes          *string `json:"observaciones"`
}

// EmployeeResponse empleado en respuestas.
type EmployeeResponse struct {
	ID             string    `json:"id"`
	SeqID          int64     `json:"id_empleado"`
	DocumentNumber string    `json:"nro_documento"`
	Name           string    `json:"nombre"`
	Surname        string    `json:"apellido"`
	Age            int       `json:"edad"`
	Gender         string    `json:"genero,omitempty"`
	Position       string    `json:"cargo,omitempty"`
	Email          string    `json:"correo,omitempty"`
	Phone          string    `json:"nro_contacto,omitempty"`
	Status         string    `json:"estado"`
	Notes          string    `json:"observaciones,omitempty"`
	RegisteredAt   time.Time `json:"fecha_registro"`
}
