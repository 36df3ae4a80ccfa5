package dto

import "time"

// CreateCustomerRequest body para POST /api/clientes.
type CreateCustomerRequest struct {
	Name    string `json:"nombre"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"telefono,omitempty"`
	Address string `json:"direccion,omitempty"`
	City    string `json:"ciudad,omitempty"`
	Country string `json:"pais,omitempty"`
}

// UpdateCustomerRequest body para PUT /api/clientes/:id.
// Campo ausente (null) = sin cambio.
type UpdateCustomerRequest struct {
	Name    *string `json:"nombre"`
	Email   *string `json:"email"`
	Phone   *string `json:"telefono"`
	Address *string `json:"direccion"`
	City    *string `json:"ciudad"`
	Country *string `json:"pais"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID           string    `json:"id"`
	SeqID        int64     `json:"id_cliente"`
	Name         string    `json:"nombre"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"telefono,omitempty"`
	Address      string    `json:"direccion,omitempty"`
	City         string    `json:"ciudad,omitempty"`
	Country      string    `json:"pais,omitempty"`
	RegisteredAt time.Time `json:"fecha_registro"`
}
