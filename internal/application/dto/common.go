package dto

// ErrorResponse respuesta de error de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// UpdateResponse resultado de una actualización parcial.
type UpdateResponse struct {
	Matched  bool `json:"matched"`
	Modified bool `json:"modified"`
}

// DeleteResponse resultado de un borrado.
type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}
