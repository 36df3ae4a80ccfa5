package entity

import "time"

// Estados válidos para Employee y User.
const (
	StatusActive   = "activo"
	StatusInactive = "inactivo"
)

// Employee representa un empleado del negocio.
// DocumentNumber es único; se verifica con pre-consulta, no con índice.
type Employee struct {
	ID             string
	SeqID          int64
	DocumentNumber string
	Name           string
	Surname        string
	Age            int
	Gender         string
	Position       string
	Email          string
	Phone          string
	Status         string // activo, inactivo
	Notes          string
	RegisteredAt   time.Time
}

// FullName nombre y apellido para vistas y documentos.
func (e *Employee) FullName() string {
	if e.Surname == "" {
		return e.Name
	}
	return e.Name + " " + e.Surname
}
