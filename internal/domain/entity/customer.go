package entity

import "time"

// Customer representa un cliente del minimarket.
// SeqID es el id incremental visible (colección counters); ID es la clave interna.
type Customer struct {
	ID           string
	SeqID        int64
	Name         string
	Email        string // normalizado: trim + minúsculas
	Phone        string
	Address      string
	City         string
	Country      string
	RegisteredAt time.Time
}
