package repository

import "context"

// Nombres de secuencia usados para los ids incrementales visibles.
const (
	SeqCustomers = "clientes"
	SeqEmployees = "empleado"
	SeqContracts = "contrato"
	SeqUsers     = "usuarios"
)

// CounterRepository entrega ids secuenciales por nombre de secuencia.
// Next incrementa y devuelve el contador de forma atómica (creándolo en 1 si
// no existe). Dos llamadas concurrentes para el mismo nombre nunca observan
// el mismo valor. Ante un error de persistencia retorna el error: nunca
// degrada a un valor por defecto que pueda colisionar.
type CounterRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}
