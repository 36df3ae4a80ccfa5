package repository

// UpdateResult resultado de una actualización parcial.
// Matched=false significa que el id no resolvió a un registro existente.
type UpdateResult struct {
	Matched  bool
	Modified bool
}

// DeleteResult resultado de un borrado. Borrar un id inexistente
// reporta Deleted=false, no es un error.
type DeleteResult struct {
	Deleted bool
}
