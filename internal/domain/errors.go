package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound    = errors.New("recurso no encontrado")
	ErrDuplicate   = errors.New("recurso duplicado")
	ErrReferenced  = errors.New("el recurso tiene registros asociados")
	ErrPersistence = errors.New("error de persistencia")
)

// ValidationError indica que los datos del caller violan una regla de negocio.
// Reason conserva el mensaje legible de la primera regla violada y se muestra
// tal cual al usuario. Los callers distinguen el tipo con errors.As o IsValidation.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// NewValidation construye un ValidationError con el motivo dado.
func NewValidation(reason string) error {
	return &ValidationError{Reason: reason}
}

// IsValidation verifica si un error es de validación.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
