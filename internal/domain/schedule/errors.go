package schedule

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFrequency: frecuencia ausente, cero o negativa.
	ErrInvalidFrequency = errors.New("frequency must be a positive number of hours")

	// ErrInvalidDateRange: la fecha de término es anterior al inicio.
	ErrInvalidDateRange = errors.New("end date is before the start date")

	// ErrTooManyOccurrences: el plan generaría más tomas que el límite.
	ErrTooManyOccurrences = errors.New("plan exceeds the maximum number of doses")

	// ErrPersistence envuelve cualquier falla del storage dentro de la
	// transacción. Siempre implica rollback completo: reintentar el mismo
	// request es seguro.
	ErrPersistence = errors.New("storage failure")

	ErrNotFound = errors.New("not found")
)

// MissingFieldError indica un campo obligatorio ausente en el payload.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// IsValidation devuelve true si el error es de validación de entrada
// (el handler lo mapea a 400; lo demás es 500 salvo not found).
func IsValidation(err error) bool {
	var mf *MissingFieldError
	if errors.As(err, &mf) {
		return true
	}
	return errors.Is(err, ErrInvalidFrequency) ||
		errors.Is(err, ErrInvalidDateRange) ||
		errors.Is(err, ErrTooManyOccurrences)
}
