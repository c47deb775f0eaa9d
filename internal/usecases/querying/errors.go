package querying

import "fmt"

// ValidationError sinaliza parâmetros inválidos, sempre antes de qualquer
// chamada de rede.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("parâmetro inválido %q: %s", e.Field, e.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
