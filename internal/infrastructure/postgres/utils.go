package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeOutOfRange          = "22003"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgErrorCode(err) == codeUniqueViolation
}

// isForeignKeyViolation referencia a una fila inexistente (23503).
func isForeignKeyViolation(err error) bool {
	return pgErrorCode(err) == codeForeignKeyViolation
}

// isCheckViolation violación de un CHECK, p. ej. max > min en stock (23514).
func isCheckViolation(err error) bool {
	return pgErrorCode(err) == codeCheckViolation
}

// isOutOfRange valor numérico fuera del rango de la columna (22003).
func isOutOfRange(err error) bool {
	return pgErrorCode(err) == codeOutOfRange
}
