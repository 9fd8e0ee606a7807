package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica se um erro é violação de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isForeignKeyViolation verifica se um erro é violação de chave estrangeira
// (23503). Opcionalmente restringe à constraint informada; com constraint
// vazia, qualquer 23503 serve.
func isForeignKeyViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != "23503" { // foreign_key_violation
			return false
		}
		return constraint == "" || pgErr.ConstraintName == constraint
	}
	return constraint == "" && strings.Contains(err.Error(), "23503")
}
