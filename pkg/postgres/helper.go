package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsUndefinedTable проверяет, является ли ошибка обращением к несуществующей таблице (SQLSTATE 42P01).
// Обычно это значит, что миграции ещё не применены.
func IsUndefinedTable(err error) bool {
	return hasSQLState(err, "42P01")
}

// IsUndefinedColumn проверяет SQLSTATE 42703.
func IsUndefinedColumn(err error) bool {
	return hasSQLState(err, "42703")
}

func hasSQLState(err error, code string) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError

	// errors.As пытается извлечь конкретный тип *pgconn.PgError из всей цепочки ошибок.
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == code
	}

	return false
}
