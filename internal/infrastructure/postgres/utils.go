package postgres

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/triple000-it/schiedam/internal/domain"
)

// Códigos SQLSTATE relevantes.
const (
	codeUniqueViolation = "23505"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == codeUniqueViolation
	}
	return false
}

// isNoRows informa si la consulta no devolvió filas.
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// storageErr normaliza un error del motor en la frontera del repositorio:
// unique violation -> Conflict, cualquier otro -> Storage.
func storageErr(op string, err error) error {
	if isUniqueViolation(err) {
		return domain.Conflict(op, err)
	}
	return domain.Storage(op, err)
}

// validID evita enviar al motor ids que no son UUID (fallarían con 22P02).
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
