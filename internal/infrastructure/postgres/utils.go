package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Letras con tilde y su forma plana. El plegado debe coincidir con el de
// texto.Normalizar: el filtro llega de la capa de aplicación ya en minúsculas
// y sin tildes, y la columna se pliega igual del lado SQL para que casen.
const (
	letrasConTilde = "áéíóúüñ"
	letrasSinTilde = "aeiouun"
)

// filtroNombre compara una columna de texto contra el patrón $<arg> en
// minúsculas y sin tildes, de modo que "la cabana" encuentre "La Cabaña".
func filtroNombre(columna string, arg int) string {
	return fmt.Sprintf("translate(lower(%s), '%s', '%s') LIKE '%%' || $%d || '%%'",
		columna, letrasConTilde, letrasSinTilde, arg)
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// enTx ejecuta fn dentro de una transacción: Begin, Rollback diferido y
// Commit solo si fn no falla. Toda mutación de los repositorios pasa por
// aquí para que un fallo no deje escrituras parciales.
func enTx(ctx context.Context, pool *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
