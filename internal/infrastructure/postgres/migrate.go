package postgres

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

//go:embed schema.sql
var schemaSQL string

// schemaStatements divide el esquema embebido en sentencias ejecutables.
func schemaStatements() []string {
	var out []string
	for _, stmt := range strings.Split(schemaSQL, ";\n") {
		if s := strings.TrimSpace(stmt); s != "" && !onlyComments(s) {
			out = append(out, s)
		}
	}
	return out
}

func onlyComments(s string) bool {
	for _, line := range strings.Split(s, "\n") {
		if l := strings.TrimSpace(line); l != "" && !strings.HasPrefix(l, "--") {
			return false
		}
	}
	return true
}

// Migrate aplica el esquema (idempotente: CREATE ... IF NOT EXISTS).
func Migrate(ctx context.Context, q Querier, zl zerolog.Logger) error {
	stmts := schemaStatements()
	for i, stmt := range stmts {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migración sentencia %d: %w", i+1, err)
		}
	}
	zl.Info().Int("statements", len(stmts)).Msg("esquema aplicado")
	return nil
}
