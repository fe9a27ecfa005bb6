package postgres

import (
	"strconv"
	"strings"
)

// queryBuilder acumula condiciones (fragmento, valor) en orden. Los valores se enlazan
// posicionalmente ($n); nunca se interpolan en el texto SQL.
type queryBuilder struct {
	conds []string
	args  []any
}

// bind registra v como argumento y devuelve su marcador posicional.
func (b *queryBuilder) bind(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

// where añade una condición. Cada "?" del fragmento se sustituye por el marcador de v,
// así un mismo valor puede usarse varias veces (name ILIKE ? OR description ILIKE ?).
func (b *queryBuilder) where(fragment string, v any) *queryBuilder {
	b.conds = append(b.conds, strings.ReplaceAll(fragment, "?", b.bind(v)))
	return b
}

// build compone base + WHERE + suffix + LIMIT + OFFSET. Limit y offset van al final,
// cada uno como parámetro propio y solo si están presentes.
func (b *queryBuilder) build(base, suffix string, limit, offset *int) (string, []any) {
	var sb strings.Builder
	sb.WriteString(base)
	if len(b.conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(b.conds, " AND "))
	}
	if suffix != "" {
		sb.WriteString(" ")
		sb.WriteString(suffix)
	}
	if limit != nil {
		sb.WriteString(" LIMIT ")
		sb.WriteString(b.bind(*limit))
	}
	if offset != nil {
		sb.WriteString(" OFFSET ")
		sb.WriteString(b.bind(*offset))
	}
	return sb.String(), b.args
}

// setBuilder compone UPDATE ... SET sobre columnas de una lista blanca.
// $1 queda reservado para el id de la fila.
type setBuilder struct {
	sets []string
	args []any
}

func newSetBuilder(id string) *setBuilder {
	return &setBuilder{args: []any{id}}
}

func (s *setBuilder) set(column string, v any) {
	s.args = append(s.args, v)
	s.sets = append(s.sets, column+" = $"+strconv.Itoa(len(s.args)))
}

// build siempre refresca updated_at, aunque el parche esté vacío.
func (s *setBuilder) build(table, returning string) (string, []any) {
	sets := append(append([]string{}, s.sets...), "updated_at = now()")
	sql := "UPDATE " + table + " SET " + strings.Join(sets, ", ") + " WHERE id = $1"
	if returning != "" {
		sql += " RETURNING " + returning
	}
	return sql, s.args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern convierte un texto libre en patrón ILIKE de subcadena literal.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
