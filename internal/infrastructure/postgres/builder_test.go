package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryBuilder_SinFiltros(t *testing.T) {
	var qb queryBuilder
	sql, args := qb.build("SELECT * FROM businesses b", "ORDER BY b.created_at DESC", nil, nil)

	assert.Equal(t, "SELECT * FROM businesses b ORDER BY b.created_at DESC", sql)
	assert.Empty(t, args)
}

func TestQueryBuilder_CondicionesLimitOffsetEnOrden(t *testing.T) {
	var qb queryBuilder
	qb.where("b.category_id = ?", "cat-1").
		where("(b.name ILIKE ? OR b.description ILIKE ?)", "%cafe%")
	limit, offset := 10, 20
	sql, args := qb.build("SELECT * FROM businesses b", "ORDER BY b.created_at DESC", &limit, &offset)

	assert.Equal(t,
		"SELECT * FROM businesses b WHERE b.category_id = $1 AND (b.name ILIKE $2 OR b.description ILIKE $2) ORDER BY b.created_at DESC LIMIT $3 OFFSET $4",
		sql)
	assert.Equal(t, []any{"cat-1", "%cafe%", 10, 20}, args)
}

func TestQueryBuilder_SoloOffset(t *testing.T) {
	var qb queryBuilder
	offset := 5
	sql, args := qb.build("SELECT 1", "", nil, &offset)

	assert.Equal(t, "SELECT 1 OFFSET $1", sql)
	assert.Equal(t, []any{5}, args)
}

func TestQueryBuilder_ValoresNuncaInterpolados(t *testing.T) {
	var qb queryBuilder
	evil := "'; DROP TABLE businesses; --"
	qb.where("b.name ILIKE ?", containsPattern(evil))
	sql, args := qb.build("SELECT 1 FROM businesses b", "", nil, nil)

	assert.NotContains(t, sql, "DROP")
	assert.Equal(t, []any{"%'; DROP TABLE businesses; --%"}, args)
}

func TestSetBuilder_SiempreRefrescaUpdatedAt(t *testing.T) {
	sb := newSetBuilder("id-1")
	sql, args := sb.build("businesses", "id")
	assert.Equal(t, "UPDATE businesses SET updated_at = now() WHERE id = $1 RETURNING id", sql)
	assert.Equal(t, []any{"id-1"}, args)

	sb = newSetBuilder("id-1")
	sb.set("name", "Nieuw")
	sb.set("city", "Vlaardingen")
	sql, args = sb.build("businesses", "")
	assert.Equal(t, "UPDATE businesses SET name = $2, city = $3, updated_at = now() WHERE id = $1", sql)
	assert.Equal(t, []any{"id-1", "Nieuw", "Vlaardingen"}, args)
}

func TestContainsPattern_EscapaComodines(t *testing.T) {
	assert.Equal(t, "%cafe%", containsPattern("cafe"))
	assert.Equal(t, `%100\%\_a\\b%`, containsPattern(`100%_a\b`))
}
