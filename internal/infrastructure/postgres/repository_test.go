package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triple000-it/schiedam/internal/domain"
	"github.com/triple000-it/schiedam/internal/domain/repository"
	"github.com/triple000-it/schiedam/internal/infrastructure/postgres"
)

const (
	businessID = "7b0f6f7e-1b7a-4c1e-9d2a-2f1d2c3b4a51"
	ownerID    = "0c7e1d5a-8f3b-4e2c-a1d9-6b5c4d3e2f10"
	categoryID = "5d4c3b2a-1f0e-4d9c-8b7a-6f5e4d3c2b1a"
	productID  = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

// ──────────────────────────────────────────────────────────────────────────────
// Negocios
// ──────────────────────────────────────────────────────────────────────────────

func TestClaimBusiness_YaReclamadoEsConflict(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("UPDATE businesses AS b SET owner_id").
		WithArgs(businessID, ownerID).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("SELECT claimed FROM businesses").
		WithArgs(businessID).
		WillReturnRows(pgxmock.NewRows([]string{"claimed"}).AddRow(true))

	_, err := postgres.NewBusinessRepository(mock).ClaimBusiness(context.Background(), businessID, ownerID)

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.ErrorIs(t, err, domain.ErrAlreadyClaimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimBusiness_InexistenteEsNotFound(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("UPDATE businesses AS b SET owner_id").
		WithArgs(businessID, ownerID).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("SELECT claimed FROM businesses").
		WithArgs(businessID).
		WillReturnError(pgx.ErrNoRows)

	_, err := postgres.NewBusinessRepository(mock).ClaimBusiness(context.Background(), businessID, ownerID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimBusiness_SinOwnerEsValidation(t *testing.T) {
	mock := newMock(t)

	_, err := postgres.NewBusinessRepository(mock).ClaimBusiness(context.Background(), businessID, "")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListBusinesses_ComponeFiltrosYPaginacion(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(
		"WHERE b.category_id = $1 AND (b.name ILIKE $2 OR b.description ILIKE $2) GROUP BY b.id, c.id ORDER BY b.created_at DESC LIMIT $3 OFFSET $4")).
		WithArgs(categoryID, `%50\%\_off%`, 10, 5).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	list, err := postgres.NewBusinessRepository(mock).ListBusinesses(context.Background(), repository.BusinessFilter{
		CategoryID: repository.Ptr(categoryID),
		Search:     repository.Ptr("50%_off"),
		Limit:      repository.Ptr(10),
		Offset:     repository.Ptr(5),
	})

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListBusinesses_CategoriaNoUUIDDevuelveVacio(t *testing.T) {
	mock := newMock(t)

	list, err := postgres.NewBusinessRepository(mock).ListBusinesses(context.Background(), repository.BusinessFilter{
		CategoryID: repository.Ptr("horeca"),
	})

	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListBusinesses_FiltroPorPropietario(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE b.owner_id = $1 GROUP BY b.id, c.id")).
		WithArgs(ownerID).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	list, err := postgres.NewBusinessRepository(mock).ListBusinesses(context.Background(), repository.BusinessFilter{
		OwnerID: repository.Ptr(ownerID),
	})

	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListBusinesses_ErrorDelMotorEsStorage(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("FROM businesses b").WillReturnError(errors.New("connection refused"))

	_, err := postgres.NewBusinessRepository(mock).ListBusinesses(context.Background(), repository.BusinessFilter{})

	assert.ErrorIs(t, err, domain.ErrStorage)
	assert.Equal(t, domain.KindStorage, domain.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListBusinesses_LimitNegativoNoConsulta(t *testing.T) {
	mock := newMock(t)

	_, err := postgres.NewBusinessRepository(mock).ListBusinesses(context.Background(), repository.BusinessFilter{
		Limit: repository.Ptr(-1),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBusiness_NoEncontrado(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("FROM businesses b").WithArgs(businessID).WillReturnError(pgx.ErrNoRows)

	_, err := postgres.NewBusinessRepository(mock).GetBusiness(context.Background(), businessID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBusiness_ParcheVacioRefrescaUpdatedAt(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE businesses AS b SET updated_at = now() WHERE id = $1 RETURNING")).
		WithArgs(businessID).
		WillReturnError(pgx.ErrNoRows)

	_, err := postgres.NewBusinessRepository(mock).UpdateBusiness(context.Background(), businessID, repository.BusinessPatch{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos, categorías y favoritos
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteProduct_SinFilasEsNotFound(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("DELETE FROM products").
		WithArgs(businessID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := postgres.NewProductRepository(mock).DeleteProduct(context.Background(), businessID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteProduct_OK(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("DELETE FROM products").
		WithArgs(businessID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, postgres.NewProductRepository(mock).DeleteProduct(context.Background(), businessID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListProducts_SoloActivosMasRecientesPrimero(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE business_id = $1 AND active = true")).
		WithArgs(businessID).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	list, err := postgres.NewProductRepository(mock).ListProducts(context.Background(), businessID)

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountProducts(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM products WHERE business_id = $1")).
		WithArgs(businessID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))

	n, err := postgres.NewProductRepository(mock).CountProducts(context.Background(), businessID)

	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecrementStock_UpdateCondicionalDevuelveProducto(t *testing.T) {
	mock := newMock(t)
	now := time.Now().UTC()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE products SET stock = stock - $2, updated_at = now() WHERE id = $1 AND stock >= $2 RETURNING")).
		WithArgs(productID, 3).
		WillReturnRows(pgxmock.NewRows([]string{"id", "business_id", "name", "description", "price", "stock", "image_url", "active", "created_at", "updated_at"}).
			AddRow(productID, businessID, "Haring", (*string)(nil), decimal.RequireFromString("8.50"), 17, (*string)(nil), true, now, now))

	p, err := postgres.NewProductRepository(mock).DecrementStock(context.Background(), productID, 3)

	require.NoError(t, err)
	assert.Equal(t, 17, p.Stock)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("8.50")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecrementStock_SinStockEsConflictYNoEscribe(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 AND stock >= $2")).
		WithArgs(productID, 5).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT stock FROM products WHERE id = $1")).
		WithArgs(productID).
		WillReturnRows(pgxmock.NewRows([]string{"stock"}).AddRow(2))

	_, err := postgres.NewProductRepository(mock).DecrementStock(context.Background(), productID, 5)

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecrementStock_InexistenteEsNotFound(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 AND stock >= $2")).
		WithArgs(productID, 1).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT stock FROM products WHERE id = $1")).
		WithArgs(productID).
		WillReturnError(pgx.ErrNoRows)

	_, err := postgres.NewProductRepository(mock).DecrementStock(context.Background(), productID, 1)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDecrementStock_CantidadNoPositivaNoConsulta(t *testing.T) {
	mock := newMock(t)

	_, err := postgres.NewProductRepository(mock).DecrementStock(context.Background(), productID, 0)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCategory_NombreDuplicadoEsConflict(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("INSERT INTO categories").
		WithArgs(pgxmock.AnyArg(), "Horeca", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := postgres.NewCategoryRepository(mock).CreateCategory(context.Background(), repository.NewCategory{Name: " Horeca "})

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddFavorite_DuplicadoEsConflict(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery("INSERT INTO favorites").
		WithArgs(pgxmock.AnyArg(), ownerID, businessID).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "favorites_user_business"})

	_, err := postgres.NewFavoriteRepository(mock).AddFavorite(context.Background(), ownerID, businessID)

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.ErrorIs(t, err, domain.ErrDuplicateFavorite)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveFavorite_Idempotente(t *testing.T) {
	mock := newMock(t)
	mock.ExpectExec("DELETE FROM favorites").
		WithArgs(ownerID, businessID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.NoError(t, postgres.NewFavoriteRepository(mock).RemoveFavorite(context.Background(), ownerID, businessID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListOrders_FiltrosCombinados(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE o.business_id = $1 AND o.status = $2 ORDER BY o.created_at DESC")).
		WithArgs(businessID, "paid").
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	list, err := postgres.NewOrderRepository(mock).ListOrders(context.Background(), repository.OrderFilter{
		BusinessID: repository.Ptr(businessID),
		CustomerID: repository.Ptr(""),
		Status:     repository.Ptr("paid"),
	})

	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ──────────────────────────────────────────────────────────────────────────────
// Transacciones
// ──────────────────────────────────────────────────────────────────────────────

func TestTxRunner_CommitEnExito(t *testing.T) {
	mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM favorites").
		WithArgs(ownerID, businessID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	err := postgres.NewTxRunner(mock).Run(context.Background(), func(tx repository.Store) error {
		return tx.RemoveFavorite(context.Background(), ownerID, businessID)
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxRunner_RollbackEnError(t *testing.T) {
	mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectRollback()
	boom := errors.New("fallo en checkout")

	err := postgres.NewTxRunner(mock).Run(context.Background(), func(repository.Store) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}
