package services

import (
	"testing"

	"gin-shop/models"
	"gin-shop/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCartService(t *testing.T) (ICartService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	service := NewCartService(
		repositories.NewCartRepository(db),
		repositories.NewProductRepository(db),
	)
	return service, db
}

func TestAddCreatesLineWithProduct(t *testing.T) {
	service, db := newCartService(t)
	user := createTestUser(t, db, "u@example.com")
	product := createTestProduct(t, db, "Keyboard", 399.0, 50)

	item, err := service.Add(user.ID, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, product.ID, item.ProductID)
	assert.Equal(t, "Keyboard", item.Product.Name)
}

func TestAddUnknownProductFails(t *testing.T) {
	service, db := newCartService(t)
	user := createTestUser(t, db, "u@example.com")

	_, err := service.Add(user.ID, 9999, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestAddMergesDuplicateProductIntoOneLine(t *testing.T) {
	service, db := newCartService(t)
	user := createTestUser(t, db, "u@example.com")
	product := createTestProduct(t, db, "Keyboard", 399.0, 50)

	_, err := service.Add(user.ID, product.ID, 2)
	require.NoError(t, err)
	merged, err := service.Add(user.ID, product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, merged.Quantity)

	items, err := service.Get(user.ID)
	require.NoError(t, err)
	require.Len(t, *items, 1)
	assert.Equal(t, 5, (*items)[0].Quantity)
}

func TestAddIsNotCappedByStock(t *testing.T) {
	// Stock is validated at checkout only; the cart accepts any quantity.
	service, db := newCartService(t)
	user := createTestUser(t, db, "u@example.com")
	product := createTestProduct(t, db, "Keyboard", 399.0, 1)

	item, err := service.Add(user.ID, product.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, item.Quantity)
}

func TestUpdateSetsQuantity(t *testing.T) {
	service, db := newCartService(t)
	user := createTestUser(t, db, "u@example.com")
	product := createTestProduct(t, db, "Keyboard", 399.0, 50)

	item, err := service.Add(user.ID, product.ID, 2)
	require.NoError(t, err)

	updated, deleted, err := service.Update(user.ID, item.ID, 7)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, 7, updated.Quantity)
}

func TestUpdateToZeroDeletesLine(t *testing.T) {
	service, db := newCartService(t)
	user := createTestUser(t, db, "u@example.com")
	product := createTestProduct(t, db, "Keyboard", 399.0, 50)

	item, err := service.Add(user.ID, product.ID, 2)
	require.NoError(t, err)

	updated, deleted, err := service.Update(user.ID, item.ID, 0)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Nil(t, updated)

	items, err := service.Get(user.ID)
	require.NoError(t, err)
	assert.Empty(t, *items)
}

func TestUpdateForeignLineReportsNotFound(t *testing.T) {
	service, db := newCartService(t)
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")
	product := createTestProduct(t, db, "Keyboard", 399.0, 50)

	item, err := service.Add(owner.ID, product.ID, 2)
	require.NoError(t, err)

	_, _, err = service.Update(other.ID, item.ID, 5)
	assert.ErrorIs(t, err, ErrCartItemNotFound)

	err = service.Remove(other.ID, item.ID)
	assert.ErrorIs(t, err, ErrCartItemNotFound)

	// Untouched for the owner.
	items, err := service.Get(owner.ID)
	require.NoError(t, err)
	require.Len(t, *items, 1)
	assert.Equal(t, 2, (*items)[0].Quantity)
}

func TestRemoveIsNotIdempotent(t *testing.T) {
	service, db := newCartService(t)
	user := createTestUser(t, db, "u@example.com")
	product := createTestProduct(t, db, "Keyboard", 399.0, 50)

	item, err := service.Add(user.ID, product.ID, 2)
	require.NoError(t, err)

	require.NoError(t, service.Remove(user.ID, item.ID))
	assert.ErrorIs(t, service.Remove(user.ID, item.ID), ErrCartItemNotFound)
}

func TestReAddAfterRemove(t *testing.T) {
	service, db := newCartService(t)
	user := createTestUser(t, db, "u@example.com")
	product := createTestProduct(t, db, "Keyboard", 399.0, 50)

	item, err := service.Add(user.ID, product.ID, 2)
	require.NoError(t, err)
	require.NoError(t, service.Remove(user.ID, item.ID))

	again, err := service.Add(user.ID, product.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, again.Quantity)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
