package services

import (
	"testing"
	"time"

	"gin-shop/config"
	"gin-shop/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A second pooled connection would see a different in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.BlacklistedToken{},
	))
	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		Env:       "dev",
		SecretKey: "test-secret",
		TokenTTL:  time.Hour,
	}
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := models.User{Email: email, Password: "irrelevant-hash"}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) *models.Product {
	t.Helper()
	product := models.Product{Name: name, Price: price, Stock: stock}
	require.NoError(t, db.Create(&product).Error)
	return &product
}
