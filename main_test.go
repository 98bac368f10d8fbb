package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gin-shop/config"
	"gin-shop/infra"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	cfg := &config.Config{
		Env:           "dev",
		Port:          "8080",
		SecretKey:     "test-secret",
		TokenTTL:      time.Hour,
		AdminEmail:    "admin@example.com",
		AdminPassword: "Admin123!",
	}

	require.NoError(t, infra.Migrate(db))
	require.NoError(t, infra.Seed(db, cfg))

	return setupRouter(db, cfg)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func login(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decodeBody(t, w)["access_token"].(string)
}

func TestEndToEndShoppingFlow(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{"email": "u@example.com", "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	token := login(t, r, "u@example.com", "secret1")

	w = doJSON(t, r, http.MethodGet, "/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	products := decodeBody(t, w)["data"].([]any)
	require.GreaterOrEqual(t, len(products), 1)
	first := products[0].(map[string]any)
	productID := first["id"].(float64)
	price := first["price"].(float64)
	stockBefore := first["stock"].(float64)

	w = doJSON(t, r, http.MethodPost, "/cart/items", token, gin.H{"product_id": productID, "quantity": 2})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	line := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, 2.0, line["quantity"])

	w = doJSON(t, r, http.MethodPost, "/orders/checkout", token, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, 2*price, order["total_amount"])

	w = doJSON(t, r, http.MethodGet, "/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	for _, p := range decodeBody(t, w)["data"].([]any) {
		product := p.(map[string]any)
		if product["id"] == productID {
			assert.Equal(t, stockBefore-2, product["stock"])
		}
	}

	w = doJSON(t, r, http.MethodGet, "/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody(t, w)["data"].([]any))

	w = doJSON(t, r, http.MethodGet, "/orders/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	orders := decodeBody(t, w)["data"].([]any)
	require.Len(t, orders, 1)
}

func TestUpdateCartItemToZeroRemovesIt(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{"email": "u@example.com", "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code)
	token := login(t, r, "u@example.com", "secret1")

	w = doJSON(t, r, http.MethodGet, "/products", "", nil)
	productID := decodeBody(t, w)["data"].([]any)[0].(map[string]any)["id"].(float64)

	w = doJSON(t, r, http.MethodPost, "/cart/items", token, gin.H{"product_id": productID, "quantity": 1})
	require.Equal(t, http.StatusCreated, w.Code)
	itemID := decodeBody(t, w)["data"].(map[string]any)["id"].(float64)

	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/cart/items/%.0f", itemID), token, gin.H{"quantity": 0})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, decodeBody(t, w)["deleted"])

	w = doJSON(t, r, http.MethodGet, "/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody(t, w)["data"].([]any))

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/cart/items/%.0f", itemID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutWithEmptyCartReturns400(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{"email": "u@example.com", "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code)
	token := login(t, r, "u@example.com", "secret1")

	w = doJSON(t, r, http.MethodPost, "/orders/checkout", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDuplicateRegistrationReturns400(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{"email": "u@example.com", "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{"email": "u@example.com", "password": "secret1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductCreationRequiresAdmin(t *testing.T) {
	r := newTestRouter(t)

	payload := gin.H{"name": "Webcam", "description": "1080p", "price": 89.0, "stock": 10}

	w := doJSON(t, r, http.MethodPost, "/products", "", payload)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{"email": "u@example.com", "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code)
	userToken := login(t, r, "u@example.com", "secret1")

	w = doJSON(t, r, http.MethodPost, "/products", userToken, payload)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken := login(t, r, "admin@example.com", "Admin123!")
	w = doJSON(t, r, http.MethodPost, "/products", adminToken, payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "Webcam", created["name"])
}

func TestCartRequiresAuthentication(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/cart", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{"email": "u@example.com", "password": "secret1"})
	require.Equal(t, http.StatusCreated, w.Code)
	token := login(t, r, "u@example.com", "secret1")

	w = doJSON(t, r, http.MethodGet, "/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/cart", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProductSearchAndPagination(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/products?q=keyboard", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	results := decodeBody(t, w)["data"].([]any)
	require.Len(t, results, 1)
	assert.Equal(t, "Mechanical Keyboard", results[0].(map[string]any)["name"])

	w = doJSON(t, r, http.MethodGet, "/products?skip=1&limit=1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["data"].([]any), 1)

	w = doJSON(t, r, http.MethodGet, "/products?limit=101", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
