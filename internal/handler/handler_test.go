package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-cafe-pos/internal/app"
	"go-cafe-pos/internal/repository"
	"go-cafe-pos/pkg/kvstore"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pixelPNG, _ = base64.StdEncoding.DecodeString(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII=")

func setupServer(t *testing.T) (*fiber.App, kvstore.Store) {
	t.Helper()
	store := kvstore.NewMemory()
	a, err := app.NewWithStore(context.Background(), store)
	require.NoError(t, err)
	go a.Hub.Run()
	return NewServer(a, false), store
}

func doJSON(t *testing.T, server *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	resp, err := server.Test(req, -1)
	require.NoError(t, err)

	out := map[string]any{}
	raw, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(raw, &out)
	return resp, out
}

func createProduct(t *testing.T, server *fiber.App, name string, price, stock int) string {
	t.Helper()
	resp, body := doJSON(t, server, "POST", "/api/v1/products", map[string]any{
		"name":        name,
		"sku":         "SKU-" + name,
		"description": name + " description",
		"price":       price,
		"stock":       stock,
		"category":    "Beverages",
		"image":       "https://img.example/" + name + ".png",
	})
	require.Equal(t, 201, resp.StatusCode, body)
	return body["data"].(map[string]any)["id"].(string)
}

func TestCheckoutFlow(t *testing.T) {
	server, _ := setupServer(t)
	id := createProduct(t, server, "Latte", 35000, 10)

	resp, _ := doJSON(t, server, "POST", "/api/v1/cart/items", map[string]any{"product_id": id})
	require.Equal(t, 201, resp.StatusCode)
	resp, cart := doJSON(t, server, "POST", "/api/v1/cart/items", map[string]any{"product_id": id})
	require.Equal(t, 201, resp.StatusCode)
	totals := cart["totals"].(map[string]any)
	assert.EqualValues(t, 77700, totals["total"])

	resp, body := doJSON(t, server, "POST", "/api/v1/checkout", map[string]any{"paymentMethod": "cash", "cashAmount": 50000})
	assert.Equal(t, 422, resp.StatusCode)
	assert.Equal(t, "cash amount is less than total", body["error"])

	resp, quote := doJSON(t, server, "POST", "/api/v1/checkout/quote", map[string]any{"paymentMethod": "cash", "cashAmount": 100000})
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "ready_to_pay", quote["state"])
	assert.EqualValues(t, 22300, quote["change"])

	resp, body = doJSON(t, server, "POST", "/api/v1/checkout", map[string]any{"paymentMethod": "cash", "cashAmount": 100000})
	require.Equal(t, 201, resp.StatusCode)
	assert.EqualValues(t, 22300, body["data"].(map[string]any)["change"])

	_, cart = doJSON(t, server, "GET", "/api/v1/cart", nil)
	assert.Empty(t, cart["items"])

	resp, body = doJSON(t, server, "POST", "/api/v1/checkout", map[string]any{"paymentMethod": "card"})
	assert.Equal(t, 409, resp.StatusCode)
	assert.Equal(t, "cart is empty", body["error"])

	_, summary := doJSON(t, server, "GET", "/api/v1/reports/sales?range=today", nil)
	assert.EqualValues(t, 1, summary["totalSales"])
	assert.EqualValues(t, 77700, summary["totalRevenue"])
	assert.EqualValues(t, 2, summary["totalProducts"])

	req := httptest.NewRequest("GET", "/api/v1/reports/sales/export", nil)
	resp, err := server.Test(req, -1)
	require.NoError(t, err)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "sales_report.csv")
	csv, _ := io.ReadAll(resp.Body)
	lines := strings.Split(strings.TrimSpace(string(csv)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Transaction ID,Date,Items,Total", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], ",Latte (2),77700"))
}

func TestCheckoutQRIS(t *testing.T) {
	server, _ := setupServer(t)
	id := createProduct(t, server, "Latte", 35000, 10)

	resp, _ := doJSON(t, server, "POST", "/api/v1/cart/items", map[string]any{"product_id": id})
	require.Equal(t, 201, resp.StatusCode)

	resp, quote := doJSON(t, server, "POST", "/api/v1/checkout/quote", map[string]any{"paymentMethod": "qris"})
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "ready_to_pay", quote["state"])

	resp, body := doJSON(t, server, "POST", "/api/v1/checkout", map[string]any{"paymentMethod": "qris"})
	require.Equal(t, 201, resp.StatusCode)
	data := body["data"].(map[string]any)
	assert.Equal(t, "qris", data["paymentMethod"])
	assert.EqualValues(t, 0, data["change"])

	_, cart := doJSON(t, server, "GET", "/api/v1/cart", nil)
	assert.Empty(t, cart["items"])
}

func TestCartErrors(t *testing.T) {
	server, _ := setupServer(t)
	soldOut := createProduct(t, server, "Muffin", 15000, 0)

	resp, _ := doJSON(t, server, "POST", "/api/v1/cart/items", map[string]any{"product_id": soldOut})
	assert.Equal(t, 409, resp.StatusCode)

	resp, _ = doJSON(t, server, "POST", "/api/v1/cart/items", map[string]any{"product_id": "ghost"})
	assert.Equal(t, 404, resp.StatusCode)

	resp, _ = doJSON(t, server, "PUT", "/api/v1/cart/items/ghost", map[string]any{"quantity": 2})
	assert.Equal(t, 404, resp.StatusCode)
}

func TestProductValidationAndErrors(t *testing.T) {
	server, _ := setupServer(t)

	resp, body := doJSON(t, server, "POST", "/api/v1/products", map[string]any{"name": "", "sku": "X"})
	assert.Equal(t, 422, resp.StatusCode)
	assert.Contains(t, body["error"], "required field missing")

	req := httptest.NewRequest("POST", "/api/v1/products", strings.NewReader("{nope"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := server.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)

	resp, _ = doJSON(t, server, "GET", "/api/v1/products/ghost", nil)
	assert.Equal(t, 404, resp.StatusCode)

	resp, _ = doJSON(t, server, "DELETE", "/api/v1/products/ghost", nil)
	assert.Equal(t, 200, resp.StatusCode)

	resp, _ = doJSON(t, server, "PUT", "/api/v1/categories/abc", map[string]any{"name": "x"})
	assert.Equal(t, 400, resp.StatusCode)
}

func TestProductListFilters(t *testing.T) {
	server, _ := setupServer(t)
	createProduct(t, server, "Espresso", 25000, 5)
	createProduct(t, server, "Americano", 28000, 5)

	resp, page := doJSON(t, server, "GET", "/api/v1/products?q=espr", nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.EqualValues(t, 1, page["total"])
	assert.EqualValues(t, 1, page["totalPages"])

	_, page = doJSON(t, server, "GET", "/api/v1/products?category=Food", nil)
	assert.EqualValues(t, 0, page["total"])
}

func TestMultipartUpload(t *testing.T) {
	server, _ := setupServer(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range map[string]string{
		"name": "Matcha", "sku": "BEV-9", "description": "Green tea latte",
		"price": "42000", "stock": "7", "category": "Beverages",
	} {
		require.NoError(t, w.WriteField(k, v))
	}
	fw, err := w.CreateFormFile("image", "matcha.png")
	require.NoError(t, err)
	_, _ = fw.Write(pixelPNG)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/v1/products", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := server.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	data := body["data"].(map[string]any)
	assert.True(t, strings.HasPrefix(data["image"].(string), "data:image/png;base64,"))
	assert.EqualValues(t, 42000, data["price"])
}

func TestMultipartRejectsNonImage(t *testing.T) {
	server, store := setupServer(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	_ = w.WriteField("name", "Bad")
	_ = w.WriteField("sku", "BAD-1")
	_ = w.WriteField("description", "nope")
	fw, _ := w.CreateFormFile("image", "notes.txt")
	_, _ = fw.Write([]byte("plain text, not an image"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/v1/products", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := server.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 422, resp.StatusCode)

	_, err = store.Get(context.Background(), repository.KeyProducts)
	assert.ErrorIs(t, err, kvstore.ErrNotFound)
}

func TestCorruptStoreIs500(t *testing.T) {
	server, store := setupServer(t)
	require.NoError(t, store.Set(context.Background(), repository.KeyProducts, []byte(`{"oops":true}`)))

	resp, body := doJSON(t, server, "GET", "/api/v1/products", nil)
	assert.Equal(t, 500, resp.StatusCode)
	assert.Equal(t, "Internal Server Error", body["error"])
}

func TestCategoriesAndPromotions(t *testing.T) {
	server, _ := setupServer(t)

	req := httptest.NewRequest("GET", "/api/v1/categories", nil)
	resp, err := server.Test(req, -1)
	require.NoError(t, err)
	var cats []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cats))
	require.Len(t, cats, 3)
	assert.Equal(t, "Beverages", cats[0]["name"])

	resp, body := doJSON(t, server, "POST", "/api/v1/discounts/1/toggle", nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, false, body["active"])

	resp, _ = doJSON(t, server, "POST", "/api/v1/fees", map[string]any{
		"name": "Service", "description": "Service charge", "amount": 150, "type": "percentage",
	})
	assert.Equal(t, 422, resp.StatusCode)

	resp, _ = doJSON(t, server, "PUT", "/api/v1/fees/99", map[string]any{
		"name": "Service", "description": "Service charge", "amount": 10, "type": "percentage",
	})
	assert.Equal(t, 404, resp.StatusCode)

	resp, body = doJSON(t, server, "POST", "/api/v1/users", map[string]any{"name": "Sari", "email": "sari@cafe.id"})
	require.Equal(t, 201, resp.StatusCode)
	assert.Equal(t, "cashier", body["data"].(map[string]any)["role"])
}
