package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dalanakids/shop-api/internal/handler"
	"github.com/dalanakids/shop-api/internal/model"
	"github.com/dalanakids/shop-api/internal/repository"
)

type productEnv struct {
	e *echo.Echo
	h *handler.ProductHandler
}

func newProductEnv(t *testing.T) *productEnv {
	t.Helper()
	return &productEnv{
		e: echo.New(),
		h: handler.NewProductHandler(repository.NewProductRepo(newTestDB(t)), "https://images.dalanakids.com"),
	}
}

func (env *productEnv) do(t *testing.T, h echo.HandlerFunc, method string, body any, productID string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, "/", reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)
	if productID != "" {
		c.SetParamNames("product_id")
		c.SetParamValues(productID)
	}
	require.NoError(t, h(c))
	return rec
}

func (env *productEnv) create(t *testing.T, body echo.Map) string {
	t.Helper()
	rec := env.do(t, env.h.Create, http.MethodPost, body, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	id, _ := resp["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestProductHandler_CreateAndGet(t *testing.T) {
	env := newProductEnv(t)

	id := env.create(t, echo.Map{
		"name":   "Vestido Flores",
		"price":  19.99,
		"stock":  3,
		"images": []string{"https://img.test/1.jpg"},
		"sizes":  []string{"S", "M"},
	})

	rec := env.do(t, env.h.GetByID, http.MethodGet, nil, id)
	require.Equal(t, http.StatusOK, rec.Code)

	var p model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "Vestido Flores", p.Name)
	assert.Equal(t, "Todos", p.CategoryName, "missing category falls back to the default")
	assert.Len(t, p.Images, 1)
	assert.Len(t, p.Sizes, 2)
}

func TestProductHandler_CreateValidation(t *testing.T) {
	env := newProductEnv(t)

	rec := env.do(t, env.h.Create, http.MethodPost, echo.Map{"price": 10}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, env.h.Create, http.MethodPost, echo.Map{
		"name": "Muchas Fotos",
		"images": []string{
			"https://img.test/1.jpg", "https://img.test/2.jpg", "https://img.test/3.jpg",
			"https://img.test/4.jpg", "https://img.test/5.jpg", "https://img.test/6.jpg",
		},
	}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductHandler_UpdatePartial(t *testing.T) {
	env := newProductEnv(t)
	id := env.create(t, echo.Map{"name": "Polera Rayas", "price": 9.99, "stock": 2})

	rec := env.do(t, env.h.Update, http.MethodPut, echo.Map{"price": 12.5}, id)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var p model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, 12.5, p.Price)
	assert.Equal(t, "Polera Rayas", p.Name, "fields absent from the payload stay untouched")
	assert.Equal(t, 2, p.Stock)
}

func TestProductHandler_UpdateUnknown(t *testing.T) {
	env := newProductEnv(t)
	rec := env.do(t, env.h.Update, http.MethodPut, echo.Map{"price": 1.0}, "b5d7f3e0-0000-4000-8000-000000000000")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductHandler_Delete(t *testing.T) {
	env := newProductEnv(t)
	id := env.create(t, echo.Map{"name": "Gorro Lana"})

	rec := env.do(t, env.h.Delete, http.MethodDelete, nil, id)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, env.h.GetByID, http.MethodGet, nil, id)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductHandler_List(t *testing.T) {
	env := newProductEnv(t)
	env.create(t, echo.Map{"name": "Zapatos"})
	env.create(t, echo.Map{"name": "Abrigo"})

	rec := env.do(t, env.h.List, http.MethodGet, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var products []model.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 2)
	assert.Equal(t, "Abrigo", products[0].Name)
}

func TestProductHandler_ImageHost(t *testing.T) {
	env := newProductEnv(t)
	rec := env.do(t, env.h.ImageHost, http.MethodGet, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "https://images.dalanakids.com", resp["image_host"])
}
