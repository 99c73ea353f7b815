package productcontroller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupCreateRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	RegisterValidators()
	r := gin.New()
	// Binding fails before any persistence access.
	r.POST("/admin/products", CreateProduct(nil))
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateProductRejectsUnknownCategory(t *testing.T) {
	r := setupCreateRouter()

	body := `{
		"title":"Test Jacket",
		"shortDescription":"Short",
		"fullDescription":"Full",
		"price":1000,
		"category":"Shoes",
		"sizes":["M"],
		"colors":[{"name":"Black"}],
		"images":["https://example.com/a.jpg"]
	}`
	w := postJSON(r, "/admin/products", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"error"`)
}

func TestCreateProductRejectsNegativePrice(t *testing.T) {
	r := setupCreateRouter()

	body := `{
		"title":"Test Jacket",
		"shortDescription":"Short",
		"fullDescription":"Full",
		"price":-1,
		"category":"Jacket",
		"sizes":["M"],
		"colors":[{"name":"Black"}],
		"images":["https://example.com/a.jpg"]
	}`
	w := postJSON(r, "/admin/products", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProductRejectsMissingImages(t *testing.T) {
	r := setupCreateRouter()

	body := `{
		"title":"Test Jacket",
		"shortDescription":"Short",
		"fullDescription":"Full",
		"price":1000,
		"category":"Jacket",
		"sizes":["M"],
		"colors":[{"name":"Black"}]
	}`
	w := postJSON(r, "/admin/products", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
