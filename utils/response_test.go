package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdasifmahmuddev/banglabaari-server/apperr"
)

func record(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	handler(c)
	return w
}

func TestRespondEnvelope(t *testing.T) {
	w := record(func(c *gin.Context) {
		Respond(c, http.StatusOK, gin.H{"totalAmount": 1999})
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
	data := body["data"].(map[string]interface{})
	assert.EqualValues(t, 1999, data["totalAmount"])
}

func TestRespondMessageOmitsNilData(t *testing.T) {
	w := record(func(c *gin.Context) {
		RespondMessage(c, http.StatusOK, "done", nil)
	})

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "done", body["message"])
	_, hasData := body["data"]
	assert.False(t, hasData)
}

func TestErrorTranslatesTaxonomy(t *testing.T) {
	w := record(func(c *gin.Context) {
		Error(c, apperr.NotFound("Order not found"))
	})

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Order not found", body["message"])
}

func TestErrorHidesInternalDetail(t *testing.T) {
	w := record(func(c *gin.Context) {
		Error(c, errors.New("connection refused"))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.Contains(t, w.Body.String(), "Internal server error")
}
