package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gruhahomes/gruha-backend/errors"
	"github.com/gruhahomes/gruha-backend/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.IsTest = true
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func serve(t *testing.T, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/test", handler)

	req, _ := http.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestErrorHandler_ValidationError(t *testing.T) {
	w := serve(t, func(c *gin.Context) {
		_ = c.Error(errors.ValidationFailed("validation_failed", "email must not be blank"))
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(errors.ValidationError), resp["type"])
	assert.Equal(t, "422", resp["code"])
	// Validation detail is always included for the client.
	assert.Equal(t, "email must not be blank", resp["details"])
}

func TestErrorHandler_DatabaseError(t *testing.T) {
	w := serve(t, func(c *gin.Context) {
		_ = c.Error(errors.NewDatabaseError(assert.AnError))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(errors.DatabaseError), resp["type"])
	// Raw database detail must not leak.
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}

func TestErrorHandler_UnknownError(t *testing.T) {
	w := serve(t, func(c *gin.Context) {
		_ = c.Error(assert.AnError)
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(errors.ServerError), resp["type"])
	assert.Equal(t, "Internal Server Error", resp["message"])
}

func TestErrorHandler_NoError(t *testing.T) {
	w := serve(t, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok": true}`, w.Body.String())
}
