package response

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	appErrors "orgboard/pkg/errors"
)

func record(t *testing.T, fn func(c *gin.Context)) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	fn(c)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestSuccess(t *testing.T) {
	w, body := record(t, func(c *gin.Context) {
		Success(c, http.StatusOK, gin.H{"id": 1})
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, true, body["success"])
	require.NotNil(t, body["data"])
	require.NotContains(t, body, "message")
}

func TestSuccessWithMessage(t *testing.T) {
	w, body := record(t, func(c *gin.Context) {
		SuccessWithMessage(c, http.StatusCreated, "Organization created successfully", gin.H{"id": 1})
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "Organization created successfully", body["message"])
}

func TestErrorWithAppError(t *testing.T) {
	w, body := record(t, func(c *gin.Context) {
		Error(c, appErrors.NewNotFound("Organization not found"))
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, false, body["success"])
	require.Equal(t, "Organization not found", body["message"])
	require.NotContains(t, body, "error")
}

func TestErrorExposesInternalOn500(t *testing.T) {
	w, body := record(t, func(c *gin.Context) {
		Error(c, appErrors.Wrap(stderrors.New("connection refused"), "Error fetching organizations"))
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "Error fetching organizations", body["message"])
	require.Equal(t, "connection refused", body["error"])
}

func TestErrorNil(t *testing.T) {
	w, body := record(t, func(c *gin.Context) {
		Error(c, nil)
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "Internal server error", body["message"])
}
