package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func respond(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	RespondError(c, err)
	return w
}

func TestRespondErrorClientFault(t *testing.T) {
	w := respond(NewAppError("Cart not found", http.StatusNotFound))

	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"status":"fail","message":"Cart not found"}`, w.Body.String())
}

func TestRespondErrorWrappedAppError(t *testing.T) {
	wrapped := fmt.Errorf("purchase: %w", NewAppError("The quantity is greater than available", http.StatusBadRequest))
	w := respond(wrapped)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "The quantity is greater than available")
}

func TestRespondErrorUnknownErrorHidesDetails(t *testing.T) {
	w := respond(errors.New("pq: connection refused"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"status":"error","message":"Something went wrong"}`, w.Body.String())
	require.NotContains(t, w.Body.String(), "connection refused")
}
