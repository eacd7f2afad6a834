package utils_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripbuddy/pkg/utils"
)

func handleErr(t *testing.T, err error) (int, utils.APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Set("trace_id", "trace-123")

	utils.HandleServiceError(c, err)

	var body utils.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHandleServiceError_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"invalid input", fmt.Errorf("%w: budget too low", utils.ErrInvalidInput), http.StatusBadRequest},
		{"itinerary not found", utils.ErrItineraryNotFound, http.StatusNotFound},
		{"day not found", utils.ErrDayNotFound, http.StatusNotFound},
		{"assistant unavailable", fmt.Errorf("%w: openai: timeout", utils.ErrAssistantUnavailable), http.StatusServiceUnavailable},
		{"database error", utils.ErrDatabaseError, http.StatusInternalServerError},
		{"unknown error", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := handleErr(t, tc.err)
			assert.Equal(t, tc.code, code)
			assert.Equal(t, "error", body.Status)
			assert.Equal(t, tc.code, body.Code)
			assert.Equal(t, "trace-123", body.TraceID)
		})
	}
}

func TestHandleServiceError_InternalDetailsNotLeaked(t *testing.T) {
	_, body := handleErr(t, fmt.Errorf("%w: pq: connection refused", utils.ErrDatabaseError))
	assert.Equal(t, "Internal server error", body.Message)
}
