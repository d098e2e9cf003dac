package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customError "github.com/segyhp/affordability-engine/pkg/errors"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
		expectedField  string
	}{
		{
			name:           "validation error",
			err:            customError.WrapValidationError("deposit_percent", "must be at most 100"),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   customError.ErrCodeValidation,
			expectedField:  "deposit_percent",
		},
		{
			name:           "not found",
			err:            customError.WrapCalculationNotFound("abc"),
			expectedStatus: http.StatusNotFound,
			expectedCode:   customError.ErrCodeCalculationNotFound,
		},
		{
			name:           "database error",
			err:            customError.WrapDatabaseError(errors.New("boom")),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   customError.ErrCodeDatabaseError,
		},
		{
			name:           "plain error",
			err:            errors.New("unexpected"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			FromError(w, tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.expectedCode, body.Code)
			assert.Equal(t, tt.expectedField, body.Field)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestSuccessAndCreated(t *testing.T) {
	w := httptest.NewRecorder()
	Created(w, map[string]int{"max_property_price": 675847})

	assert.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Success bool           `json:"success"`
		Data    map[string]int `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 675847, body.Data["max_property_price"])

	w = httptest.NewRecorder()
	ServiceUnavailable(w, map[string]string{"status": "error"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := LoggingMiddleware(CORSMiddleware(next))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/v1/affordability", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
