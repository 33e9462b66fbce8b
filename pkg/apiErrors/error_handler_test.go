package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{code: ErrRouteNotFound, want: http.StatusNotFound},
		{code: ErrMethodNotAllowed, want: http.StatusMethodNotAllowed},
		{code: ErrInvalidFormat, want: http.StatusBadRequest},
		{code: ErrComparisonNotFound, want: http.StatusNotFound},
		{code: ErrExpiredToken, want: http.StatusUnauthorized},
		{code: ErrTooManyRequests, want: http.StatusTooManyRequests},
		{code: "XYZ_999", want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.code))
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrRouteNotFound, "Rota não encontrada", map[string]string{"path": "/x"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrRouteNotFound, body.Code)
	assert.Equal(t, "Rota não encontrada", body.Message)
}
