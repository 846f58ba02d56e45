package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pixoll/db-uni-project-api/internal/application/dto"
	"github.com/Pixoll/db-uni-project-api/internal/domain"
)

// respond ejecuta writeError(err) en una app mínima y devuelve status + cuerpo crudo.
func respond(t *testing.T, err error) (int, []byte) {
	t.Helper()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error { return writeError(c, err) })
	resp, terr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, terr)
	defer resp.Body.Close()
	var raw json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	return resp.StatusCode, raw
}

func TestWriteError_Sentinels(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{fmt.Errorf("%w: email inválido", domain.ErrInvalidInput), http.StatusBadRequest, "VALIDATION"},
		{domain.ErrDuplicate, http.StatusConflict, "DUPLICATE"},
		{domain.ErrInsufficientStock, http.StatusConflict, "INSUFFICIENT_STOCK"},
		{domain.ErrConflict, http.StatusConflict, "CONFLICT"},
		{domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			status, raw := respond(t, tc.err)
			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, body.Code)
			assert.Equal(t, tc.err.Error(), body.Message)
		})
	}
}

func TestWriteError_InternoNoFiltraDetalle(t *testing.T) {
	status, raw := respond(t, errors.New(`pq: relation "stock" does not exist`))

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", body.Code)
	assert.Equal(t, "error interno", body.Message)
}

func TestWriteError_SaleErrorDeCabecera(t *testing.T) {
	cases := []struct {
		code   domain.SaleErrorCode
		status int
	}{
		{domain.CodeCashierNotFound, http.StatusNotFound},
		{domain.CodeClientNotFound, http.StatusNotFound},
		{domain.CodeCashierInactive, http.StatusForbidden},
		{domain.CodeInvalidSaleType, http.StatusBadRequest},
		{domain.CodeEmptyLineSet, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(string(tc.code), func(t *testing.T) {
			status, raw := respond(t, &domain.SaleError{Code: tc.code, Index: domain.NoLine})
			var body dto.SaleErrorResponse
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, tc.status, status)
			assert.Equal(t, string(tc.code), body.Code)
			assert.Empty(t, body.Errors)
		})
	}
}

func TestWriteError_ValidationErrors(t *testing.T) {
	verrs := domain.ValidationErrors{
		{Code: domain.CodeInsufficientStock, Index: 1, SKU: 1001, Requested: 5, Available: 3},
		{Code: domain.CodeProductNotFound, Index: 2, SKU: 9},
	}

	status, raw := respond(t, fmt.Errorf("tx: %w", verrs))

	var body dto.SaleErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, http.StatusConflict, status, "el status sale de la primera falla")
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
	assert.Equal(t, "línea 2: se solicitaron 5 del producto 1001, solo hay 3 disponibles", body.Message)
	require.Len(t, body.Errors, 2)
	assert.Equal(t, 2, body.Errors[0].Line)
	require.NotNil(t, body.Errors[0].Available)
	assert.Equal(t, 3, *body.Errors[0].Available)
	assert.Equal(t, 3, body.Errors[1].Line)
	assert.Nil(t, body.Errors[1].Available)
}

func TestWriteError_StockAgotadoReportaCero(t *testing.T) {
	_, raw := respond(t, domain.ValidationErrors{
		{Code: domain.CodeInsufficientStock, Index: 0, SKU: 1001, Requested: 5, Available: 0},
	})

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	line := body["errors"].([]any)[0].(map[string]any)
	assert.Equal(t, float64(0), line["available"])
}
