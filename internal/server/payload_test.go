package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, body string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/invoices", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestDecodeCreateInvoice(t *testing.T) {
	t.Run("valid body decodes", func(t *testing.T) {
		c := decodeBody(t, validInvoiceBody)

		req, err := decodeCreateInvoice(c)
		require.NoError(t, err)
		assert.Equal(t, 42, req.VehicleID)
		assert.Equal(t, "INV-1001", req.InvoiceNumber)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), req.InvoiceDate)
		require.Len(t, req.Lines, 2)
		require.NotNil(t, req.Lines[0].PartNumber)
		assert.Equal(t, "BRK-2210", *req.Lines[0].PartNumber)
		assert.Nil(t, req.Lines[1].PartNumber)
	})

	t.Run("free-text categories canonicalize", func(t *testing.T) {
		body := strings.Replace(validInvoiceBody, `"category": "labour"`, `"category": "sales tax"`, 1)
		c := decodeBody(t, body)

		req, err := decodeCreateInvoice(c)
		require.NoError(t, err)
		assert.Equal(t, "Tax", req.Lines[1].Category)
	})

	t.Run("unknown category passes through unchanged", func(t *testing.T) {
		body := strings.Replace(validInvoiceBody, `"category": "labour"`, `"category": "undercoating"`, 1)
		c := decodeBody(t, body)

		req, err := decodeCreateInvoice(c)
		require.NoError(t, err)
		assert.Equal(t, "undercoating", req.Lines[1].Category)
	})

	t.Run("schema violations return bad request", func(t *testing.T) {
		cases := []struct {
			name string
			body string
		}{
			{"vehicle_id zero", strings.Replace(validInvoiceBody, `"vehicle_id": 42`, `"vehicle_id": 0`, 1)},
			{"negative unit cost", strings.Replace(validInvoiceBody, `"unit_cost": 60.00`, `"unit_cost": -1`, 1)},
			{"negative odometer", strings.Replace(validInvoiceBody, `"odometer": 88123`, `"odometer": -1`, 1)},
			{"empty invoice number", strings.Replace(validInvoiceBody, `"invoice_number": "INV-1001"`, `"invoice_number": ""`, 1)},
			{"lines not an array", strings.Replace(validInvoiceBody, `"lines": [`, `"lines": {"x": [`, 1)},
		}
		for _, tt := range cases {
			t.Run(tt.name, func(t *testing.T) {
				c := decodeBody(t, tt.body)
				_, err := decodeCreateInvoice(c)
				require.Error(t, err)
				var httpErr *echo.HTTPError
				require.ErrorAs(t, err, &httpErr)
				assert.Equal(t, http.StatusBadRequest, httpErr.Code)
			})
		}
	})
}
