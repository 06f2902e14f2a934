//go:build unit

package invoice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/config"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRequest() commands.InvoiceRequest {
	return commands.InvoiceRequest{
		OrderID:     uuid.New(),
		OrderNumber: "ORD-1",
		Currency:    "try",
		BuyerEmail:  "buyer@example.com",
		BuyerType:   "individual",
		NationalID:  "10000000146",
		Lines: []commands.InvoiceLine{
			{Name: "Ceramic Mug", Quantity: 2, UnitPriceCents: 5000, TaxCents: 1399},
		},
		SubtotalCents: 10000,
		ShippingCents: 3990,
		TaxCents:      1399,
		TotalCents:    15389,
	}
}

func TestClient_Generate(t *testing.T) {
	req := sampleRequest()
	var got invoiceBody

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/invoices", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "invoice-"+req.OrderID.String(), r.Header.Get("Idempotency-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"inv_1","url":"https://invoices.example.com/inv_1.pdf"}`))
	}))
	defer srv.Close()

	c := NewClient(config.InvoiceConfig{BaseURL: srv.URL + "/", APIKey: "secret", Timeout: 2 * time.Second})

	url, err := c.Generate(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "https://invoices.example.com/inv_1.pdf", url)
	assert.Equal(t, "TRY", got.Currency)
	assert.Equal(t, "10000000146", got.Buyer.NationalID)
	assert.Equal(t, int64(15389), got.TotalCents)
	require.Len(t, got.Lines, 1)
	assert.Equal(t, 2, got.Lines[0].Quantity)
}

func TestClient_Generate_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{name: "service error with message", status: http.StatusUnprocessableEntity, body: `{"message":"tax number invalid"}`, wantMsg: "tax number invalid"},
		{name: "service error without body", status: http.StatusBadGateway, body: ``, wantMsg: "502"},
		{name: "missing url", status: http.StatusOK, body: `{"id":"inv_1"}`, wantMsg: "no url"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := NewClient(config.InvoiceConfig{BaseURL: srv.URL, Timeout: 2 * time.Second})

			_, err := c.Generate(context.Background(), sampleRequest())

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestClient_Generate_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := NewClient(config.InvoiceConfig{BaseURL: srv.URL, Timeout: 500 * time.Millisecond})

	_, err := c.Generate(context.Background(), sampleRequest())

	assert.Error(t, err)
}
