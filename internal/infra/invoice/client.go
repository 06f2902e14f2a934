package invoice

import (
	"context"
	"net/http"
	"strings"

	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/config"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/pkg/errs"
	"github.com/yusufKemalPinarci/ticaret-sub000/internal/usecase/commands"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("github.com/yusufKemalPinarci/ticaret-sub000/internal/infra/invoice")

type lineBody struct {
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	TaxCents       int64  `json:"tax_cents"`
}

type buyerBody struct {
	Email       string `json:"email"`
	Type        string `json:"type"`
	TaxNumber   string `json:"tax_number,omitempty"`
	TaxOffice   string `json:"tax_office,omitempty"`
	NationalID  string `json:"national_id,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
}

type invoiceBody struct {
	OrderID       string     `json:"order_id"`
	OrderNumber   string     `json:"order_number"`
	Currency      string     `json:"currency"`
	Buyer         buyerBody  `json:"buyer"`
	Lines         []lineBody `json:"lines"`
	SubtotalCents int64      `json:"subtotal_cents"`
	ShippingCents int64      `json:"shipping_cents"`
	TaxCents      int64      `json:"tax_cents"`
	DiscountCents int64      `json:"discount_cents"`
	TotalCents    int64      `json:"total_cents"`
}

type invoiceResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Client posts invoices to an external e-invoice service and returns the
// URL of the issued document.
type Client struct {
	http *resty.Client
}

func NewClient(cfg config.InvoiceConfig) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	if cfg.APIKey != "" {
		c.SetAuthToken(cfg.APIKey)
	}
	return &Client{http: c}
}

func (c *Client) Generate(ctx context.Context, req commands.InvoiceRequest) (url string, err error) {
	ctx, span := tracer.Start(ctx, "invoice.Generate")
	span.SetAttributes(attribute.String("order.id", req.OrderID.String()))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	lines := make([]lineBody, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = lineBody(l)
	}
	body := invoiceBody{
		OrderID:     req.OrderID.String(),
		OrderNumber: req.OrderNumber,
		Currency:    strings.ToUpper(req.Currency),
		Buyer: buyerBody{
			Email:       req.BuyerEmail,
			Type:        req.BuyerType,
			TaxNumber:   req.TaxNumber,
			TaxOffice:   req.TaxOffice,
			NationalID:  req.NationalID,
			CompanyName: req.CompanyName,
		},
		Lines:         lines,
		SubtotalCents: req.SubtotalCents,
		ShippingCents: req.ShippingCents,
		TaxCents:      req.TaxCents,
		DiscountCents: req.DiscountCents,
		TotalCents:    req.TotalCents,
	}

	var out invoiceResponse
	var apiErr errorResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Idempotency-Key", "invoice-"+req.OrderID.String()).
		SetBody(body).
		SetResult(&out).
		SetError(&apiErr).
		Post("/v1/invoices")
	if err != nil {
		return "", errs.Wrap(err, "invoice request")
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode()))
	if resp.IsError() {
		msg := apiErr.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode())
		}
		return "", errs.Newf("invoice service returned %d: %s", resp.StatusCode(), msg)
	}
	if out.URL == "" {
		return "", errs.New("invoice service returned no url")
	}
	return out.URL, nil
}
