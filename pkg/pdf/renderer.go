package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// Renderer converts document HTML to PDF through a Gotenberg instance.
type Renderer struct {
	Endpoint string
	Client   *http.Client
}

// NewRenderer creates a renderer pointed at a Gotenberg endpoint
func NewRenderer(endpoint string, client *http.Client) *Renderer {
	return &Renderer{
		Endpoint: endpoint,
		Client:   client,
	}
}

// RenderInvoice renders an invoice payload to PDF bytes
func (r *Renderer) RenderInvoice(ctx context.Context, payload InvoicePayload) ([]byte, error) {
	html, err := buildInvoiceHTML(payload)
	if err != nil {
		return nil, fmt.Errorf("render invoice template: %w", err)
	}
	return r.render(ctx, "invoice.html", html)
}

// RenderQuotation renders a quotation payload to PDF bytes
func (r *Renderer) RenderQuotation(ctx context.Context, payload QuotationPayload) ([]byte, error) {
	html, err := buildQuotationHTML(payload)
	if err != nil {
		return nil, fmt.Errorf("render quotation template: %w", err)
	}
	return r.render(ctx, "quotation.html", html)
}

// RenderAgreement renders an agreement payload to PDF bytes
func (r *Renderer) RenderAgreement(ctx context.Context, payload AgreementPayload) ([]byte, error) {
	html, err := buildAgreementHTML(payload)
	if err != nil {
		return nil, fmt.Errorf("render agreement template: %w", err)
	}
	return r.render(ctx, "agreement.html", html)
}

func (r *Renderer) render(ctx context.Context, filename, html string) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("pdf renderer not initialized")
	}
	endpoint := strings.TrimRight(r.Endpoint, "/")
	if endpoint == "" {
		return nil, fmt.Errorf("gotenberg endpoint required")
	}
	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("files", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.WriteString(part, html); err != nil {
		return nil, err
	}

	fields := map[string]string{
		"paperWidth":   "8.27",
		"paperHeight":  "11.69",
		"marginTop":    "0.4",
		"marginBottom": "0.4",
		"marginLeft":   "0.4",
		"marginRight":  "0.4",
		"waitDelay":    "100",
	}
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"/forms/chromium/convert/html", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("gotenberg response %d: %s", resp.StatusCode, string(data))
	}

	return io.ReadAll(resp.Body)
}

// Filename builds the download filename for a rendered document,
// e.g. Invoice-INV-000042.pdf
func Filename(docType, number string) string {
	return fmt.Sprintf("%s-%s.pdf", docType, number)
}
