package pdf

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderInvoicePostsMultipartForm(t *testing.T) {
	var gotPath string
	var gotFilename string
	var gotHTML string
	var gotPaperWidth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotPaperWidth = r.FormValue("paperWidth")

		file, header, err := r.FormFile("files")
		require.NoError(t, err)
		defer file.Close()
		gotFilename = header.Filename

		buf := make([]byte, header.Size)
		_, _ = file.Read(buf)
		gotHTML = string(buf)

		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4 fake"))
	}))
	defer server.Close()

	renderer := NewRenderer(server.URL, server.Client())

	data, err := renderer.RenderInvoice(context.Background(), InvoicePayload{
		Company: testCompany(),
		Client:  PartyInfo{Name: "Acme Traders"},
		Number:  "INV-000001",
		Status:  "draft",
	})

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake"), data)
	assert.Equal(t, "/forms/chromium/convert/html", gotPath)
	assert.Equal(t, "invoice.html", gotFilename)
	assert.Equal(t, "8.27", gotPaperWidth)
	assert.True(t, strings.Contains(gotHTML, "INV-000001"))
}

func TestRenderErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "chromium crashed", http.StatusInternalServerError)
	}))
	defer server.Close()

	renderer := NewRenderer(server.URL, server.Client())

	_, err := renderer.RenderQuotation(context.Background(), QuotationPayload{Number: "QT-000001"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "chromium crashed")
}

func TestRenderMissingEndpoint(t *testing.T) {
	renderer := NewRenderer("", nil)

	_, err := renderer.RenderAgreement(context.Background(), AgreementPayload{Number: "AGR-000001"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoint required")
}

func TestRenderTrimsTrailingSlash(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte("pdf"))
	}))
	defer server.Close()

	renderer := NewRenderer(server.URL+"/", server.Client())

	_, err := renderer.RenderInvoice(context.Background(), InvoicePayload{Number: "INV-000003"})

	require.NoError(t, err)
	assert.Equal(t, "/forms/chromium/convert/html", gotPath)
}
