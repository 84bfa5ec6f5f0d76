package pdf

import (
	"bytes"
	"html/template"
	"strings"
	"time"
)

// CompanyInfo is the brand block printed at the top of every document
type CompanyInfo struct {
	Name    string
	Tagline string
	Address string
	Phone   string
	Email   string
	GSTIN   string
}

// PartyInfo identifies the client the document is addressed to
type PartyInfo struct {
	Name    string
	Company string
	Address string
	Email   string
	Phone   string
	GSTIN   string
}

// InvoiceLine is one row of the invoice items table
type InvoiceLine struct {
	Description string
	Quantity    int
	Rate        float64
	Amount      float64
}

// InvoicePayload aggregates invoice data for PDF rendering
type InvoicePayload struct {
	Company   CompanyInfo
	Client    PartyInfo
	Number    string
	Status    string
	IssueDate time.Time
	DueDate   time.Time
	Lines     []InvoiceLine
	Subtotal  float64
	CGST      float64
	SGST      float64
	IGST      float64
	Total     float64
	Notes     string
}

// QuotationLine is one row of the quotation items table
type QuotationLine struct {
	Product     string
	Description string
	Quantity    int
	UnitPrice   float64
	Total       float64
}

// QuotationPayload aggregates quotation data for PDF rendering
type QuotationPayload struct {
	Company    CompanyInfo
	Client     PartyInfo
	Number     string
	Status     string
	ValidUntil time.Time
	Lines      []QuotationLine
	Subtotal   float64
	Tax        float64
	Discount   float64
	Total      float64
	Terms      string
	Notes      string
}

// AgreementPayload aggregates agreement data for PDF rendering
type AgreementPayload struct {
	Company          CompanyInfo
	Client           PartyInfo
	Number           string
	Title            string
	Type             string
	Status           string
	StartDate        time.Time
	EndDate          time.Time
	Value            float64
	Terms            []string
	SignatoryClient  string
	SignatoryCompany string
	SignedDate       *time.Time
}

var templateFuncs = template.FuncMap{
	"inr": FormatINR,
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("January 2, 2006")
	},
	"formatDatePtr": func(t *time.Time) string {
		if t == nil || t.IsZero() {
			return ""
		}
		return t.Format("January 2, 2006")
	},
	"now": func() string {
		return time.Now().Format("January 2, 2006")
	},
	"upper": strings.ToUpper,
}

var (
	invoiceTpl   = template.Must(template.New("invoice").Funcs(templateFuncs).Parse(invoiceHTML))
	quotationTpl = template.Must(template.New("quotation").Funcs(templateFuncs).Parse(quotationHTML))
	agreementTpl = template.Must(template.New("agreement").Funcs(templateFuncs).Parse(agreementHTML))
)

func buildInvoiceHTML(payload InvoicePayload) (string, error) {
	buf := &bytes.Buffer{}
	if err := invoiceTpl.Execute(buf, payload); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buildQuotationHTML(payload QuotationPayload) (string, error) {
	buf := &bytes.Buffer{}
	if err := quotationTpl.Execute(buf, payload); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buildAgreementHTML(payload AgreementPayload) (string, error) {
	buf := &bytes.Buffer{}
	if err := agreementTpl.Execute(buf, payload); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const baseStyle = `
<style>
  body { font-family: Helvetica, Arial, sans-serif; font-size: 11px; color: #1a1a1a; margin: 0; }
  .header { border-bottom: 2px solid #1a1a1a; padding-bottom: 12px; margin-bottom: 20px; }
  .brand { font-size: 24px; font-weight: bold; letter-spacing: 2px; }
  .tagline { font-size: 10px; color: #666; letter-spacing: 4px; }
  .company-meta { font-size: 9px; color: #666; margin-top: 6px; }
  .doc-title { font-size: 16px; font-weight: bold; margin: 16px 0 4px; }
  .details { width: 100%; margin-bottom: 16px; }
  .details td { vertical-align: top; padding: 2px 0; }
  .items { width: 100%; border-collapse: collapse; margin-bottom: 16px; }
  .items th { background: #f0f0f0; text-align: left; padding: 6px; border-bottom: 1px solid #999; }
  .items td { padding: 6px; border-bottom: 1px solid #e0e0e0; }
  .items .num { text-align: right; }
  .summary { width: 260px; margin-left: auto; }
  .summary td { padding: 3px 0; }
  .summary .num { text-align: right; }
  .summary .total td { border-top: 1px solid #1a1a1a; font-weight: bold; padding-top: 6px; }
  .notes { margin-top: 20px; font-size: 10px; color: #444; }
  .footer { margin-top: 32px; font-size: 9px; color: #999; text-align: center; }
</style>
`

const invoiceHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8">` + baseStyle + `</head>
<body>
  <div class="header">
    <div class="brand">{{.Company.Name}}</div>
    <div class="tagline">{{.Company.Tagline}}</div>
    <div class="company-meta">
      {{.Company.Address}}
      {{if .Company.Phone}} | {{.Company.Phone}}{{end}}
      {{if .Company.Email}} | {{.Company.Email}}{{end}}
      {{if .Company.GSTIN}} | GSTIN: {{.Company.GSTIN}}{{end}}
    </div>
  </div>

  <div class="doc-title">INVOICE {{.Number}}</div>

  <table class="details">
    <tr>
      <td>
        <strong>Bill To</strong><br>
        {{.Client.Name}}<br>
        {{if .Client.Company}}{{.Client.Company}}<br>{{end}}
        {{if .Client.Address}}{{.Client.Address}}<br>{{end}}
        {{if .Client.GSTIN}}GSTIN: {{.Client.GSTIN}}{{end}}
      </td>
      <td style="text-align:right">
        Issue Date: {{formatDate .IssueDate}}<br>
        Due Date: {{formatDate .DueDate}}<br>
        Status: {{upper .Status}}
      </td>
    </tr>
  </table>

  <table class="items">
    <tr><th>Description</th><th class="num">Qty</th><th class="num">Rate</th><th class="num">Amount</th></tr>
    {{range .Lines}}
    <tr>
      <td>{{.Description}}</td>
      <td class="num">{{.Quantity}}</td>
      <td class="num">{{inr .Rate}}</td>
      <td class="num">{{inr .Amount}}</td>
    </tr>
    {{end}}
  </table>

  <table class="summary">
    <tr><td>Subtotal</td><td class="num">{{inr .Subtotal}}</td></tr>
    {{if gt .CGST 0.0}}
    <tr><td>CGST</td><td class="num">{{inr .CGST}}</td></tr>
    <tr><td>SGST</td><td class="num">{{inr .SGST}}</td></tr>
    {{end}}
    {{if gt .IGST 0.0}}
    <tr><td>IGST</td><td class="num">{{inr .IGST}}</td></tr>
    {{end}}
    <tr class="total"><td>Total</td><td class="num">{{inr .Total}}</td></tr>
  </table>

  {{if .Notes}}<div class="notes"><strong>Notes</strong><br>{{.Notes}}</div>{{end}}

  <div class="footer">Generated on {{now}}</div>
</body>
</html>`

const quotationHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8">` + baseStyle + `</head>
<body>
  <div class="header">
    <div class="brand">{{.Company.Name}}</div>
    <div class="tagline">{{.Company.Tagline}}</div>
    <div class="company-meta">
      {{.Company.Address}}
      {{if .Company.Phone}} | {{.Company.Phone}}{{end}}
      {{if .Company.Email}} | {{.Company.Email}}{{end}}
    </div>
  </div>

  <div class="doc-title">QUOTATION {{.Number}}</div>

  <table class="details">
    <tr>
      <td>
        <strong>Prepared For</strong><br>
        {{.Client.Name}}<br>
        {{if .Client.Company}}{{.Client.Company}}<br>{{end}}
        {{if .Client.Address}}{{.Client.Address}}{{end}}
      </td>
      <td style="text-align:right">
        Valid Until: {{formatDate .ValidUntil}}<br>
        Status: {{upper .Status}}
      </td>
    </tr>
  </table>

  <table class="items">
    <tr><th>Product</th><th>Description</th><th class="num">Qty</th><th class="num">Unit Price</th><th class="num">Total</th></tr>
    {{range .Lines}}
    <tr>
      <td>{{.Product}}</td>
      <td>{{.Description}}</td>
      <td class="num">{{.Quantity}}</td>
      <td class="num">{{inr .UnitPrice}}</td>
      <td class="num">{{inr .Total}}</td>
    </tr>
    {{end}}
  </table>

  <table class="summary">
    <tr><td>Subtotal</td><td class="num">{{inr .Subtotal}}</td></tr>
    {{if gt .Tax 0.0}}<tr><td>Tax</td><td class="num">{{inr .Tax}}</td></tr>{{end}}
    {{if gt .Discount 0.0}}<tr><td>Discount</td><td class="num">-{{inr .Discount}}</td></tr>{{end}}
    <tr class="total"><td>Total</td><td class="num">{{inr .Total}}</td></tr>
  </table>

  {{if .Terms}}<div class="notes"><strong>Terms</strong><br>{{.Terms}}</div>{{end}}
  {{if .Notes}}<div class="notes"><strong>Notes</strong><br>{{.Notes}}</div>{{end}}

  <div class="footer">Generated on {{now}}</div>
</body>
</html>`

const agreementHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8">` + baseStyle + `</head>
<body>
  <div class="header">
    <div class="brand">{{.Company.Name}}</div>
    <div class="tagline">{{.Company.Tagline}}</div>
    <div class="company-meta">{{.Company.Address}}</div>
  </div>

  <div class="doc-title">{{upper .Type}} AGREEMENT {{.Number}}</div>
  <div style="font-size:13px;margin-bottom:12px">{{.Title}}</div>

  <table class="details">
    <tr>
      <td>
        <strong>Between</strong><br>
        {{.Company.Name}}<br>
        <strong>And</strong><br>
        {{.Client.Name}}{{if .Client.Company}}, {{.Client.Company}}{{end}}
      </td>
      <td style="text-align:right">
        Start Date: {{formatDate .StartDate}}<br>
        End Date: {{formatDate .EndDate}}<br>
        Value: {{inr .Value}}<br>
        Status: {{upper .Status}}
      </td>
    </tr>
  </table>

  {{if .Terms}}
  <div class="notes">
    <strong>Terms and Conditions</strong>
    <ol>
      {{range .Terms}}<li>{{.}}</li>{{end}}
    </ol>
  </div>
  {{end}}

  <table class="details" style="margin-top:48px">
    <tr>
      <td>
        ___________________________<br>
        {{if .SignatoryCompany}}{{.SignatoryCompany}}{{else}}{{.Company.Name}}{{end}}
      </td>
      <td style="text-align:right">
        ___________________________<br>
        {{if .SignatoryClient}}{{.SignatoryClient}}{{else}}{{.Client.Name}}{{end}}
        {{if .SignedDate}}<br>Signed: {{formatDatePtr .SignedDate}}{{end}}
      </td>
    </tr>
  </table>

  <div class="footer">Generated on {{now}}</div>
</body>
</html>`
