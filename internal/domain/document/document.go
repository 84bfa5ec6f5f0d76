package document

import (
	"fmt"
	"strings"
)

// Kind identifies one of the shareable document families. The string
// form is what appears in share URLs and API paths.
type Kind string

const (
	KindInvoice   Kind = "invoice"
	KindQuotation Kind = "quotation"
	KindAgreement Kind = "agreement"
)

// ParseKind validates a document kind from a URL segment
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(s)) {
	case KindInvoice:
		return KindInvoice, nil
	case KindQuotation:
		return KindQuotation, nil
	case KindAgreement:
		return KindAgreement, nil
	default:
		return "", fmt.Errorf("invalid document type: %s", s)
	}
}

// String returns the string representation of the kind
func (k Kind) String() string {
	return string(k)
}

// NumberPrefix returns the reference number prefix for the kind,
// e.g. INV-000042 for invoices.
func (k Kind) NumberPrefix() string {
	switch k {
	case KindInvoice:
		return "INV"
	case KindQuotation:
		return "QT"
	case KindAgreement:
		return "AGR"
	default:
		return "DOC"
	}
}

// FormatNumber renders a sequence value as a document number
func (k Kind) FormatNumber(n int) string {
	return fmt.Sprintf("%s-%06d", k.NumberPrefix(), n)
}

// DateFieldForStatus maps a terminal status transition to the date
// column stamped alongside it. A paid invoice records its payment date,
// an accepted quotation its acceptance date and a signed agreement its
// signing date, all in the same update as the status change.
func (k Kind) DateFieldForStatus(status string) (string, bool) {
	switch {
	case k == KindInvoice && status == "paid":
		return "payment_date", true
	case k == KindQuotation && status == "accepted":
		return "accepted_date", true
	case k == KindAgreement && status == "signed":
		return "signed_date", true
	}
	return "", false
}
