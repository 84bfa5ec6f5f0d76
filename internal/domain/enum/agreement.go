package enum

// AgreementType classifies an agreement
type AgreementType string

const (
	AgreementTypeNDA         AgreementType = "nda"
	AgreementTypeSales       AgreementType = "sales"
	AgreementTypeService     AgreementType = "service"
	AgreementTypePartnership AgreementType = "partnership"
	AgreementTypeSupply      AgreementType = "supply"
)

// Valid reports whether the type is a known agreement type
func (t AgreementType) Valid() bool {
	switch t {
	case AgreementTypeNDA, AgreementTypeSales, AgreementTypeService, AgreementTypePartnership, AgreementTypeSupply:
		return true
	}
	return false
}

func (t AgreementType) String() string {
	return string(t)
}

// AgreementStatus represents the lifecycle status of an agreement
type AgreementStatus string

const (
	AgreementStatusDraft            AgreementStatus = "draft"
	AgreementStatusPendingSignature AgreementStatus = "pending_signature"
	AgreementStatusSigned           AgreementStatus = "signed"
	AgreementStatusExpired          AgreementStatus = "expired"
	AgreementStatusTerminated       AgreementStatus = "terminated"
)

// Valid reports whether the status is a known agreement status
func (s AgreementStatus) Valid() bool {
	switch s {
	case AgreementStatusDraft, AgreementStatusPendingSignature, AgreementStatusSigned, AgreementStatusExpired, AgreementStatusTerminated:
		return true
	}
	return false
}

func (s AgreementStatus) String() string {
	return string(s)
}
