package domain

// Company represents an administration (one set of books). All queries are
// explicitly company-scoped; there is no ambient "current company".
type Company struct {
	CompanyID string `json:"companyID"` // Primary key (UUID)
	Name      string `json:"name"`
	VatNumber string `json:"vatNumber"` // BTW-id, embedded in the audit export
	CocNumber string `json:"cocNumber"` // KvK registration number
	IsActive  bool   `json:"isActive"`
	AuditFields
}
