package dto

import "encoding/xml"

// XafNamespace is the namespace/version identifier of the target statutory
// audit schema.
const XafNamespace = "http://www.auditfiles.nl/XAF/3.2"

// Auditfile is the root of the fiscal-year audit document. Section order is
// fixed by the schema; all sections are emitted even when empty.
type Auditfile struct {
	XMLName       xml.Name         `xml:"auditfile"`
	Xmlns         string           `xml:"xmlns,attr"`
	Header        AuditfileHeader  `xml:"header"`
	Company       AuditfileCompany `xml:"company"`
	GeneralLedger GeneralLedger    `xml:"generalLedger"`
	Transactions  Transactions     `xml:"transactions"`
}

// AuditfileHeader identifies the fiscal period and the generating software.
type AuditfileHeader struct {
	FiscalYear      string `xml:"fiscalYear"`
	StartDate       string `xml:"startDate"`
	EndDate         string `xml:"endDate"`
	CurCode         string `xml:"curCode"`
	DateCreated     string `xml:"dateCreated"`
	SoftwareDesc    string `xml:"softwareDesc"`
	SoftwareVersion string `xml:"softwareVersion"`
}

// AuditfileCompany identifies the administration being exported.
type AuditfileCompany struct {
	CompanyName            string `xml:"companyName"`
	TaxRegistrationCountry string `xml:"taxRegistrationCountry"`
	TaxRegIdent            string `xml:"taxRegIdent"`
}

// GeneralLedger lists the active chart of accounts, ordered by account code.
type GeneralLedger struct {
	Accounts []LedgerAccount `xml:"ledgerAccount"`
}

// LedgerAccount is one chart-of-accounts entry. LeadCode is always present,
// as an empty element when the account has no taxonomy code. The two opening
// balance entries are never netted into one signed figure.
type LedgerAccount struct {
	AccID           string           `xml:"accID"`
	AccDesc         string           `xml:"accDesc"`
	AccTp           string           `xml:"accTp"`
	LeadCode        string           `xml:"leadCode"`
	OpeningBalances []OpeningBalance `xml:"openingBalance"`
}

// OpeningBalance is one side of an account's pre-period position.
type OpeningBalance struct {
	AmntTp string `xml:"amntTp"` // "D" or "C"
	Amnt   string `xml:"amnt"`   // fixed-point, two decimals
}

// Transactions lists the fiscal year's final journal entries.
type Transactions struct {
	Entries []AuditTransaction `xml:"transaction"`
}

// AuditTransaction is one journal entry in the export.
type AuditTransaction struct {
	Nr           string             `xml:"nr"` // truncated entry identifier
	Desc         string             `xml:"desc"`
	PeriodNumber int                `xml:"periodNumber"` // calendar month
	TrDt         string             `xml:"trDt"`
	TrTp         string             `xml:"trTp"`
	Lines        []AuditTransactionLine `xml:"trLine"`
}

// AuditTransactionLine carries exactly one of the debit/credit sides.
type AuditTransactionLine struct {
	AccID  string `xml:"accID"`
	Desc   string `xml:"desc"`
	Amnt   string `xml:"amnt"`
	AmntTp string `xml:"amntTp"` // "D" or "C"
}
