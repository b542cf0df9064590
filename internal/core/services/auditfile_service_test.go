package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jdvries-dev/boekhoud_app/internal/core/domain"
	portssvc "github.com/jdvries-dev/boekhoud_app/internal/core/ports/services"
	"github.com/jdvries-dev/boekhoud_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/suite"
)

type AuditfileServiceTestSuite struct {
	suite.Suite
	mockLedger      *MockLedgerReportingSvc
	mockAccountRepo *MockAccountRepository
	mockCompanyRepo *MockCompanyRepository
	service         portssvc.AuditfileSvc
	companyID       string
	bankID          string
	omzetID         string
	company         *domain.Company
	accounts        []domain.Account
}

func (suite *AuditfileServiceTestSuite) SetupTest() {
	suite.mockLedger = new(MockLedgerReportingSvc)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.service = services.NewAuditfileService(suite.mockLedger, suite.mockAccountRepo, suite.mockCompanyRepo,
		services.WithClock(func() time.Time {
			return time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)
		}))

	suite.companyID = uuid.NewString()
	suite.bankID = uuid.NewString()
	suite.omzetID = uuid.NewString()
	suite.company = &domain.Company{
		CompanyID: suite.companyID,
		Name:      "Bakkerij 't Hoekje & Zn",
		VatNumber: "NL123456789B01",
	}
	suite.accounts = []domain.Account{
		{AccountID: suite.bankID, Code: "1000", Name: "Bank", AccountType: domain.Asset, TaxonomyCode: "BIVBan", IsActive: true},
		{AccountID: suite.omzetID, Code: "8000", Name: "Omzet hoog", AccountType: domain.Revenue, IsActive: true},
	}
}

func (suite *AuditfileServiceTestSuite) TestExportYear_Golden() {
	ctx := context.Background()
	period := domain.YearPeriod(2023)

	opening := map[string]domain.DebitCredit{
		suite.bankID: {Debit: dec("1250.00"), Credit: dec("250.00")},
	}
	entries := []domain.EntryWithLines{
		{
			Entry: domain.JournalEntry{
				EntryID:     "3f2a9c71-0000-0000-0000-000000000000",
				EntryDate:   day(2023, time.March, 15),
				Status:      domain.Final,
				Description: "Kasverkoop & contant",
			},
			Lines: []domain.JournalLine{
				{AccountID: suite.bankID, Debit: dec("121.00"), Description: "Verkoop <maart>"},
				{AccountID: suite.omzetID, Credit: dec("121.00")},
			},
		},
		{
			Entry: domain.JournalEntry{
				EntryID:       "abcdef1234567890",
				EntryDate:     day(2023, time.November, 2),
				Status:        domain.Final,
				Description:   "Bankafschrift",
				MemoriaalType: "bank",
			},
			Lines: []domain.JournalLine{
				{AccountID: suite.omzetID, Credit: dec("50.00")},
				{AccountID: suite.bankID, Debit: dec("50.00")},
			},
		},
		// Entries without lines are skipped entirely.
		{
			Entry: domain.JournalEntry{
				EntryID:   uuid.NewString(),
				EntryDate: day(2023, time.December, 1),
				Status:    domain.Final,
			},
		},
	}

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(suite.company, nil).Once()
	suite.mockAccountRepo.On("FindActiveAccounts", ctx, suite.companyID).Return(suite.accounts, nil).Once()
	suite.mockLedger.On("OpeningBalances", ctx, suite.companyID, period.Start).Return(opening, nil).Once()
	suite.mockLedger.On("TransactionsInPeriod", ctx, suite.companyID, period).Return(entries, nil).Once()

	document, filename, err := suite.service.ExportYear(ctx, suite.companyID, 2023)

	suite.Require().NoError(err)
	suite.Equal("auditfile_2023.xaf", filename)

	g := goldie.New(suite.T(), goldie.WithNameSuffix(".golden.xaf"))
	g.Assert(suite.T(), "auditfile_2023", document)

	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *AuditfileServiceTestSuite) TestExportYear_EmptyYearHasAllSections() {
	ctx := context.Background()
	period := domain.YearPeriod(2022)

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(suite.company, nil).Once()
	suite.mockAccountRepo.On("FindActiveAccounts", ctx, suite.companyID).Return([]domain.Account{}, nil).Once()
	suite.mockLedger.On("OpeningBalances", ctx, suite.companyID, period.Start).Return(map[string]domain.DebitCredit{}, nil).Once()
	suite.mockLedger.On("TransactionsInPeriod", ctx, suite.companyID, period).Return([]domain.EntryWithLines{}, nil).Once()

	document, filename, err := suite.service.ExportYear(ctx, suite.companyID, 2022)

	suite.Require().NoError(err)
	suite.Equal("auditfile_2022.xaf", filename)

	// A year without activity still produces the full section skeleton.
	text := string(document)
	suite.Contains(text, "<header>")
	suite.Contains(text, "<company>")
	suite.Contains(text, "<generalLedger></generalLedger>")
	suite.Contains(text, "<transactions></transactions>")

	g := goldie.New(suite.T(), goldie.WithNameSuffix(".golden.xaf"))
	g.Assert(suite.T(), "auditfile_2022_empty", document)
}

func (suite *AuditfileServiceTestSuite) TestExportYear_AccountsOrderedByCode() {
	ctx := context.Background()
	period := domain.YearPeriod(2023)

	// Handed over out of order; the export must sort by account code.
	unsorted := []domain.Account{suite.accounts[1], suite.accounts[0]}

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(suite.company, nil).Once()
	suite.mockAccountRepo.On("FindActiveAccounts", ctx, suite.companyID).Return(unsorted, nil).Once()
	suite.mockLedger.On("OpeningBalances", ctx, suite.companyID, period.Start).Return(map[string]domain.DebitCredit{}, nil).Once()
	suite.mockLedger.On("TransactionsInPeriod", ctx, suite.companyID, period).Return([]domain.EntryWithLines{}, nil).Once()

	document, _, err := suite.service.ExportYear(ctx, suite.companyID, 2023)

	suite.Require().NoError(err)
	text := string(document)
	suite.Less(strings.Index(text, "<accID>1000</accID>"), strings.Index(text, "<accID>8000</accID>"))
}

func (suite *AuditfileServiceTestSuite) TestExportYear_UnresolvedAccountLineDropped() {
	ctx := context.Background()
	period := domain.YearPeriod(2023)
	ghostID := uuid.NewString()

	entries := []domain.EntryWithLines{
		{
			Entry: domain.JournalEntry{
				EntryID:   "11112222-3333-4444-5555-666677778888",
				EntryDate: day(2023, time.July, 1),
				Status:    domain.Final,
			},
			Lines: []domain.JournalLine{
				{AccountID: suite.bankID, Debit: dec("10.00")},
				{LineID: uuid.NewString(), AccountID: ghostID, Credit: dec("10.00")},
			},
		},
	}

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(suite.company, nil).Once()
	suite.mockAccountRepo.On("FindActiveAccounts", ctx, suite.companyID).Return(suite.accounts, nil).Once()
	suite.mockLedger.On("OpeningBalances", ctx, suite.companyID, period.Start).Return(map[string]domain.DebitCredit{}, nil).Once()
	suite.mockLedger.On("TransactionsInPeriod", ctx, suite.companyID, period).Return(entries, nil).Once()

	document, _, err := suite.service.ExportYear(ctx, suite.companyID, 2023)

	suite.Require().NoError(err)
	text := string(document)
	suite.Contains(text, "<nr>11112222</nr>", "entry id truncated to eight characters")
	suite.Equal(1, strings.Count(text, "<trLine>"), "line with unresolved account dropped")
}

func (suite *AuditfileServiceTestSuite) TestExportYear_UnresolvedAccountFailPolicy() {
	ctx := context.Background()
	period := domain.YearPeriod(2023)
	ghostID := uuid.NewString()

	strict := services.NewAuditfileService(suite.mockLedger, suite.mockAccountRepo, suite.mockCompanyRepo,
		services.WithAuditfileMissingAccountPolicy(services.MissingAccountFail))

	entries := []domain.EntryWithLines{
		{
			Entry: domain.JournalEntry{EntryID: uuid.NewString(), EntryDate: day(2023, time.July, 1), Status: domain.Final},
			Lines: []domain.JournalLine{{LineID: uuid.NewString(), AccountID: ghostID, Credit: dec("10.00")}},
		},
	}

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, suite.companyID).Return(suite.company, nil).Once()
	suite.mockAccountRepo.On("FindActiveAccounts", ctx, suite.companyID).Return(suite.accounts, nil).Once()
	suite.mockLedger.On("OpeningBalances", ctx, suite.companyID, period.Start).Return(map[string]domain.DebitCredit{}, nil).Once()
	suite.mockLedger.On("TransactionsInPeriod", ctx, suite.companyID, period).Return(entries, nil).Once()

	document, _, err := strict.ExportYear(ctx, suite.companyID, 2023)

	suite.Require().Error(err)
	suite.Nil(document)
	suite.Contains(err.Error(), ghostID)
}

func TestAuditfileServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuditfileServiceTestSuite))
}
