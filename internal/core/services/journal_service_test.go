package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/jdvries-dev/boekhoud_app/internal/apperrors"
	"github.com/jdvries-dev/boekhoud_app/internal/core/domain"
	portssvc "github.com/jdvries-dev/boekhoud_app/internal/core/ports/services"
	"github.com/jdvries-dev/boekhoud_app/internal/core/services"
	"github.com/jdvries-dev/boekhoud_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.JournalSvcFacade
	companyID       string
	userID          string
	bankID          string
	omzetID         string
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockAccountRepo)
	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.bankID = uuid.NewString()
	suite.omzetID = uuid.NewString()
}

func (suite *JournalServiceTestSuite) activeAccounts() map[string]domain.Account {
	return map[string]domain.Account{
		suite.bankID:  {AccountID: suite.bankID, Code: "1000", AccountType: domain.Asset, IsActive: true},
		suite.omzetID: {AccountID: suite.omzetID, Code: "8000", AccountType: domain.Revenue, IsActive: true},
	}
}

func (suite *JournalServiceTestSuite) balancedRequest() dto.CreateJournalEntryRequest {
	return dto.CreateJournalEntryRequest{
		EntryDate:   day(2024, time.March, 15),
		Description: "Kasverkoop",
		Lines: []dto.CreateJournalLineRequest{
			{AccountID: suite.bankID, Debit: dec("121.00")},
			{AccountID: suite.omzetID, Credit: dec("121.00")},
		},
	}
}

func (suite *JournalServiceTestSuite) TestCreateEntry_Success() {
	ctx := context.Background()
	req := suite.balancedRequest()

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, suite.companyID, []string{suite.bankID, suite.omzetID}).
		Return(suite.activeAccounts(), nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx,
		mock.MatchedBy(func(entry domain.JournalEntry) bool {
			return entry.CompanyID == suite.companyID &&
				entry.Status == domain.Draft &&
				entry.CreatedBy == suite.userID
		}),
		mock.MatchedBy(func(lines []domain.JournalLine) bool {
			return len(lines) == 2 && lines[0].AccountID == suite.bankID
		})).Return(nil).Once()

	created, err := suite.service.CreateEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.Draft, created.Entry.Status)
	suite.Len(created.Lines, 2)
	suite.True(created.Lines[0].Debit.Equal(dec("121.00")))
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateEntry_RoundsLineAmounts() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		EntryDate: day(2024, time.March, 15),
		Lines: []dto.CreateJournalLineRequest{
			{AccountID: suite.bankID, Debit: dec("10.005")},
			{AccountID: suite.omzetID, Credit: dec("10.005")},
		},
	}

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, suite.companyID, mock.Anything).
		Return(suite.activeAccounts(), nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.Anything, mock.Anything).Return(nil).Once()

	created, err := suite.service.CreateEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.True(created.Lines[0].Debit.Equal(dec("10.01")), "amounts stored at two decimals")
	suite.True(created.Lines[1].Credit.Equal(dec("10.01")))
}

func (suite *JournalServiceTestSuite) TestCreateEntry_TooFewLines() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		EntryDate: day(2024, time.March, 15),
		Lines: []dto.CreateJournalLineRequest{
			{AccountID: suite.bankID, Debit: dec("10.00")},
		},
	}

	created, err := suite.service.CreateEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_RejectsInvalidLineSides() {
	ctx := context.Background()

	cases := []struct {
		name string
		line dto.CreateJournalLineRequest
	}{
		{"negative debit", dto.CreateJournalLineRequest{AccountID: suite.bankID, Debit: dec("-5.00")}},
		{"both sides positive", dto.CreateJournalLineRequest{AccountID: suite.bankID, Debit: dec("5.00"), Credit: dec("5.00")}},
		{"both sides zero", dto.CreateJournalLineRequest{AccountID: suite.bankID}},
	}

	for _, testCase := range cases {
		suite.Run(testCase.name, func() {
			req := dto.CreateJournalEntryRequest{
				EntryDate: day(2024, time.March, 15),
				Lines: []dto.CreateJournalLineRequest{
					testCase.line,
					{AccountID: suite.omzetID, Credit: dec("5.00")},
				},
			}

			created, err := suite.service.CreateEntry(ctx, suite.companyID, req, suite.userID)

			suite.Require().Error(err)
			suite.ErrorIs(err, apperrors.ErrValidation)
			suite.Nil(created)
		})
	}
}

func (suite *JournalServiceTestSuite) TestCreateEntry_InactiveAccountRejected() {
	ctx := context.Background()
	req := suite.balancedRequest()

	accounts := suite.activeAccounts()
	inactive := accounts[suite.omzetID]
	inactive.IsActive = false
	accounts[suite.omzetID] = inactive

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, suite.companyID, mock.Anything).
		Return(accounts, nil).Once()

	created, err := suite.service.CreateEntry(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAccountNotFound)
	suite.Contains(err.Error(), suite.omzetID)
	suite.Nil(created)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) draftEntry(entryID string, lines []domain.JournalLine) *domain.EntryWithLines {
	return &domain.EntryWithLines{
		Entry: domain.JournalEntry{
			EntryID:   entryID,
			CompanyID: suite.companyID,
			EntryDate: day(2024, time.March, 15),
			Status:    domain.Draft,
		},
		Lines: lines,
	}
}

func (suite *JournalServiceTestSuite) TestFinalizeEntry_Success() {
	ctx := context.Background()
	entryID := uuid.NewString()
	entry := suite.draftEntry(entryID, []domain.JournalLine{
		{AccountID: suite.bankID, Debit: dec("121.00")},
		{AccountID: suite.omzetID, Credit: dec("121.00")},
	})

	suite.mockJournalRepo.On("FindEntryByID", ctx, suite.companyID, entryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("FinalizeEntry", ctx, suite.companyID, entryID, suite.userID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	finalized, err := suite.service.FinalizeEntry(ctx, suite.companyID, entryID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.Final, finalized.Entry.Status)
	suite.Equal(suite.userID, finalized.Entry.LastUpdatedBy)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestFinalizeEntry_Unbalanced() {
	ctx := context.Background()
	entryID := uuid.NewString()
	entry := suite.draftEntry(entryID, []domain.JournalLine{
		{AccountID: suite.bankID, Debit: dec("100.00")},
		{AccountID: suite.omzetID, Credit: dec("99.99")},
	})

	suite.mockJournalRepo.On("FindEntryByID", ctx, suite.companyID, entryID).Return(entry, nil).Once()

	finalized, err := suite.service.FinalizeEntry(ctx, suite.companyID, entryID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrEntryUnbalanced)
	suite.Nil(finalized)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "FinalizeEntry",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestFinalizeEntry_NotDraft() {
	ctx := context.Background()
	entryID := uuid.NewString()
	entry := suite.draftEntry(entryID, []domain.JournalLine{
		{AccountID: suite.bankID, Debit: dec("100.00")},
		{AccountID: suite.omzetID, Credit: dec("100.00")},
	})
	entry.Entry.Status = domain.Final

	suite.mockJournalRepo.On("FindEntryByID", ctx, suite.companyID, entryID).Return(entry, nil).Once()

	finalized, err := suite.service.FinalizeEntry(ctx, suite.companyID, entryID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrEntryNotDraft)
	suite.Nil(finalized)
}

func (suite *JournalServiceTestSuite) TestFinalizeEntry_TooFewLines() {
	ctx := context.Background()
	entryID := uuid.NewString()
	entry := suite.draftEntry(entryID, []domain.JournalLine{
		{AccountID: suite.bankID, Debit: dec("100.00")},
	})

	suite.mockJournalRepo.On("FindEntryByID", ctx, suite.companyID, entryID).Return(entry, nil).Once()

	finalized, err := suite.service.FinalizeEntry(ctx, suite.companyID, entryID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrEntryMinLines)
	suite.Nil(finalized)
}

func (suite *JournalServiceTestSuite) TestListEntries_RepoError() {
	ctx := context.Background()

	suite.mockJournalRepo.On("ListEntries", ctx, suite.companyID, 50, 0).
		Return(nil, assert.AnError).Once()

	entries, err := suite.service.ListEntries(ctx, suite.companyID, 50, 0)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
	suite.Nil(entries)
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
