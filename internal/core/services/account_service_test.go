package services_test

import (
	"context"
	"testing"

	"github.com/jdvries-dev/boekhoud_app/internal/apperrors"
	"github.com/jdvries-dev/boekhoud_app/internal/core/domain"
	portssvc "github.com/jdvries-dev/boekhoud_app/internal/core/ports/services"
	"github.com/jdvries-dev/boekhoud_app/internal/core/services"
	"github.com/jdvries-dev/boekhoud_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockCompanyAuthorizer is a mock type for the CompanyAuthorizerSvc interface
type MockCompanyAuthorizer struct {
	mock.Mock
}

func (m *MockCompanyAuthorizer) AuthorizeCompanyAccess(ctx context.Context, tokenCompanyID, companyID string) error {
	args := m.Called(ctx, tokenCompanyID, companyID)
	return args.Error(0)
}

var _ portssvc.CompanyAuthorizerSvc = (*MockCompanyAuthorizer)(nil)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.AccountSvcFacade
	companyID       string
	userID          string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo)
	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:         "1000",
		Name:         "Bank",
		AccountType:  domain.Asset,
		TaxonomyCode: "BIVBan",
	}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(account domain.Account) bool {
		return account.CompanyID == suite.companyID &&
			account.Code == "1000" &&
			account.Name == "Bank" &&
			account.AccountType == domain.Asset &&
			account.IsActive &&
			account.CreatedBy == suite.userID
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, suite.companyID, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(account.AccountID)
	suite.Equal("BIVBan", account.TaxonomyCode)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Code: "1000", Name: "Bank", AccountType: domain.Asset}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Return(apperrors.ErrDuplicate).Once()

	account, err := suite.service.CreateAccount(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(account)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Forbidden() {
	ctx := context.Background()
	authorizer := new(MockCompanyAuthorizer)
	guarded := services.NewAccountService(suite.mockAccountRepo, services.WithAccountCompanyAuthorizer(authorizer))

	authorizer.On("AuthorizeCompanyAccess", ctx, "", suite.companyID).
		Return(apperrors.ErrForbidden).Once()

	account, err := guarded.CreateAccount(ctx, suite.companyID, dto.CreateAccountRequest{}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(account)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.companyID, accountID).
		Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, suite.companyID, accountID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(account)
}

func (suite *AccountServiceTestSuite) TestListAccounts_ClampsPagination() {
	ctx := context.Background()

	// Out-of-range values fall back to the defaults before hitting the repo.
	suite.mockAccountRepo.On("ListAccounts", ctx, suite.companyID, 50, 0).
		Return([]domain.Account{}, nil).Twice()

	_, err := suite.service.ListAccounts(ctx, suite.companyID, 0, -5)
	suite.Require().NoError(err)
	_, err = suite.service.ListAccounts(ctx, suite.companyID, 500, 0)
	suite.Require().NoError(err)

	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_AppliesOnlyProvidedFields() {
	ctx := context.Background()
	accountID := uuid.NewString()
	existing := &domain.Account{
		AccountID:   accountID,
		CompanyID:   suite.companyID,
		Code:        "0800",
		Name:        "Eigen vermogen",
		AccountType: domain.Equity,
	}
	newName := "Kapitaal"
	privateRole := domain.RolePrivate

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.companyID, accountID).
		Return(existing, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(account domain.Account) bool {
		return account.Name == newName &&
			account.Role == privateRole &&
			account.TaxonomyCode == "" &&
			account.LastUpdatedBy == suite.userID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, suite.companyID, accountID, dto.UpdateAccountRequest{
		Name: &newName,
		Role: &privateRole,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.Equal("0800", updated.Code, "code is not editable")
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_Success() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockAccountRepo.On("DeactivateAccount", ctx, suite.companyID, accountID, suite.userID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.service.DeactivateAccount(ctx, suite.companyID, accountID, suite.userID)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
