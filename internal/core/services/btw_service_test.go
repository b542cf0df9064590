package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/jdvries-dev/boekhoud_app/internal/apperrors"
	"github.com/jdvries-dev/boekhoud_app/internal/core/domain"
	portssvc "github.com/jdvries-dev/boekhoud_app/internal/core/ports/services"
	"github.com/jdvries-dev/boekhoud_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func salesInvoice(status domain.InvoiceStatus, net, vat, total string) domain.Invoice {
	return domain.Invoice{
		InvoiceID:   uuid.NewString(),
		Status:      status,
		NetAmount:   dec(net),
		VatAmount:   dec(vat),
		TotalAmount: dec(total),
	}
}

func TestComputeBtw_HighRateAggregate(t *testing.T) {
	sales := []domain.Invoice{
		salesInvoice(domain.InvoiceSent, "100.00", "21.00", "121.00"),
	}

	calc := services.ComputeBtw(sales, nil)

	assert.True(t, calc.HighRate.Base.Equal(dec("100.00")), "high base, got %s", calc.HighRate.Base)
	assert.True(t, calc.HighRate.Vat.Equal(dec("21.00")), "high vat, got %s", calc.HighRate.Vat)
	assert.True(t, calc.LowRate.Base.IsZero())
	assert.True(t, calc.ZeroRate.Base.IsZero())
	assert.True(t, calc.OutputVatDue.Equal(dec("21.00")))
	assert.True(t, calc.Net.Equal(dec("21.00")))
	assert.True(t, calc.RefundDue.IsZero())
}

func TestComputeBtw_LowRateAggregate(t *testing.T) {
	sales := []domain.Invoice{
		salesInvoice(domain.InvoicePaid, "200.00", "18.00", "218.00"),
	}

	calc := services.ComputeBtw(sales, nil)

	assert.True(t, calc.LowRate.Base.Equal(dec("200.00")), "9%% implied rate lands in the low bucket, got %s", calc.LowRate.Base)
	assert.True(t, calc.LowRate.Vat.Equal(dec("18.00")))
	assert.True(t, calc.HighRate.Base.IsZero())
}

func TestComputeBtw_ZeroVatPositiveTotalIsZeroRated(t *testing.T) {
	// Aggregate record with no net and no VAT but a positive total: the
	// whole total is zero-rated turnover.
	sales := []domain.Invoice{
		salesInvoice(domain.InvoiceSent, "0.00", "0.00", "50.00"),
	}

	calc := services.ComputeBtw(sales, nil)

	assert.True(t, calc.ZeroRate.Base.Equal(dec("50.00")), "got %s", calc.ZeroRate.Base)
	assert.True(t, calc.ZeroRate.Vat.IsZero())
	assert.True(t, calc.OutputVatDue.IsZero())
}

func TestComputeBtw_DraftSalesExcluded(t *testing.T) {
	sales := []domain.Invoice{
		salesInvoice(domain.InvoiceDraft, "100.00", "21.00", "121.00"),
		salesInvoice(domain.InvoiceSent, "10.00", "2.10", "12.10"),
	}

	calc := services.ComputeBtw(sales, nil)

	assert.True(t, calc.HighRate.Base.Equal(dec("10.00")), "draft invoices never enter the return, got %s", calc.HighRate.Base)
}

func TestComputeBtw_PurchasesCountRegardlessOfStatus(t *testing.T) {
	purchases := []domain.Invoice{
		salesInvoice(domain.InvoiceDraft, "100.00", "21.00", "121.00"),
		salesInvoice(domain.InvoicePaid, "50.00", "4.50", "54.50"),
	}

	calc := services.ComputeBtw(nil, purchases)

	assert.True(t, calc.InputVat.Equal(dec("25.50")), "input VAT sums over every purchase, got %s", calc.InputVat)
}

func TestComputeBtw_RefundWhenInputExceedsOutput(t *testing.T) {
	sales := []domain.Invoice{
		salesInvoice(domain.InvoiceSent, "100.00", "21.00", "121.00"),
	}
	purchases := []domain.Invoice{
		salesInvoice(domain.InvoicePaid, "121.43", "25.50", "146.93"),
	}

	calc := services.ComputeBtw(sales, purchases)

	assert.True(t, calc.Net.Equal(dec("-4.50")), "net, got %s", calc.Net)
	assert.True(t, calc.RefundDue.Equal(dec("4.50")), "refund is the absolute negative net, got %s", calc.RefundDue)
}

func TestComputeBtw_ItemizedClassification(t *testing.T) {
	invoice := domain.Invoice{
		InvoiceID: uuid.NewString(),
		Status:    domain.InvoiceSent,
		Items: []domain.InvoiceItem{
			{Quantity: dec("2"), UnitPrice: dec("50.00"), VatPercentage: dec("21")},
			{Quantity: dec("1"), UnitPrice: dec("30.00"), VatPercentage: dec("9")},
			{Quantity: dec("4"), UnitPrice: dec("5.00"), VatPercentage: dec("0")},
		},
	}

	calc := services.ComputeBtw([]domain.Invoice{invoice}, nil)

	assert.True(t, calc.HighRate.Base.Equal(dec("100.00")), "got %s", calc.HighRate.Base)
	assert.True(t, calc.HighRate.Vat.Equal(dec("21.00")))
	assert.True(t, calc.LowRate.Base.Equal(dec("30.00")))
	assert.True(t, calc.LowRate.Vat.Equal(dec("2.70")))
	assert.True(t, calc.ZeroRate.Base.Equal(dec("20.00")))
	assert.True(t, calc.OutputVatDue.Equal(dec("23.70")))
}

func TestComputeBtw_NonStatutoryItemRateTaxedHigh(t *testing.T) {
	invoice := domain.Invoice{
		InvoiceID: uuid.NewString(),
		Status:    domain.InvoiceSent,
		Items: []domain.InvoiceItem{
			{Quantity: dec("1"), UnitPrice: dec("100.00"), VatPercentage: dec("19")},
		},
	}

	calc := services.ComputeBtw([]domain.Invoice{invoice}, nil)

	assert.True(t, calc.HighRate.Base.Equal(dec("100.00")), "unknown explicit rate is taxed conservatively, got %s", calc.HighRate.Base)
	assert.True(t, calc.HighRate.Vat.Equal(dec("19.00")))
}

func TestComputeBtw_ImpliedRateBands(t *testing.T) {
	tests := []struct {
		name string
		net  string
		vat  string
		want func(domain.BtwCalculation) decimal.Decimal
	}{
		{"lower edge of high band", "100.00", "20.00", func(c domain.BtwCalculation) decimal.Decimal { return c.HighRate.Base }},
		{"upper edge of high band", "100.00", "22.00", func(c domain.BtwCalculation) decimal.Decimal { return c.HighRate.Base }},
		{"lower edge of low band", "100.00", "8.00", func(c domain.BtwCalculation) decimal.Decimal { return c.LowRate.Base }},
		{"upper edge of low band", "100.00", "10.00", func(c domain.BtwCalculation) decimal.Decimal { return c.LowRate.Base }},
		{"under one percent is zero rated", "100.00", "0.50", func(c domain.BtwCalculation) decimal.Decimal { return c.ZeroRate.Base }},
		{"between the bands falls back to high", "100.00", "15.00", func(c domain.BtwCalculation) decimal.Decimal { return c.HighRate.Base }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sales := []domain.Invoice{salesInvoice(domain.InvoiceSent, tt.net, tt.vat, "0.00")}
			calc := services.ComputeBtw(sales, nil)
			assert.True(t, tt.want(calc).Equal(dec(tt.net)), "base landed in the wrong bucket")
		})
	}
}

func TestComputeBtw_OrderingInvariance(t *testing.T) {
	a := salesInvoice(domain.InvoiceSent, "100.00", "21.00", "121.00")
	b := salesInvoice(domain.InvoicePaid, "200.00", "18.00", "218.00")
	c := salesInvoice(domain.InvoiceOverdue, "0.00", "0.00", "75.00")

	first := services.ComputeBtw([]domain.Invoice{a, b, c}, nil)
	second := services.ComputeBtw([]domain.Invoice{c, a, b}, nil)

	assert.True(t, first.HighRate.Base.Equal(second.HighRate.Base))
	assert.True(t, first.LowRate.Base.Equal(second.LowRate.Base))
	assert.True(t, first.ZeroRate.Base.Equal(second.ZeroRate.Base))
	assert.True(t, first.OutputVatDue.Equal(second.OutputVatDue))
	assert.True(t, first.Net.Equal(second.Net))
}

func TestComputeBtw_ItemizedPurchaseDerivesVatFromItems(t *testing.T) {
	purchase := domain.Invoice{
		InvoiceID: uuid.NewString(),
		Status:    domain.InvoicePaid,
		Items: []domain.InvoiceItem{
			{Quantity: dec("1"), UnitPrice: dec("100.00"), VatPercentage: dec("21")},
			{Quantity: dec("1"), UnitPrice: dec("50.00"), VatPercentage: dec("9")},
		},
	}

	calc := services.ComputeBtw(nil, []domain.Invoice{purchase})

	assert.True(t, calc.InputVat.Equal(dec("25.50")), "got %s", calc.InputVat)
}

func TestComputeBtw_Empty(t *testing.T) {
	calc := services.ComputeBtw(nil, nil)

	assert.True(t, calc.HighRate.Base.IsZero())
	assert.True(t, calc.LowRate.Base.IsZero())
	assert.True(t, calc.ZeroRate.Base.IsZero())
	assert.True(t, calc.InputVat.IsZero())
	assert.True(t, calc.OutputVatDue.IsZero())
	assert.True(t, calc.Net.IsZero())
	assert.True(t, calc.RefundDue.IsZero())
}

type BtwServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo *MockInvoiceRepository
	service         portssvc.BtwSvc
	companyID       string
}

func (suite *BtwServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.service = services.NewBtwService(suite.mockInvoiceRepo)
	suite.companyID = uuid.NewString()
}

func (suite *BtwServiceTestSuite) TestCalculateQuarter_Success() {
	ctx := context.Background()

	q2 := domain.FiscalPeriod{
		Start: day(2024, time.April, 1),
		End:   day(2024, time.June, 30),
	}
	sales := []domain.Invoice{salesInvoice(domain.InvoiceSent, "100.00", "21.00", "121.00")}
	purchases := []domain.Invoice{salesInvoice(domain.InvoicePaid, "50.00", "10.50", "60.50")}

	suite.mockInvoiceRepo.On("FindInvoicesInPeriod", ctx, suite.companyID, domain.SalesInvoice, q2).Return(sales, nil).Once()
	suite.mockInvoiceRepo.On("FindInvoicesInPeriod", ctx, suite.companyID, domain.PurchaseInvoice, q2).Return(purchases, nil).Once()

	calc, err := suite.service.CalculateQuarter(ctx, suite.companyID, 2024, 2)

	suite.Require().NoError(err)
	suite.Equal(2024, calc.Year)
	suite.Equal(2, calc.Quarter)
	suite.True(calc.HighRate.Base.Equal(dec("100.00")))
	suite.True(calc.InputVat.Equal(dec("10.50")))
	suite.True(calc.Net.Equal(dec("10.50")))

	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *BtwServiceTestSuite) TestCalculateQuarter_InvalidQuarter() {
	ctx := context.Background()

	calc, err := suite.service.CalculateQuarter(ctx, suite.companyID, 2024, 5)

	suite.Require().Error(err)
	suite.Nil(calc)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "FindInvoicesInPeriod")
}

func (suite *BtwServiceTestSuite) TestCalculateQuarter_RepoError() {
	ctx := context.Background()

	q1 := domain.FiscalPeriod{
		Start: day(2024, time.January, 1),
		End:   day(2024, time.March, 31),
	}
	suite.mockInvoiceRepo.On("FindInvoicesInPeriod", ctx, suite.companyID, domain.SalesInvoice, q1).Return(nil, assert.AnError).Once()

	calc, err := suite.service.CalculateQuarter(ctx, suite.companyID, 2024, 1)

	suite.Require().Error(err)
	suite.Nil(calc)
	suite.ErrorIs(err, assert.AnError)
}

func TestBtwServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BtwServiceTestSuite))
}
