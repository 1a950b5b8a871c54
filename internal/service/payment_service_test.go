package service

import (
	"context"
	"errors"
	"testing"

	"did-payment-splitter/internal/core/domain"
	"did-payment-splitter/internal/core/ports"
	"did-payment-splitter/internal/core/ports/mocks"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	buyerAddr  = common.HexToAddress("0xb1")
	vendorAddr = common.HexToAddress("0xd1")
	affAAddr   = common.HexToAddress("0xa1")
	affBAddr   = common.HexToAddress("0xa2")
	purchase   = common.HexToHash("0x5eed")
)

func paymentReq(sender, recipient domain.DID, caller domain.Principal, amount, p1, p2 uint64) ports.PaymentRequest {
	return ports.PaymentRequest{
		Token:             tokenAddr,
		Sender:            sender,
		Recipient:         recipient,
		Amount:            uint256.NewInt(amount),
		PurchaseRef:       purchase,
		Affiliate1Percent: p1,
		Affiliate2Percent: p2,
		Caller:            caller,
	}
}

// ==================== Split paths ====================

func TestPaymentService_MakePayment_NoAffiliate(t *testing.T) {
	h := newHarness(t)
	vendor := h.vendor(t, vendorAddr)
	buyer := h.identity(t, buyerAddr, domain.NoDID)
	h.fund(t, buyerAddr, 10000)

	receipt, err := h.pay.MakePayment(h.ctx, paymentReq(buyer, vendor, buyerAddr, 10000, 10, 5))
	require.NoError(t, err)

	assert.Equal(t, uint64(10000), h.balance(t, vendorAddr))
	assert.Equal(t, uint64(0), h.balance(t, buyerAddr))
	assert.Equal(t, uint64(0), h.balance(t, custodyAddr))

	require.Len(t, receipt.Payouts, 1)
	assert.Equal(t, domain.PayoutVendor, receipt.Payouts[0].Role)
	assert.Equal(t, vendorAddr, receipt.Payouts[0].Payee)
	assert.Equal(t, purchase, receipt.PurchaseRef)
}

func TestPaymentService_MakePayment_OneLevel(t *testing.T) {
	h := newHarness(t)
	vendor := h.vendor(t, vendorAddr)
	affA := h.affiliate(t, affAAddr, domain.NoDID)
	buyer := h.identity(t, buyerAddr, affA)
	h.fund(t, buyerAddr, 1000)

	receipt, err := h.pay.MakePayment(h.ctx, paymentReq(buyer, vendor, buyerAddr, 1000, 15, 50))
	require.NoError(t, err)

	assert.Equal(t, uint64(150), h.balance(t, affAAddr))
	assert.Equal(t, uint64(850), h.balance(t, vendorAddr))
	assert.Equal(t, uint64(0), h.balance(t, custodyAddr))

	leg, ok := receipt.Payout(domain.PayoutAffiliate1)
	require.True(t, ok)
	assert.Equal(t, affA, leg.Identity)
	_, ok = receipt.Payout(domain.PayoutAffiliate2)
	assert.False(t, ok)
}

func TestPaymentService_MakePayment_TwoLevels(t *testing.T) {
	h := newHarness(t)
	vendor := h.vendor(t, vendorAddr)
	affA := h.affiliate(t, affAAddr, domain.NoDID)
	affB := h.affiliate(t, affBAddr, affA)
	buyer := h.identity(t, buyerAddr, affB)
	h.fund(t, buyerAddr, 10000)

	receipt, err := h.pay.MakePayment(h.ctx, paymentReq(buyer, vendor, buyerAddr, 10000, 10, 5))
	require.NoError(t, err)

	assert.Equal(t, uint64(1000), h.balance(t, affBAddr), "direct referrer is level 1")
	assert.Equal(t, uint64(500), h.balance(t, affAAddr))
	assert.Equal(t, uint64(8500), h.balance(t, vendorAddr))
	assert.Equal(t, uint64(0), h.balance(t, custodyAddr))
	assert.True(t, receipt.PaidOut().Eq(uint256.NewInt(10000)))
}

func TestPaymentService_MakePayment_CumulativeVendorBalance(t *testing.T) {
	h := newHarness(t)
	vendor := h.vendor(t, vendorAddr)
	affA := h.affiliate(t, affAAddr, domain.NoDID)
	plain := h.identity(t, buyerAddr, domain.NoDID)
	oneLevel := h.identity(t, buyerAddr, affA)
	affB := h.affiliate(t, affBAddr, affA)
	twoLevel := h.identity(t, buyerAddr, affB)
	h.fund(t, buyerAddr, 21000)

	_, err := h.pay.MakePayment(h.ctx, paymentReq(plain, vendor, buyerAddr, 10000, 10, 5))
	require.NoError(t, err)
	_, err = h.pay.MakePayment(h.ctx, paymentReq(oneLevel, vendor, buyerAddr, 1000, 15, 50))
	require.NoError(t, err)
	_, err = h.pay.MakePayment(h.ctx, paymentReq(twoLevel, vendor, buyerAddr, 10000, 10, 5))
	require.NoError(t, err)

	assert.Equal(t, uint64(10000+850+8500), h.balance(t, vendorAddr))
	assert.Equal(t, uint64(150+500), h.balance(t, affAAddr))
	assert.Equal(t, uint64(1000), h.balance(t, affBAddr))
	assert.Equal(t, uint64(0), h.balance(t, custodyAddr))
}

func TestPaymentService_MakePayment_InactiveLevel1SkipsLevel2(t *testing.T) {
	h := newHarness(t)
	vendor := h.vendor(t, vendorAddr)
	affA := h.affiliate(t, affAAddr, domain.NoDID)
	affB := h.affiliate(t, affBAddr, affA)
	buyer := h.identity(t, buyerAddr, affB)
	h.fund(t, buyerAddr, 10000)

	require.NoError(t, h.reg.RemoveAffiliate(h.ctx, operatorAddr, affB))

	_, err := h.pay.MakePayment(h.ctx, paymentReq(buyer, vendor, buyerAddr, 10000, 10, 5))
	require.NoError(t, err)

	assert.Equal(t, uint64(0), h.balance(t, affBAddr))
	assert.Equal(t, uint64(0), h.balance(t, affAAddr), "level 2 is ignored when level 1 is invalid")
	assert.Equal(t, uint64(10000), h.balance(t, vendorAddr))
}

func TestPaymentService_MakePayment_DeletedLevel2(t *testing.T) {
	h := newHarness(t)
	vendor := h.vendor(t, vendorAddr)
	affA := h.affiliate(t, affAAddr, domain.NoDID)
	affB := h.affiliate(t, affBAddr, affA)
	buyer := h.identity(t, buyerAddr, affB)
	h.fund(t, buyerAddr, 10000)

	require.NoError(t, h.reg.DeleteIdentity(h.ctx, affAAddr, affA))

	receipt, err := h.pay.MakePayment(h.ctx, paymentReq(buyer, vendor, buyerAddr, 10000, 10, 5))
	require.NoError(t, err)

	assert.Equal(t, uint64(1000), h.balance(t, affBAddr))
	assert.Equal(t, uint64(0), h.balance(t, affAAddr))
	assert.Equal(t, uint64(9000), h.balance(t, vendorAddr))
	assert.Len(t, receipt.Payouts, 2)
}

func TestPaymentService_MakePayment_ZeroCommissionLegsSkipped(t *testing.T) {
	h := newHarness(t)
	vendor := h.vendor(t, vendorAddr)
	affA := h.affiliate(t, affAAddr, domain.NoDID)
	buyer := h.identity(t, buyerAddr, affA)
	h.fund(t, buyerAddr, 9)

	receipt, err := h.pay.MakePayment(h.ctx, paymentReq(buyer, vendor, buyerAddr, 9, 10, 0))
	require.NoError(t, err)

	// 9 * 10 / 100 truncates to 0, so only the vendor is paid.
	require.Len(t, receipt.Payouts, 1)
	assert.Equal(t, uint64(9), h.balance(t, vendorAddr))
}

// ==================== Validation ====================

func TestPaymentService_MakePayment_Unauthorized(t *testing.T) {
	h := newHarness(t)
	vendor := h.vendor(t, vendorAddr)
	buyer := h.identity(t, buyerAddr, domain.NoDID)
	h.fund(t, buyerAddr, 1000)
	h.fund(t, strangerAddr, 1000)
	h.sink.reset()

	_, err := h.pay.MakePayment(h.ctx, paymentReq(buyer, vendor, strangerAddr, 1000, 0, 0))
	assertAppError(t, err, "AUTH_001")

	// Unauthorized wins over every later check.
	_, err = h.pay.MakePayment(h.ctx, paymentReq(buyer, common.HexToHash("0x99"), strangerAddr, 0, 0, 0))
	assertAppError(t, err, "AUTH_001")

	assert.Equal(t, uint64(1000), h.balance(t, buyerAddr))
	assert.Equal(t, uint64(1000), h.balance(t, strangerAddr))
	assert.Equal(t, uint64(0), h.balance(t, vendorAddr))
	assert.Empty(t, h.sink.kinds())
}

func TestPaymentService_MakePayment_DeletedSender(t *testing.T) {
	h := newHarness(t)
	vendor := h.vendor(t, vendorAddr)
	buyer := h.identity(t, buyerAddr, domain.NoDID)
	h.fund(t, buyerAddr, 1000)
	require.NoError(t, h.reg.DeleteIdentity(h.ctx, buyerAddr, buyer))

	_, err := h.pay.MakePayment(h.ctx, paymentReq(buyer, vendor, buyerAddr, 1000, 0, 0))
	assertAppError(t, err, "AUTH_001")
}

func TestPaymentService_MakePayment_StaleVendor(t *testing.T) {
	h := newHarness(t)
	vendor := h.vendor(t, vendorAddr)
	buyer := h.identity(t, buyerAddr, domain.NoDID)
	h.fund(t, buyerAddr, 1000)

	require.NoError(t, h.reg.DeleteIdentity(h.ctx, vendorAddr, vendor))
	active, err := h.reg.VendorStatus(h.ctx, vendor)
	require.NoError(t, err)
	assert.True(t, active, "registry flag is not re-validated")

	_, err = h.pay.MakePayment(h.ctx, paymentReq(buyer, vendor, buyerAddr, 1000, 0, 0))
	assertAppError(t, err, "PAY_001")
	assert.Equal(t, uint64(1000), h.balance(t, buyerAddr))
}

func TestPaymentService_MakePayment_RemovedVendor(t *testing.T) {
	h := newHarness(t)
	vendor := h.vendor(t, vendorAddr)
	buyer := h.identity(t, buyerAddr, domain.NoDID)
	h.fund(t, buyerAddr, 1000)
	require.NoError(t, h.reg.RemoveVendor(h.ctx, operatorAddr, vendor))

	_, err := h.pay.MakePayment(h.ctx, paymentReq(buyer, vendor, buyerAddr, 1000, 0, 0))
	assertAppError(t, err, "PAY_001")
}

func TestPaymentService_MakePayment_InvalidAmount(t *testing.T) {
	h := newHarness(t)
	vendor := h.vendor(t, vendorAddr)
	buyer := h.identity(t, buyerAddr, domain.NoDID)

	_, err := h.pay.MakePayment(h.ctx, paymentReq(buyer, vendor, buyerAddr, 0, 10, 5))
	assertAppError(t, err, "PAY_002")

	req := paymentReq(buyer, vendor, buyerAddr, 0, 10, 5)
	req.Amount = nil
	_, err = h.pay.MakePayment(h.ctx, req)
	assertAppError(t, err, "PAY_002")
}

func TestPaymentService_MakePayment_AmountOverflow(t *testing.T) {
	h := newHarness(t)
	vendor := h.vendor(t, vendorAddr)
	affA := h.affiliate(t, affAAddr, domain.NoDID)
	buyer := h.identity(t, buyerAddr, affA)

	req := paymentReq(buyer, vendor, buyerAddr, 0, 10, 0)
	req.Amount = new(uint256.Int).SetAllOne()
	_, err := h.pay.MakePayment(h.ctx, req)
	assertAppError(t, err, "PAY_002")
}

func TestPaymentService_MakePayment_InvalidSplit(t *testing.T) {
	h := newHarness(t)
	vendor := h.vendor(t, vendorAddr)
	affA := h.affiliate(t, affAAddr, domain.NoDID)
	affB := h.affiliate(t, affBAddr, affA)
	buyer := h.identity(t, buyerAddr, affB)
	h.fund(t, buyerAddr, 100)

	_, err := h.pay.MakePayment(h.ctx, paymentReq(buyer, vendor, buyerAddr, 100, 80, 30))
	assertAppError(t, err, "PAY_003")
	assert.Equal(t, uint64(100), h.balance(t, buyerAddr))
}

func TestPaymentService_MakePayment_InsufficientAllowance(t *testing.T) {
	h := newHarness(t)
	vendor := h.vendor(t, vendorAddr)
	buyer := h.identity(t, buyerAddr, domain.NoDID)
	require.NoError(t, h.tokens.Mint(h.ctx, ownerAddr, tokenAddr, buyerAddr, uint256.NewInt(1000)))

	_, err := h.pay.MakePayment(h.ctx, paymentReq(buyer, vendor, buyerAddr, 1000, 0, 0))
	assertAppError(t, err, "TOKEN_002")
	assert.Equal(t, uint64(1000), h.balance(t, buyerAddr))
}

func TestPaymentService_MakePayment_InsufficientBalance(t *testing.T) {
	h := newHarness(t)
	vendor := h.vendor(t, vendorAddr)
	buyer := h.identity(t, buyerAddr, domain.NoDID)
	h.fund(t, buyerAddr, 500)
	require.NoError(t, h.tokens.Approve(h.ctx, tokenAddr, buyerAddr, custodyAddr, uint256.NewInt(1000)))

	_, err := h.pay.MakePayment(h.ctx, paymentReq(buyer, vendor, buyerAddr, 1000, 0, 0))
	assertAppError(t, err, "TOKEN_001")
	assert.Equal(t, uint64(500), h.balance(t, buyerAddr))
}

// ==================== Atomicity ====================

// failingToken fails every transfer to one payee.
type failingToken struct {
	ports.ValueToken
	failTo domain.Principal
}

func (f *failingToken) Transfer(ctx context.Context, token common.Address, from, to domain.Principal, amount *uint256.Int) error {
	if to == f.failTo {
		return domain.ErrInsufficientBalance
	}
	return f.ValueToken.Transfer(ctx, token, from, to, amount)
}

func TestPaymentService_MakePayment_RollsBackOnPayoutFailure(t *testing.T) {
	h := newHarness(t)
	vendor := h.vendor(t, vendorAddr)
	affA := h.affiliate(t, affAAddr, domain.NoDID)
	buyer := h.identity(t, buyerAddr, affA)
	h.fund(t, buyerAddr, 1000)

	h.build(&failingToken{ValueToken: h.token, failTo: vendorAddr})
	h.sink.reset()

	_, err := h.pay.MakePayment(h.ctx, paymentReq(buyer, vendor, buyerAddr, 1000, 15, 0))
	assertAppError(t, err, "TOKEN_001")

	assert.Equal(t, uint64(1000), h.balance(t, buyerAddr))
	assert.Equal(t, uint64(0), h.balance(t, affAAddr), "affiliate payout must be undone")
	assert.Equal(t, uint64(0), h.balance(t, custodyAddr))
	allowance, err := h.token.Allowance(h.ctx, tokenAddr, buyerAddr, custodyAddr)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), allowance.Uint64())
	assert.Empty(t, h.sink.kinds())
}

func TestPaymentService_MakePayment_CustodyMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockIdentityLedger(ctrl)
	registry := mocks.NewMockRegistryRepository(ctrl)
	token := mocks.NewMockValueToken(ctrl)
	transactor := mocks.NewMockTransactor(ctrl)
	events := mocks.NewMockEventPublisher(ctrl)

	sender, recipient := common.HexToHash("0x01"), common.HexToHash("0x02")

	transactor.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) })
	ledger.EXPECT().ResolveController(gomock.Any(), sender).Return(buyerAddr, true, nil)
	registry.EXPECT().GetFlag(gomock.Any(), domain.RoleVendor, recipient).Return(true, nil)
	ledger.EXPECT().ResolveController(gomock.Any(), recipient).Return(vendorAddr, true, nil)
	registry.EXPECT().GetLink(gomock.Any(), sender).Return(domain.NoDID, nil)
	gomock.InOrder(
		token.EXPECT().BalanceOf(gomock.Any(), tokenAddr, custodyAddr).Return(uint256.NewInt(0), nil),
		token.EXPECT().TransferFrom(gomock.Any(), tokenAddr, custodyAddr, buyerAddr, custodyAddr, uint256.NewInt(100)).Return(nil),
		token.EXPECT().Transfer(gomock.Any(), tokenAddr, custodyAddr, vendorAddr, uint256.NewInt(100)).Return(nil),
		token.EXPECT().BalanceOf(gomock.Any(), tokenAddr, custodyAddr).Return(uint256.NewInt(7), nil),
	)

	svc := NewPaymentService(registry, ledger, token, transactor, events, custodyAddr, nil, zerolog.Nop())
	_, err := svc.MakePayment(context.Background(), paymentReq(sender, recipient, buyerAddr, 100, 10, 5))
	assertAppError(t, err, "SYS_001")
}

func TestPaymentService_MakePayment_LedgerFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockIdentityLedger(ctrl)
	transactor := mocks.NewMockTransactor(ctrl)

	transactor.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) })
	ledger.EXPECT().ResolveController(gomock.Any(), gomock.Any()).Return(domain.NoPrincipal, false, errors.New("ledger down"))

	svc := NewPaymentService(mocks.NewMockRegistryRepository(ctrl), ledger, mocks.NewMockValueToken(ctrl),
		transactor, mocks.NewMockEventPublisher(ctrl), custodyAddr, nil, zerolog.Nop())
	_, err := svc.MakePayment(context.Background(), paymentReq(common.HexToHash("0x01"), common.HexToHash("0x02"), buyerAddr, 100, 0, 0))
	assertAppError(t, err, "SYS_001")
}

// ==================== Events ====================

func TestPaymentService_MakePayment_PublishesSplitEvent(t *testing.T) {
	h := newHarness(t)
	vendor := h.vendor(t, vendorAddr)
	affA := h.affiliate(t, affAAddr, domain.NoDID)
	buyer := h.identity(t, buyerAddr, affA)
	h.fund(t, buyerAddr, 1000)
	h.sink.reset()

	_, err := h.pay.MakePayment(h.ctx, paymentReq(buyer, vendor, buyerAddr, 1000, 15, 50))
	require.NoError(t, err)

	assert.Equal(t, []domain.EventKind{domain.EventPaymentSplit}, h.sink.kinds())
	e := h.sink.last()
	assert.Equal(t, buyerAddr, e.Actor)
	assert.Equal(t, buyer, e.Subject)
	assert.Equal(t, "1000", e.Attributes["amount"])
	assert.Equal(t, "150", e.Attributes["affiliate1_amount"])
	assert.Equal(t, "850", e.Attributes["vendor_amount"])
	assert.Equal(t, purchase.Hex(), e.Attributes["purchase_ref"])
	_, ok := e.Attributes["affiliate2_amount"]
	assert.False(t, ok)
}

func TestPaymentService_Custody(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, custodyAddr, h.pay.Custody())
}
