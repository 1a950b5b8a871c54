package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"did-payment-splitter/internal/core/domain"
	"did-payment-splitter/internal/core/ports"
	"did-payment-splitter/pkg/apperror"
	"did-payment-splitter/pkg/metrics"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
)

// PaymentServiceImpl implements ports.PaymentService. Funds are pulled from
// the payer into custody and paid out from custody in the same transaction,
// so custody ends every payment with the balance it started with.
type PaymentServiceImpl struct {
	registry   ports.RegistryRepository
	ledger     ports.IdentityLedger
	token      ports.ValueToken
	transactor ports.Transactor
	events     ports.EventPublisher
	custody    domain.Principal
	metrics    *metrics.Metrics
	log        zerolog.Logger
}

// NewPaymentService creates a new PaymentServiceImpl.
func NewPaymentService(
	registry ports.RegistryRepository,
	ledger ports.IdentityLedger,
	token ports.ValueToken,
	transactor ports.Transactor,
	events ports.EventPublisher,
	custody domain.Principal,
	m *metrics.Metrics,
	log zerolog.Logger,
) *PaymentServiceImpl {
	return &PaymentServiceImpl{
		registry:   registry,
		ledger:     ledger,
		token:      token,
		transactor: transactor,
		events:     events,
		custody:    custody,
		metrics:    m,
		log:        log,
	}
}

// Custody returns the principal payers must approve as spender.
func (s *PaymentServiceImpl) Custody() domain.Principal {
	return s.custody
}

// MakePayment validates req against the registry and the ledger, splits the
// amount between up to two affiliate levels and the vendor, and moves the
// funds. Any failure leaves every balance untouched.
func (s *PaymentServiceImpl) MakePayment(ctx context.Context, req ports.PaymentRequest) (*domain.PaymentReceipt, error) {
	ctx, span := tracer.Start(ctx, "Payment.Service.MakePayment")
	defer span.End()

	start := time.Now()
	var receipt *domain.PaymentReceipt
	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		receipt, err = s.execute(ctx, req)
		return err
	})
	s.metrics.ObservePayment(metrics.Outcome(apperror.CodeOf(err), err), time.Since(start))
	if err != nil {
		span.RecordError(err)
		s.log.Warn().
			Err(err).
			Str("sender", req.Sender.Hex()).
			Str("recipient", req.Recipient.Hex()).
			Str("caller", req.Caller.Hex()).
			Msg("payment rejected")
		return nil, err
	}

	s.metrics.ObserveDepth(len(receipt.Payouts) - 1)
	s.events.Publish(ctx, paymentEvent(receipt))

	s.log.Info().
		Str("sender", req.Sender.Hex()).
		Str("recipient", req.Recipient.Hex()).
		Str("token", req.Token.Hex()).
		Str("purchase_ref", req.PurchaseRef.Hex()).
		Str("amount", req.Amount.Dec()).
		Int("affiliate_levels", len(receipt.Payouts)-1).
		Msg("payment split executed")

	return receipt, nil
}

func (s *PaymentServiceImpl) execute(ctx context.Context, req ports.PaymentRequest) (*domain.PaymentReceipt, error) {
	// Sender must be controlled by the caller right now.
	payer, ok, err := s.ledger.ResolveController(ctx, req.Sender)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("resolve sender: %w", err))
	}
	if !ok || payer != req.Caller {
		return nil, apperror.ErrUnauthorized()
	}

	// Recipient must be an active vendor that still resolves.
	isVendor, err := s.registry.GetFlag(ctx, domain.RoleVendor, req.Recipient)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get vendor flag: %w", err))
	}
	vendor, ok, err := s.ledger.ResolveController(ctx, req.Recipient)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("resolve recipient: %w", err))
	}
	if !isVendor || !ok {
		return nil, apperror.ErrInvalidVendor()
	}

	if req.Amount == nil || req.Amount.IsZero() {
		return nil, apperror.ErrInvalidAmount()
	}

	// Walk at most two levels up the affiliate chain.
	level1, err := s.registry.GetLink(ctx, req.Sender)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get level 1 link: %w", err))
	}
	payee1, ok1, err := s.affiliatePayee(ctx, level1)
	if err != nil {
		return nil, err
	}

	var level2 domain.DID
	var payee2 domain.Principal
	var ok2 bool
	if ok1 {
		level2, err = s.registry.GetLink(ctx, level1)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("get level 2 link: %w", err))
		}
		payee2, ok2, err = s.affiliatePayee(ctx, level2)
		if err != nil {
			return nil, err
		}
	}

	split, err := domain.ComputeSplit(req.Amount, req.Affiliate1Percent, req.Affiliate2Percent, ok1, ok2)
	switch {
	case errors.Is(err, domain.ErrCommissionExceedsAmount):
		return nil, apperror.ErrInvalidSplit()
	case errors.Is(err, domain.ErrAmountOverflow), errors.Is(err, domain.ErrZeroAmount):
		return nil, apperror.ErrInvalidAmount()
	case err != nil:
		return nil, apperror.InternalError(fmt.Errorf("compute split: %w", err))
	}

	before, err := s.token.BalanceOf(ctx, req.Token, s.custody)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("custody balance: %w", err))
	}

	if err := s.token.TransferFrom(ctx, req.Token, s.custody, req.Caller, s.custody, split.Amount); err != nil {
		return nil, tokenError("collect payment", err)
	}

	receipt := &domain.PaymentReceipt{
		Token:             req.Token,
		Sender:            req.Sender,
		Recipient:         req.Recipient,
		Payer:             req.Caller,
		PurchaseRef:       req.PurchaseRef,
		Amount:            split.Amount,
		Affiliate1Percent: req.Affiliate1Percent,
		Affiliate2Percent: req.Affiliate2Percent,
		ExecutedAt:        time.Now().UTC(),
	}

	legs := []domain.Payout{
		{Role: domain.PayoutAffiliate1, Identity: level1, Payee: payee1, Amount: split.Affiliate1},
		{Role: domain.PayoutAffiliate2, Identity: level2, Payee: payee2, Amount: split.Affiliate2},
	}
	for _, leg := range legs {
		if leg.Amount.IsZero() {
			continue
		}
		if err := s.payout(ctx, req.Token, leg); err != nil {
			return nil, err
		}
		receipt.Payouts = append(receipt.Payouts, leg)
	}

	// The vendor leg is paid even when it is zero.
	vendorLeg := domain.Payout{Role: domain.PayoutVendor, Identity: req.Recipient, Payee: vendor, Amount: split.Vendor}
	if err := s.payout(ctx, req.Token, vendorLeg); err != nil {
		return nil, err
	}
	receipt.Payouts = append(receipt.Payouts, vendorLeg)

	after, err := s.token.BalanceOf(ctx, req.Token, s.custody)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("custody balance: %w", err))
	}
	if !after.Eq(before) {
		return nil, apperror.InternalError(fmt.Errorf("custody balance changed from %s to %s", before.Dec(), after.Dec()))
	}

	return receipt, nil
}

// affiliatePayee returns the controller of id when id is a set, active
// affiliate that still resolves on the ledger.
func (s *PaymentServiceImpl) affiliatePayee(ctx context.Context, id domain.DID) (domain.Principal, bool, error) {
	if id == domain.NoDID {
		return domain.NoPrincipal, false, nil
	}
	active, err := s.registry.GetFlag(ctx, domain.RoleAffiliate, id)
	if err != nil {
		return domain.NoPrincipal, false, apperror.InternalError(fmt.Errorf("get affiliate flag: %w", err))
	}
	if !active {
		return domain.NoPrincipal, false, nil
	}
	controller, ok, err := s.ledger.ResolveController(ctx, id)
	if err != nil {
		return domain.NoPrincipal, false, apperror.InternalError(fmt.Errorf("resolve affiliate: %w", err))
	}
	return controller, ok, nil
}

func (s *PaymentServiceImpl) payout(ctx context.Context, token common.Address, leg domain.Payout) error {
	if err := s.token.Transfer(ctx, token, s.custody, leg.Payee, leg.Amount); err != nil {
		return tokenError(fmt.Sprintf("pay %s", leg.Role), err)
	}
	return nil
}

// tokenError maps value token sentinels to AppErrors.
func tokenError(op string, err error) error {
	switch {
	case errors.Is(err, domain.ErrInsufficientBalance):
		return apperror.ErrInsufficientBalance()
	case errors.Is(err, domain.ErrInsufficientAllowance):
		return apperror.ErrInsufficientAllowance()
	default:
		return apperror.InternalError(fmt.Errorf("%s: %w", op, err))
	}
}

func paymentEvent(r *domain.PaymentReceipt) *domain.Event {
	e := domain.NewEvent(domain.EventPaymentSplit, r.Payer, r.Sender).
		With("recipient", r.Recipient.Hex()).
		With("token", r.Token.Hex()).
		With("purchase_ref", r.PurchaseRef.Hex()).
		With("amount", r.Amount.Dec())
	for _, p := range r.Payouts {
		prefix := payoutPrefix(p.Role)
		e.With(prefix+"_identity", p.Identity.Hex()).
			With(prefix+"_payee", p.Payee.Hex()).
			With(prefix+"_amount", p.Amount.Dec())
	}
	return e
}

func payoutPrefix(role domain.PayoutRole) string {
	switch role {
	case domain.PayoutAffiliate1:
		return "affiliate1"
	case domain.PayoutAffiliate2:
		return "affiliate2"
	default:
		return "vendor"
	}
}
