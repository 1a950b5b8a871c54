package service

import (
	"context"
	"sync"
	"testing"

	"did-payment-splitter/internal/adapter/storage/memory"
	"did-payment-splitter/internal/core/domain"
	"did-payment-splitter/internal/core/ports"
	"did-payment-splitter/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ownerAddr    = common.HexToAddress("0x0a")
	operatorAddr = common.HexToAddress("0x0b")
	custodyAddr  = common.HexToAddress("0xcc")
	tokenAddr    = common.HexToAddress("0x70")
	strangerAddr = common.HexToAddress("0xee")
)

// recordingSink keeps every appended event.
type recordingSink struct {
	mu     sync.Mutex
	events []*domain.Event
}

func (s *recordingSink) Append(_ context.Context, events []*domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, events...)
	return nil
}

func (s *recordingSink) Name() string { return "recording" }

func (s *recordingSink) kinds() []domain.EventKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.EventKind, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e.Kind)
	}
	return out
}

func (s *recordingSink) last() *domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.events) == 0 {
		return nil
	}
	return s.events[len(s.events)-1]
}

func (s *recordingSink) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
}

// harness wires every service over the in-memory backend with an owner
// and one whitelisted operator.
type harness struct {
	ctx       context.Context
	ledger    *memory.Ledger
	token     *memory.Token
	registry  *memory.RegistryRepository
	adminRepo *memory.AdminRepository
	tx        *memory.Transactor
	sink      *recordingSink

	admin  *AdminServiceImpl
	reg    *RegistryServiceImpl
	pay    *PaymentServiceImpl
	tokens *TokenAccountServiceImpl
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		ctx:       context.Background(),
		ledger:    memory.NewLedger(),
		token:     memory.NewToken(),
		registry:  memory.NewRegistryRepository(),
		adminRepo: memory.NewAdminRepository(),
		tx:        memory.NewTransactor(),
		sink:      &recordingSink{},
	}
	h.build(h.token)

	require.NoError(t, h.admin.Bootstrap(h.ctx, ownerAddr))
	require.NoError(t, h.admin.AddWhitelisted(h.ctx, ownerAddr, operatorAddr))
	h.sink.reset()
	return h
}

// build (re)wires the services, letting tests swap the value token.
func (h *harness) build(token ports.ValueToken) {
	log := zerolog.Nop()
	events := NewEventService(log, nil, h.sink)
	h.admin = NewAdminService(h.adminRepo, h.tx, events, nil, log)
	h.reg = NewRegistryService(h.registry, h.ledger, h.admin, h.tx, events, nil, log)
	h.pay = NewPaymentService(h.registry, h.ledger, token, h.tx, events, custodyAddr, nil, log)
	h.tokens = NewTokenAccountService(token, h.admin, h.tx, log)
}

func (h *harness) identity(t *testing.T, controller domain.Principal, referrer domain.DID) domain.DID {
	t.Helper()
	res, err := h.reg.CreateIdentity(h.ctx, controller, referrer)
	require.NoError(t, err)
	return res.ID
}

func (h *harness) vendor(t *testing.T, controller domain.Principal) domain.DID {
	t.Helper()
	id := h.identity(t, controller, domain.NoDID)
	require.NoError(t, h.reg.RegisterVendor(h.ctx, operatorAddr, id))
	return id
}

func (h *harness) affiliate(t *testing.T, controller domain.Principal, referrer domain.DID) domain.DID {
	t.Helper()
	id := h.identity(t, controller, referrer)
	require.NoError(t, h.reg.RegisterAffiliate(h.ctx, operatorAddr, id))
	return id
}

// fund mints amount to p and approves custody for all of it.
func (h *harness) fund(t *testing.T, p domain.Principal, amount uint64) {
	t.Helper()
	require.NoError(t, h.tokens.Mint(h.ctx, ownerAddr, tokenAddr, p, uint256.NewInt(amount)))
	require.NoError(t, h.tokens.Approve(h.ctx, tokenAddr, p, custodyAddr, uint256.NewInt(amount)))
}

func (h *harness) balance(t *testing.T, p domain.Principal) uint64 {
	t.Helper()
	b, err := h.token.BalanceOf(h.ctx, tokenAddr, p)
	require.NoError(t, err)
	return b.Uint64()
}

// assertAppError checks that err is an AppError with the expected code.
func assertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, expectedCode, apperror.CodeOf(err), "unexpected error: %v", err)
}
