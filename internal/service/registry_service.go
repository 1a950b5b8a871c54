package service

import (
	"context"
	"errors"
	"fmt"

	"did-payment-splitter/internal/core/domain"
	"did-payment-splitter/internal/core/ports"
	"did-payment-splitter/pkg/apperror"
	"did-payment-splitter/pkg/metrics"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("splitter")

// RegistryServiceImpl implements ports.RegistryService.
type RegistryServiceImpl struct {
	repo       ports.RegistryRepository
	ledger     ports.IdentityLedger
	gate       ports.AccessGate
	transactor ports.Transactor
	events     ports.EventPublisher
	metrics    *metrics.Metrics
	log        zerolog.Logger
}

// NewRegistryService creates a new RegistryServiceImpl.
func NewRegistryService(
	repo ports.RegistryRepository,
	ledger ports.IdentityLedger,
	gate ports.AccessGate,
	transactor ports.Transactor,
	events ports.EventPublisher,
	m *metrics.Metrics,
	log zerolog.Logger,
) *RegistryServiceImpl {
	return &RegistryServiceImpl{
		repo:       repo,
		ledger:     ledger,
		gate:       gate,
		transactor: transactor,
		events:     events,
		metrics:    m,
		log:        log,
	}
}

// CreateIdentity mints an identity controlled by caller. The referrer is
// recorded as the new identity's upline only if it is an active affiliate
// that still resolves on the ledger; otherwise it is silently dropped.
func (s *RegistryServiceImpl) CreateIdentity(ctx context.Context, caller domain.Principal, referrer domain.DID) (*domain.IdentityResult, error) {
	ctx, span := tracer.Start(ctx, "Registry.Service.CreateIdentity")
	defer span.End()

	result := &domain.IdentityResult{Controller: caller}
	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		id, err := s.ledger.CreateIdentity(ctx, referrer, caller)
		if err != nil {
			return apperror.ErrIdentityCreationFailed(err)
		}
		result.ID = id

		if referrer == domain.NoDID {
			return nil
		}
		live, err := s.liveAffiliate(ctx, referrer)
		if err != nil {
			return err
		}
		if !live {
			s.log.Debug().
				Str("identity", id.Hex()).
				Str("referrer", referrer.Hex()).
				Msg("referrer ignored")
			return nil
		}
		if err := s.repo.SetLink(ctx, id, referrer); err != nil {
			return apperror.InternalError(fmt.Errorf("set link: %w", err))
		}
		result.Referrer = referrer
		return nil
	})
	s.metrics.IncrementMutation("create_identity", metrics.Outcome(apperror.CodeOf(err), err))
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	s.events.Publish(ctx, domain.NewEvent(domain.EventIdentityCreated, caller, result.ID).
		With("referrer", result.Referrer.Hex()))
	s.log.Info().
		Str("identity", result.ID.Hex()).
		Str("controller", caller.Hex()).
		Bool("linked", result.Linked()).
		Msg("identity created")

	return result, nil
}

// RegisterVendor marks id as an active vendor.
func (s *RegistryServiceImpl) RegisterVendor(ctx context.Context, caller domain.Principal, id domain.DID) error {
	return s.setFlag(ctx, caller, domain.RoleVendor, id, true)
}

// RemoveVendor clears the vendor flag of id.
func (s *RegistryServiceImpl) RemoveVendor(ctx context.Context, caller domain.Principal, id domain.DID) error {
	return s.setFlag(ctx, caller, domain.RoleVendor, id, false)
}

// RegisterAffiliate marks id as an active affiliate.
func (s *RegistryServiceImpl) RegisterAffiliate(ctx context.Context, caller domain.Principal, id domain.DID) error {
	return s.setFlag(ctx, caller, domain.RoleAffiliate, id, true)
}

// RemoveAffiliate clears the affiliate flag of id. Links pointing at id stay
// in place but stop paying.
func (s *RegistryServiceImpl) RemoveAffiliate(ctx context.Context, caller domain.Principal, id domain.DID) error {
	return s.setFlag(ctx, caller, domain.RoleAffiliate, id, false)
}

func (s *RegistryServiceImpl) setFlag(ctx context.Context, caller domain.Principal, role domain.Role, id domain.DID, active bool) error {
	op := flagOperation(role, active)

	changed := false
	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.gate.RequireWhitelisted(ctx, caller); err != nil {
			return err
		}
		if active && id == domain.NoDID {
			return apperror.ErrInvalidIdentity()
		}
		current, err := s.repo.GetFlag(ctx, role, id)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("get %s flag: %w", role, err))
		}
		if current == active {
			return nil
		}
		if err := s.repo.SetFlag(ctx, role, id, active); err != nil {
			return apperror.InternalError(fmt.Errorf("set %s flag: %w", role, err))
		}
		changed = true
		return nil
	})
	s.metrics.IncrementMutation(op, metrics.Outcome(apperror.CodeOf(err), err))
	if err != nil {
		return err
	}

	if changed {
		s.events.Publish(ctx, domain.NewEvent(flagEvent(role, active), caller, id))
		s.log.Info().
			Str("caller", caller.Hex()).
			Str("identity", id.Hex()).
			Str("role", string(role)).
			Bool("active", active).
			Msg("registry flag updated")
	}
	return nil
}

// AddAffiliateLink points child at parent. parent must be an active
// affiliate; ledger liveness is not checked here, only at payment time.
func (s *RegistryServiceImpl) AddAffiliateLink(ctx context.Context, caller domain.Principal, child, parent domain.DID) error {
	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.gate.RequireWhitelisted(ctx, caller); err != nil {
			return err
		}
		if child == domain.NoDID || child == parent {
			return apperror.ErrInvalidIdentity()
		}
		active, err := s.repo.GetFlag(ctx, domain.RoleAffiliate, parent)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("get affiliate flag: %w", err))
		}
		if !active {
			return apperror.ErrInvalidIdentity()
		}
		if err := s.repo.SetLink(ctx, child, parent); err != nil {
			return apperror.InternalError(fmt.Errorf("set link: %w", err))
		}
		return nil
	})
	s.metrics.IncrementMutation("add_affiliate_link", metrics.Outcome(apperror.CodeOf(err), err))
	if err != nil {
		return err
	}

	s.events.Publish(ctx, domain.NewEvent(domain.EventAffiliateLinkAdded, caller, child).
		With("parent", parent.Hex()))
	s.log.Info().
		Str("caller", caller.Hex()).
		Str("child", child.Hex()).
		Str("parent", parent.Hex()).
		Msg("affiliate link added")
	return nil
}

// RemoveAffiliateLink clears the upline of child.
func (s *RegistryServiceImpl) RemoveAffiliateLink(ctx context.Context, caller domain.Principal, child domain.DID) error {
	previous := domain.NoDID
	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.gate.RequireWhitelisted(ctx, caller); err != nil {
			return err
		}
		var err error
		previous, err = s.repo.GetLink(ctx, child)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("get link: %w", err))
		}
		if previous == domain.NoDID {
			return nil
		}
		if err := s.repo.SetLink(ctx, child, domain.NoDID); err != nil {
			return apperror.InternalError(fmt.Errorf("clear link: %w", err))
		}
		return nil
	})
	s.metrics.IncrementMutation("remove_affiliate_link", metrics.Outcome(apperror.CodeOf(err), err))
	if err != nil {
		return err
	}

	if previous != domain.NoDID {
		s.events.Publish(ctx, domain.NewEvent(domain.EventAffiliateLinkRemoved, caller, child).
			With("parent", previous.Hex()))
		s.log.Info().
			Str("caller", caller.Hex()).
			Str("child", child.Hex()).
			Msg("affiliate link removed")
	}
	return nil
}

// VendorStatus returns the stored vendor flag without consulting the ledger.
func (s *RegistryServiceImpl) VendorStatus(ctx context.Context, id domain.DID) (bool, error) {
	active, err := s.repo.GetFlag(ctx, domain.RoleVendor, id)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("get vendor flag: %w", err))
	}
	return active, nil
}

// AffiliateStatus returns the stored affiliate flag without consulting the ledger.
func (s *RegistryServiceImpl) AffiliateStatus(ctx context.Context, id domain.DID) (bool, error) {
	active, err := s.repo.GetFlag(ctx, domain.RoleAffiliate, id)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("get affiliate flag: %w", err))
	}
	return active, nil
}

// AffiliateLink returns the stored upline of child, domain.NoDID if none.
func (s *RegistryServiceImpl) AffiliateLink(ctx context.Context, child domain.DID) (domain.DID, error) {
	parent, err := s.repo.GetLink(ctx, child)
	if err != nil {
		return domain.NoDID, apperror.InternalError(fmt.Errorf("get link: %w", err))
	}
	return parent, nil
}

// ResolveIdentity returns the live ledger view of id.
func (s *RegistryServiceImpl) ResolveIdentity(ctx context.Context, id domain.DID) (*ports.IdentityInfo, error) {
	ctx, span := tracer.Start(ctx, "Registry.Service.ResolveIdentity")
	defer span.End()

	controller, ok, err := s.ledger.ResolveController(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, apperror.InternalError(fmt.Errorf("resolve controller: %w", err))
	}
	info := &ports.IdentityInfo{ID: id, Controller: controller, Active: ok}
	if !ok {
		return info, nil
	}

	info.Metadata, err = s.ledger.Metadata(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrIdentityNotFound) {
		span.RecordError(err)
		return nil, apperror.InternalError(fmt.Errorf("get metadata: %w", err))
	}
	return info, nil
}

// DeleteIdentity deletes id on the ledger. Only its controller may do so.
// Registry state is left untouched; payments re-check liveness.
func (s *RegistryServiceImpl) DeleteIdentity(ctx context.Context, caller domain.Principal, id domain.DID) error {
	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		return ledgerError(s.ledger.DeleteIdentity(ctx, id, caller))
	})
	s.metrics.IncrementMutation("delete_identity", metrics.Outcome(apperror.CodeOf(err), err))
	if err != nil {
		return err
	}

	s.events.Publish(ctx, domain.NewEvent(domain.EventIdentityDeleted, caller, id))
	s.log.Info().
		Str("identity", id.Hex()).
		Str("controller", caller.Hex()).
		Msg("identity deleted")
	return nil
}

// SetIdentityMetadata stores metadata on the ledger. Only the controller may do so.
func (s *RegistryServiceImpl) SetIdentityMetadata(ctx context.Context, caller domain.Principal, id domain.DID, metadata common.Hash) error {
	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		return ledgerError(s.ledger.SetMetadata(ctx, id, caller, metadata))
	})
	s.metrics.IncrementMutation("set_metadata", metrics.Outcome(apperror.CodeOf(err), err))
	if err != nil {
		return err
	}

	s.log.Info().
		Str("identity", id.Hex()).
		Str("metadata", metadata.Hex()).
		Msg("identity metadata set")
	return nil
}

// liveAffiliate reports whether id is an active affiliate with a live
// controller on the ledger.
func (s *RegistryServiceImpl) liveAffiliate(ctx context.Context, id domain.DID) (bool, error) {
	active, err := s.repo.GetFlag(ctx, domain.RoleAffiliate, id)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("get affiliate flag: %w", err))
	}
	if !active {
		return false, nil
	}
	_, ok, err := s.ledger.ResolveController(ctx, id)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("resolve controller: %w", err))
	}
	return ok, nil
}

// ledgerError maps identity ledger sentinels to AppErrors.
func ledgerError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrIdentityNotFound):
		return apperror.ErrIdentityNotFound()
	case errors.Is(err, domain.ErrNotController):
		return apperror.ErrNotController()
	default:
		return apperror.InternalError(fmt.Errorf("identity ledger: %w", err))
	}
}

func flagOperation(role domain.Role, active bool) string {
	switch {
	case role == domain.RoleVendor && active:
		return "register_vendor"
	case role == domain.RoleVendor:
		return "remove_vendor"
	case active:
		return "register_affiliate"
	default:
		return "remove_affiliate"
	}
}

func flagEvent(role domain.Role, active bool) domain.EventKind {
	switch {
	case role == domain.RoleVendor && active:
		return domain.EventVendorRegistered
	case role == domain.RoleVendor:
		return domain.EventVendorRemoved
	case active:
		return domain.EventAffiliateRegistered
	default:
		return domain.EventAffiliateRemoved
	}
}
