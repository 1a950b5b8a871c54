package service

import (
	"context"
	"fmt"

	"did-payment-splitter/internal/core/domain"
	"did-payment-splitter/internal/core/ports"
	"did-payment-splitter/pkg/apperror"
	"did-payment-splitter/pkg/metrics"

	"github.com/rs/zerolog"
)

// AdminServiceImpl implements ports.AdminService. It is also the
// ports.AccessGate every mutator checks against.
type AdminServiceImpl struct {
	repo       ports.AdminRepository
	transactor ports.Transactor
	events     ports.EventPublisher
	metrics    *metrics.Metrics
	log        zerolog.Logger
}

// NewAdminService creates a new AdminServiceImpl.
func NewAdminService(
	repo ports.AdminRepository,
	transactor ports.Transactor,
	events ports.EventPublisher,
	m *metrics.Metrics,
	log zerolog.Logger,
) *AdminServiceImpl {
	return &AdminServiceImpl{
		repo:       repo,
		transactor: transactor,
		events:     events,
		metrics:    m,
		log:        log,
	}
}

// RequireOwner fails with AdminOnly unless caller is the owner.
func (s *AdminServiceImpl) RequireOwner(ctx context.Context, caller domain.Principal) error {
	owner, err := s.repo.GetOwner(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get owner: %w", err))
	}
	if owner == domain.NoPrincipal || owner != caller {
		return apperror.ErrAdminOnly()
	}
	return nil
}

// RequireWhitelisted fails with WhitelistOnly unless caller is whitelisted.
// The owner gets no implicit pass.
func (s *AdminServiceImpl) RequireWhitelisted(ctx context.Context, caller domain.Principal) error {
	ok, err := s.repo.IsWhitelisted(ctx, caller)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("check whitelist: %w", err))
	}
	if !ok {
		return apperror.ErrWhitelistOnly()
	}
	return nil
}

// AddWhitelisted whitelists p. Adding an already whitelisted principal is a no-op.
func (s *AdminServiceImpl) AddWhitelisted(ctx context.Context, caller, p domain.Principal) error {
	return s.setWhitelisted(ctx, caller, p, true)
}

// RemoveWhitelisted removes p from the whitelist. Idempotent.
func (s *AdminServiceImpl) RemoveWhitelisted(ctx context.Context, caller, p domain.Principal) error {
	return s.setWhitelisted(ctx, caller, p, false)
}

func (s *AdminServiceImpl) setWhitelisted(ctx context.Context, caller, p domain.Principal, active bool) error {
	op, kind := "whitelist_add", domain.EventWhitelistAdded
	if !active {
		op, kind = "whitelist_remove", domain.EventWhitelistRemoved
	}

	changed := false
	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.RequireOwner(ctx, caller); err != nil {
			return err
		}
		if p == domain.NoPrincipal {
			return apperror.ErrInvalidPrincipal()
		}
		current, err := s.repo.IsWhitelisted(ctx, p)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("check whitelist: %w", err))
		}
		if current == active {
			return nil
		}
		if err := s.repo.SetWhitelisted(ctx, p, active); err != nil {
			return apperror.InternalError(fmt.Errorf("set whitelist: %w", err))
		}
		changed = true
		return nil
	})
	s.metrics.IncrementMutation(op, metrics.Outcome(apperror.CodeOf(err), err))
	if err != nil {
		return err
	}

	if changed {
		s.events.Publish(ctx, domain.NewEvent(kind, caller, domain.NoDID).
			With("principal", p.Hex()))
		s.log.Info().
			Str("caller", caller.Hex()).
			Str("principal", p.Hex()).
			Bool("whitelisted", active).
			Msg("whitelist updated")
	}
	return nil
}

// IsWhitelisted reports whether p is whitelisted.
func (s *AdminServiceImpl) IsWhitelisted(ctx context.Context, p domain.Principal) (bool, error) {
	ok, err := s.repo.IsWhitelisted(ctx, p)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("check whitelist: %w", err))
	}
	return ok, nil
}

// Owner returns the owning admin, domain.NoPrincipal before bootstrap.
func (s *AdminServiceImpl) Owner(ctx context.Context) (domain.Principal, error) {
	owner, err := s.repo.GetOwner(ctx)
	if err != nil {
		return domain.NoPrincipal, apperror.InternalError(fmt.Errorf("get owner: %w", err))
	}
	return owner, nil
}

// TransferOwnership hands the owner role to newOwner.
func (s *AdminServiceImpl) TransferOwnership(ctx context.Context, caller, newOwner domain.Principal) error {
	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.RequireOwner(ctx, caller); err != nil {
			return err
		}
		if newOwner == domain.NoPrincipal {
			return apperror.ErrInvalidPrincipal()
		}
		if err := s.repo.SetOwner(ctx, newOwner); err != nil {
			return apperror.InternalError(fmt.Errorf("set owner: %w", err))
		}
		return nil
	})
	s.metrics.IncrementMutation("transfer_ownership", metrics.Outcome(apperror.CodeOf(err), err))
	if err != nil {
		return err
	}

	s.events.Publish(ctx, domain.NewEvent(domain.EventOwnershipTransferred, caller, domain.NoDID).
		With("previous_owner", caller.Hex()).
		With("new_owner", newOwner.Hex()))
	s.log.Info().
		Str("previous_owner", caller.Hex()).
		Str("new_owner", newOwner.Hex()).
		Msg("ownership transferred")
	return nil
}

// Bootstrap stores owner when no owner exists. An existing owner is kept.
func (s *AdminServiceImpl) Bootstrap(ctx context.Context, owner domain.Principal) error {
	if owner == domain.NoPrincipal {
		return apperror.ErrInvalidPrincipal()
	}

	stored := false
	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.repo.GetOwner(ctx)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("get owner: %w", err))
		}
		if current != domain.NoPrincipal {
			return nil
		}
		if err := s.repo.SetOwner(ctx, owner); err != nil {
			return apperror.InternalError(fmt.Errorf("set owner: %w", err))
		}
		stored = true
		return nil
	})
	if err != nil {
		return err
	}

	if stored {
		s.log.Info().Str("owner", owner.Hex()).Msg("owner bootstrapped")
	}
	return nil
}
