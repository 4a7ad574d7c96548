package mpinservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/domain"
	"github.com/mohamed-arshad-ch/aq-pay-api/pkg/validate"
)

type Repo interface {
	Create(ctx context.Context, mpin *domain.MPin) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.MPin, error)
	UpdateHash(ctx context.Context, userID uuid.UUID, pinHash string) error
	Touch(ctx context.Context, userID uuid.UUID) error
	SetActive(ctx context.Context, userID uuid.UUID, active bool) error
}

type Hasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(hashedPassword, password string) bool
}

var (
	ErrMPinExists   = errors.New("mpin already set")
	ErrMPinNotSet   = errors.New("mpin not set")
	ErrMPinInvalid  = errors.New("invalid mpin")
	ErrMPinDisabled = errors.New("mpin is disabled")
	ErrMPinFormat   = errors.New("mpin must be exactly 6 digits")
)

type Service struct {
	mpinRepo Repo
	hasher   Hasher
}

func New(mpinRepo Repo, hasher Hasher) *Service {
	return &Service{mpinRepo: mpinRepo, hasher: hasher}
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, pin string) error {
	if !validate.IsMPin(pin) {
		return ErrMPinFormat
	}
	existing, err := s.mpinRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to look up mpin", zap.Error(err))
		return err
	}
	if existing != nil {
		return ErrMPinExists
	}

	hash, err := s.hasher.HashPassword(pin)
	if err != nil {
		zap.L().Error("failed to hash mpin", zap.Error(err))
		return err
	}
	return s.mpinRepo.Create(ctx, &domain.MPin{UserID: userID, PinHash: hash, IsActive: true})
}

// Verify checks the pin and records the use. Callers gate sensitive
// operations on a nil error.
func (s *Service) Verify(ctx context.Context, userID uuid.UUID, pin string) error {
	if !validate.IsMPin(pin) {
		return ErrMPinFormat
	}
	mpin, err := s.mpinRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to look up mpin", zap.Error(err))
		return err
	}
	if mpin == nil {
		return ErrMPinNotSet
	}
	if !mpin.IsActive {
		return ErrMPinDisabled
	}
	if !s.hasher.ComparePassword(mpin.PinHash, pin) {
		return ErrMPinInvalid
	}
	if err := s.mpinRepo.Touch(ctx, userID); err != nil {
		return err
	}
	return nil
}

func (s *Service) Change(ctx context.Context, userID uuid.UUID, oldPin, newPin string) error {
	if !validate.IsMPin(newPin) {
		return ErrMPinFormat
	}
	if err := s.Verify(ctx, userID, oldPin); err != nil {
		return err
	}
	hash, err := s.hasher.HashPassword(newPin)
	if err != nil {
		zap.L().Error("failed to hash mpin", zap.Error(err))
		return err
	}
	return s.mpinRepo.UpdateHash(ctx, userID, hash)
}

// Status reports whether the user has an mpin and whether it is active.
func (s *Service) Status(ctx context.Context, userID uuid.UUID) (set bool, active bool, err error) {
	mpin, err := s.mpinRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to look up mpin", zap.Error(err))
		return false, false, err
	}
	if mpin == nil {
		return false, false, nil
	}
	return true, mpin.IsActive, nil
}
