package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/domain"
	"github.com/mohamed-arshad-ch/aq-pay-api/internal/service/notificationservice"
	"github.com/mohamed-arshad-ch/aq-pay-api/pkg/auth"
)

type Repo interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User) error
	UpdatePortalAccess(ctx context.Context, id uuid.UUID, approved bool) (*domain.User, error)
	ListPendingPortalAccess(ctx context.Context, limit, offset int) ([]domain.User, error)
}

type WalletProvisioner interface {
	EnsureExists(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
}

type Notifier interface {
	Publish(n *domain.Notification)
}

var (
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPortalAccessPending = errors.New("portal access pending admin approval")
	ErrUserNotFound        = errors.New("user not found")
)

const tokenTTL = 24 * time.Hour

type Service struct {
	userRepo    Repo
	wallets     WalletProvisioner
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	notifier    Notifier
}

func New(userRepo Repo, wallets WalletProvisioner, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, notifier Notifier) *Service {
	return &Service{
		userRepo:    userRepo,
		wallets:     wallets,
		hashService: hashService,
		jwtService:  jwtService,
		notifier:    notifier,
	}
}

func (s *Service) Register(ctx context.Context, email, password, firstName, lastName, phoneNumber string) (*domain.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("failed to look up user", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("email already registered", zap.String("email", email))
		return nil, ErrEmailTaken
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hashedPassword,
		FirstName:    firstName,
		LastName:     lastName,
		PhoneNumber:  phoneNumber,
		Role:         domain.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		zap.L().Error("failed to create user", zap.Error(err))
		return nil, err
	}

	s.notifier.Publish(notificationservice.Registration(user.ID))
	zap.L().Info("user registered", zap.String("email", email))
	return user, nil
}

// Authenticate verifies credentials and enforces the portal gate: a
// regular user cannot log in until an admin has approved access.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Info("authentication failed", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("authentication failed", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if user.Role != domain.RoleAdmin && !user.IsPortalAccess {
		return nil, ErrPortalAccessPending
	}
	return user, nil
}

func (s *Service) GenerateToken(userID uuid.UUID, role domain.Role) (string, error) {
	token, err := s.jwtService.GenerateJWT(userID, string(role), time.Now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("failed to generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, firstName, lastName, phoneNumber string) (*domain.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.FirstName = firstName
	user.LastName = lastName
	user.PhoneNumber = phoneNumber
	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetPortalAccess is the admin decision on a registration. Approval
// provisions the user's wallet so the first add-money request finds
// one; provisioning failure is logged but does not undo the approval.
func (s *Service) SetPortalAccess(ctx context.Context, userID uuid.UUID, approved bool) (*domain.User, error) {
	user, err := s.userRepo.UpdatePortalAccess(ctx, userID, approved)
	if err != nil {
		zap.L().Error("failed to update portal access", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if approved {
		if _, err := s.wallets.EnsureExists(ctx, userID); err != nil {
			zap.L().Error("failed to provision wallet", zap.String("userID", userID.String()), zap.Error(err))
		}
	}

	s.notifier.Publish(notificationservice.PortalAccess(userID, approved))
	zap.L().Info("portal access updated",
		zap.String("userID", userID.String()),
		zap.Bool("approved", approved),
	)
	return user, nil
}

func (s *Service) ListPendingPortalAccess(ctx context.Context, limit, offset int) ([]domain.User, error) {
	return s.userRepo.ListPendingPortalAccess(ctx, limit, offset)
}
