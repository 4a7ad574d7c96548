package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mohamed-arshad-ch/aq-pay-api/internal/domain"
	"github.com/mohamed-arshad-ch/aq-pay-api/pkg/auth"
)

type authMocks struct {
	repo    *MockRepo
	wallets *MockWalletProvisioner
	hash    *auth.MockHashServiceInterface
	jwt     *auth.MockJWTServiceInterface
}

func newTestService(t *testing.T) (*Service, authMocks) {
	ctrl := gomock.NewController(t)
	m := authMocks{
		repo:    NewMockRepo(ctrl),
		wallets: NewMockWalletProvisioner(ctrl),
		hash:    auth.NewMockHashServiceInterface(ctrl),
		jwt:     auth.NewMockJWTServiceInterface(ctrl),
	}
	notifier := NewMockNotifier(ctrl)
	notifier.EXPECT().Publish(gomock.Any()).AnyTimes()

	svc := New(m.repo, m.wallets, m.hash, m.jwt, notifier)
	return svc, m
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("new email registers", func(t *testing.T) {
		svc, m := newTestService(t)
		m.repo.EXPECT().FindByEmail(ctx, "a@b.c").Return(nil, nil)
		m.hash.EXPECT().HashPassword("secret").Return("hashed", nil)
		m.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, user *domain.User) error {
				user.ID = uuid.New()
				return nil
			},
		)

		user, err := svc.Register(ctx, "a@b.c", "secret", "Ada", "Lovelace", "9876543210")
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleUser, user.Role)
		assert.Equal(t, "hashed", user.PasswordHash)
		assert.False(t, user.IsPortalAccess)
	})

	t.Run("taken email is refused", func(t *testing.T) {
		svc, m := newTestService(t)
		m.repo.EXPECT().FindByEmail(ctx, "a@b.c").Return(&domain.User{Email: "a@b.c"}, nil)

		_, err := svc.Register(ctx, "a@b.c", "secret", "Ada", "Lovelace", "9876543210")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestService_Authenticate(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	approved := &domain.User{ID: userID, Email: "a@b.c", PasswordHash: "hashed", Role: domain.RoleUser, IsPortalAccess: true}

	t.Run("approved user logs in", func(t *testing.T) {
		svc, m := newTestService(t)
		m.repo.EXPECT().FindByEmail(ctx, "a@b.c").Return(approved, nil)
		m.hash.EXPECT().ComparePassword("hashed", "secret").Return(true)

		user, err := svc.Authenticate(ctx, "a@b.c", "secret")
		assert.NoError(t, err)
		assert.Equal(t, userID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, m := newTestService(t)
		m.repo.EXPECT().FindByEmail(ctx, "a@b.c").Return(approved, nil)
		m.hash.EXPECT().ComparePassword("hashed", "nope").Return(false)

		_, err := svc.Authenticate(ctx, "a@b.c", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, m := newTestService(t)
		m.repo.EXPECT().FindByEmail(ctx, "ghost@b.c").Return(nil, nil)

		_, err := svc.Authenticate(ctx, "ghost@b.c", "secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("portal gate blocks unapproved user", func(t *testing.T) {
		svc, m := newTestService(t)
		pending := *approved
		pending.IsPortalAccess = false
		m.repo.EXPECT().FindByEmail(ctx, "a@b.c").Return(&pending, nil)
		m.hash.EXPECT().ComparePassword("hashed", "secret").Return(true)

		_, err := svc.Authenticate(ctx, "a@b.c", "secret")
		assert.ErrorIs(t, err, ErrPortalAccessPending)
	})

	t.Run("admin bypasses the gate", func(t *testing.T) {
		svc, m := newTestService(t)
		admin := *approved
		admin.Role = domain.RoleAdmin
		admin.IsPortalAccess = false
		m.repo.EXPECT().FindByEmail(ctx, "a@b.c").Return(&admin, nil)
		m.hash.EXPECT().ComparePassword("hashed", "secret").Return(true)

		_, err := svc.Authenticate(ctx, "a@b.c", "secret")
		assert.NoError(t, err)
	})
}

func TestService_SetPortalAccess(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("approval provisions a wallet", func(t *testing.T) {
		svc, m := newTestService(t)
		m.repo.EXPECT().UpdatePortalAccess(ctx, userID, true).Return(
			&domain.User{ID: userID, IsPortalAccess: true}, nil)
		m.wallets.EXPECT().EnsureExists(ctx, userID).Return(&domain.Wallet{UserID: userID}, nil)

		user, err := svc.SetPortalAccess(ctx, userID, true)
		assert.NoError(t, err)
		assert.True(t, user.IsPortalAccess)
	})

	t.Run("provisioning failure does not undo the approval", func(t *testing.T) {
		svc, m := newTestService(t)
		m.repo.EXPECT().UpdatePortalAccess(ctx, userID, true).Return(
			&domain.User{ID: userID, IsPortalAccess: true}, nil)
		m.wallets.EXPECT().EnsureExists(ctx, userID).Return(nil, errors.New("database error"))

		user, err := svc.SetPortalAccess(ctx, userID, true)
		assert.NoError(t, err)
		assert.True(t, user.IsPortalAccess)
	})

	t.Run("denial skips provisioning", func(t *testing.T) {
		svc, m := newTestService(t)
		m.repo.EXPECT().UpdatePortalAccess(ctx, userID, false).Return(
			&domain.User{ID: userID, IsPortalAccess: false}, nil)

		user, err := svc.SetPortalAccess(ctx, userID, false)
		assert.NoError(t, err)
		assert.False(t, user.IsPortalAccess)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, m := newTestService(t)
		m.repo.EXPECT().UpdatePortalAccess(ctx, userID, true).Return(nil, nil)

		_, err := svc.SetPortalAccess(ctx, userID, true)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestService_UpdateProfile(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()
	userID := uuid.New()

	m.repo.EXPECT().FindByID(ctx, userID).Return(
		&domain.User{ID: userID, FirstName: "Ada", LastName: "Lovelace"}, nil)
	m.repo.EXPECT().UpdateProfile(ctx, gomock.Any()).Return(nil)

	user, err := svc.UpdateProfile(ctx, userID, "Grace", "Hopper", "9876500000")
	assert.NoError(t, err)
	assert.Equal(t, "Grace", user.FirstName)
	assert.Equal(t, "9876500000", user.PhoneNumber)
}
