package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/domain/service"
	mockRepo "jobboard/internal/mocks/repository"
	mockSvc "jobboard/internal/mocks/service"
	"jobboard/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	accountRepo  *mockRepo.MockAccountRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	metrics      *mockSvc.MockAuthMetrics
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	metrics := mockSvc.NewMockAuthMetrics(t)

	svc := NewAuthService(AuthServiceParams{
		AccountRepo:  accountRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Metrics:      metrics,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      svc,
		accountRepo:  accountRepo,
		hasher:       hasher,
		tokenService: tokenService,
		metrics:      metrics,
	}
}

func issuedToken() *service.IssuedToken {
	return &service.IssuedToken{Token: "signed.jwt.token", ExpiresAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{Username: " alice ", Email: " Alice@Example.COM ", Password: "s3cret!"}

	fx.tokenService.EXPECT().Ready().Return(nil)
	fx.accountRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Hash("s3cret!").Return("$2a$10$hash", nil)

	var created *entity.Account
	fx.accountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) {
			account.ID = newAccountID()
			created = account
		}).
		Return(nil)
	fx.tokenService.EXPECT().Issue(mock.AnythingOfType("entity.AccountID")).Return(issuedToken(), nil)
	fx.metrics.EXPECT().ObserveRegistration(service.OutcomeSuccess).Return()

	out, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, "alice@example.com", created.Email)
	assert.Equal(t, "$2a$10$hash", created.PasswordHash)
	assert.Equal(t, "signed.jwt.token", out.Token)
	assert.Equal(t, created.ID, out.Account.ID)
	assert.Equal(t, "alice", out.Account.Username)
	assert.Equal(t, "alice@example.com", out.Account.Email)
}

func TestAuthService_Register_EmailCheckedBeforeUsername(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().Ready().Return(nil)
	fx.accountRepo.EXPECT().FindByEmail(ctx, "taken@example.com").Return(&entity.Account{ID: newAccountID()}, nil)
	fx.metrics.EXPECT().ObserveRegistration(service.OutcomeEmailExists).Return()

	// Username is also taken but never consulted.
	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "taken", Email: "taken@example.com", Password: "pw"})

	require.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
	fx.accountRepo.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
	fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().Ready().Return(nil)
	fx.accountRepo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().FindByUsername(ctx, "alice").Return(&entity.Account{ID: newAccountID()}, nil)
	fx.metrics.EXPECT().ObserveRegistration(service.OutcomeUsernameExists).Return()

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "alice", Email: "new@example.com", Password: "pw"})

	require.ErrorIs(t, err, domainerrors.ErrUsernameAlreadyExists)
	fx.accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_RaceLoserMapsToConflict(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		want    error
		outcome string
	}{
		{"email", errors.Wrap(repository.ErrEmailTaken, "idx_accounts_email"), domainerrors.ErrEmailAlreadyExists, service.OutcomeEmailExists},
		{"username", errors.Wrap(repository.ErrUsernameTaken, "idx_accounts_username"), domainerrors.ErrUsernameAlreadyExists, service.OutcomeUsernameExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			ctx := context.Background()

			fx.tokenService.EXPECT().Ready().Return(nil)
			fx.accountRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(nil, repository.ErrAccountNotFound)
			fx.accountRepo.EXPECT().FindByUsername(ctx, "a").Return(nil, repository.ErrAccountNotFound)
			fx.hasher.EXPECT().Hash("pw").Return("hash", nil)
			fx.accountRepo.EXPECT().Create(ctx, mock.Anything).Return(tt.repoErr)
			fx.metrics.EXPECT().ObserveRegistration(tt.outcome).Return()

			_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "a", Email: "a@example.com", Password: "pw"})

			require.ErrorIs(t, err, tt.want)
			fx.tokenService.AssertNotCalled(t, "Issue", mock.Anything)
		})
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.RegisterInput
	}{
		{"no username", usecase.RegisterInput{Email: "a@example.com", Password: "pw"}},
		{"blank username", usecase.RegisterInput{Username: "   ", Email: "a@example.com", Password: "pw"}},
		{"no email", usecase.RegisterInput{Username: "a", Password: "pw"}},
		{"no password", usecase.RegisterInput{Username: "a", Email: "a@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)

			_, err := fx.service.Register(context.Background(), &tt.input)

			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestAuthService_Register_LengthLimits(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.RegisterInput
	}{
		{"multibyte password over 72 bytes", usecase.RegisterInput{Username: "a", Email: "a@example.com", Password: strings.Repeat("密", 30)}},
		{"ascii password over 72 bytes", usecase.RegisterInput{Username: "a", Email: "a@example.com", Password: strings.Repeat("p", 73)}},
		{"username over 50 characters", usecase.RegisterInput{Username: strings.Repeat("u", 51), Email: "a@example.com", Password: "pw"}},
		{"email over 254 characters", usecase.RegisterInput{Username: "a", Email: strings.Repeat("e", 250) + "@x.io", Password: "pw"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)

			_, err := fx.service.Register(context.Background(), &tt.input)

			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
			fx.accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthService_Register_LimitsAreInclusive(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	username := strings.Repeat("é", 50)
	password := strings.Repeat("p", 72)

	fx.tokenService.EXPECT().Ready().Return(nil)
	fx.accountRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().FindByUsername(ctx, username).Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Hash(password).Return("hash", nil)
	fx.accountRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.tokenService.EXPECT().Issue(mock.Anything).Return(issuedToken(), nil)
	fx.metrics.EXPECT().ObserveRegistration(service.OutcomeSuccess).Return()

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: username, Email: "a@example.com", Password: password})

	require.NoError(t, err)
	assert.Equal(t, username, out.Account.Username)
}

func TestAuthService_Register_SigningKeyMissingAbortsBeforeWrite(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().Ready().Return(service.ErrSigningKeyMissing)
	fx.metrics.EXPECT().ObserveRegistration(service.OutcomeConfigError).Return()

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Username: "a", Email: "a@example.com", Password: "pw"})

	require.ErrorIs(t, err, domainerrors.ErrConfiguration)
	fx.accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().Ready().Return(nil)
	fx.accountRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().FindByUsername(ctx, "a").Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Hash("pw").Return("", errors.New("entropy exhausted"))
	fx.metrics.EXPECT().ObserveRegistration(service.OutcomeError).Return()

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "a", Email: "a@example.com", Password: "pw"})

	require.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	fx.accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_TokenFailureKeepsAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().Ready().Return(nil)
	fx.accountRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().FindByUsername(ctx, "a").Return(nil, repository.ErrAccountNotFound)
	fx.hasher.EXPECT().Hash("pw").Return("hash", nil)
	fx.accountRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.tokenService.EXPECT().Issue(mock.Anything).Return(nil, errors.New("signer failed"))
	fx.metrics.EXPECT().ObserveRegistration(service.OutcomeError).Return()

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "a", Email: "a@example.com", Password: "pw"})

	require.ErrorIs(t, err, domainerrors.ErrTokenIssueFailed)
	assert.Nil(t, out)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	account := &entity.Account{ID: newAccountID(), Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}

	fx.tokenService.EXPECT().Ready().Return(nil)
	fx.accountRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(account, nil)
	fx.hasher.EXPECT().Check("pw", "hash").Return(true)
	fx.tokenService.EXPECT().Issue(account.ID).Return(issuedToken(), nil)
	fx.metrics.EXPECT().ObserveLogin(service.OutcomeSuccess).Return()

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ALICE@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", out.Token)
	assert.Equal(t, account.Public(), out.Account)
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()

	// Unknown email.
	unknown := createTestAuthService(t)
	unknown.tokenService.EXPECT().Ready().Return(nil)
	unknown.accountRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrAccountNotFound)
	unknown.hasher.EXPECT().Hash(timingPassword).Return("dummy", nil).Once()
	unknown.hasher.EXPECT().Check("pw", "dummy").Return(false)
	unknown.metrics.EXPECT().ObserveLogin(service.OutcomeInvalidCredentials).Return()

	_, unknownErr := unknown.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "pw"})

	// Wrong password.
	wrong := createTestAuthService(t)
	wrong.tokenService.EXPECT().Ready().Return(nil)
	wrong.accountRepo.EXPECT().FindByEmail(ctx, "alice@example.com").
		Return(&entity.Account{ID: newAccountID(), PasswordHash: "hash"}, nil)
	wrong.hasher.EXPECT().Check("pw", "hash").Return(false)
	wrong.metrics.EXPECT().ObserveLogin(service.OutcomeInvalidCredentials).Return()

	_, wrongErr := wrong.service.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "pw"})

	require.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	require.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	unknown.tokenService.AssertNotCalled(t, "Issue", mock.Anything)
	wrong.tokenService.AssertNotCalled(t, "Issue", mock.Anything)
}

func TestAuthService_Login_TimingHashComputedOnce(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().Ready().Return(nil).Twice()
	fx.accountRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrAccountNotFound).Twice()
	fx.hasher.EXPECT().Hash(timingPassword).Return("dummy", nil).Once()
	fx.hasher.EXPECT().Check("pw", "dummy").Return(false).Twice()
	fx.metrics.EXPECT().ObserveLogin(service.OutcomeInvalidCredentials).Return().Twice()

	for range 2 {
		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "pw"})
		require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	}
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().Ready().Return(nil)
	fx.accountRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(nil, domainerrors.ErrInternalError)
	fx.metrics.EXPECT().ObserveLogin(service.OutcomeError).Return()

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@example.com", Password: "pw"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_SigningKeyMissing(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().Ready().Return(service.ErrSigningKeyMissing)
	fx.metrics.EXPECT().ObserveLogin(service.OutcomeConfigError).Return()

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "a@example.com", Password: "pw"})

	require.ErrorIs(t, err, domainerrors.ErrConfiguration)
}

func TestAuthService_CurrentAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		fx := createTestAuthService(t)
		account := &entity.Account{ID: newAccountID(), Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}
		fx.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)

		got, err := fx.service.CurrentAccount(ctx, account.ID)

		require.NoError(t, err)
		assert.Equal(t, account.Public(), *got)
	})

	t.Run("deleted account behind a valid token", func(t *testing.T) {
		fx := createTestAuthService(t)
		id := newAccountID()
		fx.accountRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAccountNotFound)

		_, err := fx.service.CurrentAccount(ctx, id)

		require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
		fx.metrics.AssertNotCalled(t, "ObserveAuthentication", mock.Anything)
	})
}

func TestNewAuthService_DefaultsToNoopMetrics(t *testing.T) {
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewAuthService(AuthServiceParams{
		AccountRepo:  mockRepo.NewMockAccountRepository(t),
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	tokenService.EXPECT().Ready().Return(service.ErrSigningKeyMissing)

	assert.NotPanics(t, func() {
		_, err := svc.Login(context.Background(), &usecase.LoginInput{Email: "a@example.com", Password: "pw"})
		require.ErrorIs(t, err, domainerrors.ErrConfiguration)
	})
}
