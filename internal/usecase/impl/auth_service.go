// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/repository"
	"jobboard/internal/domain/service"
	"jobboard/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// timingPassword is hashed once and checked against on unknown-email logins so that a
// missing account costs the same bcrypt work as a wrong password.
const timingPassword = "jobboard-timing-equaliser"

// authService implements the AuthUsecase interface.
type authService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	metrics      service.AuthMetrics
	logger       *slog.Logger

	dummyHashOnce sync.Once
	dummyHash     string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Metrics      service.AuthMetrics `optional:"true"`
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NoopAuthMetrics{}
	}

	return &authService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		metrics:      metrics,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the registration flow:
// validate, email check, username check, hash, persist, issue token.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	username := strings.TrimSpace(input.Username)
	email := normalizeEmail(input.Email)

	if username == "" || email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("username, email and password are required")
	}

	if err := checkAccountLimits(username, email, input.Password); err != nil {
		return nil, err
	}

	if err := srv.ensureSigningReady(ctx); err != nil {
		srv.metrics.ObserveRegistration(service.OutcomeConfigError)

		return nil, err
	}

	if err := srv.ensureUnique(ctx, email, username); err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))
		srv.metrics.ObserveRegistration(service.OutcomeError)

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	account := &entity.Account{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailTaken):
			srv.metrics.ObserveRegistration(service.OutcomeEmailExists)

			return nil, domainerrors.ErrEmailAlreadyExists
		case errors.Is(err, repository.ErrUsernameTaken):
			srv.metrics.ObserveRegistration(service.OutcomeUsernameExists)

			return nil, domainerrors.ErrUsernameAlreadyExists
		}

		srv.metrics.ObserveRegistration(service.OutcomeError)

		return nil, errors.Wrap(err, "failed to create account during registration")
	}

	// The account is stored from here on. A token failure leaves it in place and the
	// caller is expected to log in once the problem is fixed.
	output, err := srv.issue(account)
	if err != nil {
		srv.log(ctx).Error("Account created but token issuance failed",
			slog.String("accountID", account.ID.String()),
			slog.Any("error", err),
		)
		srv.metrics.ObserveRegistration(service.OutcomeError)

		return nil, err
	}

	srv.metrics.ObserveRegistration(service.OutcomeSuccess)
	srv.log(ctx).Info("Account registered", slog.String("accountID", account.ID.String()))

	return output, nil
}

func (srv *authService) ensureUnique(ctx context.Context, email, username string) error {
	if _, err := srv.accountRepo.FindByEmail(ctx, email); err == nil {
		srv.metrics.ObserveRegistration(service.OutcomeEmailExists)

		return domainerrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, repository.ErrAccountNotFound) {
		srv.metrics.ObserveRegistration(service.OutcomeError)

		return errors.Wrap(err, "failed to check email uniqueness")
	}

	if _, err := srv.accountRepo.FindByUsername(ctx, username); err == nil {
		srv.metrics.ObserveRegistration(service.OutcomeUsernameExists)

		return domainerrors.ErrUsernameAlreadyExists
	} else if !errors.Is(err, repository.ErrAccountNotFound) {
		srv.metrics.ObserveRegistration(service.OutcomeError)

		return errors.Wrap(err, "failed to check username uniqueness")
	}

	return nil
}

// Login verifies credentials. Unknown email and wrong password are indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	if err := srv.ensureSigningReady(ctx); err != nil {
		srv.metrics.ObserveLogin(service.OutcomeConfigError)

		return nil, err
	}

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrAccountNotFound) {
			srv.metrics.ObserveLogin(service.OutcomeError)

			return nil, errors.Wrap(err, "failed to find account by email")
		}

		srv.equaliseTiming(ctx, input.Password)
		srv.log(ctx).Info("Login rejected", slog.String("reason", "unknown email"))
		srv.metrics.ObserveLogin(service.OutcomeInvalidCredentials)

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Info("Login rejected",
			slog.String("reason", "password mismatch"),
			slog.String("accountID", account.ID.String()),
		)
		srv.metrics.ObserveLogin(service.OutcomeInvalidCredentials)

		return nil, domainerrors.ErrInvalidCredentials
	}

	output, err := srv.issue(account)
	if err != nil {
		srv.log(ctx).Error("Token issuance failed during login", slog.Any("error", err))
		srv.metrics.ObserveLogin(service.OutcomeError)

		return nil, err
	}

	srv.metrics.ObserveLogin(service.OutcomeSuccess)

	return output, nil
}

// CurrentAccount loads the caller's public view.
func (srv *authService) CurrentAccount(ctx context.Context, accountID entity.AccountID) (*entity.PublicAccount, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			// A valid token for an account that no longer exists. The authenticator has
			// already counted this request, so it is only logged here.
			srv.log(ctx).Warn("Token subject has no account", slog.String("accountID", accountID.String()))

			return nil, domainerrors.ErrUnauthenticated
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	public := account.Public()

	return &public, nil
}

func (srv *authService) ensureSigningReady(ctx context.Context) error {
	if err := srv.tokenService.Ready(); err != nil {
		srv.log(ctx).Error("Token signing is not configured", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrConfiguration, err.Error())
	}

	return nil
}

func (srv *authService) issue(account *entity.Account) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.Issue(account.ID)
	if err != nil {
		if errors.Is(err, service.ErrSigningKeyMissing) {
			return nil, errors.Wrap(domainerrors.ErrConfiguration, err.Error())
		}

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return &usecase.AuthOutput{
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
		Account:   account.Public(),
	}, nil
}

func (srv *authService) equaliseTiming(ctx context.Context, password string) {
	srv.dummyHashOnce.Do(func() {
		hash, err := srv.hasher.Hash(timingPassword)
		if err != nil {
			srv.log(ctx).Warn("Failed to prepare timing hash", slog.Any("error", err))

			return
		}
		srv.dummyHash = hash
	})

	if srv.dummyHash != "" {
		_ = srv.hasher.Check(password, srv.dummyHash)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// checkAccountLimits keeps input that validates from failing later in bcrypt or in the
// store's column widths.
func checkAccountLimits(username, email, password string) error {
	switch {
	case utf8.RuneCountInString(username) > usecase.MaxUsernameLength:
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("username: max=%d", usecase.MaxUsernameLength))
	case utf8.RuneCountInString(email) > usecase.MaxEmailLength:
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("email: max=%d", usecase.MaxEmailLength))
	case len(password) > usecase.MaxPasswordBytes:
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("password: longer than %d bytes", usecase.MaxPasswordBytes))
	}

	return nil
}
