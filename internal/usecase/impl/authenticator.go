package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "jobboard/internal/delivery/context"
	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	"jobboard/internal/domain/service"
	"jobboard/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tokenAuthenticator implements usecase.Authenticator on top of the token service.
type tokenAuthenticator struct {
	tokenService service.TokenService
	metrics      service.AuthMetrics
	logger       *slog.Logger
}

// AuthenticatorParams holds dependencies for the authenticator, injected by Fx.
type AuthenticatorParams struct {
	fx.In

	TokenService service.TokenService
	Metrics      service.AuthMetrics `optional:"true"`
	Logger       *slog.Logger
}

// NewAuthenticator creates the request authenticator.
func NewAuthenticator(params AuthenticatorParams) usecase.Authenticator {
	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NoopAuthMetrics{}
	}

	return &tokenAuthenticator{
		tokenService: params.TokenService,
		metrics:      metrics,
		logger:       params.Logger,
	}
}

// Authenticate verifies the bearer token. Every rejection is ErrUnauthenticated; the
// specific reason only reaches logs and metrics.
func (a *tokenAuthenticator) Authenticate(ctx context.Context, rawToken string) (entity.AccountID, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, a.logger)

	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		a.metrics.ObserveAuthentication(service.OutcomeMissingToken)
		logger.Debug("Authentication rejected", slog.String("reason", service.OutcomeMissingToken))

		return entity.NilAccountID, domainerrors.ErrUnauthenticated
	}

	claims, err := a.tokenService.Verify(rawToken)
	if err != nil {
		if errors.Is(err, service.ErrSigningKeyMissing) {
			a.metrics.ObserveAuthentication(service.OutcomeConfigError)
			logger.Error("Token verification is not configured", slog.Any("error", err))

			return entity.NilAccountID, errors.Wrap(domainerrors.ErrConfiguration, err.Error())
		}

		reason := service.OutcomeInvalidToken
		if errors.Is(err, service.ErrTokenExpired) {
			reason = service.OutcomeExpiredToken
		}

		a.metrics.ObserveAuthentication(reason)
		logger.Info("Authentication rejected", slog.String("reason", reason), slog.Any("error", err))

		return entity.NilAccountID, domainerrors.ErrUnauthenticated
	}

	a.metrics.ObserveAuthentication(service.OutcomeSuccess)

	return claims.AccountID, nil
}
