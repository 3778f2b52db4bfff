package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"jobboard/internal/domain/entity"
	domainerrors "jobboard/internal/domain/errors"
	mockUC "jobboard/internal/mocks/usecase"
	"jobboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestEcho(t *testing.T, caller entity.AccountID) (*echo.Echo, *mockUC.MockAuthUsecase) {
	authUC := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: nil})

	e := newTestEcho()
	e.POST("/api/auth/register", h.Register)
	e.POST("/api/auth/login", h.Login)
	e.GET("/api/auth/me", h.Me, asCaller(caller))

	return e, authUC
}

func TestAuthHandler_Register(t *testing.T) {
	e, authUC := newAuthTestEcho(t, entity.NilAccountID)
	account := entity.PublicAccount{ID: newAccountID(), Username: "alice", Email: "a@x.com"}
	expiresAt := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	authUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw1"}).
		Return(&usecase.AuthOutput{Token: "tok", ExpiresAt: expiresAt, Account: account}, nil)

	rec, env := doJSON(t, e, http.MethodPost, "/api/auth/register", `{"username":"alice","email":"a@x.com","password":"pw1"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "tok", got.Token)
	assert.Equal(t, account, got.Account)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Register_Conflicts(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"email", domainerrors.ErrEmailAlreadyExists, "EMAIL_ALREADY_EXISTS"},
		{"username", domainerrors.ErrUsernameAlreadyExists, "USERNAME_ALREADY_EXISTS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, authUC := newAuthTestEcho(t, entity.NilAccountID)
			authUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec, env := doJSON(t, e, http.MethodPost, "/api/auth/register", `{"username":"alice","email":"a@x.com","password":"pw1"}`)

			assert.Equal(t, http.StatusConflict, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		details string
	}{
		{"missing fields", `{}`, "email: required; password: required; username: required"},
		{"bad email", `{"username":"alice","email":"nope","password":"pw"}`, "email: email"},
		{"malformed json", `{"username":`, "malformed request body"},
		{"username too long", `{"username":"` + strings.Repeat("u", 51) + `","email":"a@x.com","password":"pw"}`, "username: max=50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newAuthTestEcho(t, entity.NilAccountID)

			rec, env := doJSON(t, e, http.MethodPost, "/api/auth/register", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
			assert.Equal(t, tt.details, env.Error.Details)
		})
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e, authUC := newAuthTestEcho(t, entity.NilAccountID)
	authUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "a@x.com", Password: "bad"}).
		Return(nil, domainerrors.ErrInvalidCredentials)

	rec, env := doJSON(t, e, http.MethodPost, "/api/auth/login", `{"email":"a@x.com","password":"bad"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestAuthHandler_Me(t *testing.T) {
	caller := newAccountID()
	e, authUC := newAuthTestEcho(t, caller)
	account := &entity.PublicAccount{ID: caller, Username: "alice", Email: "a@x.com"}
	authUC.EXPECT().CurrentAccount(mock.Anything, caller).Return(account, nil)

	rec, env := doJSON(t, e, http.MethodGet, "/api/auth/me", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got entity.PublicAccount
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, *account, got)
}

func TestAuthHandler_Me_WithoutCaller(t *testing.T) {
	e, _ := newAuthTestEcho(t, entity.NilAccountID)

	rec, env := doJSON(t, e, http.MethodGet, "/api/auth/me", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHENTICATED", env.Error.Code)
}
