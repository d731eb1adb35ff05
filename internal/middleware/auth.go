package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mtlprog/proposedesk/internal/domain"
)

type contextKey string

const (
	// ContextKeyAccount is the key for storing the account in request context.
	ContextKeyAccount contextKey = "account"
)

// AccountFinder resolves bearer tokens to accounts.
type AccountFinder interface {
	GetByToken(ctx context.Context, token string) (*domain.Account, error)
}

// ErrorWriter renders an authentication failure.
type ErrorWriter func(w http.ResponseWriter, err error)

// AuthMiddleware handles Bearer token authentication.
type AuthMiddleware struct {
	accounts AccountFinder
	writeErr ErrorWriter
}

// NewAuthMiddleware creates a new AuthMiddleware. Failures are written with
// writeErr, or as plain text when it is nil.
func NewAuthMiddleware(accounts AccountFinder, writeErr ErrorWriter) *AuthMiddleware {
	if writeErr == nil {
		writeErr = func(w http.ResponseWriter, err error) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
		}
	}
	return &AuthMiddleware{
		accounts: accounts,
		writeErr: writeErr,
	}
}

// Authenticate validates the Bearer token and adds the account to request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			m.writeErr(w, domain.ErrInvalidToken)
			return
		}

		account, err := m.accounts.GetByToken(r.Context(), token)
		if err != nil {
			if !errors.Is(err, domain.ErrAccountNotFound) {
				slog.Error("failed to resolve token", "error", err)
			}
			m.writeErr(w, err)
			return
		}

		if !account.IsActive {
			m.writeErr(w, domain.ErrAccountInactive)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithAccount(r.Context(), account)))
	})
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// WithAccount returns a copy of ctx carrying account.
func WithAccount(ctx context.Context, account *domain.Account) context.Context {
	return context.WithValue(ctx, ContextKeyAccount, account)
}

// GetAccountFromContext retrieves the authenticated account from request context.
func GetAccountFromContext(ctx context.Context) (*domain.Account, error) {
	account, ok := ctx.Value(ContextKeyAccount).(*domain.Account)
	if !ok || account == nil {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}
