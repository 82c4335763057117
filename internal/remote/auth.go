package remote

import (
	"context"

	"github.com/supabase-community/gotrue-go/types"

	"github.com/villapro/villapro/internal/domain"
	"github.com/villapro/villapro/internal/logger"
)

// Auth is the thin pass-through to the remote auth provider. All token
// handling (refresh, revocation) stays inside the provider; this
// adapter only converts between provider types and domain.Session.
type Auth struct {
	gw  *Gateway
	log logger.Logger
}

func NewAuth(gw *Gateway, log logger.Logger) *Auth {
	return &Auth{gw: gw, log: log}
}

// SignIn performs password-based sign-in. Fails with ErrNotConfigured
// when no handle is available; provider rejections surface as AuthError
// carrying the provider's message.
func (a *Auth) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	h := a.gw.Handle(nil)
	if h == nil {
		return nil, domain.ErrNotConfigured
	}

	sess, err := h.SignInWithEmailPassword(email, password)
	if err != nil {
		a.log.Warn("sign-in rejected by provider", logger.String("email", email))
		return nil, &domain.AuthError{Reason: err.Error()}
	}

	s := sessionFrom(sess)
	a.log.Info("signed in", logger.String("email", s.Email))
	return &s, nil
}

// SignOut revokes the session with the provider. Absence of a handle is
// a silent no-op: signing out when never configured is harmless.
func (a *Auth) SignOut(ctx context.Context, session *domain.Session) {
	h := a.gw.Handle(nil)
	if h == nil || session == nil {
		return
	}
	if err := h.Auth.WithToken(session.AccessToken).Logout(); err != nil {
		// Best effort: the local session is dropped regardless.
		a.log.Warn("provider sign-out failed", logger.Error(err))
	}
}

// Restore exchanges a stored refresh token for a fresh session, the
// provider's own restore mechanism. Returns (nil, nil) when no handle
// or no restorable session exists: "logged out" is not an error.
func (a *Auth) Restore(ctx context.Context, refreshToken string) (*domain.Session, error) {
	h := a.gw.Handle(nil)
	if h == nil || refreshToken == "" {
		return nil, nil
	}

	sess, err := h.RefreshToken(refreshToken)
	if err != nil {
		a.log.Debug("no restorable session", logger.Error(err))
		return nil, nil
	}

	s := sessionFrom(sess)
	a.log.Info("session restored", logger.String("email", s.Email))
	return &s, nil
}

func sessionFrom(sess types.Session) domain.Session {
	return domain.Session{
		UserID:       sess.User.ID.String(),
		Email:        sess.User.Email,
		AccessToken:  sess.AccessToken,
		RefreshToken: sess.RefreshToken,
	}
}
