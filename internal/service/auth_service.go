// Package service holds the authentication flow: registration with
// email confirmation, login, and the forgot/reset password cycle. The
// service owns no state of its own; it orchestrates the credential
// store, the password hasher, the token issuer and the notification
// sender.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dalanakids/shop-api/internal/model"
	"github.com/dalanakids/shop-api/internal/queue"
	"github.com/dalanakids/shop-api/internal/repository"
	"github.com/dalanakids/shop-api/internal/utils"
)

// UserStore is the slice of the credential store the auth flow needs.
// *repository.UserRepo satisfies it; tests plug in fakes.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id string) (model.User, error)
	GetByConfirmationCode(ctx context.Context, code int) (model.User, error)
	Confirm(ctx context.Context, id string) error
	IncrementResetAttempts(ctx context.Context, id string) error
	UpdatePasswordHash(ctx context.Context, id, hash string) error
	Delete(ctx context.Context, id string) error
}

// ResetTokenStore persists reset-password tokens.
// *repository.ResetTokenRepo satisfies it.
type ResetTokenStore interface {
	Create(ctx context.Context, t *model.ResetPasswordToken) error
	GetByToken(ctx context.Context, token string) (model.ResetPasswordToken, error)
	Consume(ctx context.Context, token string, at time.Time) error
}

// Mailer is the notification sender. *mailer.Mailer satisfies it.
type Mailer interface {
	SendConfirmationCode(to string, code int) error
	SendResetLink(to, token string) error
}

// Publisher pushes an auth event to the broker. queue.Publish
// satisfies it; a nil Publisher disables events.
type Publisher func(queue.AuthEvent) error

// AuthConfig carries the knobs the auth flow needs.
type AuthConfig struct {
	JWTSecret       string
	AccessTTL       time.Duration
	BcryptCost      int
	ResetTokenTTL   time.Duration
	ResetMaxAttempt int
}

// AuthService implements the registration and password lifecycle state
// machine described in the API docs: unconfirmed -> user via code
// match, and reset tokens that are issued, expire after a fixed
// window, and are consumed exactly once.
type AuthService struct {
	users   UserStore
	tokens  ResetTokenStore
	mailer  Mailer
	publish Publisher
	cfg     AuthConfig
	now     func() time.Time
}

// NewAuthService wires the auth flow. publish may be nil.
func NewAuthService(users UserStore, tokens ResetTokenStore, m Mailer, publish Publisher, cfg AuthConfig) *AuthService {
	return &AuthService{
		users:   users,
		tokens:  tokens,
		mailer:  m,
		publish: publish,
		cfg:     cfg,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Register validates the payload, persists the user as unconfirmed
// with a fresh 4-digit code, and mails the code. Validation happens
// before any side effect; if the mail cannot be sent the user row is
// removed again so the registration stays retryable.
func (s *AuthService) Register(ctx context.Context, name, email, password, passwordConfirm string) error {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	switch {
	case name == "":
		return fmt.Errorf("%w: name is required", ErrValidation)
	case email == "":
		return fmt.Errorf("%w: email is required", ErrValidation)
	case password == "":
		return fmt.Errorf("%w: password is required", ErrValidation)
	case password != passwordConfirm:
		return fmt.Errorf("%w: passwords must match", ErrValidation)
	}

	code, err := utils.NewConfirmationCode()
	if err != nil {
		return err
	}
	hash, err := utils.HashPassword(password, s.cfg.BcryptCost)
	if err != nil {
		return err
	}

	user := model.User{
		ID:               uuid.NewString(),
		Name:             name,
		Email:            email,
		PasswordHash:     hash,
		Role:             model.RoleUnconfirmed,
		ConfirmationCode: code,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return fmt.Errorf("%w: email %q is already registered", ErrConflict, email)
		}
		return err
	}

	if err := s.mailer.SendConfirmationCode(email, code); err != nil {
		// Without the code the account can never be confirmed, and the
		// unique email would block a retry. Undo the insert.
		if delErr := s.users.Delete(ctx, user.ID); delErr != nil {
			slog.Error("register: rollback after mail failure failed", "user_id", user.ID, "err", delErr)
		}
		return fmt.Errorf("could not send verification email: %w", err)
	}

	s.emit(queue.EventUserRegistered, user)
	return nil
}

// Confirm upgrades the pending registration matching the code to the
// user role and clears the code, making a second confirm with the same
// code fail with ErrNotFound.
func (s *AuthService) Confirm(ctx context.Context, code int) error {
	if code < 1000 || code > 9999 {
		return fmt.Errorf("%w: code must have four digits", ErrValidation)
	}
	user, err := s.users.GetByConfirmationCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.users.Confirm(ctx, user.ID); err != nil {
		return err
	}
	s.emit(queue.EventUserConfirmed, user)
	return nil
}

// Login verifies credentials and issues a session token. Unknown email
// fails ErrUnauthorized, a role outside {user, admin} fails
// ErrForbidden regardless of the password, and a wrong password fails
// ErrValidation.
func (s *AuthService) Login(ctx context.Context, email, password string) (utils.AccessToken, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.AccessToken{}, fmt.Errorf("%w: user %q", ErrUnauthorized, email)
		}
		return utils.AccessToken{}, err
	}
	if !user.Role.CanLogin() {
		return utils.AccessToken{}, fmt.Errorf("%w: account is not allowed to log in", ErrForbidden)
	}
	if !utils.VerifyPassword(user.PasswordHash, password) {
		return utils.AccessToken{}, fmt.Errorf("%w: incorrect user or password", ErrValidation)
	}
	return utils.NewAccessToken(s.cfg.JWTSecret, user, s.cfg.AccessTTL)
}

// ForgotPassword issues a reset token for the account and mails the
// reset link. The per-account attempt counter is enforced: above the
// configured limit the request fails with ErrTooManyResetAttempts.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: user %q", ErrNotFound, email)
		}
		return err
	}
	if s.cfg.ResetMaxAttempt > 0 && user.AttemptsToChangePassword >= s.cfg.ResetMaxAttempt {
		return ErrTooManyResetAttempts
	}
	if err := s.users.IncrementResetAttempts(ctx, user.ID); err != nil {
		return err
	}

	now := s.now()
	token := model.ResetPasswordToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.ResetTokenTTL),
	}
	if err := s.tokens.Create(ctx, &token); err != nil {
		return err
	}
	return s.mailer.SendResetLink(email, token.Token)
}

// ResetPassword consumes a reset token and replaces the owner's
// password hash. Consumption is a conditional update, so a token can
// authorize at most one reset even under concurrent requests; expired
// or already-consumed tokens fail before any password change.
func (s *AuthService) ResetPassword(ctx context.Context, token, password1, password2 string) error {
	if password1 == "" || password1 != password2 {
		return fmt.Errorf("%w: passwords must match", ErrValidation)
	}
	t, err := s.tokens.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: reset password token", ErrNotFound)
		}
		return err
	}
	now := s.now()
	if t.Expired(now) {
		return ErrResetTokenExpired
	}
	if t.Consumed() {
		return fmt.Errorf("%w: reset password token", ErrNotFound)
	}
	// Claim the token first; the loser of a race gets ErrNotFound here.
	if err := s.tokens.Consume(ctx, token, now); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: reset password token", ErrNotFound)
		}
		return err
	}

	hash, err := utils.HashPassword(password1, s.cfg.BcryptCost)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePasswordHash(ctx, t.UserID, hash); err != nil {
		return err
	}
	if user, err := s.users.GetByID(ctx, t.UserID); err == nil {
		s.emit(queue.EventPasswordReset, user)
	}
	return nil
}

// emit publishes an auth event, best effort.
func (s *AuthService) emit(eventType string, user model.User) {
	if s.publish == nil {
		return
	}
	ev := queue.AuthEvent{
		Type:       eventType,
		UserID:     user.ID,
		Email:      user.Email,
		OccurredAt: s.now().Format(time.RFC3339),
	}
	if err := s.publish(ev); err != nil {
		slog.Warn("auth event publish failed", "type", eventType, "err", err)
	}
}
