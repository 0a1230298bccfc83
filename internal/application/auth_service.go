package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/shopcart-api/internal/domain/entity"
	repo "github.com/oksasatya/shopcart-api/internal/domain/repository"
	"github.com/oksasatya/shopcart-api/pkg/helpers"
	"github.com/oksasatya/shopcart-api/pkg/validation"
)

// Messages returned to clients.
const (
	MsgSignupOK      = "Signup successful!"
	MsgLoginOK       = "Login successful!"
	MsgForgotOK      = "If your email is registered, you will receive a reset link."
	MsgResetOK       = "Password has been reset successfully. You can now log in."
	msgInvalidEmail  = "Invalid email format."
	msgShortPassword = "Password must be at least 6 characters long."
	msgResetInput    = "The token and a new password (at least 6 characters) are required."
	msgEmailTaken    = "A user with this email address already exists."
	msgUserNotFound  = "User not found."
)

// ResetIndex is an optional token -> user id lookup for reset tokens.
type ResetIndex interface {
	Put(ctx context.Context, token string, userID int, ttl time.Duration) error
	Lookup(ctx context.Context, token string) (userID int, ok bool, err error)
	Delete(ctx context.Context, token string) error
}

type AuthConfig struct {
	BcryptCost    int
	ResetTokenTTL time.Duration
	ResetURL      string // front-end page; the token is appended as ?token=
}

type AuthService struct {
	Store    repo.Store
	JWT      *helpers.JWTManager
	Index    ResetIndex // may be nil
	Notifier ResetNotifier
	Logger   *logrus.Logger
	Cfg      AuthConfig

	now      func() time.Time
	genToken func() (string, error)
}

func NewAuthService(store repo.Store, jwt *helpers.JWTManager, index ResetIndex, notifier ResetNotifier, logger *logrus.Logger, cfg AuthConfig) *AuthService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if notifier == nil {
		notifier = LogNotifier{Logger: logger}
	}
	if cfg.ResetTokenTTL <= 0 {
		cfg.ResetTokenTTL = time.Hour
	}
	return &AuthService{
		Store:    store,
		JWT:      jwt,
		Index:    index,
		Notifier: notifier,
		Logger:   logger,
		Cfg:      cfg,
		now:      time.Now,
		genToken: helpers.GenResetToken,
	}
}

// Signup creates the account and returns a bearer token for it.
func (s *AuthService) Signup(ctx context.Context, email, password string) (string, error) {
	if !validation.Email(email) {
		return "", newError(KindValidation, msgInvalidEmail)
	}
	if !validation.Password(password) {
		return "", newError(KindValidation, msgShortPassword)
	}
	hash, err := helpers.HashPassword(password, s.Cfg.BcryptCost)
	if err != nil {
		return "", err
	}

	var created entity.User
	err = s.Store.Update(ctx, func(doc *entity.Document) error {
		if doc.FindUserByEmail(email) != nil {
			return newError(KindConflict, msgEmailTaken)
		}
		created = doc.AddUser(entity.User{Email: email, Password: hash})
		return nil
	})
	if err != nil {
		return "", storageErr(err)
	}
	s.Logger.WithFields(logrus.Fields{"user_id": created.ID, "email": created.Email}).Info("user signed up")
	countSignup()
	return s.issue(created)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	doc, err := s.Store.Load(ctx)
	if err != nil {
		return "", storageErr(err)
	}
	u := doc.FindUserByEmail(email)
	if u == nil {
		return "", newError(KindNotFound, msgUserNotFound)
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", ErrInvalidCredentials
	}
	countLogin()
	return s.issue(*u)
}

func (s *AuthService) issue(u entity.User) (string, error) {
	tok, _, err := s.JWT.Generate(u.ID, u.Email)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		return "", err
	}
	return tok, nil
}

// ForgotPassword issues a reset token when the email is registered.
// The result is the same whether or not the account exists.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	tok, err := s.genToken()
	if err != nil {
		return "", err
	}
	expiresAt := s.now().Add(s.Cfg.ResetTokenTTL)

	var target *entity.User
	err = s.Store.Update(ctx, func(doc *entity.Document) error {
		u := doc.FindUserByEmail(email)
		if u == nil {
			return errUnknownEmail
		}
		u.SetResetToken(tok, expiresAt)
		cp := *u
		target = &cp
		return nil
	})
	if errors.Is(err, errUnknownEmail) {
		s.Logger.WithField("email", email).Info("password reset requested for unknown email")
		return MsgForgotOK, nil
	}
	if err != nil {
		return "", storageErr(err)
	}

	if s.Index != nil {
		if xErr := s.Index.Put(ctx, tok, target.ID, s.Cfg.ResetTokenTTL); xErr != nil {
			s.Logger.WithError(xErr).WithField("user_id", target.ID).Warn("reset index put failed")
		}
	}
	notice := ResetNotice{Email: target.Email, Link: s.resetLink(tok), ExpiresAt: expiresAt, TTL: s.Cfg.ResetTokenTTL}
	if nErr := s.Notifier.NotifyReset(ctx, notice); nErr != nil {
		s.Logger.WithError(nErr).WithField("user_id", target.ID).Warn("reset notification failed")
	}
	return MsgForgotOK, nil
}

var errUnknownEmail = errors.New("unknown email")

func (s *AuthService) resetLink(tok string) string {
	return s.Cfg.ResetURL + "?token=" + tok
}

// ResetPassword sets a new password for the holder of a live reset token and consumes the token.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	if token == "" || !validation.Password(newPassword) {
		return "", newError(KindValidation, msgResetInput)
	}
	hash, err := helpers.HashPassword(newPassword, s.Cfg.BcryptCost)
	if err != nil {
		return "", err
	}

	hintID := s.lookupIndex(ctx, token)
	now := s.now()
	var userID int
	err = s.Store.Update(ctx, func(doc *entity.Document) error {
		u := findByResetToken(doc, token, hintID, now)
		if u == nil {
			return ErrInvalidToken
		}
		u.Password = hash
		u.ClearResetToken()
		userID = u.ID
		return nil
	})
	if err != nil {
		return "", storageErr(err)
	}

	if s.Index != nil {
		if xErr := s.Index.Delete(ctx, token); xErr != nil {
			s.Logger.WithError(xErr).Warn("reset index delete failed")
		}
	}
	s.Logger.WithField("user_id", userID).Info("password reset")
	countReset()
	return MsgResetOK, nil
}

// lookupIndex returns the indexed user id for token, or 0.
func (s *AuthService) lookupIndex(ctx context.Context, token string) int {
	if s.Index == nil {
		return 0
	}
	id, ok, err := s.Index.Lookup(ctx, token)
	if err != nil {
		s.Logger.WithError(err).Warn("reset index lookup failed, scanning users")
		return 0
	}
	if !ok {
		return 0
	}
	return id
}

// findByResetToken checks the hinted user first and falls back to a scan.
// The stored record is always authoritative.
func findByResetToken(doc *entity.Document, token string, hintID int, now time.Time) *entity.User {
	if hintID != 0 {
		if u := doc.FindUserByID(hintID); u != nil && u.HasLiveResetToken(token, now) {
			return u
		}
	}
	for i := range doc.Users {
		if doc.Users[i].HasLiveResetToken(token, now) {
			return &doc.Users[i]
		}
	}
	return nil
}

// Authenticate verifies a bearer token.
// No token gives ErrUnauthenticated; a bad or expired one gives ErrUnauthorized.
func (s *AuthService) Authenticate(token string) (*helpers.Claims, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	claims, err := s.JWT.Parse(token)
	if err != nil {
		return nil, &Error{Kind: KindUnauthorized, Message: ErrUnauthorized.Message, Err: err}
	}
	return claims, nil
}
