package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Jezzej/craftique/internals/models"
	"github.com/Jezzej/craftique/internals/stores"
	"github.com/Jezzej/craftique/internals/utils"
)

// Mailer is the notification gateway contract the service depends on.
// Implemented by utils.EmailManager; tests swap in a recording fake.
type Mailer interface {
	SendOTP(toEmail string, code string) error
	SendPasswordReset(toEmail string, name string, token string) error
}

// AuthService orchestrates the authentication state machine:
// Unregistered -> Unverified -> Verified, with password reset as an
// orthogonal side channel. It is constructed once at startup and shared
// by reference; it holds no mutable state of its own.
type AuthService struct {
	Users        *stores.UserStore
	Otps         *stores.OtpStore
	ResetTokens  *stores.ResetTokenStore
	Mailer       Mailer
	TokenManager *utils.TokenManager
	// OtpTTL bounds both verification codes and reset tokens
	OtpTTL time.Duration
}

func NewAuthService(users *stores.UserStore, otps *stores.OtpStore, resetTokens *stores.ResetTokenStore, mailer Mailer, tokenManager *utils.TokenManager, otpTTL time.Duration) *AuthService {
	return &AuthService{
		Users:        users,
		Otps:         otps,
		ResetTokens:  resetTokens,
		Mailer:       mailer,
		TokenManager: tokenManager,
		OtpTTL:       otpTTL,
	}
}

// issueOtp replaces any outstanding code for the user with a fresh one and
// emails the cleartext. The delete-then-insert order plus the unique index
// on user_id guarantee a stale code can never be matched afterwards.
func (s *AuthService) issueOtp(user *models.User) error {
	if err := s.Otps.DeleteAllForUser(user.ID); err != nil {
		return err
	}

	code := utils.GenerateOTP()
	hashedCode, err := utils.HashSecret(code)
	if err != nil {
		return err
	}

	if _, err := s.Otps.Create(user.ID, hashedCode, time.Now().Add(s.OtpTTL)); err != nil {
		return err
	}

	if err := s.Mailer.SendOTP(user.Email, code); err != nil {
		return fmt.Errorf("%w: %v", ErrMailDelivery, err)
	}
	return nil
}

// Signup creates an unverified account and emails its first OTP.
// The account is committed before the email is attempted; a delivery
// failure returns the created user together with ErrMailDelivery so the
// caller can tell "created, email failed" apart from full success.
func (s *AuthService) Signup(name string, email string, password string, isAdmin bool) (*models.SanitizedUser, error) {
	existing, err := s.Users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := utils.HashSecret(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
		IsAdmin:  isAdmin,
	}
	if err := s.Users.Create(&user); err != nil {
		return nil, err
	}

	sanitized := user.Sanitize()
	if err := s.issueOtp(&user); err != nil {
		return &sanitized, err
	}
	return &sanitized, nil
}

// VerifyOTP consumes a live code and marks the user verified. The three
// rejection kinds (no user / expired-or-absent / wrong code) stay distinct.
func (s *AuthService) VerifyOTP(userID uint, code string) (*models.SanitizedUser, error) {
	if _, err := s.Users.FindByID(userID); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	otp, err := s.Otps.FindForUser(userID)
	if err != nil {
		return nil, err
	}
	if otp == nil || time.Now().After(otp.ExpiresAt) {
		return nil, ErrOtpExpired
	}

	if !utils.CheckSecret(otp.HashedCode, code) {
		return nil, ErrOtpMismatch
	}

	if err := s.Otps.DeleteByID(otp.ID); err != nil {
		return nil, err
	}
	verified, err := s.Users.MarkVerified(userID)
	if err != nil {
		return nil, err
	}

	sanitized := verified.Sanitize()
	return &sanitized, nil
}

// ResendOTP invalidates any prior code and issues a fresh one. It never
// requires the previous code to still be valid.
func (s *AuthService) ResendOTP(userID uint) error {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.issueOtp(user)
}

// Login checks credentials and mints a session token. Unknown email and
// wrong password are indistinguishable to the caller; an unverified
// account is a separate outcome.
func (s *AuthService) Login(email string, password string) (*models.SanitizedUser, string, error) {
	user, err := s.Users.FindByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if user == nil || !utils.CheckSecret(user.Password, password) {
		return nil, "", ErrInvalidCredentials
	}

	if !user.IsVerified {
		return nil, "", ErrNotVerified
	}

	sanitized := user.Sanitize()
	token, err := s.TokenManager.CreateSessionToken(sanitized)
	if err != nil {
		return nil, "", err
	}
	return &sanitized, token, nil
}

// ForgotPassword replaces any outstanding reset grant with a fresh signed
// token and emails the raw token as a link. Only the hash is stored.
func (s *AuthService) ForgotPassword(email string) error {
	user, err := s.Users.FindByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := s.ResetTokens.DeleteAllForUser(user.ID); err != nil {
		return err
	}

	resetToken, err := s.TokenManager.CreateResetToken(user.Sanitize())
	if err != nil {
		return err
	}
	hashedToken, err := utils.HashToken(resetToken)
	if err != nil {
		return err
	}

	if _, err := s.ResetTokens.Create(user.ID, hashedToken, time.Now().Add(s.OtpTTL)); err != nil {
		return err
	}

	return s.Mailer.SendPasswordReset(user.Email, user.Name, resetToken)
}

// ResetPassword consumes a live reset token and overwrites the password.
// A consumed token is gone from the store, so reuse always fails.
func (s *AuthService) ResetPassword(userID uint, token string, newPassword string) error {
	if _, err := s.Users.FindByID(userID); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	stored, err := s.ResetTokens.FindForUser(userID)
	if err != nil {
		return err
	}
	if stored == nil || time.Now().After(stored.ExpiresAt) {
		return ErrResetTokenExpired
	}

	if !utils.CheckToken(stored.HashedToken, token) {
		return ErrResetTokenMismatch
	}

	hashedPassword, err := utils.HashSecret(newPassword)
	if err != nil {
		return err
	}
	if err := s.Users.UpdatePassword(userID, hashedPassword); err != nil {
		return err
	}

	return s.ResetTokens.DeleteByID(stored.ID)
}

// CheckAuth re-fetches the caller's current record. The identity itself is
// attached upstream by the session middleware.
func (s *AuthService) CheckAuth(userID uint) (*models.SanitizedUser, error) {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	sanitized := user.Sanitize()
	return &sanitized, nil
}
