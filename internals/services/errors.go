package services

import "errors"

// Sentinel errors for every foreseeable business-rule violation. The HTTP
// layer maps these to statuses with errors.Is; anything else is treated as
// an internal failure and never leaked to the caller.
var (
	// ErrEmailTaken - signup with an email that already has an account
	ErrEmailTaken = errors.New("user already exists")

	// ErrUserNotFound - an id or email lookup missed
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// Collapsing them keeps login from leaking which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotVerified - correct credentials but the email was never verified
	ErrNotVerified = errors.New("email not verified")

	// ErrOtpExpired - no live code, or the code's expiry has passed
	ErrOtpExpired = errors.New("otp has expired or does not exist")

	// ErrOtpMismatch - a live code exists but the supplied value is wrong
	ErrOtpMismatch = errors.New("invalid otp")

	// ErrResetTokenExpired - no live reset token, or it has expired
	ErrResetTokenExpired = errors.New("reset link has expired or is invalid")

	// ErrResetTokenMismatch - a live token exists but the supplied value is wrong
	ErrResetTokenMismatch = errors.New("invalid reset link")

	// ErrMailDelivery - the account was created but the verification email
	// could not be sent; the caller can recover with a resend
	ErrMailDelivery = errors.New("verification email could not be sent")
)
