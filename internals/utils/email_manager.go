package utils

import (
	"fmt"
	"net/smtp"
	"strings"
)

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	AppName  string
	// CodeExp is the OTP/reset window in minutes, quoted in email bodies
	CodeExp int
	// FrontendOrigin is the base URL embedded in password reset links
	FrontendOrigin string
}

// EmailManager is the notification gateway. Delivery failures are returned
// to the caller, never swallowed.
type EmailManager struct {
	Config *SMTPConfig
}

func NewEmailManager(config *SMTPConfig) *EmailManager {
	return &EmailManager{
		Config: config,
	}
}

// send handles the actual SMTP handshake and delivery.
// Headers are constructed according to RFC 822, separated by CRLF.
func (em *EmailManager) send(toEmail string, subject string, contentType string, body string) error {
	smtpAddr := fmt.Sprintf("%s:%d", em.Config.Host, em.Config.Port)

	headers := []string{
		fmt.Sprintf("From: %s", em.Config.User),
		fmt.Sprintf("To: %s", toEmail),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		fmt.Sprintf("Content-Type: %s; charset=\"UTF-8\"", contentType),
		"", // blank line between headers and body
		body,
	}

	message := strings.Join(headers, "\r\n")

	auth := smtp.PlainAuth("", em.Config.User, em.Config.Password, em.Config.Host)

	return smtp.SendMail(smtpAddr, auth, em.Config.User, []string{toEmail}, []byte(message))
}

// SendOTP emails a verification code in cleartext. Only the hash of the
// code ever reaches the database.
func (em *EmailManager) SendOTP(toEmail string, code string) error {
	subject := fmt.Sprintf("%s - Your OTP Code", em.Config.AppName)

	body := fmt.Sprintf(
		"Hello,\n\n"+
			"Your %s verification code is: %s\n\n"+
			"This code will expire in %d minutes. If you did not request this email, please ignore it.\n\n"+
			"Best regards,\nThe %s Team",
		em.Config.AppName, code, em.Config.CodeExp, em.Config.AppName)

	return em.send(toEmail, subject, "text/plain", body)
}

// SendPasswordReset emails a reset link carrying the raw (unhashed) token
// as a URL parameter. The link base comes from configuration.
func (em *EmailManager) SendPasswordReset(toEmail string, name string, token string) error {
	subject := fmt.Sprintf("%s - Password Reset Link", em.Config.AppName)

	resetLink := fmt.Sprintf("%s/reset-password/%s", em.Config.FrontendOrigin, token)

	body := fmt.Sprintf(
		"<p>Dear %s,</p>"+
			"<p>Click <a href=%q>here</a> to reset your %s password. "+
			"The link expires in %d minutes.</p>",
		name, resetLink, em.Config.AppName, em.Config.CodeExp)

	return em.send(toEmail, subject, "text/html", body)
}
