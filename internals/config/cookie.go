package config

// CookieConfig defines the shared security baseline for cookies issued by the server
type CookieConfig struct {
	// Domain for the cookies
	Domain string
	// IsSecure indicates if cookies should be marked as Secure (HTTPS only)
	IsSecure bool
	// HttpOnly keeps the session cookie out of reach of client-side scripts
	HttpOnly bool
}
