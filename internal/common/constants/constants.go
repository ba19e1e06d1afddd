package constants

import "time"

const (
	UsernameMinLength    = 3
	UsernameMaxLength    = 32
	PasswordMinLength    = 8
	PasswordMaxLength    = 72
	SessionSecretMinSize = 32

	SessionCookieName = "user_id"
	FlashCookieName   = "flash"

	// Display convention for post dates: the stored value is a free-text
	// timestamp string, pages show only its leading date portion.
	DateDisplayWidth = 10

	MaxPostTitleLength = 200
	MaxPostBodyLength  = 64 * 1024

	DefaultMaxRequestSize = 1 << 20

	ServerReadHeaderTimeout = 5 * time.Second
	ServerReadTimeout       = 15 * time.Second
	ServerWriteTimeout      = 15 * time.Second
	ServerIdleTimeout       = 60 * time.Second

	CredentialRateLimitPerSecond = 5
	CredentialRateLimitBurst     = 10
	RateLimitCleanupInterval     = 5 * time.Minute
)
