package cmd

import "time"

// Config carries everything the console needs at startup: where to listen,
// where the session store lives, and how to reach the retail platform.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	UpstreamBaseURL string
	UpstreamTimeout time.Duration

	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	MaxProfileAge   time.Duration

	OrderRefreshSpec string
	SessionSweepSpec string
}
