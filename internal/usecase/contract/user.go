package usecasecontract

import "time"

// IAppLogger is the logging surface the usecases depend on.
type IAppLogger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// IConfigProvider exposes the settings the usecases and handlers need.
type IConfigProvider interface {
	GetAppEnv() string
	GetPort() string
	GetJWTSecret() string
	GetTokenTTL() time.Duration
	GetBcryptCost() int
	GetStoreDriver() string
	GetDatabaseURL() string
	GetMongoURI() string
	GetMongoDBName() string
	GetRedisURL() string
	GetRateLimitRPS() float64
	GetSeedUsers() bool
	GetCORSAllowedOrigins() []string
}

// IValidator holds the credential shape rules.
type IValidator interface {
	IsValidPasswordPattern(password string) bool
	PasswordRequirements() string
	IsValidEmailPattern(email string) bool
}
