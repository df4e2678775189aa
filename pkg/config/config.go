// Package config loads the application configuration from the environment,
// with optional .env file support for local development.
package config

import (
	"time"
)

type DB struct {
	// Path is the sqlite database file used by default.
	Path string `envconfig:"PATH" default:"./fuel.db"`
	// Url switches the store to postgres when set.
	Url string `envconfig:"URL"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[fuelfriends]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"0.0.0.0"`
	Port   int    `envconfig:"PORT" default:"8000"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Static struct {
	// Dir holds the built frontend served at the root path.
	Dir string `envconfig:"DIR" default:"./static"`
}

type App struct {
	Env string `envconfig:"APP_ENV" default:"development"`
	// AppPassword is the shared secret every API request must present.
	// When empty the process still boots, protected endpoints answer
	// with a misconfiguration error instead.
	AppPassword string     `envconfig:"APP_PASSWORD"`
	CorsOrigins []string   `envconfig:"CORS_ORIGINS"`
	Server      *Server    `envconfig:"SERVER"`
	Log         *Log       `envconfig:"LOG"`
	DB          *DB        `envconfig:"DB"`
	RateLimit   *RateLimit `envconfig:"RATE_LIMIT"`
	Static      *Static    `envconfig:"STATIC"`
}
