package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	DatabaseDSN     string `env:"DATABASE_URI"`
	AuthSecret      string `env:"AUTH_SECRET"`
	AccessTTLMin    int    `env:"ACCESS_TTL_MIN"`
	RefreshTTLHours int    `env:"REFRESH_TTL_H"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL       string `env:"-"`
	CredentialsFile string `env:"CREDENTIALS_FILE"`
	ClientDBPath    string `env:"CLIENT_DB_PATH"`
	Verbose         bool   `env:"TELLER_VERBOSE"`
	Version         bool   `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// флаги работают ТОЛЬКО если переменные из env не заданы
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи JWT")
	flag.IntVar(&cfg.AccessTTLMin, "access-ttl", cfg.AccessTTLMin, "access token TTL in minutes")
	flag.IntVar(&cfg.RefreshTTLHours, "refresh-ttl", cfg.RefreshTTLHours, "refresh token TTL in hours")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "base URL of the Teller server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.CredentialsFile, "credentials-file", cfg.CredentialsFile, "path to the stored credentials file (client)")
	flag.StringVar(&cfg.ClientDBPath, "client-db", cfg.ClientDBPath, "path to the client snapshot SQLite DB")
	flag.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging of the request pipeline")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	// Defaults
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	if cfg.AccessTTLMin <= 0 {
		cfg.AccessTTLMin = 15
	}
	if cfg.RefreshTTLHours <= 0 {
		cfg.RefreshTTLHours = 168
	}
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8080"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	// Fill client defaults if empty
	home, _ := os.UserHomeDir()
	if cfg.CredentialsFile == "" {
		cfg.CredentialsFile = filepath.Join(home, ".teller_credentials.json")
	}
	if cfg.ClientDBPath == "" {
		cfg.ClientDBPath = filepath.Join(home, "tellcli.db")
	}

	return cfg
}
