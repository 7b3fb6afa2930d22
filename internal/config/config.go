package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port     int    `yaml:"port"`
	GinMode  string `yaml:"gin_mode"`
	LogLevel string `yaml:"log_level"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
	Issuer string `yaml:"issuer"`
	TTL    string `yaml:"ttl"`
}

type OTPConfig struct {
	TTL string `yaml:"ttl"`
}

type BcryptConfig struct {
	Cost int `yaml:"cost"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	JWT      JWTConfig      `yaml:"jwt"`
	OTP      OTPConfig      `yaml:"otp"`
	Bcrypt   BcryptConfig   `yaml:"bcrypt"`
	SMTP     SMTPConfig     `yaml:"smtp"`
}

type Config struct {
	Port         string
	GinMode      string
	LogLevel     string
	DSN          string
	JWTSecret    string
	JWTIssuer    string
	TokenTTL     time.Duration
	OTP_TTL      time.Duration
	BcryptCost   int
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml when present and falls back to environment
// variables for every field, so the service runs with nothing but a
// TOKEN_SECRET and a DATABASE_DSN set.
func Load() (*Config, error) {
	configFile, err := loadConfigFile("config/config.yml")
	if err != nil {
		configFile = &ConfigFile{}
	}

	tokenTTL, err := parseDuration(configFile.JWT.TTL, env("TOKEN_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid token TTL: %w", err)
	}

	otpTTL, err := parseDuration(configFile.OTP.TTL, env("OTP_TTL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}

	port := configFile.App.Port
	if port == 0 {
		port = atoi(env("PORT", "4000"))
	}

	smtpPort := configFile.SMTP.Port
	if smtpPort == 0 {
		smtpPort = atoi(env("SMTP_PORT", "587"))
	}

	bcryptCost := configFile.Bcrypt.Cost
	if bcryptCost == 0 {
		bcryptCost = atoi(env("BCRYPT_COST", "10"))
	}

	cfg := &Config{
		Port:         strconv.Itoa(port),
		GinMode:      firstNonEmpty(configFile.App.GinMode, env("GIN_MODE", "release")),
		LogLevel:     firstNonEmpty(configFile.App.LogLevel, env("LOG_LEVEL", "info")),
		DSN:          firstNonEmpty(configFile.Database.DSN, os.Getenv("DATABASE_DSN")),
		JWTSecret:    firstNonEmpty(configFile.JWT.Secret, os.Getenv("TOKEN_SECRET")),
		JWTIssuer:    firstNonEmpty(configFile.JWT.Issuer, env("TOKEN_ISSUER", "writo-education")),
		TokenTTL:     tokenTTL,
		OTP_TTL:      otpTTL,
		BcryptCost:   bcryptCost,
		SMTPHost:     firstNonEmpty(configFile.SMTP.Host, os.Getenv("SMTP_HOST")),
		SMTPPort:     smtpPort,
		SMTPUsername: firstNonEmpty(configFile.SMTP.Username, os.Getenv("SMTP_USER")),
		SMTPPassword: firstNonEmpty(configFile.SMTP.Password, os.Getenv("SMTP_PASSWORD")),
		SMTPFrom:     firstNonEmpty(configFile.SMTP.From, os.Getenv("SMTP_EMAIL")),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret is required (jwt.secret or TOKEN_SECRET)")
	}
	if cfg.DSN == "" {
		return nil, fmt.Errorf("database dsn is required (database.dsn or DATABASE_DSN)")
	}

	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}

func parseDuration(fromFile, fromEnv string) (time.Duration, error) {
	s := fromFile
	if s == "" {
		s = fromEnv
	}
	return time.ParseDuration(s)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func atoi(s string) int {
	var i int
	fmt.Sscanf(s, "%d", &i)
	return i
}
