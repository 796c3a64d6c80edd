package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port       string `env:"PORT" envDefault:"8080"`
	DBURL      string `env:"DB_URL,required,notEmpty"`
	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"http://localhost:5173"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"LOG_FORMAT" envDefault:"text"`
	GinMode    string `env:"GIN_MODE" envDefault:"debug"`

	JWT   JWTConfig
	Code  CodeConfig
	Email EmailConfig
}

type JWTConfig struct {
	Secret          string        `env:"JWT_SECRET,required,notEmpty"`
	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"30m"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"336h"`
}

// CodeConfig controls email verification codes.
type CodeConfig struct {
	TTL            time.Duration `env:"VERIFY_CODE_TTL" envDefault:"3m"`
	VerifiedWindow time.Duration `env:"VERIFIED_WINDOW" envDefault:"10m"`
}

type EmailConfig struct {
	Provider    string        `env:"EMAIL_PROVIDER" envDefault:"log"` // smtp|postmark|log
	From        string        `env:"SMTP_FROM"`
	SendTimeout time.Duration `env:"MAIL_SEND_TIMEOUT" envDefault:"10s"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     string `env:"SMTP_PORT" envDefault:"587"`
	SMTPPassword string `env:"SMTP_PASSWORD"`

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
}

// Load reads an optional .env file and parses the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}
	return Parse()
}

// Parse reads the process environment only.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Code.TTL <= 0 {
		return nil, fmt.Errorf("VERIFY_CODE_TTL must be positive")
	}
	if cfg.JWT.AccessTokenTTL <= 0 || cfg.JWT.RefreshTokenTTL <= 0 {
		return nil, fmt.Errorf("token TTLs must be positive")
	}
	switch cfg.Email.Provider {
	case "smtp", "postmark", "log":
	default:
		return nil, fmt.Errorf("unknown EMAIL_PROVIDER %q", cfg.Email.Provider)
	}
	return &cfg, nil
}
