package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Port          int
	SessionSecret string
	ConfirmDelay  time.Duration
	SessionTTL    time.Duration
	EntryFee      decimal.Decimal
	PrizeValue    decimal.Decimal
	CookieSecure  bool

	// AllowedOrigins may call the API cross-origin with credentials
	AllowedOrigins []string
}

// LoadEnvFile loads variables from path if it exists.
// Variables already set in the environment win.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ParseFlags validates flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var delay, ttl, fee, prize string
	var secure, origins string

	fs := flag.NewFlagSet("leisure-luck", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Session cookie secret (prefer env)")

	// Entry flow and competition
	fs.StringVar(&delay, "confirm-delay", "", "Simulated confirmation delay (e.g. 2s)")
	fs.StringVar(&ttl, "session-ttl", "", "Idle session lifetime (e.g. 30m)")
	fs.StringVar(&fee, "entry-fee", "", "Entry fee (e.g. 2.00)")
	fs.StringVar(&prize, "prize-value", "", "Prize value (e.g. 500)")
	fs.StringVar(&secure, "cookie-secure", "", "Mark session cookie Secure (true/false)")
	fs.StringVar(&origins, "cors-origins", "", "Comma-separated origins allowed to call the API")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	// Secrets - MUST be provided
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required")
	}

	var err error
	if cfg.ConfirmDelay, err = durationOr(delay, "CONFIRM_DELAY", 2*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.ConfirmDelay < 0 {
		return Config{}, errors.New("confirm delay must not be negative")
	}
	if cfg.SessionTTL, err = durationOr(ttl, "SESSION_TTL", 30*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL <= 0 {
		return Config{}, errors.New("session TTL must be positive")
	}
	if cfg.EntryFee, err = decimalOr(fee, "ENTRY_FEE", decimal.NewFromInt(2)); err != nil {
		return Config{}, err
	}
	if cfg.PrizeValue, err = decimalOr(prize, "PRIZE_VALUE", decimal.NewFromInt(500)); err != nil {
		return Config{}, err
	}

	if secure == "" {
		secure = os.Getenv("COOKIE_SECURE")
	}
	if secure != "" {
		if cfg.CookieSecure, err = strconv.ParseBool(secure); err != nil {
			return Config{}, errors.New("invalid COOKIE_SECURE value")
		}
	}

	if origins == "" {
		origins = os.Getenv("CORS_ORIGINS")
	}
	cfg.AllowedOrigins = splitOrigins(origins)

	return cfg, nil
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		o = strings.TrimSuffix(strings.TrimSpace(o), "/")
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}

func durationOr(flagVal, env string, def time.Duration) (time.Duration, error) {
	if flagVal == "" {
		flagVal = os.Getenv(env)
	}
	if flagVal == "" {
		return def, nil
	}
	d, err := time.ParseDuration(flagVal)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", env, err)
	}
	return d, nil
}

func decimalOr(flagVal, env string, def decimal.Decimal) (decimal.Decimal, error) {
	if flagVal == "" {
		flagVal = os.Getenv(env)
	}
	if flagVal == "" {
		return def, nil
	}
	d, err := decimal.NewFromString(flagVal)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s: %w", env, err)
	}
	return d, nil
}
