package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"elgamal/internal/crypto"
	"elgamal/internal/group"
	"elgamal/internal/primes"
)

// EnvPrefix prefixes every environment override, e.g. ELGAMAL_DIGEST.
const EnvPrefix = "ELGAMAL"

// Config keys shared by flags, environment and config file.
const (
	KeyHome        = "home"
	KeyFrom        = "from"
	KeyTo          = "to"
	KeyStep        = "step"
	KeyWorkers     = "workers"
	KeyRounds      = "rounds"
	KeyMaxAttempts = "max-attempts"
	KeySafe        = "safe"
	KeyMode        = "mode"
	KeyDigest      = "digest"
	KeyMessage     = "message"
	KeySave        = "save"
	KeyMetricsAddr = "metrics-addr"
	KeyLogLevel    = "log-level"
	KeyLogFormat   = "log-format"
	KeyStopOnError = "stop-on-error"
)

// Config holds runtime options for building the app.
type Config struct {
	Home        string // data directory, e.g. $HOME/.elgamal
	From        int    // first bit length of a sweep
	To          int    // last bit length of a sweep (inclusive)
	Step        int
	Workers     int
	Rounds      int // Miller–Rabin rounds
	MaxAttempts int // prime candidates per search; 0 picks a size-based cap
	Safe        bool
	Mode        group.Mode
	Digest      string
	Message     string
	Save        bool   // persist reports under Home
	MetricsAddr string // empty disables the /metrics endpoint
	LogLevel    string
	LogFormat   string // "console" or "json"
	StopOnError bool
}

// SetDefaults registers defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyHome, "")
	v.SetDefault(KeyFrom, 320)
	v.SetDefault(KeyTo, 512)
	v.SetDefault(KeyStep, 64)
	v.SetDefault(KeyWorkers, 2)
	v.SetDefault(KeyRounds, primes.DefaultRounds)
	v.SetDefault(KeyMaxAttempts, 0)
	v.SetDefault(KeySafe, true)
	v.SetDefault(KeyMode, string(group.ModeFull))
	v.SetDefault(KeyDigest, crypto.SHA256.Name())
	v.SetDefault(KeyMessage, "Hello, world!")
	v.SetDefault(KeySave, true)
	v.SetDefault(KeyMetricsAddr, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyStopOnError, false)
}

// NewViper returns a viper instance with defaults and ELGAMAL_* environment
// overrides. A non-empty configFile is read as well.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", configFile, err)
		}
	}
	return v, nil
}

// LoadConfig resolves a Config from v and validates it.
func LoadConfig(v *viper.Viper) (Config, error) {
	mode, err := group.ParseMode(v.GetString(KeyMode))
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		Home:        v.GetString(KeyHome),
		From:        v.GetInt(KeyFrom),
		To:          v.GetInt(KeyTo),
		Step:        v.GetInt(KeyStep),
		Workers:     v.GetInt(KeyWorkers),
		Rounds:      v.GetInt(KeyRounds),
		MaxAttempts: v.GetInt(KeyMaxAttempts),
		Safe:        v.GetBool(KeySafe),
		Mode:        mode,
		Digest:      v.GetString(KeyDigest),
		Message:     v.GetString(KeyMessage),
		Save:        v.GetBool(KeySave),
		MetricsAddr: v.GetString(KeyMetricsAddr),
		LogLevel:    v.GetString(KeyLogLevel),
		LogFormat:   v.GetString(KeyLogFormat),
		StopOnError: v.GetBool(KeyStopOnError),
	}
	if cfg.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		cfg.Home = filepath.Join(dir, ".elgamal")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no run could use.
func (c Config) Validate() error {
	if _, err := crypto.DigestByName(c.Digest); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Rounds < 1 {
		return fmt.Errorf("rounds must be at least 1, got %d", c.Rounds)
	}
	if c.MaxAttempts < 0 {
		return fmt.Errorf("max-attempts must not be negative, got %d", c.MaxAttempts)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q (want console or json)", c.LogFormat)
	}
	return nil
}
