package pod

import (
	"fmt"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

var validate = validator.New()

// Config holds connection settings read from the environment.
//
// MutableUserFields overrides the capability list used by user.Update when
// non-empty. Values are '|'-separated in POD_USER_MUTABLE_FIELDS.
type Config struct {
	URL               string        `env:"POD_URL,required=true" validate:"required,url"`
	SessionToken      string        `env:"POD_SESSION_TOKEN,required=true" validate:"required"`
	KeyManagerToken   string        `env:"POD_KM_TOKEN"`
	Timeout           time.Duration `env:"POD_TIMEOUT,default=10s" validate:"gt=0"`
	LogLevel          string        `env:"POD_LOG_LEVEL,default=info" validate:"oneof=trace debug info warn error disabled"`
	MutableUserFields []string      `env:"POD_USER_MUTABLE_FIELDS"`
}

// LoadConfig reads Config from the process environment.
//
// Files are dotenv files loaded first; variables already set in the
// environment win. With no files, a .env in the working directory is loaded
// when present.
func LoadConfig(files ...string) (Config, error) {
	if len(files) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, fmt.Errorf("pod: loading env files: %w", err)
	}

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("pod: config: %w", err)
	}
	return cfg.normalize()
}

// ParseConfig reads Config from an explicit variable set.
func ParseConfig(vars map[string]string) (Config, error) {
	es := env.EnvSet{}
	for k, v := range vars {
		es[k] = v
	}

	var cfg Config
	if err := env.Unmarshal(es, &cfg); err != nil {
		return Config{}, fmt.Errorf("pod: config: %w", err)
	}
	return cfg.normalize()
}

// Level returns the zerolog level named by LogLevel.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

func (c Config) normalize() (Config, error) {
	c.URL = strings.TrimRight(strings.TrimSpace(c.URL), "/")
	c.SessionToken = strings.TrimSpace(c.SessionToken)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))

	var fields []string
	for _, f := range c.MutableUserFields {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	c.MutableUserFields = fields

	if err := validate.Struct(c); err != nil {
		return Config{}, fmt.Errorf("pod: invalid config: %w", err)
	}
	return c, nil
}
