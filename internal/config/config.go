package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/danielpatrickdp/soulscan/internal/palette"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SOULSCAN_"

// #region config

// Config holds the tunable runtime settings. Scoring constants are fixed and
// deliberately absent.
type Config struct {
	Workers      int      `yaml:"workers" validate:"min=1,max=256"`
	LogLevel     string   `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogJSON      bool     `yaml:"log_json"`
	MaxFileBytes int64    `yaml:"max_file_bytes" validate:"min=1024"`
	Extensions   []string `yaml:"extensions" validate:"min=1,dive,startswith=."`
	SkipDirs     []string `yaml:"skip_dirs" validate:"dive,required"`
	Archetype    string   `yaml:"archetype" validate:"omitempty,archetype"`
	Seed         int64    `yaml:"seed"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Workers:      runtime.NumCPU(),
		LogLevel:     "info",
		MaxFileBytes: 1 << 20,
		Extensions:   []string{".css", ".scss", ".tsx", ".jsx", ".ts", ".js", ".vue", ".html"},
		SkipDirs:     []string{"node_modules", ".git", ".next", "dist", "build"},
		Archetype:    "minimal",
	}
}

// #endregion config

// #region load

// Load layers defaults, the optional YAML file at path, .env files and
// SOULSCAN_* environment variables, then validates the result. An explicit
// path that does not exist is an error; missing .env files are not. With no
// envFiles given, ./.env is tried.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	if v, ok := lookup("WORKERS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sWORKERS: %w", EnvPrefix, err)
		}
		cfg.Workers = n
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup("LOG_JSON"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sLOG_JSON: %w", EnvPrefix, err)
		}
		cfg.LogJSON = b
	}
	if v, ok := lookup("MAX_FILE_BYTES"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sMAX_FILE_BYTES: %w", EnvPrefix, err)
		}
		cfg.MaxFileBytes = n
	}
	if v, ok := lookup("ARCHETYPE"); ok {
		cfg.Archetype = v
	}
	if v, ok := lookup("SEED"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
		cfg.Seed = n
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// #endregion load

// #region validate

var validate = func() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("archetype", func(fl validator.FieldLevel) bool {
		_, err := palette.LookupArchetype(fl.Field().String())
		return err == nil
	})
	return v
}()

// Validate checks field constraints.
func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// #endregion validate
