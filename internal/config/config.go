package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	// EnvPrefix prefixes every environment override, e.g. WH_REPO_URL sets repo.url.
	EnvPrefix = "WH_"
	// EnvConfigFile names an optional YAML config file.
	EnvConfigFile = EnvPrefix + "CONFIG"
)

// Config holds the settings shared by the drill and the article fetcher.
type Config struct {
	Debug    bool           `koanf:"debug"`
	Repo     RepoConfig     `koanf:"repo"`
	Articles ArticlesConfig `koanf:"articles"`
}

// RepoConfig points at a git repository holding deck files.
// When URL is empty decks are read from the local filesystem.
type RepoConfig struct {
	URL string `koanf:"url"`
	Dir string `koanf:"dir" validate:"required_with=URL"`
}

// ArticlesConfig configures the dictionary lookups of the article fetcher.
type ArticlesConfig struct {
	Endpoint string        `koanf:"endpoint" validate:"required,url"`
	Timeout  time.Duration `koanf:"timeout" validate:"gt=0"`
	Cache    string        `koanf:"cache"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Repo: RepoConfig{Dir: "repos"},
		Articles: ArticlesConfig{
			Endpoint: "https://www.duden.de/rechtschreibung/",
			Timeout:  10 * time.Second,
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load merges defaults, the optional config file, WH_* environment variables
// and flags, in increasing order of precedence.
func Load(flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
}
