package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	HTTPAddr          string `mapstructure:"http_addr"`
	TeachersFile      string `mapstructure:"teachers_file"`
	CredentialsSource string `mapstructure:"credentials_source"`
	DatabaseURL       string `mapstructure:"database_url"`
	MigrationsPath    string `mapstructure:"migrations_path"`
	RunMigrations     bool   `mapstructure:"run_migrations"`
	DefaultLocale     string `mapstructure:"default_locale"`
	StaticDir         string `mapstructure:"static_dir"`
	DiscordToken      string `mapstructure:"discord_token"`
	DiscordChannelID  string `mapstructure:"discord_channel_id"`
}

var defaults = map[string]any{
	"http_addr":          ":8000",
	"teachers_file":      "teachers.json",
	"credentials_source": SourceFile,
	"database_url":       "",
	"migrations_path":    "migrations",
	"run_migrations":     false,
	"default_locale":     "en",
	"static_dir":         "src/static",
	"discord_token":      "",
	"discord_channel_id": "",
}

// RegisterFlags declares one flag per config key (underscores become dashes).
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("http-addr", defaults["http_addr"].(string), "HTTP listen address")
	fs.String("teachers-file", defaults["teachers_file"].(string), "teacher credentials file (.json or .toml)")
	fs.String("credentials-source", defaults["credentials_source"].(string), `where teacher credentials come from ("file" or "postgres")`)
	fs.String("database-url", "", "PostgreSQL DSN, required when credentials-source=postgres")
	fs.String("migrations-path", defaults["migrations_path"].(string), "directory of SQL migrations")
	fs.Bool("run-migrations", false, "apply migrations at startup (postgres only)")
	fs.String("default-locale", defaults["default_locale"].(string), "locale used when the client expresses none")
	fs.String("static-dir", defaults["static_dir"].(string), "directory served under /static/")
	fs.String("discord-token", "", "Discord bot token for roster notifications")
	fs.String("discord-channel-id", "", "Discord channel receiving roster notifications")
}

// Load reads an optional .env file, then environment variables, then any flag
// set explicitly on fs. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	// .env is optional when the environment already provides the variables.
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key, strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("config: bind env %s: %w", key, err)
		}
	}
	if fs != nil {
		for key := range defaults {
			flag := fs.Lookup(strings.ReplaceAll(key, "_", "-"))
			if flag == nil || !flag.Changed {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("config: bind flag %s: %w", flag.Name, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NotifierEnabled reports whether Discord roster notifications are configured.
func (c *Config) NotifierEnabled() bool {
	return c.DiscordToken != "" && c.DiscordChannelID != ""
}

// validate checks the loaded values and normalizes a few of them.
func (c *Config) validate() error {
	if strings.TrimSpace(c.HTTPAddr) == "" {
		return errors.New("config: HTTP_ADDR must not be empty")
	}

	c.CredentialsSource = strings.ToLower(strings.TrimSpace(c.CredentialsSource))
	switch c.CredentialsSource {
	case SourceFile:
		if strings.TrimSpace(c.TeachersFile) == "" {
			return errors.New("config: TEACHERS_FILE is required when CREDENTIALS_SOURCE=file")
		}
	case SourcePostgres:
		if err := validateDatabaseURL(c.DatabaseURL); err != nil {
			return err
		}
	default:
		return fmt.Errorf("config: unknown CREDENTIALS_SOURCE %q (want file or postgres)", c.CredentialsSource)
	}

	if c.RunMigrations && c.CredentialsSource != SourcePostgres {
		return errors.New("config: RUN_MIGRATIONS requires CREDENTIALS_SOURCE=postgres")
	}

	if (c.DiscordToken == "") != (c.DiscordChannelID == "") {
		return errors.New("config: DISCORD_TOKEN and DISCORD_CHANNEL_ID must be set together")
	}
	for _, r := range c.DiscordChannelID {
		if r < '0' || r > '9' {
			return errors.New("config: DISCORD_CHANNEL_ID must be a numeric Discord channel ID")
		}
	}

	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = "en"
	}
	return nil
}

func validateDatabaseURL(dsn string) error {
	if strings.TrimSpace(dsn) == "" {
		return errors.New("config: DATABASE_URL is required when CREDENTIALS_SOURCE=postgres")
	}
	parsed, err := url.Parse(dsn)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", dsn, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", dsn)
	}
	return nil
}
