package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the top-level harmonia configuration.
type Config struct {
	Server Server `mapstructure:"server"`
	LLM    LLM    `mapstructure:"llm"`
	Output Output `mapstructure:"output"`
}

// Server defines the HTTP listener settings.
type Server struct {
	Host                string   `mapstructure:"host"`
	Port                int      `mapstructure:"port"`
	AllowedOrigins      []string `mapstructure:"allowed_origins"`
	ReadTimeoutSeconds  int      `mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds int      `mapstructure:"write_timeout_seconds"`
}

// LLM defines the enrichment endpoint settings. Enrichment is active
// only when an API key is set.
type LLM struct {
	APIKey         string `mapstructure:"api_key"`
	Model          string `mapstructure:"model"`
	Endpoint       string `mapstructure:"endpoint"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Enabled reports whether an API key is configured.
func (l LLM) Enabled() bool {
	return l.APIKey != ""
}

// Timeout returns the request timeout as a duration.
func (l LLM) Timeout() time.Duration {
	return time.Duration(l.TimeoutSeconds) * time.Second
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied. Environment variables
// override file values for the LLM settings.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("server.host", DefaultServer.Host)
	v.SetDefault("server.port", DefaultServer.Port)
	v.SetDefault("server.allowed_origins", []string{})
	v.SetDefault("server.read_timeout_seconds", DefaultServer.ReadTimeoutSeconds)
	v.SetDefault("server.write_timeout_seconds", DefaultServer.WriteTimeoutSeconds)
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", DefaultLLM.Model)
	v.SetDefault("llm.endpoint", DefaultLLM.Endpoint)
	v.SetDefault("llm.timeout_seconds", DefaultLLM.TimeoutSeconds)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	// Environment overrides, matching the variables the hosted
	// deployment uses.
	_ = v.BindEnv("server.port", "PORT")
	_ = v.BindEnv("llm.api_key", "HARMONIA_OPENAI_API_KEY", "OPENAI_API_KEY")
	_ = v.BindEnv("llm.model", "OPENAI_MODEL")
	_ = v.BindEnv("llm.endpoint", "OPENAI_API_URL")

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error for problems other than file not found.
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// DBPath returns the full path to the SQLite check-in journal.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
