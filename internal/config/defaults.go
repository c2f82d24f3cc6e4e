// Package config provides configuration loading and defaults for harmonia.
package config

// DefaultConfigDir is the default location for harmonia configuration.
const DefaultConfigDir = "~/.config/harmonia"

// DefaultDBName is the filename for the SQLite check-in journal.
const DefaultDBName = "harmonia.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultServer holds the default HTTP listener settings.
var DefaultServer = Server{
	Host:                "0.0.0.0",
	Port:                8080,
	ReadTimeoutSeconds:  15,
	WriteTimeoutSeconds: 60,
}

// DefaultLLM holds the default enrichment settings. The API key has no
// default; enrichment stays disabled until one is configured.
var DefaultLLM = LLM{
	Model:          "gpt-4o-mini",
	Endpoint:       "https://api.openai.com/v1/chat/completions",
	TimeoutSeconds: 30,
}

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
