// Package config provides configuration loading for the appsec tool
// server. It supports a layered approach with priority:
// CLI flags > environment variables (APPSEC_*) > config file (~/.appsec.yaml).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/0xmanhnv/mcp-appsec/internal/command"
)

// ToolSandbox selects direct vs. containerized execution for one tool.
// Network and CapAdd pass through to the container runtime verbatim;
// vetting them is deployment-time policy.
type ToolSandbox struct {
	Enabled bool     `mapstructure:"enabled" yaml:"enabled"`
	Image   string   `mapstructure:"image" yaml:"image"`
	Network string   `mapstructure:"network" yaml:"network"`
	CapAdd  []string `mapstructure:"cap_add" yaml:"cap_add"`
}

// Spec converts the sandbox settings into a container wrap spec.
func (t ToolSandbox) Spec() command.Spec {
	return command.Spec{
		Image:   t.Image,
		Network: t.Network,
		CapAdd:  t.CapAdd,
	}
}

// Config holds all server and execution-core options. It is built once
// at startup and passed by reference into the core; nothing reads the
// environment after this point.
type Config struct {
	ListenAddr    string                 `mapstructure:"listen_addr" yaml:"listen_addr"`
	OutputFormat  string                 `mapstructure:"output_format" yaml:"output_format"`
	Concurrency   int                    `mapstructure:"concurrency" yaml:"concurrency"`
	Timeout       time.Duration          `mapstructure:"timeout" yaml:"timeout"`
	AllowedPrefix string                 `mapstructure:"allowed_prefix" yaml:"allowed_prefix"`
	MinRate       int                    `mapstructure:"min_rate" yaml:"min_rate"`
	DockerBin     string                 `mapstructure:"docker_bin" yaml:"docker_bin"`
	Wordlist      string                 `mapstructure:"wordlist" yaml:"wordlist"`
	Tools         map[string]ToolSandbox `mapstructure:"tools" yaml:"tools"`
}

// Defaults returns a Config populated with default values.
func Defaults() Config {
	return Config{
		ListenAddr:   ":8000",
		OutputFormat: "table",
		Concurrency:  50,
		Timeout:      60 * time.Second,
		MinRate:      1000,
		DockerBin:    command.DefaultDockerBin,
		Wordlist:     "/usr/share/seclists/Discovery/Web-Content/common.txt",
	}
}

// Load reads configuration from ~/.appsec.yaml and environment variables.
// It does NOT apply CLI flag overrides — call ApplyFlags for that.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(".appsec")
	v.SetConfigType("yaml")

	home, err := os.UserHomeDir()
	if err == nil {
		v.AddConfigPath(home)
	}

	v.SetEnvPrefix("APPSEC")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := Defaults()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)

	v.SetEnvPrefix("APPSEC")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Defaults()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// ApplyFlags overrides config values with any CLI flags that were
// explicitly set.
func ApplyFlags(cfg *Config, cmd *cobra.Command) {
	flags := cmd.Flags()

	if flags.Changed("output") {
		val, _ := flags.GetString("output")
		cfg.OutputFormat = val
	}
	if flags.Changed("concurrency") {
		val, _ := flags.GetInt("concurrency")
		cfg.Concurrency = val
	}
	if flags.Changed("timeout") {
		val, _ := flags.GetDuration("timeout")
		cfg.Timeout = val
	}
	if flags.Changed("scope") {
		val, _ := flags.GetString("scope")
		cfg.AllowedPrefix = val
	}
}

// Tool returns the sandbox settings for the named tool. The zero value
// means direct host execution.
func (c *Config) Tool(name string) ToolSandbox {
	if c.Tools == nil {
		return ToolSandbox{}
	}
	return c.Tools[name]
}

// InScope reports whether target is permitted by the configured scope
// prefix. An empty prefix means unrestricted.
func (c *Config) InScope(target string) bool {
	if c.AllowedPrefix == "" {
		return true
	}
	return strings.HasPrefix(target, c.AllowedPrefix)
}

// ConfigFilePath returns the default config file path (~/.appsec.yaml).
func ConfigFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".appsec.yaml"
	}
	return filepath.Join(home, ".appsec.yaml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("listen_addr", ":8000")
	v.SetDefault("output_format", "table")
	v.SetDefault("concurrency", 50)
	v.SetDefault("timeout", 60*time.Second)
	v.SetDefault("min_rate", 1000)
	v.SetDefault("docker_bin", command.DefaultDockerBin)
}
