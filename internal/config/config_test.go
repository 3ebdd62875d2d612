package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, ":8000", cfg.ListenAddr)
	assert.Equal(t, "table", cfg.OutputFormat)
	assert.Equal(t, 50, cfg.Concurrency)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
	assert.Equal(t, "", cfg.AllowedPrefix)
	assert.Equal(t, 1000, cfg.MinRate)
	assert.Equal(t, "docker", cfg.DockerBin)
	assert.NotEmpty(t, cfg.Wordlist)
	assert.Empty(t, cfg.Tools)
}

func TestLoad_NoConfigFile(t *testing.T) {
	for _, key := range []string{"APPSEC_LISTEN_ADDR", "APPSEC_OUTPUT_FORMAT", "APPSEC_CONCURRENCY", "APPSEC_TIMEOUT", "APPSEC_ALLOWED_PREFIX"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "table", cfg.OutputFormat)
	assert.Equal(t, 50, cfg.Concurrency)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, ".appsec.yaml")

	content := `listen_addr: ":9000"
output_format: "json"
concurrency: 20
timeout: 10s
allowed_prefix: "10.10."
min_rate: 2000
docker_bin: "podman"
wordlist: "/tmp/wordlist.txt"
tools:
  nmap:
    enabled: true
    image: "instrumentisto/nmap"
    network: "host"
  ping:
    enabled: true
    image: "alpine"
    cap_add:
      - NET_RAW
`
	err := os.WriteFile(cfgFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromFile(cfgFile)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.ListenAddr)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, 20, cfg.Concurrency)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "10.10.", cfg.AllowedPrefix)
	assert.Equal(t, 2000, cfg.MinRate)
	assert.Equal(t, "podman", cfg.DockerBin)
	assert.Equal(t, "/tmp/wordlist.txt", cfg.Wordlist)

	nmap := cfg.Tool("nmap")
	assert.True(t, nmap.Enabled)
	assert.Equal(t, "instrumentisto/nmap", nmap.Image)
	assert.Equal(t, "host", nmap.Network)

	ping := cfg.Tool("ping")
	assert.True(t, ping.Enabled)
	assert.Equal(t, []string{"NET_RAW"}, ping.CapAdd)
}

func TestLoadFromFile_NotFound(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/.appsec.yaml")
	assert.Error(t, err)
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, ".appsec.yaml")

	err := os.WriteFile(cfgFile, []byte("{{invalid yaml"), 0644)
	require.NoError(t, err)

	_, err = LoadFromFile(cfgFile)
	assert.Error(t, err)
}

func TestLoad_EnvVarOverrides(t *testing.T) {
	t.Setenv("APPSEC_CONCURRENCY", "75")
	t.Setenv("APPSEC_OUTPUT_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 75, cfg.Concurrency)
	assert.Equal(t, "json", cfg.OutputFormat)
}

func TestApplyFlags(t *testing.T) {
	cfg := Defaults()

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("output", "table", "")
	cmd.Flags().Int("concurrency", 50, "")
	cmd.Flags().Duration("timeout", 60*time.Second, "")
	cmd.Flags().String("scope", "", "")

	require.NoError(t, cmd.Flags().Set("output", "json"))
	require.NoError(t, cmd.Flags().Set("concurrency", "25"))
	require.NoError(t, cmd.Flags().Set("scope", "192.168."))

	ApplyFlags(&cfg, cmd)

	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, 25, cfg.Concurrency)
	assert.Equal(t, "192.168.", cfg.AllowedPrefix)
	// Unchanged flags keep config values.
	assert.Equal(t, 60*time.Second, cfg.Timeout)
}

func TestToolUnknownIsZeroValue(t *testing.T) {
	cfg := Defaults()
	sb := cfg.Tool("nope")
	assert.False(t, sb.Enabled)
	assert.Empty(t, sb.Image)
}

func TestToolSandboxSpec(t *testing.T) {
	sb := ToolSandbox{
		Enabled: true,
		Image:   "alpine",
		Network: "host",
		CapAdd:  []string{"NET_RAW"},
	}
	spec := sb.Spec()
	assert.Equal(t, "alpine", spec.Image)
	assert.Equal(t, "host", spec.Network)
	assert.Equal(t, []string{"NET_RAW"}, spec.CapAdd)
}

func TestInScope(t *testing.T) {
	cfg := Defaults()
	assert.True(t, cfg.InScope("anything"))

	cfg.AllowedPrefix = "10.10."
	assert.True(t, cfg.InScope("10.10.4.2"))
	assert.False(t, cfg.InScope("192.168.1.1"))
	assert.False(t, cfg.InScope("http://10.10.4.2"))
}

func TestConfigFilePath(t *testing.T) {
	path := ConfigFilePath()
	assert.Contains(t, path, ".appsec.yaml")
}
