package cli

import (
	"bytes"
	"encoding/json"
	"net"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xmanhnv/mcp-appsec/pkg/types"
)

func executeCmd(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	// Capture stdout for commands that write to os.Stdout.
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := rootCmd.Execute()

	w.Close()
	os.Stdout = oldStdout

	var captured bytes.Buffer
	captured.ReadFrom(r)

	// Combine cobra output and stdout capture.
	output := buf.String() + captured.String()
	return output, err
}

func TestVersionCommand(t *testing.T) {
	output, err := executeCmd("version")
	require.NoError(t, err)
	assert.Contains(t, output, "appsec version")
}

func TestRootHelpListsCommandGroups(t *testing.T) {
	output, err := executeCmd("--help")
	require.NoError(t, err)
	for _, name := range []string{"recon", "enum", "serve", "targets", "version"} {
		assert.Contains(t, output, name)
	}
}

func TestReconHelpListsTools(t *testing.T) {
	output, err := executeCmd("recon", "--help")
	require.NoError(t, err)
	for _, name := range []string{"nmap", "rustscan", "sweep", "probe"} {
		assert.Contains(t, output, name)
	}
}

func TestEnumHelpListsTools(t *testing.T) {
	output, err := executeCmd("enum", "--help")
	require.NoError(t, err)
	for _, name := range []string{"ffuf", "gobuster", "whatweb"} {
		assert.Contains(t, output, name)
	}
}

func TestReconNmapMissingTarget(t *testing.T) {
	targetFlag = ""
	_, err := executeCmd("recon", "nmap")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--target")
}

func TestEnumFfufMissingTarget(t *testing.T) {
	targetFlag = ""
	_, err := executeCmd("enum", "ffuf")
	assert.Error(t, err)
}

func TestUnknownOutputFormat(t *testing.T) {
	_, err := executeCmd("recon", "nmap", "-t", "10.0.0.5", "-o", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestTargetsExpandsCIDR(t *testing.T) {
	output, err := executeCmd("targets", "10.0.0.0/30")
	require.NoError(t, err)
	assert.Contains(t, output, "10.0.0.1")
	assert.Contains(t, output, "10.0.0.2")
	assert.NotContains(t, output, "10.0.0.3")
}

func TestTargetsExpandsDashRange(t *testing.T) {
	output, err := executeCmd("targets", "192.168.1.10-12")
	require.NoError(t, err)
	assert.Contains(t, output, "192.168.1.10")
	assert.Contains(t, output, "192.168.1.11")
	assert.Contains(t, output, "192.168.1.12")
}

func TestTargetsRejectsGarbage(t *testing.T) {
	_, err := executeCmd("targets", "not-a-network/99")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no valid hosts")
}

func TestSweepTCPDetectsListener(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	_, portStr, _ := net.SplitHostPort(listener.Addr().String())

	output, err := executeCmd("recon", "sweep",
		"-t", "127.0.0.1",
		"--method", "tcp",
		"--tcp-port", portStr,
		"-o", "json")
	require.NoError(t, err)

	var results []types.ToolResult
	require.NoError(t, json.Unmarshal([]byte(output), &results))
	require.Len(t, results, 1)
	assert.True(t, results[0].Success)
	assert.Equal(t, "sweep", results[0].ToolName)
	assert.EqualValues(t, 1, results[0].Data["scanned"])
	assert.EqualValues(t, 1, results[0].Data["alive_count"])
}

func TestSweepRejectsBadMethod(t *testing.T) {
	output, err := executeCmd("recon", "sweep", "-t", "127.0.0.1", "--method", "udp", "-o", "json")
	require.NoError(t, err)

	var results []types.ToolResult
	require.NoError(t, json.Unmarshal([]byte(output), &results))
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.Contains(t, results[0].Error, "invalid params")

	// Restore for following tests.
	sweepMethodFlag = "icmp"
}
