package cli

import (
	"go.uber.org/zap"

	"github.com/0xmanhnv/mcp-appsec/internal/tool"
	"github.com/0xmanhnv/mcp-appsec/internal/tool/ffuf"
	"github.com/0xmanhnv/mcp-appsec/internal/tool/gobuster"
	"github.com/0xmanhnv/mcp-appsec/internal/tool/hostprobe"
	"github.com/0xmanhnv/mcp-appsec/internal/tool/nmap"
	"github.com/0xmanhnv/mcp-appsec/internal/tool/rustscan"
	"github.com/0xmanhnv/mcp-appsec/internal/tool/sweep"
	"github.com/0xmanhnv/mcp-appsec/internal/tool/whatweb"
)

// newRegistry builds the full tool registry used by every surface:
// one-shot commands, the TUI, and the web server.
func newRegistry() *tool.Registry {
	return newRegistryWithLog(appLog)
}

func newRegistryWithLog(log *zap.Logger) *tool.Registry {
	env := tool.NewEnv(appConfig, log)

	reg := tool.NewRegistry()
	reg.Register(nmap.New(env))
	reg.Register(rustscan.New(env))
	reg.Register(sweep.New(env))
	reg.Register(hostprobe.New(env))
	reg.Register(ffuf.New(env))
	reg.Register(gobuster.New(env))
	reg.Register(whatweb.New(env))
	return reg
}
