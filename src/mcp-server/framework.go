// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"

	"github.com/H0llyW00dzZ/certlite/src/config"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
)

// serverName is reported to clients during initialization.
const serverName = "CertLite Certificate Generator"

// ToolHandler defines the signature for [MCP] tool handlers.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ToolHandler = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// ToolHandlerWithConfig defines tool handlers that need the effective
// configuration, for example to fill in default arguments.
type ToolHandlerWithConfig func(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error)

// ToolDefinition pairs a tool schema with its handler.
//
// Fields:
//   - Tool: The MCP tool definition containing name, description, and input schema
//   - Handler: The function that implements the tool's logic
//   - Role: Short role name used by the instructions template
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler ToolHandler
	Role    string
}

// ToolDefinitionWithConfig pairs a tool schema with a handler that
// receives the server configuration.
type ToolDefinitionWithConfig struct {
	Tool    mcp.Tool
	Handler ToolHandlerWithConfig
	Role    string
}

// ServerDependencies holds everything needed to create the MCP server.
//
// Fields:
//   - Config: Effective configuration; nil means [config.Default]
//   - Version: Server version string reported to clients
//   - Logger: Diagnostic logger, attached to every tool call context
//   - Tools: Tool definitions without configuration requirements
//   - ToolsWithConfig: Tool definitions that need configuration access
//   - Resources: Static and dynamic resources
//   - Instructions: Text sent to clients during initialization
type ServerDependencies struct {
	Config          *config.Config
	Version         string
	Logger          zerolog.Logger
	Tools           []ToolDefinition
	ToolsWithConfig []ToolDefinitionWithConfig
	Resources       []server.ServerResource
	Instructions    string
}

// ServerBuilder constructs the [MCP] server using a fluent interface.
//
// Example:
//
//	s, err := NewServerBuilder().
//	    WithConfig(cfg).
//	    WithVersion("0.1.0").
//	    WithDefaultTools().
//	    WithResources(createResources()...).
//	    Build()
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ServerBuilder struct{ deps ServerDependencies }

// NewServerBuilder creates a builder with a disabled logger and no tools.
func NewServerBuilder() *ServerBuilder {
	return &ServerBuilder{deps: ServerDependencies{Logger: zerolog.Nop()}}
}

// WithConfig sets the configuration passed to config-aware tools.
func (b *ServerBuilder) WithConfig(cfg *config.Config) *ServerBuilder {
	b.deps.Config = cfg
	return b
}

// WithVersion sets the server version string.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.deps.Version = version
	return b
}

// WithLogger sets the diagnostic logger. Handlers retrieve it with
// [zerolog.Ctx].
func (b *ServerBuilder) WithLogger(l zerolog.Logger) *ServerBuilder {
	b.deps.Logger = l
	return b
}

// WithTools adds tools that don't need configuration access.
func (b *ServerBuilder) WithTools(tools ...ToolDefinition) *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, tools...)
	return b
}

// WithToolsWithConfig adds tools that receive the server configuration.
func (b *ServerBuilder) WithToolsWithConfig(tools ...ToolDefinitionWithConfig) *ServerBuilder {
	b.deps.ToolsWithConfig = append(b.deps.ToolsWithConfig, tools...)
	return b
}

// WithResources adds resources readable by clients through their URIs.
func (b *ServerBuilder) WithResources(resources ...server.ServerResource) *ServerBuilder {
	b.deps.Resources = append(b.deps.Resources, resources...)
	return b
}

// WithInstructions sets the instructions sent during initialization.
func (b *ServerBuilder) WithInstructions(instructions string) *ServerBuilder {
	b.deps.Instructions = instructions
	return b
}

// WithDefaultTools adds the CertLite tools returned by createTools.
func (b *ServerBuilder) WithDefaultTools() *ServerBuilder {
	tools, toolsWithConfig := createTools()
	b.deps.Tools = append(b.deps.Tools, tools...)
	b.deps.ToolsWithConfig = append(b.deps.ToolsWithConfig, toolsWithConfig...)
	return b
}

// serverTools returns every registered tool with its handler wrapped so
// that the diagnostic logger travels in the call context and config-aware
// handlers receive the configuration.
func (b *ServerBuilder) serverTools() []server.ServerTool {
	cfg := b.deps.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := b.deps.Logger

	out := make([]server.ServerTool, 0, len(b.deps.Tools)+len(b.deps.ToolsWithConfig))
	for _, tool := range b.deps.Tools {
		handler := tool.Handler
		out = append(out, server.ServerTool{
			Tool: tool.Tool,
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handler(log.WithContext(ctx), request)
			},
		})
	}
	for _, tool := range b.deps.ToolsWithConfig {
		handler := tool.Handler
		out = append(out, server.ServerTool{
			Tool: tool.Tool,
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handler(log.WithContext(ctx), request, cfg)
			},
		})
	}
	return out
}

// Build creates the [MCP] server with all configured dependencies.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	opts := []server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithRecovery(),
	}
	if b.deps.Instructions != "" {
		opts = append(opts, server.WithInstructions(b.deps.Instructions))
	}

	s := server.NewMCPServer(serverName, b.deps.Version, opts...)
	s.AddTools(b.serverTools()...)
	for _, resource := range b.deps.Resources {
		s.AddResource(resource.Resource, resource.Handler)
	}
	return s, nil
}
