// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/H0llyW00dzZ/certlite/src/config"
	"github.com/H0llyW00dzZ/certlite/src/generator"
	"github.com/H0llyW00dzZ/certlite/src/mcp-server/templates"
	"github.com/mark3labs/mcp-go/mcp"
)

// handleConfigResource serves the annotated YAML configuration template.
func handleConfigResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uriConfigTemplate,
			MIMEType: "application/yaml",
			Text:     string(config.Template()),
		},
	}, nil
}

// handleSchemaResource serves the configuration JSON schema.
func handleSchemaResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uriConfigSchema,
			MIMEType: "application/schema+json",
			Text:     string(config.Schema()),
		},
	}, nil
}

// handleVersionResource serves server metadata.
//
// Returns:
//   - A slice containing name, version, tool names and supported
//     algorithms as JSON content
//   - An error if JSON marshaling fails
func handleVersionResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	tools, toolsWithConfig := createTools()
	names := make([]string, 0, len(tools)+len(toolsWithConfig))
	for _, t := range toolsWithConfig {
		names = append(names, t.Tool.Name)
	}
	for _, t := range tools {
		names = append(names, t.Tool.Name)
	}

	versionInfo := map[string]any{
		"name":    serverName,
		"version": GetVersion(),
		"type":    "MCP Server",
		"capabilities": map[string]any{
			"tools":     names,
			"resources": []string{uriConfigTemplate, uriConfigSchema, uriVersion, uriArtifacts},
		},
		"supportedAlgorithms": []string{generator.SHA256.String(), generator.SHA384.String()},
	}

	jsonData, err := json.MarshalIndent(versionInfo, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal version info: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uriVersion,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// handleArtifactsResource serves templates/artifacts.md.
func handleArtifactsResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	content, err := templates.MagicEmbed.ReadFile("artifacts.md")
	if err != nil {
		return nil, fmt.Errorf("failed to read artifacts template: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uriArtifacts,
			MIMEType: "text/markdown",
			Text:     string(content),
		},
	}, nil
}
