// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Resource URIs.
const (
	uriConfigTemplate = "config://template"
	uriConfigSchema   = "config://schema"
	uriVersion        = "info://version"
	uriArtifacts      = "docs://artifacts"
)

// createResources creates every static resource served by CertLite.
func createResources() []server.ServerResource {
	return []server.ServerResource{
		{
			Resource: mcp.NewResource(uriConfigTemplate, "Configuration Template",
				mcp.WithResourceDescription("YAML configuration holding the built-in defaults"),
				mcp.WithMIMEType("application/yaml"),
			),
			Handler: handleConfigResource,
		},
		{
			Resource: mcp.NewResource(uriConfigSchema, "Configuration Schema",
				mcp.WithResourceDescription("JSON schema configuration files are validated against"),
				mcp.WithMIMEType("application/schema+json"),
			),
			Handler: handleSchemaResource,
		},
		{
			Resource: mcp.NewResource(uriVersion, "Version Information",
				mcp.WithResourceDescription("Server name, version, tools and supported algorithms"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleVersionResource,
		},
		{
			Resource: mcp.NewResource(uriArtifacts, "Generated Artifacts",
				mcp.WithResourceDescription("Files written by generate_certificate and what they contain"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: handleArtifactsResource,
		},
	}
}
