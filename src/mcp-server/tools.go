// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool names.
const (
	toolGenerate = "generate_certificate"
	toolVerify   = "verify_certificate_chain"
	toolInspect  = "inspect_certificate"
)

// createTools creates every CertLite tool definition.
//
// Returns:
//   - A slice of ToolDefinition for tools without config dependencies
//   - A slice of ToolDefinitionWithConfig for tools whose optional
//     arguments fall back to configured defaults
func createTools() ([]ToolDefinition, []ToolDefinitionWithConfig) {
	tools := []ToolDefinition{
		{
			Tool: mcp.NewTool(toolInspect,
				mcp.WithDescription("Summarize each certificate in a PEM file or bundle: subject, issuer, SANs, validity and base64 SHA-256 fingerprint"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description("Certificate file path or PEM text; bundles are accepted"),
				),
			),
			Handler: handleInspectCertificate,
			Role:    "inspector",
		},
	}

	toolsWithConfig := []ToolDefinitionWithConfig{
		{
			Tool: mcp.NewTool(toolGenerate,
				mcp.WithDescription("Create a throwaway root CA and a certificate for DOMAIN and *.DOMAIN signed by it. "+
					"Writes root_ca.crt, DOMAIN.crt and DOMAIN.key to the output directory and returns the leaf fingerprint."),
				mcp.WithString("domain",
					mcp.Required(),
					mcp.Description("Domain the certificate is issued for, e.g. example.test"),
				),
				mcp.WithString("output_dir",
					mcp.Description("Existing, writable directory for the artifacts (default from config)"),
				),
				mcp.WithString("algorithm",
					mcp.Description("Signature digest: 'sha256' or 'sha384' (default from config)"),
				),
				mcp.WithBoolean("include_bundle",
					mcp.Description("Also return the leaf and root certificates as one PEM bundle"),
				),
			),
			Handler: handleGenerateCertificate,
			Role:    "generator",
		},
		{
			Tool: mcp.NewTool(toolVerify,
				mcp.WithDescription("Check the artifacts generated for a domain: issuer linkage, signature, SANs, key match, validity and leftover transient files"),
				mcp.WithString("domain",
					mcp.Required(),
					mcp.Description("Domain the artifacts were generated for"),
				),
				mcp.WithString("output_dir",
					mcp.Description("Directory holding the artifacts (default from config)"),
				),
				mcp.WithString("format",
					mcp.Description("Output format: 'json', 'tree' or 'table' (default: json)"),
					mcp.DefaultString("json"),
					mcp.Enum("json", "tree", "table"),
				),
			),
			Handler: handleVerifyCertificateChain,
			Role:    "verifier",
		},
	}

	return tools, toolsWithConfig
}
