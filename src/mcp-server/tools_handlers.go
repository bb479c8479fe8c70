// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/certlite/src/config"
	"github.com/H0llyW00dzZ/certlite/src/generator"
	"github.com/H0llyW00dzZ/certlite/src/internal/pki"
	x509certs "github.com/H0llyW00dzZ/certlite/src/internal/x509/certs"
	x509chain "github.com/H0llyW00dzZ/certlite/src/internal/x509/chain"
	"github.com/cloudflare/cfssl/helpers"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"
)

// generateResult is the JSON body returned by generate_certificate.
type generateResult struct {
	Domain          string   `json:"domain"`
	Algorithm       string   `json:"algorithm"`
	RootCertificate string   `json:"rootCertificate"`
	LeafCertificate string   `json:"leafCertificate"`
	LeafKey         string   `json:"leafKey"`
	Fingerprint     string   `json:"fingerprint"`
	Bundle          string   `json:"bundle,omitempty"`
	Warnings        []string `json:"warnings,omitempty"`
}

// certificateSummary describes one certificate in the inspect_certificate
// result array.
type certificateSummary struct {
	Subject            string    `json:"subject"`
	Issuer             string    `json:"issuer"`
	SerialNumber       string    `json:"serialNumber"`
	DNSNames           []string  `json:"dnsNames,omitempty"`
	IPAddresses        []string  `json:"ipAddresses,omitempty"`
	NotBefore          time.Time `json:"notBefore"`
	NotAfter           time.Time `json:"notAfter"`
	IsCA               bool      `json:"isCA"`
	SelfSigned         bool      `json:"selfSigned"`
	SignatureAlgorithm string    `json:"signatureAlgorithm"`
	Fingerprint        string    `json:"fingerprint"`
}

// handleGenerateCertificate runs the generation pipeline for a domain.
//
// Parameters:
//   - ctx: Context for cancellation; a cancelled call stops waiting but the
//     run itself completes in the background
//   - request: Tool call with "domain" and optional "output_dir", "algorithm"
//     and "include_bundle"
//   - cfg: Configuration supplying defaults for the optional arguments
//
// Returns:
//   - A JSON result with the artifact paths and fingerprint, or an error
//     result naming the failure kind
func handleGenerateCertificate(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error) {
	domain, err := request.RequireString("domain")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("domain parameter required: %v", err)), nil
	}
	outputDir := request.GetString("output_dir", cfg.Defaults.OutputDir)
	algorithm := request.GetString("algorithm", cfg.Defaults.Algorithm)

	digest, err := generator.ParseDigest(algorithm)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("validation: %v", err)), nil
	}

	log := zerolog.Ctx(ctx).With().Str("tool", toolGenerate).Logger()
	res, err := generator.GenerateContext(ctx, generator.Input{
		Domain:    domain,
		OutputDir: outputDir,
		Digest:    digest,
	}, generator.WithLogger(log))
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
			return mcp.NewToolResultError(fmt.Sprintf("cancelled: %v", err)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("%s: %v", generator.KindName(err), err)), nil
	}

	out := generateResult{
		Domain:          domain,
		Algorithm:       digest.String(),
		RootCertificate: res.RootCertPath,
		LeafCertificate: res.LeafCertPath,
		LeafKey:         res.LeafKeyPath,
		Fingerprint:     res.Fingerprint,
	}
	for _, w := range res.Warnings {
		out.Warnings = append(out.Warnings, w.Error())
	}
	if request.GetBool("include_bundle", false) {
		ch, _, err := x509chain.Load(outputDir, domain)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to load artifacts: %v", err)), nil
		}
		out.Bundle = string(ch.EncodeMultiplePEM(ch.Certs))
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// handleVerifyCertificateChain loads and checks the artifacts of a domain.
//
// A chain that loads but fails any check is returned as an error result
// carrying the rendered report, so clients see which check failed.
func handleVerifyCertificateChain(ctx context.Context, request mcp.CallToolRequest, cfg *config.Config) (*mcp.CallToolResult, error) {
	domain, err := request.RequireString("domain")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("domain parameter required: %v", err)), nil
	}
	outputDir := request.GetString("output_dir", cfg.Defaults.OutputDir)
	format := request.GetString("format", "json")

	report, ch, err := x509chain.Verify(outputDir, domain)
	if report == nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load artifacts: %v", err)), nil
	}

	var output string
	switch format {
	case "tree":
		output = ch.RenderASCIITree(report)
	case "table":
		output = ch.RenderTable()
	default:
		data, merr := ch.ToVisualizationJSON(report)
		if merr != nil {
			return nil, fmt.Errorf("failed to marshal report: %w", merr)
		}
		output = string(data)
	}

	log := zerolog.Ctx(ctx)
	if err != nil {
		log.Warn().Err(err).Str("tool", toolVerify).Str("domain", domain).Msg("verification failed")
		return mcp.NewToolResultError(fmt.Sprintf("%v\n\n%s", err, output)), nil
	}
	log.Debug().Str("tool", toolVerify).Str("domain", domain).Msg("chain verified")
	return mcp.NewToolResultText(output), nil
}

// handleInspectCertificate summarizes every certificate in a file path or
// PEM text. A bundle such as the one generate_certificate returns yields one
// summary per certificate, in input order.
func handleInspectCertificate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	certInput, err := request.RequireString("certificate")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err)), nil
	}

	var certData []byte
	if strings.Contains(certInput, "-----BEGIN") {
		certData = []byte(certInput)
	} else if certData, err = os.ReadFile(certInput); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read certificate: %v", err)), nil
	}

	codec := x509certs.New()
	certs, err := codec.DecodeMultiple(certData)
	if err != nil {
		// PKCS7 bundles only decode through the single certificate path.
		cert, derr := codec.Decode(certData)
		if derr != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to decode certificate: %v", err)), nil
		}
		certs = []*x509.Certificate{cert}
	}

	fc := pki.NewFingerprintCalculator()
	summaries := make([]certificateSummary, 0, len(certs))
	for _, cert := range certs {
		fp, err := fc.Compute(cert)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to compute fingerprint: %v", err)), nil
		}
		summaries = append(summaries, summarize(cert, fp.String()))
	}

	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal summary: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func summarize(cert *x509.Certificate, fingerprint string) certificateSummary {
	s := certificateSummary{
		Subject:            cert.Subject.String(),
		Issuer:             cert.Issuer.String(),
		SerialNumber:       cert.SerialNumber.String(),
		DNSNames:           cert.DNSNames,
		NotBefore:          cert.NotBefore.UTC(),
		NotAfter:           cert.NotAfter.UTC(),
		IsCA:               cert.IsCA,
		SelfSigned:         cert.CheckSignatureFrom(cert) == nil,
		SignatureAlgorithm: helpers.SignatureString(cert.SignatureAlgorithm),
		Fingerprint:        fingerprint,
	}
	for _, ip := range cert.IPAddresses {
		s.IPAddresses = append(s.IPAddresses, ip.String())
	}
	return s
}
