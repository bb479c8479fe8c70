// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cloudflare/cfssl/helpers"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer groups digits in day counts ("36,500").
var printer = message.NewPrinter(language.English)

// validityDays returns the whole days between NotBefore and NotAfter.
func validityDays(cert *x509.Certificate) int {
	return int(cert.NotAfter.Sub(cert.NotBefore) / (24 * time.Hour))
}

// keyDescription formats the public key type and size.
func keyDescription(cert *x509.Certificate) (algo string, bits int) {
	switch pub := cert.PublicKey.(type) {
	case *ecdsa.PublicKey:
		return "ECDSA", pub.Curve.Params().BitSize
	case *rsa.PublicKey:
		return "RSA", pub.Size() * 8
	default:
		return "unknown", 0
	}
}

// RenderASCIITree renders the chain as a tree, root first.
//
// Parameters:
//   - report: Optional verification report; a failed report marks the leaf with ✗
//
// Returns:
//   - string: Tree representation of the chain
func (ch *Chain) RenderASCIITree(report *Report) string {
	ch.mu.RLock()
	defer ch.mu.RUnlock()

	if len(ch.Certs) == 0 {
		return "No certificates in chain"
	}

	var result strings.Builder
	depth := 0
	for i := len(ch.Certs) - 1; i >= 0; i-- {
		cert := ch.Certs[i]

		statusIcon := "✓"
		if i == 0 && report != nil && !report.OK() {
			statusIcon = "✗"
		}

		certInfo := fmt.Sprintf("[%s] %s (%s)", statusIcon, cert.Subject.CommonName, ch.getCertificateRole(i))
		if depth == 0 {
			result.WriteString(certInfo + "\n")
		} else {
			result.WriteString(strings.Repeat("    ", depth-1) + "└── " + certInfo + "\n")
		}
		if i == 0 && len(cert.DNSNames) > 0 {
			result.WriteString(strings.Repeat("    ", depth) + "    SAN: " + strings.Join(cert.DNSNames, ", ") + "\n")
		}
		depth++
	}

	return result.String()
}

// RenderTable renders the chain as a markdown table, leaf first.
//
// Returns:
//   - string: Markdown table with role, subject, issuer, signature
//     algorithm, key, expiry and validity in days
func (ch *Chain) RenderTable() string {
	ch.mu.RLock()
	defer ch.mu.RUnlock()

	if len(ch.Certs) == 0 {
		return "No certificates to display"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"#", "Role", "Subject", "Issuer", "Signature", "Key", "Valid Until", "Validity (days)"})

	var rows [][]string
	for i, cert := range ch.Certs {
		algo, bits := keyDescription(cert)
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			ch.getCertificateRole(i),
			cert.Subject.CommonName,
			cert.Issuer.CommonName,
			helpers.SignatureString(cert.SignatureAlgorithm),
			fmt.Sprintf("%d-bit %s", bits, algo),
			cert.NotAfter.UTC().Format("2006-01-02"),
			printer.Sprintf("%d", validityDays(cert)),
		})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}

// CertificateView is the JSON form of one certificate.
type CertificateView struct {
	Index              int       `json:"index"`
	Role               string    `json:"role"`
	Subject            string    `json:"subject"`
	Issuer             string    `json:"issuer"`
	SerialNumber       string    `json:"serialNumber"`
	SignatureAlgorithm string    `json:"signatureAlgorithm"`
	PublicKeyAlgorithm string    `json:"publicKeyAlgorithm"`
	KeySize            int       `json:"keySize"`
	NotBefore          time.Time `json:"notBefore"`
	NotAfter           time.Time `json:"notAfter"`
	ValidityDays       int       `json:"validityDays"`
	IsCA               bool      `json:"isCA"`
	DNSNames           []string  `json:"dnsNames,omitempty"`
}

// RelationshipView links a certificate to its issuer.
type RelationshipView struct {
	FromIndex int    `json:"fromIndex"`
	ToIndex   int    `json:"toIndex"`
	Type      string `json:"type"`
}

// ChainView is the JSON form of a chain and its optional report.
type ChainView struct {
	Timestamp     string             `json:"timestamp"`
	ChainLength   int                `json:"chainLength"`
	Certificates  []CertificateView  `json:"certificates"`
	Relationships []RelationshipView `json:"relationships"`
	Report        *Report            `json:"report,omitempty"`
}

// ToVisualizationJSON converts the chain to indented JSON.
//
// Parameters:
//   - report: Optional verification report embedded under "report"
//
// Returns:
//   - []byte: JSON representation of the chain
//   - error: Error if JSON marshaling fails
func (ch *Chain) ToVisualizationJSON(report *Report) ([]byte, error) {
	ch.mu.RLock()
	defer ch.mu.RUnlock()

	now := time.Now
	if ch.Now != nil {
		now = ch.Now
	}

	data := ChainView{
		Timestamp:     now().UTC().Format(time.RFC3339),
		ChainLength:   len(ch.Certs),
		Certificates:  make([]CertificateView, len(ch.Certs)),
		Relationships: []RelationshipView{},
		Report:        report,
	}

	for i, cert := range ch.Certs {
		algo, bits := keyDescription(cert)
		data.Certificates[i] = CertificateView{
			Index:              i,
			Role:               ch.getCertificateRole(i),
			Subject:            cert.Subject.String(),
			Issuer:             cert.Issuer.String(),
			SerialNumber:       cert.SerialNumber.String(),
			SignatureAlgorithm: helpers.SignatureString(cert.SignatureAlgorithm),
			PublicKeyAlgorithm: algo,
			KeySize:            bits,
			NotBefore:          cert.NotBefore,
			NotAfter:           cert.NotAfter,
			ValidityDays:       validityDays(cert),
			IsCA:               cert.IsCA,
			DNSNames:           cert.DNSNames,
		}
	}

	for i := 0; i < len(ch.Certs)-1; i++ {
		data.Relationships = append(data.Relationships, RelationshipView{
			FromIndex: i,
			ToIndex:   i + 1,
			Type:      "signed_by",
		})
	}

	return json.MarshalIndent(data, "", "  ")
}
