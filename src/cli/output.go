// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/json"
	"strings"

	"github.com/H0llyW00dzZ/certlite/src/generator"
	x509chain "github.com/H0llyW00dzZ/certlite/src/internal/x509/chain"
	"github.com/H0llyW00dzZ/certlite/src/logger"
)

type outputFormat int

const (
	formatText outputFormat = iota
	formatJSON
	formatTable
	formatTree
)

// resultView is the JSON form of a successful generation.
type resultView struct {
	Domain          string   `json:"domain"`
	Algorithm       string   `json:"algorithm"`
	RootCertificate string   `json:"rootCertificate"`
	LeafCertificate string   `json:"leafCertificate"`
	LeafKey         string   `json:"leafKey"`
	Fingerprint     string   `json:"fingerprint"`
	Warnings        []string `json:"warnings,omitempty"`
}

func newResultView(domain string, digest generator.Digest, res *generator.Result) resultView {
	v := resultView{
		Domain:          domain,
		Algorithm:       digest.String(),
		RootCertificate: res.RootCertPath,
		LeafCertificate: res.LeafCertPath,
		LeafKey:         res.LeafKeyPath,
		Fingerprint:     res.Fingerprint,
	}
	for _, w := range res.Warnings {
		v.Warnings = append(v.Warnings, w.Error())
	}
	return v
}

func printResult(log logger.Logger, opts *options, digest generator.Digest, res *generator.Result) error {
	switch opts.format {
	case formatJSON:
		data, err := json.MarshalIndent(newResultView(opts.domain, digest, res), "", "  ")
		if err != nil {
			return err
		}
		log.Println(string(data))
		return nil

	case formatTable, formatTree:
		ch, _, err := x509chain.Load(opts.outputDir, opts.domain)
		if err != nil {
			return err
		}
		log.Println(renderChain(ch, nil, opts.format))

	default:
		log.Printf("Root certificate: %s", res.RootCertPath)
		log.Printf("Leaf certificate: %s", res.LeafCertPath)
		log.Printf("Leaf private key: %s", res.LeafKeyPath)
	}

	log.Printf("Fingerprint (SHA-256): %s", res.Fingerprint)
	for _, w := range res.Warnings {
		log.Printf("Warning: %v", w)
	}
	return nil
}

func renderChain(ch *x509chain.Chain, report *x509chain.Report, format outputFormat) string {
	if format == formatTable {
		return strings.TrimRight(ch.RenderTable(), "\n")
	}
	return strings.TrimRight(ch.RenderASCIITree(report), "\n")
}

func printReport(log logger.Logger, ch *x509chain.Chain, report *x509chain.Report, format outputFormat) error {
	switch format {
	case formatJSON:
		data, err := ch.ToVisualizationJSON(report)
		if err != nil {
			return err
		}
		log.Println(string(data))
		return nil

	case formatTable, formatTree:
		log.Println(renderChain(ch, report, format))
	}

	for _, c := range report.Checks {
		if c.Passed {
			log.Printf("[PASS] %s", c.Name)
			continue
		}
		log.Printf("[FAIL] %s: %s", c.Name, c.Detail)
	}
	log.Printf("Fingerprint (SHA-256): %s", report.Fingerprint)
	return nil
}
