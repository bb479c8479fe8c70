// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/certlite/src/generator"
	x509chain "github.com/H0llyW00dzZ/certlite/src/internal/x509/chain"
)

func generate(t *testing.T, domain string, digest generator.Digest) (string, *generator.Result) {
	t.Helper()

	dir := t.TempDir()
	res, err := generator.Generate(generator.Input{Domain: domain, OutputDir: dir, Digest: digest})
	require.NoError(t, err)
	return dir, res
}

func copyFile(t *testing.T, from, to string) {
	t.Helper()

	data, err := os.ReadFile(from)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(to, data, 0o600))
}

func failedChecks(r *x509chain.Report) []string {
	var names []string
	for _, c := range r.Checks {
		if !c.Passed {
			names = append(names, c.Name)
		}
	}
	return names
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name       string
		domain     string
		tamper     func(t *testing.T, dir string)
		wantFailed []string
	}{
		{
			name:   "fresh localhost chain",
			domain: "localhost",
		},
		{
			name:   "IP literal",
			domain: "10.0.0.1",
		},
		{
			name:   "root from another run",
			domain: "localhost",
			tamper: func(t *testing.T, dir string) {
				other, _ := generate(t, "localhost", generator.SHA256)
				copyFile(t, filepath.Join(other, "root_ca.crt"), filepath.Join(dir, "root_ca.crt"))
			},
			wantFailed: []string{x509chain.CheckSignature},
		},
		{
			name:   "key from another run",
			domain: "localhost",
			tamper: func(t *testing.T, dir string) {
				other, _ := generate(t, "localhost", generator.SHA256)
				copyFile(t, filepath.Join(other, "localhost.key"), filepath.Join(dir, "localhost.key"))
			},
			wantFailed: []string{x509chain.CheckKeyMatch},
		},
		{
			name:   "leftover CA key",
			domain: "localhost",
			tamper: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "rootCA.key"), []byte("x"), 0o600))
			},
			wantFailed: []string{x509chain.CheckNoTransient},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, res := generate(t, tt.domain, generator.SHA256)
			if tt.tamper != nil {
				tt.tamper(t, dir)
			}

			report, ch, err := x509chain.Verify(dir, tt.domain)
			require.NotNil(t, report)
			require.NotNil(t, ch)
			assert.Len(t, report.Checks, 7)
			assert.Equal(t, tt.wantFailed, failedChecks(report))
			assert.Equal(t, res.Fingerprint, report.Fingerprint)
			assert.Equal(t, res.LeafCertPath, report.Files.LeafPath)

			if tt.wantFailed == nil {
				assert.NoError(t, err)
				assert.True(t, report.OK())
				return
			}
			assert.ErrorIs(t, err, x509chain.ErrVerification)
			assert.False(t, report.OK())
			assert.Contains(t, err.Error(), tt.wantFailed[0])
		})
	}
}

func TestVerifyLoadFailures(t *testing.T) {
	tests := []struct {
		name   string
		remove string
		write  string
	}{
		{name: "missing root", remove: "root_ca.crt"},
		{name: "missing leaf", remove: "localhost.crt"},
		{name: "missing key", remove: "localhost.key"},
		{name: "garbage leaf", write: "localhost.crt"},
		{name: "garbage key", write: "localhost.key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, _ := generate(t, "localhost", generator.SHA256)
			if tt.remove != "" {
				require.NoError(t, os.Remove(filepath.Join(dir, tt.remove)))
			}
			if tt.write != "" {
				require.NoError(t, os.WriteFile(filepath.Join(dir, tt.write), []byte("garbage"), 0o600))
			}

			report, ch, err := x509chain.Verify(dir, "localhost")
			assert.ErrorIs(t, err, x509chain.ErrLoad)
			assert.Nil(t, report)
			assert.Nil(t, ch)
		})
	}
}

func TestChainOperations(t *testing.T) {
	dir, _ := generate(t, "example.com", generator.SHA384)
	ch, key, err := x509chain.Load(dir, "example.com")
	require.NoError(t, err)
	require.NotNil(t, key)

	tests := []struct {
		name     string
		testFunc func(t *testing.T, ch *x509chain.Chain)
	}{
		{
			name: "roles and root detection",
			testFunc: func(t *testing.T, ch *x509chain.Chain) {
				require.Len(t, ch.Certs, 2)
				assert.Equal(t, "example.com", ch.Leaf().Subject.CommonName)
				assert.Equal(t, "CertLite Root CA", ch.Root().Subject.CommonName)
				assert.True(t, ch.IsRootNode(ch.Root()))
				assert.False(t, ch.IsRootNode(ch.Leaf()))
			},
		},
		{
			name: "issuer linkage",
			testFunc: func(t *testing.T, ch *x509chain.Chain) {
				assert.NoError(t, ch.CheckIssuerLinkage())

				reversed := x509chain.New(ch.Root(), ch.Leaf())
				assert.ErrorIs(t, reversed.CheckIssuerLinkage(), x509chain.ErrIssuerMismatch)
			},
		},
		{
			name: "hostname checks",
			testFunc: func(t *testing.T, ch *x509chain.Chain) {
				assert.NoError(t, ch.VerifyChain("example.com"))
				assert.NoError(t, ch.VerifyChain("www.example.com"))
				assert.Error(t, ch.VerifyChain("example.org"))
			},
		},
		{
			name: "concurrent verification",
			testFunc: func(t *testing.T, ch *x509chain.Chain) {
				const workers = 16
				errs := make(chan error, workers)

				var wg sync.WaitGroup
				wg.Add(workers)
				for range workers {
					go func() {
						defer wg.Done()
						errs <- ch.VerifyChain("example.com")
					}()
				}
				wg.Wait()
				close(errs)

				for err := range errs {
					assert.NoError(t, err)
				}
			},
		},
		{
			name: "empty chain",
			testFunc: func(t *testing.T, _ *x509chain.Chain) {
				empty := x509chain.New(nil, nil)
				assert.Nil(t, empty.Leaf())
				assert.Nil(t, empty.Root())
				assert.ErrorIs(t, empty.CheckIssuerLinkage(), x509chain.ErrEmptyChain)
				assert.ErrorIs(t, empty.VerifyChain(""), x509chain.ErrEmptyChain)
				assert.Equal(t, "No certificates in chain", empty.RenderASCIITree(nil))
				assert.Equal(t, "No certificates to display", empty.RenderTable())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t, ch)
		})
	}
}

func TestVisualization(t *testing.T) {
	dir, _ := generate(t, "localhost", generator.SHA256)
	report, ch, err := x509chain.Verify(dir, "localhost")
	require.NoError(t, err)

	t.Run("tree", func(t *testing.T) {
		tree := ch.RenderASCIITree(report)
		lines := strings.Split(strings.TrimSpace(tree), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "[✓] CertLite Root CA (Root CA Certificate)", lines[0])
		assert.Equal(t, "└── [✓] localhost (End-Entity (Leaf) Certificate)", lines[1])
		assert.Contains(t, lines[2], "SAN: localhost, *.localhost")

		failed := &x509chain.Report{Checks: []x509chain.Check{{Name: "signature"}}}
		assert.Contains(t, ch.RenderASCIITree(failed), "[✗] localhost")
	})

	t.Run("table", func(t *testing.T) {
		table := ch.RenderTable()
		assert.Contains(t, table, "Root CA Certificate")
		assert.Contains(t, table, "ECDSAWithSHA256")
		assert.Contains(t, table, "256-bit ECDSA")
		assert.Contains(t, table, "36,500")
		assert.Contains(t, table, "3,650")
	})

	t.Run("json", func(t *testing.T) {
		data, err := ch.ToVisualizationJSON(report)
		require.NoError(t, err)

		var view x509chain.ChainView
		require.NoError(t, json.Unmarshal(data, &view))
		assert.Equal(t, 2, view.ChainLength)
		require.Len(t, view.Certificates, 2)
		assert.Equal(t, 3650, view.Certificates[0].ValidityDays)
		assert.Equal(t, 36500, view.Certificates[1].ValidityDays)
		assert.Equal(t, []string{"localhost", "*.localhost"}, view.Certificates[0].DNSNames)
		assert.True(t, view.Certificates[1].IsCA)
		assert.Equal(t, []x509chain.RelationshipView{{FromIndex: 0, ToIndex: 1, Type: "signed_by"}}, view.Relationships)
		require.NotNil(t, view.Report)
		assert.Equal(t, report.Fingerprint, view.Report.Fingerprint)
	})
}
