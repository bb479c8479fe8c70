// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509chain

import (
	"crypto"
	"crypto/x509"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/certlite/src/internal/pki"
	"github.com/H0llyW00dzZ/certlite/src/internal/store"
	x509certs "github.com/H0llyW00dzZ/certlite/src/internal/x509/certs"
)

var (
	// ErrLoad indicates an artifact could not be read or decoded.
	ErrLoad = errors.New("x509chain: failed to load artifact")

	// ErrVerification indicates at least one check failed.
	ErrVerification = errors.New("x509chain: verification failed")
)

// Check names reported by [Verify].
const (
	CheckIssuerLinkage  = "issuer_linkage"
	CheckRootSelfSigned = "root_self_signed"
	CheckSignature      = "signature"
	CheckSubjectAltName = "subject_alt_names"
	CheckKeyMatch       = "leaf_key_match"
	CheckValidity       = "validity"
	CheckNoTransient    = "no_transient_artifacts"
)

// validitySlack absorbs clock rounding in validity comparisons.
const validitySlack = 24 * time.Hour

// Files names the artifacts of one domain.
type Files struct {
	RootPath string `json:"root"`
	LeafPath string `json:"leaf"`
	KeyPath  string `json:"key"`
}

// FilesFor returns the artifact paths for domain inside dir.
func FilesFor(dir, domain string) Files {
	s := store.New(dir, domain)
	return Files{
		RootPath: s.RootCertificatePath(),
		LeafPath: s.LeafCertificatePath(),
		KeyPath:  s.LeafKeyPath(),
	}
}

// Check is the outcome of one verification step.
type Check struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

// Report collects every check run against a generated chain.
type Report struct {
	Domain      string  `json:"domain"`
	Files       Files   `json:"files"`
	Fingerprint string  `json:"fingerprint"`
	Checks      []Check `json:"checks"`
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	for _, c := range r.Checks {
		if !c.Passed {
			return false
		}
	}
	return true
}

// Err returns nil when every check passed, otherwise an error wrapping
// [ErrVerification] that lists the failed checks.
func (r *Report) Err() error {
	var failed []string
	for _, c := range r.Checks {
		if !c.Passed {
			failed = append(failed, c.Name+": "+c.Detail)
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrVerification, strings.Join(failed, "; "))
}

func (r *Report) add(name string, err error) {
	c := Check{Name: name, Passed: err == nil}
	if err != nil {
		c.Detail = err.Error()
	}
	r.Checks = append(r.Checks, c)
}

// Load reads the root certificate, leaf certificate and leaf key of domain
// from dir.
//
// Returns:
//   - *Chain: Leaf and root, in that order
//   - crypto.Signer: The decoded leaf private key
//   - error: [ErrLoad] wrapping the read or decode failure
func Load(dir, domain string) (*Chain, crypto.Signer, error) {
	files := FilesFor(dir, domain)
	codec := x509certs.New()

	readCert := func(path string) (*x509.Certificate, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoad, err)
		}
		cert, err := codec.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoad, filepath.Base(path), err)
		}
		return cert, nil
	}

	root, err := readCert(files.RootPath)
	if err != nil {
		return nil, nil, err
	}
	leaf, err := readCert(files.LeafPath)
	if err != nil {
		return nil, nil, err
	}

	data, err := os.ReadFile(files.KeyPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer clear(data)
	key, err := codec.DecodeKey(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrLoad, filepath.Base(files.KeyPath), err)
	}

	return New(leaf, root), key, nil
}

// Verify loads the artifacts of domain from dir and checks them.
//
// A load failure is returned as an error with a nil report. Otherwise the
// report is always returned and the error is [Report.Err].
func Verify(dir, domain string) (*Report, *Chain, error) {
	ch, key, err := Load(dir, domain)
	if err != nil {
		return nil, nil, err
	}

	report := &Report{Domain: domain, Files: FilesFor(dir, domain)}
	leaf, root := ch.Leaf(), ch.Root()

	if fp, err := pki.NewFingerprintCalculator().Compute(leaf); err == nil {
		report.Fingerprint = fp.String()
	}

	report.add(CheckIssuerLinkage, ch.CheckIssuerLinkage())
	report.add(CheckRootSelfSigned, checkRoot(ch, root))
	report.add(CheckSignature, ch.VerifyChain(domain))
	report.add(CheckSubjectAltName, checkSAN(leaf, domain))
	report.add(CheckKeyMatch, checkKey(leaf, key))
	report.add(CheckValidity, checkValidity(leaf, root))
	report.add(CheckNoTransient, checkTransient(dir))

	return report, ch, report.Err()
}

func checkRoot(ch *Chain, root *x509.Certificate) error {
	if !ch.IsRootNode(root) {
		return errors.New("root certificate is not self-signed")
	}
	if !root.IsCA {
		return errors.New("root certificate is not a CA")
	}
	return nil
}

func checkSAN(leaf *x509.Certificate, domain string) error {
	want := pki.BuildSAN(domain)
	if !slices.Equal([]string(want), leaf.DNSNames) {
		return fmt.Errorf("got %q, want %q", leaf.DNSNames, []string(want))
	}
	return nil
}

func checkKey(leaf *x509.Certificate, key crypto.Signer) error {
	pub, ok := key.Public().(interface{ Equal(crypto.PublicKey) bool })
	if !ok || !pub.Equal(leaf.PublicKey) {
		return errors.New("private key does not match leaf certificate")
	}
	return nil
}

func checkValidity(leaf, root *x509.Certificate) error {
	for _, c := range []struct {
		name string
		cert *x509.Certificate
		days int
	}{
		{"leaf", leaf, pki.LeafValidityDays},
		{"root", root, pki.RootValidityDays},
	} {
		got := c.cert.NotAfter.Sub(c.cert.NotBefore)
		if diff := got - pki.Days(c.days); diff > validitySlack || diff < -validitySlack {
			return fmt.Errorf("%s valid for %s, want %d days", c.name, got, c.days)
		}
	}
	return nil
}

func checkTransient(dir string) error {
	var present []string
	for _, name := range store.TransientFiles {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil || !errors.Is(err, fs.ErrNotExist) {
			present = append(present, name)
		}
	}
	if len(present) > 0 {
		return fmt.Errorf("found %s", strings.Join(present, ", "))
	}
	return nil
}
