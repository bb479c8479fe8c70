// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package store

import (
	"crypto/ecdsa"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/H0llyW00dzZ/certlite/src/internal/helper/gc"
	x509certs "github.com/H0llyW00dzZ/certlite/src/internal/x509/certs"
)

const (
	// RootCertificateFile is the fixed file name of the root certificate.
	RootCertificateFile = "root_ca.crt"

	// CertificateExt is appended to the domain for the leaf certificate.
	CertificateExt = ".crt"

	// KeyExt is appended to the domain for the leaf private key.
	KeyExt = ".key"

	certificatePerm os.FileMode = 0o644
	keyPerm         os.FileMode = 0o600
)

// TransientFiles lists intermediate artifacts that must not survive a
// successful run. None of them are produced by this package; they are the
// CA key, request, extension and serial files of openssl based flows.
var TransientFiles = []string{
	"rootCA.key",
	"server.csr",
	"server.ext",
	"root_ca.srl",
}

// ErrStorage indicates an artifact could not be written to the output directory.
var ErrStorage = errors.New("store: storage failure")

// ArtifactStore writes the artifacts of a single generation run.
//
// An ArtifactStore is not safe for concurrent use; each run owns its own.
type ArtifactStore struct {
	dir    string
	domain string
	codec  *x509certs.Certificate
	pool   gc.Pool
	log    zerolog.Logger
}

// Option configures an [ArtifactStore].
type Option func(*ArtifactStore)

// WithLogger sets the diagnostic logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *ArtifactStore) { s.log = l }
}

// WithPool sets the buffer pool used for encoding.
func WithPool(p gc.Pool) Option {
	return func(s *ArtifactStore) { s.pool = p }
}

// New returns an ArtifactStore rooted at dir for the given domain.
func New(dir, domain string, opts ...Option) *ArtifactStore {
	s := &ArtifactStore{
		dir:    dir,
		domain: domain,
		codec:  x509certs.New(),
		pool:   gc.Default,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the output directory.
func (s *ArtifactStore) Dir() string { return s.dir }

// RootCertificatePath returns the destination of the root certificate.
func (s *ArtifactStore) RootCertificatePath() string {
	return filepath.Join(s.dir, RootCertificateFile)
}

// LeafCertificatePath returns the destination of the leaf certificate.
func (s *ArtifactStore) LeafCertificatePath() string {
	return filepath.Join(s.dir, s.domain+CertificateExt)
}

// LeafKeyPath returns the destination of the leaf private key.
func (s *ArtifactStore) LeafKeyPath() string {
	return filepath.Join(s.dir, s.domain+KeyExt)
}

// WriteRootCertificate writes cert as PEM to [ArtifactStore.RootCertificatePath].
func (s *ArtifactStore) WriteRootCertificate(cert *x509.Certificate) (string, error) {
	path := s.RootCertificatePath()
	return path, s.write(path, certificatePerm, func(w io.Writer) error {
		return s.codec.WritePEM(w, cert)
	})
}

// WriteLeafKey writes key as SEC1 PEM to [ArtifactStore.LeafKeyPath] with
// owner-only permissions.
func (s *ArtifactStore) WriteLeafKey(key *ecdsa.PrivateKey) (string, error) {
	path := s.LeafKeyPath()
	return path, s.write(path, keyPerm, func(w io.Writer) error {
		return s.codec.WriteKeyPEM(w, key)
	})
}

// WriteLeafCertificate writes cert as PEM to [ArtifactStore.LeafCertificatePath].
func (s *ArtifactStore) WriteLeafCertificate(cert *x509.Certificate) (string, error) {
	path := s.LeafCertificatePath()
	return path, s.write(path, certificatePerm, func(w io.Writer) error {
		return s.codec.WritePEM(w, cert)
	})
}

// DiscardTransient removes every entry of [TransientFiles] from the output
// directory. Files that do not exist are skipped. The returned errors are
// non-fatal: the caller decides how to surface them.
//
// Because this package never writes those names, any file removed here
// predates the run and may belong to the user, for example the CA key of an
// earlier openssl based setup. Each removal is logged at info level with
// event=transient_removed.
func (s *ArtifactStore) DiscardTransient() []error {
	var errs []error
	for _, name := range TransientFiles {
		path := filepath.Join(s.dir, name)
		err := os.Remove(path)
		switch {
		case err == nil:
			s.log.Info().Str("event", "transient_removed").Str("path", path).Msg("removed pre-existing transient artifact")
		case errors.Is(err, fs.ErrNotExist):
		default:
			errs = append(errs, fmt.Errorf("store: discard %s: %w", name, err))
		}
	}
	return errs
}

// write encodes the artifact into a pooled buffer and hands it to writeAtomic.
func (s *ArtifactStore) write(path string, perm os.FileMode, encode func(io.Writer) error) error {
	err := gc.With(s.pool, func(buf gc.Buffer) error {
		if err := encode(buf); err != nil {
			return err
		}
		return writeAtomic(path, perm, buf)
	})
	if err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrStorage, filepath.Base(path), err)
	}

	s.log.Debug().Str("path", path).Stringer("mode", perm).Msg("wrote artifact")
	return nil
}
