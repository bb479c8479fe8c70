// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package generator

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/H0llyW00dzZ/certlite/src/internal/pki"
)

// Digest selects the certificate signature hash.
type Digest = pki.Digest

const (
	SHA256 = pki.SHA256
	SHA384 = pki.SHA384
)

// ParseDigest parses "sha256" or "sha384" in any case, with or without a dash.
func ParseDigest(s string) (Digest, error) { return pki.ParseDigest(s) }

// Input is the immutable request of one run.
type Input struct {
	Domain    string
	OutputDir string
	Digest    Digest
}

// Result is returned by a successful run.
type Result struct {
	RootCertPath string
	LeafCertPath string
	LeafKeyPath  string

	// Fingerprint is the padded base64 SHA-256 digest of the leaf DER.
	Fingerprint string

	// Warnings lists transient artifacts that could not be removed.
	// They do not affect the outcome of the run.
	Warnings []error
}

// Pipeline runs the generation stages. A Pipeline holds no per-run state and
// may be shared; overlapping runs against the same directory and domain race
// on the output files.
type Pipeline struct {
	keys        pki.KeyPairGenerator
	root        RootIssuer
	signer      pki.CertificateSigner
	newStore    StoreFactory
	fingerprint *pki.FingerprintCalculator
	log         zerolog.Logger
	progress    func(Stage)
}

// New returns a Pipeline using P-256 keys, the CertLite root authority,
// the leaf signer and the on-disk artifact store unless overridden.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		keys:        pki.NewECDSAGenerator(),
		root:        pki.NewRootCertificateAuthority(),
		signer:      pki.NewLeafSigner(),
		newStore:    defaultStore,
		fingerprint: pki.NewFingerprintCalculator(),
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Generate runs a new Pipeline configured by opts. See [Pipeline.Generate].
func Generate(in Input, opts ...Option) (*Result, error) {
	return New(opts...).Generate(in)
}

// GenerateAsync runs a new Pipeline configured by opts. See [Pipeline.GenerateAsync].
func GenerateAsync(in Input, done func(*Result, error), opts ...Option) {
	New(opts...).GenerateAsync(in, done)
}

// GenerateContext runs a new Pipeline configured by opts. See [Pipeline.GenerateContext].
func GenerateContext(ctx context.Context, in Input, opts ...Option) (*Result, error) {
	return New(opts...).GenerateContext(ctx, in)
}

// GenerateContext runs [Pipeline.GenerateAsync] and waits for its outcome or
// for ctx to be done, whichever comes first. A run is never interrupted
// midway: when ctx wins, ctx.Err() is returned and the run completes in the
// background.
func (p *Pipeline) GenerateContext(ctx context.Context, in Input) (*Result, error) {
	type outcome struct {
		res *Result
		err error
	}
	done := make(chan outcome, 1)

	p.GenerateAsync(in, func(res *Result, err error) {
		done <- outcome{res, err}
	})

	select {
	case o := <-done:
		return o.res, o.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// GenerateAsync runs [Pipeline.Generate] on its own goroutine and calls done
// exactly once with its outcome. done runs on that goroutine.
func (p *Pipeline) GenerateAsync(in Input, done func(*Result, error)) {
	go func() {
		res, err := p.Generate(in)
		if done != nil {
			done(res, err)
		}
	}()
}

// Generate issues the root and leaf certificates for in and writes them to
// in.OutputDir. On failure the returned error is a [*GenerationError].
//
// Validation runs before any key is generated or file written. Later stages
// write as they go: the root certificate at GeneratingRootCert, the leaf key
// at GeneratingLeafKey and the leaf certificate at PersistingArtifacts. The
// CA private key is destroyed as soon as the leaf is signed and is never
// written.
func (p *Pipeline) Generate(in Input) (*Result, error) {
	log := p.log.With().Str("domain", in.Domain).Stringer("digest", in.Digest).Logger()

	if err := Validate(in); err != nil {
		return nil, p.fail(log, Idle, err)
	}

	st := p.newStore(in.OutputDir, in.Domain, log)
	res := &Result{}

	p.enter(log, GeneratingCAKey)
	caKey, err := p.keys.Generate()
	if err != nil {
		return nil, p.fail(log, GeneratingCAKey, err)
	}
	defer caKey.Destroy()

	p.enter(log, GeneratingRootCert)
	root, err := p.root.Issue(caKey, in.Digest)
	if err != nil {
		return nil, p.fail(log, GeneratingRootCert, err)
	}
	if res.RootCertPath, err = st.WriteRootCertificate(root); err != nil {
		return nil, p.fail(log, GeneratingRootCert, storageError(err))
	}

	p.enter(log, GeneratingLeafKey)
	leafKey, err := p.keys.Generate()
	if err != nil {
		return nil, p.fail(log, GeneratingLeafKey, err)
	}
	defer leafKey.Destroy()
	if res.LeafKeyPath, err = st.WriteLeafKey(leafKey.Private); err != nil {
		return nil, p.fail(log, GeneratingLeafKey, storageError(err))
	}

	p.enter(log, BuildingRequest)
	req, err := pki.NewCertificateRequest(leafKey, in.Domain)
	if err != nil {
		return nil, p.fail(log, BuildingRequest, err)
	}

	p.enter(log, SigningLeaf)
	leaf, err := p.signer.Sign(req, root, caKey.Private, in.Digest)
	caKey.Destroy()
	if err != nil {
		return nil, p.fail(log, SigningLeaf, err)
	}

	p.enter(log, PersistingArtifacts)
	if res.LeafCertPath, err = st.WriteLeafCertificate(leaf); err != nil {
		return nil, p.fail(log, PersistingArtifacts, storageError(err))
	}
	for _, w := range st.DiscardTransient() {
		log.Warn().Err(w).Str("event", "transient_cleanup_failed").Msg("transient artifact left behind")
		res.Warnings = append(res.Warnings, w)
	}

	p.enter(log, ComputingFingerprint)
	fp, err := p.fingerprint.Compute(leaf)
	if err != nil {
		return nil, p.fail(log, ComputingFingerprint, err)
	}
	res.Fingerprint = fp.String()

	p.enter(log, Done)
	log.Info().
		Str("root", res.RootCertPath).
		Str("leaf", res.LeafCertPath).
		Str("key", res.LeafKeyPath).
		Str("fingerprint", res.Fingerprint).
		Msg("certificate chain generated")
	return res, nil
}

func (p *Pipeline) enter(log zerolog.Logger, s Stage) {
	log.Debug().Stringer("stage", s).Msg("stage transition")
	if p.progress != nil {
		p.progress(s)
	}
}

func (p *Pipeline) fail(log zerolog.Logger, s Stage, err error) error {
	gerr := stageError(s, err)
	log.Error().Err(gerr.Err).Stringer("stage", s).Str("kind", KindName(gerr)).Msg("generation failed")
	return gerr
}
