// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package generator issues a locally trusted TLS certificate chain for a
// single domain.
//
// Each call to [Generate] creates an ephemeral root certificate authority,
// signs a leaf certificate whose Subject Alternative Names are the domain and
// its wildcard form, writes the root certificate, leaf key and leaf
// certificate into the output directory and returns the base64 SHA-256
// fingerprint of the leaf certificate. The CA private key only ever lives in
// memory and is destroyed once the leaf has been signed, so two runs produce
// two unrelated trust roots.
//
// The run is a strict sequence of [Stage] values:
//
//	Idle -> GeneratingCAKey -> GeneratingRootCert -> GeneratingLeafKey ->
//	BuildingRequest -> SigningLeaf -> PersistingArtifacts ->
//	ComputingFingerprint -> Done
//
// Any failure stops the run with a [*GenerationError] naming the stage and the
// error kind ([ErrValidation], [ErrKeyGeneration], [ErrCertificateBuild],
// [ErrSigning], [ErrStorage] or [ErrFingerprint]). Nothing is rolled back:
// artifacts written before the failing stage stay on disk.
//
// Example:
//
//	res, err := generator.Generate(generator.Input{
//		Domain:    "localhost",
//		OutputDir: ".",
//		Digest:    generator.SHA256,
//	})
//	if err != nil {
//		var gerr *generator.GenerationError
//		if errors.As(err, &gerr) {
//			log.Printf("failed at %s: %v", gerr.Stage, gerr.Err)
//		}
//		return err
//	}
//	fmt.Println(res.Fingerprint)
package generator
