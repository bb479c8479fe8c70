// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package generator

import (
	"fmt"
	"os"
	"strings"

	"github.com/H0llyW00dzZ/certlite/src/internal/pki"
)

// Validate checks in without touching the key material or the output
// directory contents. The returned error wraps [ErrValidation].
//
// The domain is used verbatim as SAN entries and as the leaf file stem, so it
// only has to be non-blank, ASCII and a safe file name. The output directory
// must exist and accept new files; this is probed with a temporary file that
// is removed again.
func Validate(in Input) error {
	if err := validateDomain(in.Domain); err != nil {
		return err
	}
	if !in.Digest.Valid() {
		return fmt.Errorf("%w: unsupported digest %s", ErrValidation, in.Digest)
	}
	return validateOutputDir(in.OutputDir)
}

func validateDomain(domain string) error {
	switch {
	case strings.TrimSpace(domain) == "":
		return fmt.Errorf("%w: domain is empty", ErrValidation)
	case domain == "." || domain == "..":
		return fmt.Errorf("%w: domain %q is not a file name", ErrValidation, domain)
	case strings.ContainsAny(domain, "/\\\x00"):
		return fmt.Errorf("%w: domain %q contains a path separator or NUL", ErrValidation, domain)
	case !pki.IsIA5String(domain):
		return fmt.Errorf("%w: domain %q is not ASCII; pass its punycode form", ErrValidation, domain)
	}
	return nil
}

func validateOutputDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("%w: output directory is empty", ErrValidation)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: output directory: %w", ErrValidation, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: output directory %s is not a directory", ErrValidation, dir)
	}

	probe, err := os.CreateTemp(dir, ".certlite-probe-*")
	if err != nil {
		return fmt.Errorf("%w: output directory %s is not writable: %w", ErrValidation, dir, err)
	}
	name := probe.Name()
	probe.Close()
	if err := os.Remove(name); err != nil {
		return fmt.Errorf("%w: output directory %s: remove probe: %w", ErrValidation, dir, err)
	}
	return nil
}
