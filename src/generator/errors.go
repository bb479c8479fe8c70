// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package generator

import (
	"errors"
	"fmt"

	"github.com/H0llyW00dzZ/certlite/src/internal/pki"
	"github.com/H0llyW00dzZ/certlite/src/internal/store"
)

// Error kinds reported by [Generate]. Use [errors.Is] on the returned error.
var (
	// ErrValidation indicates a bad domain or output directory. No work was done.
	ErrValidation = errors.New("generator: invalid input")

	ErrKeyGeneration    = pki.ErrKeyGeneration
	ErrCertificateBuild = pki.ErrCertificateBuild
	ErrSigning          = pki.ErrSigning
	ErrStorage          = store.ErrStorage
	ErrFingerprint      = pki.ErrFingerprint
)

var kinds = []error{
	ErrValidation,
	ErrKeyGeneration,
	ErrCertificateBuild,
	ErrSigning,
	ErrStorage,
	ErrFingerprint,
}

// GenerationError reports the stage at which a run stopped.
type GenerationError struct {
	Stage Stage
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generator: %s: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Kind returns the error kind sentinel carried by e, or nil.
func (e *GenerationError) Kind() error {
	return kindOf(e.Err)
}

// KindName returns a short name for the kind carried by err, suitable for
// log fields and tool responses.
func KindName(err error) string {
	switch kindOf(err) {
	case ErrValidation:
		return "validation"
	case ErrKeyGeneration:
		return "key_generation"
	case ErrCertificateBuild:
		return "certificate_build"
	case ErrSigning:
		return "signing"
	case ErrStorage:
		return "storage"
	case ErrFingerprint:
		return "fingerprint"
	default:
		return "unknown"
	}
}

func kindOf(err error) error {
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// defaultKind is the kind assigned to an unclassified error raised in stage.
func defaultKind(stage Stage) error {
	switch stage {
	case Idle:
		return ErrValidation
	case GeneratingCAKey, GeneratingLeafKey:
		return ErrKeyGeneration
	case SigningLeaf:
		return ErrSigning
	case PersistingArtifacts:
		return ErrStorage
	case ComputingFingerprint:
		return ErrFingerprint
	default:
		return ErrCertificateBuild
	}
}

// stageError tags err with stage, classifying it by stage when it carries no kind.
func stageError(stage Stage, err error) *GenerationError {
	if kindOf(err) == nil {
		err = fmt.Errorf("%w: %w", defaultKind(stage), err)
	}
	return &GenerationError{Stage: stage, Err: err}
}

// storageError classifies an unclassified artifact write failure as storage,
// whatever stage it happened in.
func storageError(err error) error {
	if kindOf(err) == nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return err
}
