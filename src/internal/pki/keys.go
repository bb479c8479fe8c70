// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pki

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"fmt"
	"io"
)

// KeyPair is an elliptic-curve key pair. It is owned by the stage that
// created it; call Destroy once the private half is no longer needed.
type KeyPair struct {
	Private *ecdsa.PrivateKey
	Public  *ecdsa.PublicKey
	Curve   string
}

// Destroy zeroes the private scalar and drops the references held by kp.
func (kp *KeyPair) Destroy() {
	if kp == nil {
		return
	}
	if kp.Private != nil && kp.Private.D != nil {
		kp.Private.D.SetInt64(0)
	}
	kp.Private = nil
}

// KeyPairGenerator produces fresh key pairs.
type KeyPairGenerator interface {
	Generate() (*KeyPair, error)
}

// ECDSAGenerator generates ECDSA keys on a fixed named curve.
type ECDSAGenerator struct {
	Curve elliptic.Curve
	Rand  io.Reader
}

// NewECDSAGenerator returns a generator for NIST P-256 backed by crypto/rand.
func NewECDSAGenerator() *ECDSAGenerator {
	return &ECDSAGenerator{Curve: elliptic.P256(), Rand: rand.Reader}
}

// Generate creates a new key pair.
func (g *ECDSAGenerator) Generate() (*KeyPair, error) {
	if g == nil || g.Curve == nil {
		return nil, fmt.Errorf("%w: curve unavailable", ErrKeyGeneration)
	}
	r := g.Rand
	if r == nil {
		r = rand.Reader
	}

	priv, err := ecdsa.GenerateKey(g.Curve, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyGeneration, err)
	}

	return &KeyPair{
		Private: priv,
		Public:  &priv.PublicKey,
		Curve:   g.Curve.Params().Name,
	}, nil
}
