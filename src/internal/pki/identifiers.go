// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pki

import (
	"crypto"
	"crypto/rand"
	"crypto/sha1"
	"crypto/x509"
	"encoding/asn1"
	"errors"
	"fmt"
	"io"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// serialLimit bounds serial numbers to 128 bits, well inside the 20 octets
// allowed by RFC 5280.
var serialLimit = new(big.Int).Lsh(big.NewInt(1), 128)

// randomSerial returns a random positive serial number that differs from
// every value in exclude.
func randomSerial(r io.Reader, exclude ...*big.Int) (*big.Int, error) {
	if r == nil {
		r = rand.Reader
	}
	for {
		n, err := rand.Int(r, serialLimit)
		if err != nil {
			return nil, err
		}
		if n.Sign() <= 0 || collides(n, exclude) {
			continue
		}
		return n, nil
	}
}

func collides(n *big.Int, exclude []*big.Int) bool {
	for _, e := range exclude {
		if e != nil && e.Cmp(n) == 0 {
			return true
		}
	}
	return false
}

// subjectKeyID computes the RFC 5280 method (1) key identifier: the SHA-1 of
// the subjectPublicKey BIT STRING.
func subjectKeyID(pub crypto.PublicKey) ([]byte, error) {
	spki, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return nil, err
	}

	var (
		input = cryptobyte.String(spki)
		inner cryptobyte.String
		bits  asn1.BitString
	)
	if !input.ReadASN1(&inner, cryptobyte_asn1.SEQUENCE) ||
		!inner.SkipASN1(cryptobyte_asn1.SEQUENCE) ||
		!inner.ReadASN1BitString(&bits) {
		return nil, errors.New("malformed subject public key info")
	}

	sum := sha1.Sum(bits.Bytes)
	return sum[:], nil
}

// publicKeysMatch reports whether signer holds the private half of pub.
func publicKeysMatch(signer crypto.Signer, pub crypto.PublicKey) error {
	type equaler interface {
		Equal(crypto.PublicKey) bool
	}
	own, ok := signer.Public().(equaler)
	if !ok {
		return fmt.Errorf("%w: unsupported CA key type %T", ErrSigning, signer.Public())
	}
	if !own.Equal(pub) {
		return fmt.Errorf("%w: CA private key does not match root certificate", ErrSigning)
	}
	return nil
}
