// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pki

import (
	"crypto/ecdsa"
	"fmt"
)

// CertificateRequest is the unsigned description of a leaf certificate. It
// is an in-memory handoff to the signer and is never persisted.
type CertificateRequest struct {
	Subject   DistinguishedName
	PublicKey *ecdsa.PublicKey
	SAN       SANExtension
}

// NewCertificateRequest describes a leaf for domain bound to the public half
// of kp, with subject /C=CN/O=CertLite/CN=<domain>.
func NewCertificateRequest(kp *KeyPair, domain string) (*CertificateRequest, error) {
	if kp == nil || kp.Public == nil {
		return nil, fmt.Errorf("%w: missing leaf key pair", ErrCertificateBuild)
	}

	subject := NewDistinguishedName(domain)
	if err := subject.Validate(); err != nil {
		return nil, err
	}

	return &CertificateRequest{
		Subject:   subject,
		PublicKey: kp.Public,
		SAN:       BuildSAN(domain),
	}, nil
}
