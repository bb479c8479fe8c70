// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io"

	"github.com/cloudflare/cfssl/crypto/pkcs7"
	"github.com/cloudflare/cfssl/helpers"
)

const (
	// CertificateBlockType is the PEM block type for certificates.
	CertificateBlockType = "CERTIFICATE"

	// ECPrivateKeyBlockType is the PEM block type for SEC1 EC private keys.
	ECPrivateKeyBlockType = "EC PRIVATE KEY"
)

var (
	// ErrInvalidPEMBlock indicates that the provided data does not contain a valid PEM block.
	ErrInvalidPEMBlock = errors.New("x509certs: invalid PEM block")

	// ErrInvalidBlockType indicates that the PEM block type is not the expected certificate type.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrParseCertificate indicates a failure to parse the certificate from the provided data.
	ErrParseCertificate = errors.New("x509certs: failed to parse certificate")

	// ErrParsePKCS7 indicates a failure to parse PKCS7 formatted data.
	ErrParsePKCS7 = errors.New("x509certs: failed to parse PKCS7 data")

	// ErrNoCertificatesInPKCS indicates that no certificates were found in the PKCS7 data.
	ErrNoCertificatesInPKCS = errors.New("x509certs: no certificates found in PKCS7 data")

	// ErrEncodeKey indicates the private key could not be marshaled.
	ErrEncodeKey = errors.New("x509certs: failed to encode private key")

	// ErrParseKey indicates the private key could not be parsed.
	ErrParseKey = errors.New("x509certs: failed to parse private key")
)

// Certificate provides methods to decode and encode [X.509] certificates
// and the EC private keys that accompany them.
//
// [X.509]: https://en.wikipedia.org/wiki/X.509
type Certificate struct {
	certBlockType string
	keyBlockType  string
}

// New creates a new Certificate with default settings.
func New() *Certificate {
	return &Certificate{
		certBlockType: CertificateBlockType,
		keyBlockType:  ECPrivateKeyBlockType,
	}
}

// IsPEM checks if the data is in PEM format.
func (c *Certificate) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// decodePEMBlock decodes a PEM block and checks its type.
func (c *Certificate) decodePEMBlock(data []byte, blockType string) (*pem.Block, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrInvalidPEMBlock
	}
	if block.Type != blockType {
		return nil, ErrInvalidBlockType
	}
	return block, nil
}

// DecodeMultiple decodes one or more certificates from data.
// Non-certificate PEM blocks (such as a private key in a combined file) are skipped.
func (c *Certificate) DecodeMultiple(data []byte) ([]*x509.Certificate, error) {
	if !c.IsPEM(data) {
		certs, err := x509.ParseCertificates(data)
		if err != nil {
			return nil, ErrParseCertificate
		}
		return certs, nil
	}

	var certs []*x509.Certificate
	for len(data) > 0 {
		block, rest := pem.Decode(data)
		if block == nil {
			break
		}
		data = rest
		if block.Type != c.certBlockType {
			continue
		}

		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, ErrParseCertificate
		}
		certs = append(certs, cert)
	}

	if len(certs) == 0 {
		return nil, ErrInvalidBlockType
	}
	return certs, nil
}

// Decode decodes a single certificate from PEM, DER or PKCS7 data.
func (c *Certificate) Decode(data []byte) (*x509.Certificate, error) {
	if c.IsPEM(data) {
		block, err := c.decodePEMBlock(data, c.certBlockType)
		if err != nil {
			return nil, err
		}

		data = block.Bytes
	}

	cert, err := x509.ParseCertificate(data)
	if err == nil {
		return cert, nil
	}

	// Attempt to parse as PKCS7 using Cloudflare's library
	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, ErrParsePKCS7
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificatesInPKCS
	}

	return p.Content.SignedData.Certificates[0], nil
}

// EncodePEM encodes a certificate to PEM format.
func (c *Certificate) EncodePEM(cert *x509.Certificate) []byte {
	return pem.EncodeToMemory(&pem.Block{
		Type:  c.certBlockType,
		Bytes: cert.Raw,
	})
}

// WritePEM writes cert to w as a single PEM block.
func (c *Certificate) WritePEM(w io.Writer, cert *x509.Certificate) error {
	if cert == nil || len(cert.Raw) == 0 {
		return ErrParseCertificate
	}
	return pem.Encode(w, &pem.Block{Type: c.certBlockType, Bytes: cert.Raw})
}

// EncodeMultiplePEM encodes multiple certificates to PEM format.
func (c *Certificate) EncodeMultiplePEM(certs []*x509.Certificate) []byte {
	var data []byte

	for _, cert := range certs {
		data = append(data, c.EncodePEM(cert)...)
	}

	return data
}

// WriteKeyPEM writes key to w as a SEC1 "EC PRIVATE KEY" PEM block.
//
// The intermediate DER is zeroed once it has been encoded.
func (c *Certificate) WriteKeyPEM(w io.Writer, key *ecdsa.PrivateKey) error {
	if key == nil {
		return ErrEncodeKey
	}

	der, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodeKey, err)
	}
	defer clear(der)

	return pem.Encode(w, &pem.Block{Type: c.keyBlockType, Bytes: der})
}

// DecodeKey parses a PEM encoded private key. SEC1, PKCS#1 and PKCS#8
// encodings are accepted.
func (c *Certificate) DecodeKey(data []byte) (crypto.Signer, error) {
	if !c.IsPEM(data) {
		return nil, ErrInvalidPEMBlock
	}

	key, err := helpers.ParsePrivateKeyPEM(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseKey, err)
	}
	return key, nil
}
