// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs_test

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/x509"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/certlite/src/internal/pki"
	x509certs "github.com/H0llyW00dzZ/certlite/src/internal/x509/certs"
)

type fixture struct {
	root    *x509.Certificate
	leaf    *x509.Certificate
	leafKey *pki.KeyPair
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	gen := pki.NewECDSAGenerator()
	caKey, err := gen.Generate()
	require.NoError(t, err)
	root, err := pki.NewRootCertificateAuthority().Issue(caKey, pki.SHA256)
	require.NoError(t, err)

	leafKey, err := gen.Generate()
	require.NoError(t, err)
	req, err := pki.NewCertificateRequest(leafKey, "localhost")
	require.NoError(t, err)
	leaf, err := pki.NewLeafSigner().Sign(req, root, caKey.Private, pki.SHA256)
	require.NoError(t, err)

	return fixture{root: root, leaf: leaf, leafKey: leafKey}
}

func TestCertificateOperations(t *testing.T) {
	fx := newFixture(t)

	tests := []struct {
		name     string
		testFunc func(t *testing.T, codec *x509certs.Certificate)
	}{
		{
			name: "WritePEM produces a single certificate block",
			testFunc: func(t *testing.T, codec *x509certs.Certificate) {
				var buf bytes.Buffer
				require.NoError(t, codec.WritePEM(&buf, fx.leaf))

				block, rest := pem.Decode(buf.Bytes())
				require.NotNil(t, block)
				assert.Equal(t, "CERTIFICATE", block.Type)
				assert.Equal(t, fx.leaf.Raw, block.Bytes)
				assert.Empty(t, rest)
				assert.Equal(t, codec.EncodePEM(fx.leaf), buf.Bytes())
			},
		},
		{
			name: "WritePEM rejects nil certificate",
			testFunc: func(t *testing.T, codec *x509certs.Certificate) {
				var buf bytes.Buffer
				assert.ErrorIs(t, codec.WritePEM(&buf, nil), x509certs.ErrParseCertificate)
				assert.Zero(t, buf.Len())
			},
		},
		{
			name: "Decode PEM certificate",
			testFunc: func(t *testing.T, codec *x509certs.Certificate) {
				cert, err := codec.Decode(codec.EncodePEM(fx.root))
				require.NoError(t, err)
				assert.True(t, cert.Equal(fx.root))
				assert.Equal(t, pki.RootCommonName, cert.Subject.CommonName)
			},
		},
		{
			name: "Decode DER certificate",
			testFunc: func(t *testing.T, codec *x509certs.Certificate) {
				cert, err := codec.Decode(fx.leaf.Raw)
				require.NoError(t, err)
				assert.True(t, cert.Equal(fx.leaf))
			},
		},
		{
			name: "DecodeMultiple skips key blocks",
			testFunc: func(t *testing.T, codec *x509certs.Certificate) {
				var buf bytes.Buffer
				require.NoError(t, codec.WriteKeyPEM(&buf, fx.leafKey.Private))
				buf.Write(codec.EncodeMultiplePEM([]*x509.Certificate{fx.leaf, fx.root}))

				certs, err := codec.DecodeMultiple(buf.Bytes())
				require.NoError(t, err)
				require.Len(t, certs, 2)
				assert.True(t, certs[0].Equal(fx.leaf))
				assert.True(t, certs[1].Equal(fx.root))
			},
		},
		{
			name: "DecodeMultiple concatenated DER",
			testFunc: func(t *testing.T, codec *x509certs.Certificate) {
				der := append(append([]byte{}, fx.leaf.Raw...), fx.root.Raw...)
				certs, err := codec.DecodeMultiple(der)
				require.NoError(t, err)
				assert.Len(t, certs, 2)
			},
		},
		{
			name: "DecodeMultiple without certificate blocks",
			testFunc: func(t *testing.T, codec *x509certs.Certificate) {
				var buf bytes.Buffer
				require.NoError(t, codec.WriteKeyPEM(&buf, fx.leafKey.Private))
				_, err := codec.DecodeMultiple(buf.Bytes())
				assert.ErrorIs(t, err, x509certs.ErrInvalidBlockType)
			},
		},
		{
			name: "WriteKeyPEM and DecodeKey",
			testFunc: func(t *testing.T, codec *x509certs.Certificate) {
				var buf bytes.Buffer
				require.NoError(t, codec.WriteKeyPEM(&buf, fx.leafKey.Private))

				block, _ := pem.Decode(buf.Bytes())
				require.NotNil(t, block)
				assert.Equal(t, "EC PRIVATE KEY", block.Type)

				signer, err := codec.DecodeKey(buf.Bytes())
				require.NoError(t, err)
				key, ok := signer.(*ecdsa.PrivateKey)
				require.True(t, ok, "expected *ecdsa.PrivateKey, got %T", signer)
				assert.True(t, key.Equal(fx.leafKey.Private))
				assert.True(t, key.PublicKey.Equal(fx.leaf.PublicKey))
			},
		},
		{
			name: "WriteKeyPEM rejects nil key",
			testFunc: func(t *testing.T, codec *x509certs.Certificate) {
				var buf bytes.Buffer
				assert.ErrorIs(t, codec.WriteKeyPEM(&buf, nil), x509certs.ErrEncodeKey)
			},
		},
		{
			name: "DecodeKey rejects non PEM input",
			testFunc: func(t *testing.T, codec *x509certs.Certificate) {
				_, err := codec.DecodeKey([]byte("not a key"))
				assert.ErrorIs(t, err, x509certs.ErrInvalidPEMBlock)
			},
		},
		{
			name: "DecodeKey rejects certificate block",
			testFunc: func(t *testing.T, codec *x509certs.Certificate) {
				_, err := codec.DecodeKey(codec.EncodePEM(fx.root))
				assert.ErrorIs(t, err, x509certs.ErrParseKey)
			},
		},
	}

	codec := x509certs.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t, codec)
		})
	}
}

const (
	invalidPEM = `
-----BEGIN INVALID-----
MIIEmTCCBD+gAwIBAgIRANFjRCmF+Y2bUYHbhxwkEpowCgYIKoZIzj0EAwIwgY8x
-----END INVALID-----
`

	invalidCERT = `
-----BEGIN CERTIFICATE-----
MIIBIjANBgkqhkiG9w0BAQEFAAOCAQ8AMIIBCgKCAQEAz6e5VV5F8rF2sFJ0Q4vA
-----END CERTIFICATE-----
`
)

func TestDecodeCertificate_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{
			name:     "Invalid PEM Block",
			input:    invalidPEM,
			expected: x509certs.ErrInvalidBlockType,
		},
		{
			name:     "Invalid Certificate",
			input:    invalidCERT,
			expected: x509certs.ErrParsePKCS7,
		},
		{
			name:     "Invalid DER Data",
			input:    "not a certificate",
			expected: x509certs.ErrParsePKCS7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := x509certs.New().Decode([]byte(tt.input))
			assert.Equal(t, tt.expected, err, "expected specific error")
		})
	}
}

func TestCertificate_IsPEM(t *testing.T) {
	codec := x509certs.New()
	fx := newFixture(t)

	tests := []struct {
		name     string
		input    []byte
		expected bool
	}{
		{name: "Valid PEM", input: codec.EncodePEM(fx.leaf), expected: true},
		{name: "Invalid PEM", input: []byte("not a pem block")},
		{name: "Empty Input", input: []byte("")},
		{name: "PEM-like but invalid base64", input: []byte("-----BEGIN CERTIFICATE-----\ninvalid-base64\n-----END CERTIFICATE-----")},
		{name: "DER format", input: fx.leaf.Raw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, codec.IsPEM(tt.input))
		})
	}
}
