// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pki

import (
	"crypto/x509/pkix"
	"encoding/asn1"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// oidSubjectAltName is id-ce-subjectAltName (RFC 5280, 4.2.1.6).
var oidSubjectAltName = asn1.ObjectIdentifier{2, 5, 29, 17}

// dnsNameTag is the GeneralName dNSName choice: [2] IMPLICIT IA5String.
var dnsNameTag = cryptobyte_asn1.Tag(2).ContextSpecific()

// SANExtension is the ordered list of DNS names placed in the Subject
// Alternative Name extension.
type SANExtension []string

// BuildSAN returns [domain, "*."+domain]. The domain is taken verbatim: no
// syntax check, case folding or deduplication is applied, so an IP literal
// ends up as two DNS entries.
func BuildSAN(domain string) SANExtension {
	return SANExtension{domain, "*." + domain}
}

// Extension encodes s as a non-critical pkix.Extension. Entries keep their
// order; each must be representable as an IA5String.
func (s SANExtension) Extension() (pkix.Extension, error) {
	if len(s) == 0 {
		return pkix.Extension{}, fmt.Errorf("%w: empty subject alternative names", ErrCertificateBuild)
	}

	for _, name := range s {
		if !IsIA5String(name) {
			return pkix.Extension{}, fmt.Errorf("%w: %q is not an IA5String", ErrCertificateBuild, name)
		}
	}

	var b cryptobyte.Builder
	b.AddASN1(cryptobyte_asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		for _, name := range s {
			b.AddASN1(dnsNameTag, func(b *cryptobyte.Builder) {
				b.AddBytes([]byte(name))
			})
		}
	})

	value, err := b.Bytes()
	if err != nil {
		return pkix.Extension{}, fmt.Errorf("%w: subject alternative names: %w", ErrCertificateBuild, err)
	}

	return pkix.Extension{Id: oidSubjectAltName, Value: value}, nil
}

// IsIA5String reports whether s only holds 7-bit ASCII, the alphabet of a
// dNSName entry.
func IsIA5String(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return false
		}
	}
	return true
}
