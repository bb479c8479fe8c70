// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pki

import (
	"crypto/x509/pkix"
	"fmt"
	"strings"
)

const (
	// DefaultCountry is the country attribute of every issued name.
	DefaultCountry = "CN"
	// DefaultOrganization is the organization attribute of every issued name.
	DefaultOrganization = "CertLite"
	// RootCommonName is the common name of the ephemeral root CA.
	RootCommonName = "CertLite Root CA"
)

// DistinguishedName is the ordered (C, O, CN) subject or issuer name.
type DistinguishedName struct {
	Country      string
	Organization string
	CommonName   string
}

// NewDistinguishedName builds a name with the fixed country and organization
// and the given common name.
func NewDistinguishedName(commonName string) DistinguishedName {
	return DistinguishedName{
		Country:      DefaultCountry,
		Organization: DefaultOrganization,
		CommonName:   commonName,
	}
}

// Validate reports a build error when the common name is empty.
func (dn DistinguishedName) Validate() error {
	if strings.TrimSpace(dn.CommonName) == "" {
		return fmt.Errorf("%w: empty common name", ErrCertificateBuild)
	}
	return nil
}

// PKIX converts dn to the form used by crypto/x509. Attributes are encoded
// in C, O, CN order.
func (dn DistinguishedName) PKIX() pkix.Name {
	var name pkix.Name
	if dn.Country != "" {
		name.Country = []string{dn.Country}
	}
	if dn.Organization != "" {
		name.Organization = []string{dn.Organization}
	}
	name.CommonName = dn.CommonName
	return name
}

// String renders dn in the slash form used by openssl -subj.
func (dn DistinguishedName) String() string {
	var b strings.Builder
	if dn.Country != "" {
		b.WriteString("/C=" + dn.Country)
	}
	if dn.Organization != "" {
		b.WriteString("/O=" + dn.Organization)
	}
	b.WriteString("/CN=" + dn.CommonName)
	return b.String()
}
