// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs encodes and decodes the artifacts written by CertLite.
// Certificates are written as [PEM] "CERTIFICATE" blocks and the leaf private
// key as a SEC1 "EC PRIVATE KEY" block. Decoding also accepts DER and [PKCS7]
// bundles so the verify command can read certificates produced by other tools.
//
// [PKCS7]: https://datatracker.ietf.org/doc/html/rfc2315
// [PEM]: https://datatracker.ietf.org/doc/html/rfc7468
package x509certs
