// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides helpers that behave the same on [POSIX] systems and
// Windows, such as deriving a clean executable name for CLI usage strings.
//
//   - Linux/macOS: "/usr/local/bin/certlite" → "certlite"
//   - Windows: "C:\bin\certlite.exe" → "certlite"
//   - Fallback: empty os.Args → [FallbackName]
//
// [POSIX]: https://pubs.opengroup.org/onlinepubs/9799919799/
package posix
