// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// FallbackName is returned when os.Args carries no program name.
const FallbackName = "certlite"

// GetExecutableName returns the executable name without extension.
// Windows paths are split on backslashes even when running on Unix.
func GetExecutableName() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return FallbackName
	}
	return executableName(os.Args[0])
}

func executableName(arg0 string) string {
	name := filepath.Base(arg0)

	if strings.ContainsAny(name, "/\\") {
		parts := strings.FieldsFunc(name, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) == 0 {
			return FallbackName
		}
		name = parts[len(parts)-1]
	}

	return strings.TrimSuffix(name, ".exe")
}
