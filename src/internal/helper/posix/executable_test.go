// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetExecutableName(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "Relative path", args: []string{"./certlite"}, expected: "certlite"},
		{name: "Just filename", args: []string{"certlite-mcp"}, expected: "certlite-mcp"},
		{name: "Absolute path", args: []string{"/usr/local/bin/certlite"}, expected: "certlite"},
		{name: "Windows path", args: []string{"C:\\tools\\certlite.exe"}, expected: "certlite"},
		{name: "Keeps other extensions", args: []string{"certlite.test"}, expected: "certlite.test"},
		{name: "Empty args", args: []string{}, expected: FallbackName},
		{name: "Empty first arg", args: []string{""}, expected: FallbackName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := os.Args
			t.Cleanup(func() { os.Args = orig })

			os.Args = tt.args
			assert.Equal(t, tt.expected, GetExecutableName())
		})
	}
}
