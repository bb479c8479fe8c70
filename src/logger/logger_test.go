// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/certlite/src/logger"
)

func decodeLines(t *testing.T, out string) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "line %q is not JSON", line)
		entries = append(entries, entry)
	}
	return entries
}

func TestCLILogger(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Printf",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				log.Printf("Fingerprint: %s", "abc=")
				assert.Equal(t, "Fingerprint: abc=\n", buf.String())
			},
		},
		{
			name: "Println",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				log.Println("Root certificate:", "root_ca.crt")
				assert.Equal(t, "Root certificate: root_ca.crt\n", buf.String())
			},
		},
		{
			name: "SetOutput",
			testFunc: func(t *testing.T) {
				var buf1, buf2 bytes.Buffer
				log := logger.NewCLILogger()

				log.SetOutput(&buf1)
				log.Println("first")
				log.SetOutput(&buf2)
				log.Println("second")

				assert.Equal(t, "first\n", buf1.String())
				assert.Equal(t, "second\n", buf2.String())
			},
		},
		{
			name: "ConcurrentUsage",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				const numGoroutines = 50
				const messagesPerGoroutine = 10

				var wg sync.WaitGroup
				wg.Add(numGoroutines)
				for i := range numGoroutines {
					go func(id int) {
						defer wg.Done()
						for j := range messagesPerGoroutine {
							log.Printf("goroutine %d message %d", id, j)
						}
					}(i)
				}
				wg.Wait()

				lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
				assert.Len(t, lines, numGoroutines*messagesPerGoroutine)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}

func TestMCPLogger(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Silent",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewMCPLogger(&buf, true)

				log.Printf("test message: %s", "hello")
				log.Println("another message")
				diag := log.Diagnostic()
				diag.Error().Msg("dropped")

				assert.Zero(t, buf.Len(), "expected no output in silent mode")
			},
		},
		{
			name: "Printf emits JSON",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewMCPLogger(&buf, false)

				log.Printf("generated %s", "localhost.crt")

				entries := decodeLines(t, buf.String())
				require.Len(t, entries, 1)
				assert.Equal(t, "info", entries[0]["level"])
				assert.Equal(t, "generated localhost.crt", entries[0]["message"])
				assert.Contains(t, entries[0], "time")
			},
		},
		{
			name: "Println escapes special characters",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewMCPLogger(&buf, false)

				msg := "signing failed: \"key mismatch\"\n\tCN=CertLite Root CA"
				log.Println(msg)

				entries := decodeLines(t, buf.String())
				require.Len(t, entries, 1)
				assert.Equal(t, msg, entries[0]["message"])
			},
		},
		{
			name: "nil writer discards",
			testFunc: func(t *testing.T) {
				log := logger.NewMCPLogger(nil, false)
				assert.NotPanics(t, func() { log.Printf("nothing") })
			},
		},
		{
			name: "SetOutput redirects",
			testFunc: func(t *testing.T) {
				var buf1, buf2 bytes.Buffer
				log := logger.NewMCPLogger(&buf1, false)

				log.Println("first")
				log.SetOutput(&buf2)
				log.Println("second")

				assert.Len(t, decodeLines(t, buf1.String()), 1)
				entries := decodeLines(t, buf2.String())
				require.Len(t, entries, 1)
				assert.Equal(t, "second", entries[0]["message"])
			},
		},
		{
			name: "Diagnostic shares destination",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewMCPLogger(&buf, false)

				diag := log.Diagnostic()
				diag.Warn().Str("event", "transient_cleanup_failed").Msg("discard")

				entries := decodeLines(t, buf.String())
				require.Len(t, entries, 1)
				assert.Equal(t, "warn", entries[0]["level"])
				assert.Equal(t, "transient_cleanup_failed", entries[0]["event"])
			},
		},
		{
			name: "Concurrent writes stay line delimited",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewMCPLogger(&buf, false)

				const numGoroutines = 50
				var wg sync.WaitGroup
				wg.Add(numGoroutines)
				for i := range numGoroutines {
					go func(id int) {
						defer wg.Done()
						log.Printf("worker %d", id)
					}(i)
				}
				wg.Wait()

				assert.Len(t, decodeLines(t, buf.String()), numGoroutines)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}

func TestNewDiagnostic(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr error
		check   func(t *testing.T, out string, l zerolog.Logger)
	}{
		{
			name:   "json at debug",
			level:  "debug",
			format: "json",
			check: func(t *testing.T, out string, l zerolog.Logger) {
				entries := decodeLines(t, out)
				require.Len(t, entries, 2)
				assert.Equal(t, "debug", entries[0]["level"])
				assert.Equal(t, "SigningLeaf", entries[1]["stage"])
			},
		},
		{
			name:   "defaults to info text",
			level:  "",
			format: "",
			check: func(t *testing.T, out string, l zerolog.Logger) {
				assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
				assert.NotContains(t, out, "stage transition")
				assert.Contains(t, out, "stage failed")
				assert.Contains(t, out, "stage=SigningLeaf")
			},
		},
		{
			name:   "level is case insensitive",
			level:  "WARN",
			format: "JSON",
			check: func(t *testing.T, out string, l zerolog.Logger) {
				assert.Equal(t, zerolog.WarnLevel, l.GetLevel())
			},
		},
		{name: "unknown level", level: "loud", wantErr: logger.ErrInvalidLevel},
		{name: "unknown format", format: "xml", wantErr: logger.ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := logger.NewDiagnostic(&buf, tt.level, tt.format)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			l.Debug().Msg("stage transition")
			l.Error().Str("stage", "SigningLeaf").Msg("stage failed")
			tt.check(t, buf.String(), l)
		})
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l, err := logger.NewDiagnostic(&buf, "info", "json")
	require.NoError(t, err)

	storeLog := logger.WithComponent(l, "store")
	storeLog.Info().Msg("wrote artifact")

	entries := decodeLines(t, buf.String())
	require.Len(t, entries, 1)
	assert.Equal(t, "store", entries[0]["component"])
}
