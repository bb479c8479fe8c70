// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"io"
	"testing"

	"github.com/H0llyW00dzZ/certlite/src/logger"
)

func BenchmarkMCPLogger(b *testing.B) {
	benchmarks := []struct {
		name   string
		silent bool
		log    func(l *logger.MCPLogger, i int)
	}{
		{
			name: "Printf",
			log: func(l *logger.MCPLogger, i int) {
				l.Printf("issued leaf for %s: serial %d", "example.test", i)
			},
		},
		{
			name: "Println",
			log: func(l *logger.MCPLogger, i int) {
				l.Println("wrote", "root_ca.crt", i)
			},
		},
		{
			name: "Escaping",
			log: func(l *logger.MCPLogger, _ int) {
				l.Printf("%s", `signing failed: "key mismatch"\nsubject: CN=CertLite Root CA,O=CertLite,C=CN`)
			},
		},
		{
			name:   "Silent",
			silent: true,
			log: func(l *logger.MCPLogger, i int) {
				l.Printf("discarded %d transient artifacts", i)
			},
		},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			l := logger.NewMCPLogger(io.Discard, bm.silent)
			b.ReportAllocs()
			for i := 0; b.Loop(); i++ {
				bm.log(l, i)
			}
		})
	}
}

func BenchmarkMCPLoggerConcurrent(b *testing.B) {
	l := logger.NewMCPLogger(io.Discard, false)

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			l.Printf("generate_certificate call %d", i)
			i++
		}
	})
}

func BenchmarkCLILogger(b *testing.B) {
	l := logger.NewCLILogger()
	l.SetOutput(io.Discard)

	b.ReportAllocs()
	for i := 0; b.Loop(); i++ {
		l.Printf("Fingerprint (SHA-256): %d", i)
	}
}

func BenchmarkDiagnostic(b *testing.B) {
	for _, format := range []string{"json", "text"} {
		b.Run(format, func(b *testing.B) {
			diag, err := logger.NewDiagnostic(io.Discard, "info", format)
			if err != nil {
				b.Fatal(err)
			}
			diag = logger.WithComponent(diag, "generator")

			b.ReportAllocs()
			for b.Loop() {
				diag.Info().Str("stage", "SigningLeaf").Str("domain", "example.test").Msg("stage complete")
			}
		})
	}
}
