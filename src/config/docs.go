// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads CertLite settings from a JSON or YAML file.
//
// The file is chosen by the --config flag or the CERTLITE_CONFIG_FILE
// environment variable and its format by extension (.yaml and .yml are YAML,
// anything else JSON). Documents are validated against an embedded JSON
// schema with [gojsonschema] before they are decoded, and every violation is
// reported. CERTLITE_LOG_LEVEL and CERTLITE_ALGORITHM override the file.
//
// Example YAML:
//
//	defaults:
//	  domain: localhost
//	  outputDir: ./certs
//	  algorithm: SHA384
//	log:
//	  level: debug
//	  format: json
//
// [gojsonschema]: https://github.com/xeipuuv/gojsonschema
package config
