// Package words provides the embedded word bank and utilities for loading it.
package words

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
