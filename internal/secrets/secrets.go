// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads credentials from a directory of plain-text files.
// The filename is the key and the trimmed file contents are the value.
//
// Recognised keys: scholar-cookie.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// DefaultDir is where the CLI looks for secret files.
const DefaultDir = ".secrets/"

// ScholarCookie holds a browser Cookie header value. Scholar serves CAPTCHA
// pages to clients it does not recognise; a consent cookie avoids most.
const ScholarCookie = "scholar-cookie"

// Secrets maps key names to values.
type Secrets map[string]string

// Get returns the value for key, or "" if absent.
func (s Secrets) Get(key string) string {
	return s[key]
}

// Keys returns the loaded key names. Values are never logged.
func (s Secrets) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	return keys
}

// Load reads every regular, non-hidden file in dir. A missing directory is
// not an error and yields an empty set. Unreadable files are logged and
// skipped.
func Load(dir string, logger *zap.Logger) (Secrets, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Secrets{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	out := make(Secrets)
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			logger.Warn("could not read secret", zap.String("key", entry.Name()), zap.Error(err))
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			out[entry.Name()] = value
		}
	}

	return out, nil
}
