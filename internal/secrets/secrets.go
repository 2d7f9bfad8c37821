// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads credentials from a directory of plain-text files.
// Each file in the directory represents one secret: the filename is the key
// name and the file contents (trimmed) are the value.
//
// The digest pipeline looks up two keys, named by the Key constants below.
// Other filenames are loaded too, with a warning, so a misspelled key file is
// noticed instead of silently ignored.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Key names the pipeline reads from the secrets directory.
const (
	KeySMTPPassword = "smtp-password"
	KeyOpenAIAPIKey = "openai-api-key"
)

var knownKeys = map[string]struct{}{
	KeySMTPPassword: {},
	KeyOpenAIAPIKey: {},
}

// Load reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory is not an error; Load returns an empty map.
// Unreadable files and filenames outside the known key set produce a warning
// on stderr; unknown keys are still returned.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if _, ok := knownKeys[name]; !ok {
			fmt.Fprintf(os.Stderr, "warning: unrecognized secret %s (expected %s or %s)\n",
				name, KeySMTPPassword, KeyOpenAIAPIKey)
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}
