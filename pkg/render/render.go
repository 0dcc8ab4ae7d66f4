// Package render serializes Service manifests to YAML.
package render

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dragonbear-os/router/pkg/service"
)

// Manifest writes the manifest to w as a single YAML document. The
// leading document separator lets callers concatenate several rendered
// manifests into one stream.
func Manifest(w io.Writer, m *service.Manifest) error {
	if _, err := io.WriteString(w, "---\n"); err != nil {
		return fmt.Errorf("failed to write document separator: %w", err)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finish manifest encoding: %w", err)
	}

	return nil
}

// ManifestToFile renders the manifest into the file at path, replacing
// any existing content.
func ManifestToFile(path string, m *service.Manifest) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create manifest file: %w", err)
	}

	if err := Manifest(f, m); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write manifest file: %w", err)
	}

	return nil
}
