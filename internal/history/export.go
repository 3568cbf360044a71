// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// ExportYAML writes the full collection to w as YAML, newest first.
func (s *Store) ExportYAML(w io.Writer) error {
	items := s.Items()
	data, err := yaml.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshaling history YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ExportJSON writes the full collection to w as indented JSON, newest first.
func (s *Store) ExportJSON(w io.Writer) error {
	items := s.Items()
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
