package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	outputYAML = "yaml"
	outputJSON = "json"
)

// printYAML writes v with its own yaml tags.
func printYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return enc.Close()
}

// printValue writes v in the format selected with --output. Catalog types
// only carry json tags, so YAML output goes through JSON first to keep the
// API's field names.
func printValue(w io.Writer, format string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	switch format {
	case outputJSON:
		_, err = fmt.Fprintln(w, string(data))
		return err
	case outputYAML, "":
		var generic any
		if err := json.Unmarshal(data, &generic); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		return printYAML(w, generic)
	default:
		return fmt.Errorf("unknown output format %q, want %s or %s", format, outputYAML, outputJSON)
	}
}
