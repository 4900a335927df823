// Package output renders command results as JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tdewolff/minify/v2"
	mjson "github.com/tdewolff/minify/v2/json"
	"gopkg.in/yaml.v3"
)

// Supported formats.
const (
	JSON = "json"
	YAML = "yaml"
)

const mimeJSON = "application/json"

// Marshal encodes v in the given format. JSON is indented unless minified;
// minify has no effect on YAML.
func Marshal(v any, format string, minified bool) ([]byte, error) {
	switch format {
	case YAML:
		return yaml.Marshal(v)
	case JSON, "":
	default:
		return nil, fmt.Errorf("output: unknown format %q", format)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	if !minified {
		return append(data, '\n'), nil
	}

	m := minify.New()
	m.AddFunc(mimeJSON, mjson.Minify)
	data, err = m.Bytes(mimeJSON, data)
	if err != nil {
		return nil, fmt.Errorf("output: minify: %w", err)
	}

	return append(data, '\n'), nil
}

// Write marshals v and writes it to w.
func Write(w io.Writer, v any, format string, minified bool) error {
	data, err := Marshal(v, format, minified)
	if err != nil {
		return err
	}

	_, err = w.Write(data)
	return err
}

// WriteFile writes v to path, or to stdout when path is empty.
func WriteFile(path string, v any, format string, minified bool) error {
	if path == "" {
		return Write(os.Stdout, v, format, minified)
	}

	data, err := Marshal(v, format, minified)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
