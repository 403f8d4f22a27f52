package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// writeValue prints one value as a line of text or a JSON document.
func writeValue(opts *RootOptions, w io.Writer, v any) error {
	if opts.Format == FormatJSON {
		return json.NewEncoder(w).Encode(v)
	}
	_, err := fmt.Fprintln(w, v)
	return err
}

// writeValues prints one value per line, or a single JSON array.
func writeValues[T any](opts *RootOptions, w io.Writer, vs []T) error {
	if opts.Format == FormatJSON {
		if vs == nil {
			vs = []T{}
		}
		return json.NewEncoder(w).Encode(vs)
	}
	for _, v := range vs {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}
