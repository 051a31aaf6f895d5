package format

import (
	"encoding/json"
	"fmt"
	"io"
)

// Names lists the accepted --format values, default first.
var Names = []string{"json", "edn"}

// Write emits v in the requested format. An empty format means json.
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "edn":
		return WriteEDN(w, v, pretty)
	}
	return fmt.Errorf("unknown format: %s", format)
}

// WriteJSON writes strict JSON terminated by a newline.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
