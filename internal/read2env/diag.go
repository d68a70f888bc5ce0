package read2env

import (
	"fmt"
	"io"
)

// WriteDiagnostics writes the key="value" line followed by an upper-case
// hex dump of raw.
func WriteDiagnostics(w io.Writer, key string, value, raw []byte) error {
	if _, err := fmt.Fprintf(w, "%s=\"%s\"\n", key, value); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "xxd(%s)=\"%X\"\n", key, raw)
	return err
}
