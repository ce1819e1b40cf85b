package heath

import (
	"io"
)

// EncodeMonth writes the month file content of m to w.
func EncodeMonth(w io.Writer, m *Month) error {
	_, err := io.WriteString(w, m.Serialize())
	return err
}
