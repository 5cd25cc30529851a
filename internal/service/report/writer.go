package report

import (
	"encoding/csv"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func WriteCSV[R Row](w io.Writer, header []string, rows []R) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(r.Record()); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes rows as an indented array; nil rows are written as [].
func WriteJSON[R Row](w io.Writer, rows []R) error {
	if rows == nil {
		rows = []R{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// Write picks JSON or CSV output.
func Write[R Row](w io.Writer, asJSON bool, header []string, rows []R) error {
	if asJSON {
		return WriteJSON(w, rows)
	}
	return WriteCSV(w, header, rows)
}
