package parsers

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeMasterCSV normalizes a master CSV export to plain UTF-8. Spreadsheet
// exports arrive as UTF-8 with BOM or UTF-16 depending on which tool the
// shop used; BOMOverride picks the right decoder from the BOM and passes
// BOM-less input through untouched.
func DecodeMasterCSV(r io.Reader) io.Reader {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	return transform.NewReader(r, decoder)
}

// getColIndex maps required header names to column positions.
func getColIndex(header []string, required []string) (map[string]int, error) {
	colIndex := make(map[string]int)
	for i, colName := range header {
		colIndex[strings.TrimSpace(colName)] = i
	}
	for _, req := range required {
		if _, ok := colIndex[req]; !ok {
			return nil, fmt.Errorf("required header not found: %s", req)
		}
	}
	return colIndex, nil
}
