// Package parser reads the journey table format: a UTF-8, comma-separated
// table with a required header row and one journey step per data row.
package parser

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedInput means the input contained no usable lines at all.
	ErrMalformedInput = errors.New("journey table has no usable lines")
	// ErrMissingHeader means a required column is absent from the header row.
	ErrMissingHeader = errors.New("missing required header")
)

// Parse parses the full text of a journey table. Lines are split on both
// newline conventions, a leading UTF-8 BOM is ignored, and blank lines are
// skipped without disturbing the 1-based source line numbers recorded on
// each row. Rows shorter than the header are padded with empty fields;
// fields beyond the header width are dropped.
func Parse(content []byte) (*Table, error) {
	text := strings.TrimPrefix(string(content), "\uFEFF")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")

	headerAt := -1
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			headerAt = i
			break
		}
	}
	if headerAt < 0 {
		return nil, ErrMalformedInput
	}

	headers := splitFields(lines[headerAt])
	if err := checkHeaders(headers, headerAt+1); err != nil {
		return nil, err
	}

	table := &Table{Headers: headers}
	for i := headerAt + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		fields := splitFields(lines[i])
		row := Row{Line: i + 1, Fields: make(map[string]string, len(headers))}
		for j, h := range headers {
			if j < len(fields) {
				row.Fields[h] = fields[j]
			} else {
				row.Fields[h] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

func checkHeaders(headers []string, line int) error {
	seen := make(map[string]bool, len(headers))
	for _, h := range headers {
		seen[h] = true
	}
	for _, want := range RequiredHeaders {
		if !seen[want] {
			return fmt.Errorf("line %d: %w: %s", line, ErrMissingHeader, want)
		}
	}
	return nil
}
