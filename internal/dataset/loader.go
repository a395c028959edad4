package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// DataSourceError reports a missing, unreadable, or malformed input
// file. It is the only fatal error in the pipeline: callers surface it
// and exit rather than attempting partial recovery.
type DataSourceError struct {
	Source string
	Err    error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source %s: %v", e.Source, e.Err)
}

func (e *DataSourceError) Unwrap() error { return e.Err }

// LoadOptions controls CSV parsing.
type LoadOptions struct {
	// Delimiter is the field separator. Zero means comma.
	Delimiter rune
}

// Load reads a delimited file into a Table with a normalized header.
func Load(path string, opts LoadOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataSourceError{Source: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	return Read(f, path, opts)
}

// Read parses delimited data from r into a Table. The source name is
// used for error reporting only.
func Read(r io.Reader, source string, opts LoadOptions) (*Table, error) {
	cr := csv.NewReader(r)
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}
	// Ragged rows are a malformed source, not a recoverable condition.
	cr.FieldsPerRecord = 0

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, &DataSourceError{Source: source, Err: fmt.Errorf("empty input")}
		}
		return nil, &DataSourceError{Source: source, Err: err}
	}

	t := &Table{Columns: NormalizeColumns(header)}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &DataSourceError{Source: source, Err: err}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
