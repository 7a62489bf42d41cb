package reader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vegasq/flatsql/internal/table"
)

// MaxGlobFiles caps the number of files a single pattern may expand to
const MaxGlobFiles = 1000

// FileColumn is appended to every record read through a glob pattern and
// holds the path of the file the record came from.
const FileColumn = "_file"

// ReadGlob reads every file matching pattern, in lexical order, and
// concatenates their records. A path without wildcards is read as a single
// file and its records are left untouched.
//
// The pattern uses filepath.Match syntax:
//   - * matches any sequence of non-separator characters
//   - ? matches any single non-separator character
//   - [range] matches any character in range
func ReadGlob(pattern string, opts Options) ([]table.Record, error) {
	if !strings.ContainsAny(pattern, "*?[") {
		return Open(pattern, opts)
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match pattern: %s", pattern)
	}
	if len(matches) > MaxGlobFiles {
		return nil, fmt.Errorf("glob pattern matched too many files (%d), maximum is %d", len(matches), MaxGlobFiles)
	}

	var all []table.Record
	for _, path := range matches {
		records, err := Open(path, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		for i := range records {
			records[i] = append(records[i], table.Field{Name: FileColumn, Value: path})
		}
		all = append(all, records...)
	}

	return all, nil
}
