package reader

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vegasq/tabcat/query"
)

// StdinPath is the path that reads delimited text from Options.Stdin.
const StdinPath = "-"

// maxFiles limits how many files one glob pattern may expand to
const maxFiles = 1000

// Options controls how input files are decoded.
type Options struct {
	Delimiter rune      // Field delimiter for delimited text
	Stdin     io.Reader // Source for StdinPath, os.Stdin when nil
}

// DefaultOptions returns comma-delimited options reading os.Stdin.
func DefaultOptions() Options {
	return Options{Delimiter: ','}
}

// ReadFile reads one table from path.
//
// Files ending in .parquet (before any compression extension) are read
// as parquet, everything else as delimited text. A .gz, .zst, .lz4 or
// .br extension is decompressed transparently.
func ReadFile(path string, opts Options) (*query.Table, error) {
	if path == StdinPath {
		stdin := opts.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		return ReadDelimited(stdin, opts.Delimiter)
	}

	compression, inner := DetectCompression(path)
	isParquet := strings.EqualFold(filepath.Ext(inner), ".parquet")

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if isParquet && compression == CompressionNone {
		stat, err := file.Stat()
		if err != nil {
			return nil, fmt.Errorf("failed to stat file: %w", err)
		}
		return ReadParquet(file, stat.Size())
	}

	stream, err := Decompress(file, compression)
	if err != nil {
		return nil, err
	}
	defer func() { _ = stream.Close() }()

	if isParquet {
		// Parquet needs random access, buffer the decompressed file
		data, err := io.ReadAll(stream)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress %s: %w", path, err)
		}
		return ReadParquet(bytes.NewReader(data), int64(len(data)))
	}

	return ReadDelimited(stream, opts.Delimiter)
}

// ReadFiles reads all files matching a glob pattern into one table.
//
// The pattern can include wildcards:
//   - * matches any sequence of non-separator characters
//   - ? matches any single non-separator character
//   - [range] matches any character in range
//
// Files are concatenated in lexical path order and must share the same
// header. A pattern without wildcards reads a single file.
func ReadFiles(pattern string, opts Options) (*query.Table, error) {
	if pattern == StdinPath || !strings.ContainsAny(pattern, "*?[]") {
		return ReadFile(pattern, opts)
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match pattern: %s", pattern)
	}
	if len(matches) > maxFiles {
		return nil, fmt.Errorf("glob pattern matched too many files (%d), maximum is %d", len(matches), maxFiles)
	}

	var combined *query.Table
	for _, path := range matches {
		t, err := ReadFile(path, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		if combined == nil {
			combined = t
			continue
		}
		if !slices.Equal(combined.Header, t.Header) {
			return nil, fmt.Errorf("header of %s %q does not match %s %q", path, t.Header, matches[0], combined.Header)
		}
		combined.Rows = append(combined.Rows, t.Rows...)
	}

	return combined, nil
}
