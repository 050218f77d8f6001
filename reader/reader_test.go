package reader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/parquet-go/parquet-go"
)

// TestRow defines the parquet fixture layout
type TestRow struct {
	ID    int64   `parquet:"id"`
	Name  string  `parquet:"name"`
	Score float64 `parquet:"score"`
}

// createTestParquetFile writes rows to dir/filename and returns the path
func createTestParquetFile(t *testing.T, dir, filename string, rows []TestRow) string {
	t.Helper()
	testFile := filepath.Join(dir, filename)

	f, err := os.Create(testFile)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	writer := parquet.NewGenericWriter[TestRow](f)
	if _, err := writer.Write(rows); err != nil {
		t.Fatalf("failed to write test data: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close file: %v", err)
	}

	return testFile
}

// writeFile writes content to dir/name and returns the path
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestReadFile_Parquet(t *testing.T) {
	path := createTestParquetFile(t, t.TempDir(), "test.parquet", []TestRow{
		{ID: 1, Name: "Alice", Score: 9.5},
		{ID: 2, Name: "Bob", Score: 7},
	})

	table, err := ReadFile(path, DefaultOptions())
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if strings.Join(table.Header, ",") != "id,name,score" {
		t.Errorf("ReadFile() header = %q, want [id name score]", table.Header)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("ReadFile() returned %d rows, want 2", len(table.Rows))
	}
	if got := strings.Join(table.Rows[0], ","); got != "1,Alice,9.5" {
		t.Errorf("first row = %q, want %q", got, "1,Alice,9.5")
	}
	if got := table.Rows[1][2]; got != "7" {
		t.Errorf("score = %q, want %q", got, "7")
	}
}

func TestReadFile_CompressedParquet(t *testing.T) {
	tmpDir := t.TempDir()
	path := createTestParquetFile(t, tmpDir, "test.parquet", []TestRow{{ID: 1, Name: "Alice"}})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}
	gzPath := filepath.Join(tmpDir, "test.parquet.gz")
	if err := os.WriteFile(gzPath, compress(t, CompressionGzip, data), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	table, err := ReadFile(gzPath, DefaultOptions())
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(table.Rows) != 1 || table.Rows[0][1] != "Alice" {
		t.Errorf("ReadFile() rows = %q", table.Rows)
	}
}

func TestReadFile_NotFound(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.csv"), DefaultOptions())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile() error = %v, want fs.ErrNotExist", err)
	}
}

func TestReadFile_Stdin(t *testing.T) {
	opts := DefaultOptions()
	opts.Delimiter = '\t'
	opts.Stdin = strings.NewReader("a\tb\n1\t2\n")

	table, err := ReadFile(StdinPath, opts)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(table.Header) != 2 || table.Rows[0][1] != "2" {
		t.Errorf("ReadFile() = %q %q", table.Header, table.Rows)
	}
}

func TestReadFiles_GlobPattern(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "b.csv", "id,name\n2,bob\n")
	writeFile(t, tmpDir, "a.csv", "id,name\n1,al\n")
	writeFile(t, tmpDir, "other.txt", "x\n")

	table, err := ReadFiles(filepath.Join(tmpDir, "*.csv"), DefaultOptions())
	if err != nil {
		t.Fatalf("ReadFiles() error = %v", err)
	}

	if len(table.Rows) != 2 {
		t.Fatalf("ReadFiles() returned %d rows, want 2", len(table.Rows))
	}
	// Lexical path order
	if table.Rows[0][1] != "al" || table.Rows[1][1] != "bob" {
		t.Errorf("ReadFiles() rows = %q, want al then bob", table.Rows)
	}
}

func TestReadFiles_HeaderMismatch(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "a.csv", "id,name\n1,al\n")
	writeFile(t, tmpDir, "b.csv", "id,title\n2,x\n")

	if _, err := ReadFiles(filepath.Join(tmpDir, "*.csv"), DefaultOptions()); err == nil {
		t.Error("ReadFiles() expected error for mismatched headers, got nil")
	}
}

func TestReadFiles_NoMatch(t *testing.T) {
	pattern := filepath.Join(t.TempDir(), "*.csv")
	if _, err := ReadFiles(pattern, DefaultOptions()); err == nil {
		t.Error("ReadFiles() expected error for no matching files, got nil")
	}
}

func TestReadFiles_SingleFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "one.csv", "a\n1\n")
	table, err := ReadFiles(path, DefaultOptions())
	if err != nil {
		t.Fatalf("ReadFiles() error = %v", err)
	}
	if len(table.Rows) != 1 {
		t.Errorf("ReadFiles() returned %d rows, want 1", len(table.Rows))
	}
}
