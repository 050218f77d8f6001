package reader

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

const sampleCSV = "id,name\n2,bob\n1,al\n"

// compress encodes data with c
func compress(t *testing.T, c Compression, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	var w io.WriteCloser
	switch c {
	case CompressionGzip:
		w = gzip.NewWriter(&buf)
	case CompressionZstd:
		enc, err := zstd.NewWriter(&buf)
		if err != nil {
			t.Fatalf("failed to create zstd writer: %v", err)
		}
		w = enc
	case CompressionLZ4:
		w = lz4.NewWriter(&buf)
	case CompressionBrotli:
		w = brotli.NewWriter(&buf)
	default:
		return data
	}

	if _, err := w.Write(data); err != nil {
		t.Fatalf("failed to compress: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close compressor: %v", err)
	}
	return buf.Bytes()
}

func TestDetectCompression(t *testing.T) {
	tests := []struct {
		path      string
		want      Compression
		wantInner string
	}{
		{"data.csv", CompressionNone, "data.csv"},
		{"data.csv.gz", CompressionGzip, "data.csv"},
		{"data.CSV.GZ", CompressionGzip, "data.CSV"},
		{"dir/data.parquet.zst", CompressionZstd, "dir/data.parquet"},
		{"data.tsv.lz4", CompressionLZ4, "data.tsv"},
		{"data.csv.br", CompressionBrotli, "data.csv"},
	}

	for _, tt := range tests {
		got, inner := DetectCompression(tt.path)
		if got != tt.want || inner != tt.wantInner {
			t.Errorf("DetectCompression(%q) = %v, %q, want %v, %q", tt.path, got, inner, tt.want, tt.wantInner)
		}
	}
}

func TestReadFile_Compressed(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name        string
		file        string
		compression Compression
	}{
		{"plain", "data.csv", CompressionNone},
		{"gzip", "data.csv.gz", CompressionGzip},
		{"zstd", "data.csv.zst", CompressionZstd},
		{"lz4", "data.csv.lz4", CompressionLZ4},
		{"brotli", "data.csv.br", CompressionBrotli},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, tt.file)
			if err := os.WriteFile(path, compress(t, tt.compression, []byte(sampleCSV)), 0o644); err != nil {
				t.Fatalf("failed to write test file: %v", err)
			}

			table, err := ReadFile(path, DefaultOptions())
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			if len(table.Rows) != 2 || table.Rows[0][1] != "bob" {
				t.Errorf("ReadFile() rows = %q, want bob then al", table.Rows)
			}
		})
	}
}

func TestReadFile_CorruptGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv.gz")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	if _, err := ReadFile(path, DefaultOptions()); err == nil {
		t.Error("ReadFile() expected error for invalid gzip data, got nil")
	}
}
