// Package reader loads tables of string fields from files.
//
// It turns delimited text and Apache Parquet files into a query.Table:
// an ordered header and rows of string fields. The whole file is read
// into memory.
//
// # Basic Usage
//
// Reading a single file:
//
//	t, err := reader.ReadFile("data.csv", reader.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Reading tab separated text from stdin:
//
//	opts := reader.DefaultOptions()
//	opts.Delimiter = '\t'
//	t, err := reader.ReadFile(reader.StdinPath, opts)
//
// # Formats
//
// The format is chosen by extension:
//   - .parquet files are read with github.com/parquet-go/parquet-go;
//     values are converted to text, nulls become empty fields
//   - everything else is delimited text whose first record is the header
//
// A trailing compression extension is decoded first:
//   - .gz, .gzip (github.com/klauspost/compress/gzip)
//   - .zst, .zstd (github.com/klauspost/compress/zstd)
//   - .lz4 (github.com/pierrec/lz4/v4)
//   - .br (github.com/andybalholm/brotli)
//
// so "events.csv.zst" and "events.parquet.gz" both work.
//
// # Multi-file Operations
//
// Reading multiple files using glob patterns:
//
//	t, err := reader.ReadFiles("data/2024-*.csv", reader.DefaultOptions())
//
// Matching files are concatenated in path order and must share a header.
package reader
