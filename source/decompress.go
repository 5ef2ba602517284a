/*
 * MinIO Cloud Storage, (C) 2020 MinIO, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package source materializes a streamed, possibly-compressed
// io.Reader into the single in-memory []byte buffer saxjson.Parse
// requires. saxjson itself only ever sees a complete document — this
// package is the boundary that turns a compressed wire format into
// that buffer, the same way the teacher's test suite decompresses
// zstd-packed fixtures before handing them to Parse.
package source

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// FromGzip reads and fully decompresses a gzip-compressed stream.
func FromGzip(r io.Reader) ([]byte, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("source: opening gzip stream: %w", err)
	}
	defer zr.Close()
	b, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("source: decompressing gzip stream: %w", err)
	}
	return b, nil
}

// FromZstd reads and fully decompresses a zstd-compressed stream.
func FromZstd(r io.Reader) ([]byte, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("source: opening zstd stream: %w", err)
	}
	defer zr.Close()
	b, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("source: decompressing zstd stream: %w", err)
	}
	return b, nil
}

// Detect sniffs r's first few bytes for a gzip or zstd magic prefix and
// decompresses accordingly; if neither magic matches, it returns r's
// bytes unchanged (already-plain JSON is the common case).
func Detect(r io.Reader) ([]byte, error) {
	prefix := make([]byte, 4)
	n, err := io.ReadFull(r, prefix)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("source: reading stream header: %w", err)
	}
	prefix = prefix[:n]

	// Replay the sniffed prefix in front of whatever r has left.
	full := io.MultiReader(bytes.NewReader(prefix), r)

	switch {
	case bytes.HasPrefix(prefix, gzipMagic):
		return FromGzip(full)
	case bytes.HasPrefix(prefix, zstdMagic):
		return FromZstd(full)
	default:
		rest, err := io.ReadAll(full)
		if err != nil {
			return nil, fmt.Errorf("source: reading stream: %w", err)
		}
		return rest, nil
	}
}
