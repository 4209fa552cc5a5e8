// Copyright (c) 2024 Neomantra Corp
//
// Open sniffs a file's extension and returns a single io.ReadCloser
// with the matching decompressor already wrapped around it, so a
// caller can hand the result straight to itch.NewDecoder without
// caring whether the feed capture was compressed.
//
// Adapted from Neomantra's Gist, generalized from zstd-only to the
// four codecs in common use for ITCH feed captures:
//
// https://gist.github.com/neomantra/691a6028cdf2ac3fc6ec97d00e8ea802

package bytesource

import (
	"archive/zip"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

///////////////////////////////////////////////////////////////////////////////

// Open returns a ReadCloser over path, transparently decompressing
// based on the file extension: ".zst"/".zstd" (zstd), ".gz" (gzip),
// ".bz2" (bzip2), ".zip" (the first entry in the archive). An
// unrecognized extension is returned as a plain file handle.
func Open(path string) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(path, ".zst"), strings.HasSuffix(path, ".zstd"):
		return openZstd(path)
	case strings.HasSuffix(path, ".gz"):
		return openGzip(path)
	case strings.HasSuffix(path, ".bz2"):
		return openBzip2(path)
	case strings.HasSuffix(path, ".zip"):
		return openZip(path)
	default:
		return os.Open(path)
	}
}

type zstdReadCloser struct {
	file *os.File
	dec  *zstd.Decoder
}

func (r *zstdReadCloser) Read(p []byte) (int, error) { return r.dec.Read(p) }
func (r *zstdReadCloser) Close() error {
	r.dec.Close()
	return r.file.Close()
}

func openZstd(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(file)
	if err != nil {
		file.Close()
		return nil, err
	}
	return &zstdReadCloser{file: file, dec: dec}, nil
}

type gzipReadCloser struct {
	file *os.File
	gz   *gzip.Reader
}

func (r *gzipReadCloser) Read(p []byte) (int, error) { return r.gz.Read(p) }
func (r *gzipReadCloser) Close() error {
	r.gz.Close()
	return r.file.Close()
}

func openGzip(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	gz, err := gzip.NewReader(file)
	if err != nil {
		file.Close()
		return nil, err
	}
	return &gzipReadCloser{file: file, gz: gz}, nil
}

type bzip2ReadCloser struct {
	file *os.File
	r    io.Reader
}

func (r *bzip2ReadCloser) Read(p []byte) (int, error) { return r.r.Read(p) }
func (r *bzip2ReadCloser) Close() error                { return r.file.Close() }

func openBzip2(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &bzip2ReadCloser{file: file, r: bzip2.NewReader(file)}, nil
}

type zipReadCloser struct {
	zr   *zip.ReadCloser
	rc   io.ReadCloser
}

func (r *zipReadCloser) Read(p []byte) (int, error) { return r.rc.Read(p) }
func (r *zipReadCloser) Close() error {
	r.rc.Close()
	return r.zr.Close()
}

// openZip opens the first file entry in a zip archive. A feed capture
// zip is expected to hold exactly one member.
func openZip(path string) (io.ReadCloser, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	if len(zr.File) == 0 {
		zr.Close()
		return nil, fmt.Errorf("bytesource: %s: empty zip archive", path)
	}
	rc, err := zr.File[0].Open()
	if err != nil {
		zr.Close()
		return nil, err
	}
	return &zipReadCloser{zr: zr, rc: rc}, nil
}
