// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"archive/zip"
	"errors"
	"flag"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/creachadair/jcodec/ast"
)

var (
	doHardTest = flag.Bool("compliance-test", false,
		"Run full compliance test")
	hardTestURL = flag.String("compliance-test-repo", "https://github.com/nst/JSONTestSuite",
		"Compliance test repository URL")
)

func mustGetArchive(t *testing.T, zipFile string) *zip.Reader {
	t.Helper()

	if fi, err := os.Stat(zipFile); err == nil {
		zf, err := os.Open(zipFile)
		if err != nil {
			t.Fatalf("Open archive: %v", err)
		}
		t.Cleanup(func() { zf.Close() })
		zr, err := zip.NewReader(zf, fi.Size())
		if err != nil {
			t.Fatalf("Open reader: %v", err)
		}
		return zr
	} else if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Stat archive: %v", err)
	}

	fullURL := *hardTestURL + "/archive/refs/heads/master.zip"
	t.Logf("Fetching %q ...", fullURL)
	rsp, err := http.Get(fullURL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	defer rsp.Body.Close()
	if ctype := rsp.Header.Get("content-type"); ctype != "application/zip" {
		t.Fatalf("Unexpected content-type: %q", ctype)
	}

	zf, err := os.Create(zipFile)
	if err != nil {
		t.Fatalf("Create output: %v", err)
	}
	t.Cleanup(func() { zf.Close() })

	size, err := io.Copy(zf, rsp.Body)
	if err != nil {
		t.Fatalf("Write output: %v", err)
	}
	zr, err := zip.NewReader(zf, size)
	if err != nil {
		t.Fatalf("Open reader: %v", err)
	}
	return zr
}

func mustFetchTestFiles(t *testing.T, fn func(*zip.File) error) {
	t.Helper()

	zr := mustGetArchive(t, "hard-test-suite.zip")

	for _, file := range zr.File {
		if err := fn(file); err != nil {
			t.Fatalf("File %q: %v", file.Name, err)
		}
	}
}

// mustParseFile fully reads the contents of zf and parses it.
// An error from parsing is returned; errors from reading fail the test.
func mustParseFile(t *testing.T, zf *zip.File) (ast.Value, error) {
	t.Helper()
	rc, err := zf.Open()
	if err != nil {
		t.Fatalf("Open %q: %v", zf.Name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("Read %q: %v", zf.Name, err)
	}
	return ast.ParseString(string(data))
}

// mustReject are negative cases on the strict paths of the parser, which
// must fail regardless of the scanner's leniency.
var mustReject = map[string]bool{
	"n_array_extra_comma":               true,
	"n_array_missing_value":             true,
	"n_incomplete_true":                 true,
	"n_number_+1":                       true,
	"n_object_missing_colon":            true,
	"n_object_trailing_comma":           true,
	"n_string_escape_x":                 true,
	"n_structure_100000_opening_arrays": true,
	"n_structure_double_array":          true,
	"n_structure_unclosed_array":        true,
}

// The tests exercised here are those described by the article "Parsing JSON
// is a Minefield", https://seriot.ch/projects/parsing_json.html.
//
// The test requires the affirmative (y_*) cases to parse. The scanner is
// deliberately lenient in a few places (case-insensitive constants, leading
// zeroes, a bare trailing decimal point, raw control characters in
// strings), so negative (n_*) cases that parse are logged rather than
// failed, except for those listed in mustReject. The indeterminate (i_*)
// cases are not exercised.
func TestCompliance(t *testing.T) {
	if !*doHardTest {
		t.Skip("Skipping compliance test because --compliance-test is false")
	}
	var numYes, numYesErrs, numNo, numNoAccepted int
	mustFetchTestFiles(t, func(f *zip.File) error {
		_, tail, ok := strings.Cut(f.Name, "/test_parsing/")
		if !ok || filepath.Ext(tail) != ".json" {
			return nil
		}
		tail = strings.TrimSuffix(tail, filepath.Ext(tail))
		tag, _, _ := strings.Cut(tail, "_")
		switch tag {
		case "y":
			numYes++
			t.Run(tail, func(t *testing.T) {
				if _, err := mustParseFile(t, f); err != nil {
					numYesErrs++
					t.Errorf("Test %q: unexpected error: %v", tail, err)
				}
			})
		case "n":
			numNo++
			t.Run(tail, func(t *testing.T) {
				if v, err := mustParseFile(t, f); err == nil {
					numNoAccepted++
					if mustReject[tail] {
						t.Errorf("Test %q: accepted invalid input: %s", tail, ast.Serialize(v))
					} else {
						t.Logf("- [accepted]: %s", ast.Serialize(v))
					}
				} else {
					t.Logf("- [expected]: %v", err)
				}
			})
		case "i":
			// OK, skip silently
		default:
			t.Logf("WARNING: Skipped non-maching filename %q", tail)
		}
		return nil
	})
	t.Logf("Ran %d positive tests, %d errors", numYes, numYesErrs)
	t.Logf("Ran %d negative tests, %d accepted", numNo, numNoAccepted)
}
