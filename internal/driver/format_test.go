package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"quill/internal/driver"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestFormatPathsRewritesChangedFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.c", "// x  \n")

	results, err := driver.FormatPaths(context.Background(), []string{path}, driver.FormatOptions{})
	if err != nil {
		t.Fatalf("FormatPaths failed: %v", err)
	}
	if len(results) != 1 || !results[0].Changed || results[0].Err != nil {
		t.Fatalf("unexpected results: %+v", results)
	}
	if got := readFile(t, path); got != "// x\n" {
		t.Fatalf("file content:\nwant %q\ngot  %q", "// x\n", got)
	}
}

func TestFormatPathsCheckDoesNotWrite(t *testing.T) {
	dir := t.TempDir()
	src := "// x  \n"
	path := writeFile(t, dir, "a.c", src)

	results, err := driver.FormatPaths(context.Background(), []string{path}, driver.FormatOptions{Check: true})
	if err != nil {
		t.Fatalf("FormatPaths failed: %v", err)
	}
	if !results[0].Changed {
		t.Fatalf("check mode must report pending changes")
	}
	if got := readFile(t, path); got != src {
		t.Fatalf("check mode modified the file: %q", got)
	}
}

func TestFormatPathsStdout(t *testing.T) {
	dir := t.TempDir()
	src := "// x  \n"
	path := writeFile(t, dir, "a.c", src)

	results, err := driver.FormatPaths(context.Background(), []string{path}, driver.FormatOptions{Stdout: true})
	if err != nil {
		t.Fatalf("FormatPaths failed: %v", err)
	}
	if got := string(results[0].Formatted); got != "// x\n" {
		t.Fatalf("stdout content:\nwant %q\ngot  %q", "// x\n", got)
	}
	if got := readFile(t, path); got != src {
		t.Fatalf("stdout mode modified the file: %q", got)
	}
}

func TestFormatPathsFiltersExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.c", "// a\n")
	writeFile(t, dir, "b.txt", "// b\n")

	results, err := driver.FormatPaths(context.Background(), []string{dir}, driver.FormatOptions{
		Check:      true,
		Extensions: []string{".c"},
	})
	if err != nil {
		t.Fatalf("FormatPaths failed: %v", err)
	}
	if len(results) != 1 || filepath.Base(results[0].Path) != "a.c" {
		t.Fatalf("extension filter failed: %+v", results)
	}
}

func TestFormatPathsEmptyDirFails(t *testing.T) {
	dir := t.TempDir()
	if _, err := driver.FormatPaths(context.Background(), []string{dir}, driver.FormatOptions{Extensions: []string{".c"}}); err == nil {
		t.Fatalf("expected error when no source files are found")
	}
}

func TestFormatPathsReportsScanError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.c", "/* unterminated")

	results, err := driver.FormatPaths(context.Background(), []string{path}, driver.FormatOptions{})
	if err != nil {
		t.Fatalf("FormatPaths failed: %v", err)
	}
	if results[0].Err == nil {
		t.Fatalf("expected a per-file error, got %+v", results[0])
	}
}
