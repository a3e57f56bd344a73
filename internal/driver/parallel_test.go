package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestCheckFilesMixedResults(t *testing.T) {
	dir := t.TempDir()
	good := writeProgram(t, dir, "good.mini", "begin x = 1; end .")
	bad := writeProgram(t, dir, "bad.mini", "begin x = 1 end .")
	missing := filepath.Join(dir, "missing.mini")

	results := CheckFiles(context.Background(), []string{good, bad, missing}, 0, 2, nil)
	if len(results) != 3 {
		t.Fatalf("got %d results", len(results))
	}

	// results keep input order
	if results[0].Path != good || !results[0].Result.OK || results[0].Err != nil {
		t.Errorf("good: %+v", results[0])
	}
	if results[1].Path != bad || results[1].Err != nil || results[1].Result.OK {
		t.Errorf("bad: %+v", results[1])
	}
	if results[2].Path != missing || results[2].Err == nil {
		t.Errorf("missing: %+v", results[2])
	}
}

func TestCheckFilesDefaultJobs(t *testing.T) {
	path := writeProgram(t, t.TempDir(), "ok.mini", "begin x = 1; end .")
	results := CheckFiles(context.Background(), []string{path}, 0, 0, nil)
	if len(results) != 1 || !results[0].Result.OK {
		t.Fatalf("results = %+v", results)
	}
}

func TestListMiniFilesSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	writeProgram(t, dir, "b.mini", "begin x = 1; end .")
	writeProgram(t, dir, "a.mini", "begin x = 1; end .")
	writeProgram(t, dir, "notes.txt", "not a program")
	nested := filepath.Join(dir, "sub")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeProgram(t, nested, "c.mini", "begin x = 1; end .")

	files, err := ListMiniFiles(dir)
	if err != nil {
		t.Fatalf("ListMiniFiles: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("files = %v", files)
	}
	if filepath.Base(files[0]) != "a.mini" || filepath.Base(files[1]) != "b.mini" {
		t.Errorf("unexpected order: %v", files)
	}
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	writeProgram(t, dir, "good.mini", "begin x = 1; end .")
	writeProgram(t, dir, "bad.mini", "begin ; end .")

	results, err := CheckDir(context.Background(), dir, 0, 0, nil)
	if err != nil {
		t.Fatalf("CheckDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %+v", results)
	}
	// sorted walk: bad.mini first
	if results[0].Result.OK || !results[1].Result.OK {
		t.Errorf("unexpected outcomes: %+v", results)
	}
}
