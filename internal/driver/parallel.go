package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// MiniExt is the conventional extension for Mini source files.
const MiniExt = ".mini"

// FileResult pairs one input path with its check outcome. Err is set only
// for I/O failures; grammar violations live in Result.Bag.
type FileResult struct {
	Path   string
	Result *CheckResult
	Err    error
}

// CheckFiles validates every path with an independent pipeline per file.
// Each file gets its own FileSet, lexer, and parser, so no synchronization
// is needed beyond the result slice slots.
func CheckFiles(ctx context.Context, paths []string, maxDiagnostics, jobs int, cache *DiskCache) []FileResult {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]FileResult, len(paths))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			res, err := CheckCached(path, maxDiagnostics, cache)
			results[i] = FileResult{Path: path, Result: res, Err: err}
			return nil
		})
	}
	// workers never return errors; failures are recorded per file
	_ = g.Wait()
	return results
}

// ListMiniFiles returns the sorted list of *.mini files under dir.
func ListMiniFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, MiniExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// CheckDir validates every *.mini file under dir in parallel.
func CheckDir(ctx context.Context, dir string, maxDiagnostics, jobs int, cache *DiskCache) ([]FileResult, error) {
	files, err := ListMiniFiles(dir)
	if err != nil {
		return nil, err
	}
	return CheckFiles(ctx, files, maxDiagnostics, jobs, cache), nil
}
