package driver

import (
	"minicheck/internal/diag"
	"minicheck/internal/lexer"
	"minicheck/internal/parser"
	"minicheck/internal/source"
)

// DefaultMaxDiagnostics bounds the bag when the caller passes no limit.
// Recognition stops at the first error anyway; the slack only holds the
// warnings that may precede it.
const DefaultMaxDiagnostics = 16

// CheckResult is the outcome of validating a single file.
type CheckResult struct {
	FileSet *source.FileSet
	File    *source.File
	Bag     *diag.Bag
	OK      bool
	Cached  bool
}

// Check loads one file and runs the full lexer/parser pipeline over it.
// A load failure is returned as an error; grammar violations land in the Bag.
func Check(path string, maxDiagnostics int) (*CheckResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return checkFile(fs, fileID, maxDiagnostics), nil
}

// CheckSource validates in-memory content under a virtual file name.
func CheckSource(name string, content []byte, maxDiagnostics int) *CheckResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return checkFile(fs, fileID, maxDiagnostics)
}

func checkFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *CheckResult {
	if maxDiagnostics <= 0 {
		maxDiagnostics = DefaultMaxDiagnostics
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	reporter := &diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	result := parser.ParseFile(lx, parser.Options{Reporter: reporter})

	return &CheckResult{
		FileSet: fs,
		File:    file,
		Bag:     bag,
		OK:      result.Ok && !bag.HasErrors(),
	}
}

// CheckCached is Check with a read-through disk cache: files whose content
// digest is already recorded as clean are not re-validated. Failures are
// never cached so their diagnostics stay fresh.
func CheckCached(path string, maxDiagnostics int, cache *DiskCache) (*CheckResult, error) {
	if cache == nil {
		return Check(path, maxDiagnostics)
	}

	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	var payload DiskPayload
	hit, err := cache.Get(file.Hash, &payload)
	if err == nil && hit && payload.Schema == diskCacheSchemaVersion && payload.OK {
		return &CheckResult{
			FileSet: fs,
			File:    file,
			Bag:     diag.NewBag(maxDiagnostics),
			OK:      true,
			Cached:  true,
		}, nil
	}

	result := checkFile(fs, fileID, maxDiagnostics)
	if result.OK {
		// cache write failures are not the caller's problem
		_ = cache.Put(file.Hash, &DiskPayload{
			Schema: diskCacheSchemaVersion,
			Path:   file.Path,
			OK:     true,
		})
	}
	return result, nil
}
