package driver

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/romarionagy/pylint/internal/checkers"
	"github.com/romarionagy/pylint/internal/diag"
	"github.com/romarionagy/pylint/internal/snapshot"
	"github.com/romarionagy/pylint/internal/source"
)

// SnapshotExt is the file extension of AST snapshots the driver consumes.
const SnapshotExt = ".snap"

// Options configures a check run.
type Options struct {
	MaxDiagnostics int
	Jobs           int // 0 means one worker per CPU
	Rules          *checkers.RuleSet
	Progress       ProgressSink
	Cache          *SnapshotCache
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return 500
	}
	return o.MaxDiagnostics
}

// FileResult is the outcome of checking one snapshot.
type FileResult struct {
	Path   string
	FileID source.FileID
	Module *snapshot.Module
	Bag    *diag.Bag
}

// listSnapshotFiles возвращает отсортированный список всех *.snap файлов
// в директории
func listSnapshotFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SnapshotExt) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// ListSnapshots returns the snapshot files CheckDir would process, in the
// same order. The CLI uses it to seed the progress UI.
func ListSnapshots(dir string) ([]string, error) {
	return listSnapshotFiles(dir)
}

// loadDocument reads and decodes one snapshot, consulting the cache by
// content hash.
func loadDocument(path string, cache *SnapshotCache) (*snapshot.Document, error) {
	// #nosec G304 -- path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	digest := sha256.Sum256(data)
	if doc, ok := cache.Get(path, digest); ok {
		return doc, nil
	}
	doc, err := snapshot.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	cache.Put(path, digest, doc)
	return doc, nil
}

// loadFailure converts a load or materialization error into the
// diagnostic the run reports for that file.
func loadFailure(err error) diag.Diagnostic {
	var code diag.Code
	switch {
	case errors.Is(err, snapshot.ErrSchema):
		code = diag.SnapBadSchema
	case errors.Is(err, snapshot.ErrBadReference):
		code = diag.SnapBadReference
	case errors.Is(err, snapshot.ErrUnknownClass):
		code = diag.SnapDecodeError
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		code = diag.IOLoadFileError
	default:
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			code = diag.IOLoadFileError
		} else {
			code = diag.SnapDecodeError
		}
	}
	return diag.NewError(code, source.Span{}, "failed to load snapshot: "+err.Error())
}

// CheckFile loads one snapshot, registers its source with fileSet and
// runs the enabled rules over it. Load failures are reported as
// diagnostics in the result bag, never as a panic or a lost file.
// Not safe for concurrent use with a shared fileSet.
func CheckFile(fileSet *source.FileSet, path string, opts Options) FileResult {
	bag := diag.NewBag(opts.maxDiagnostics())
	res := FileResult{Path: path, Bag: bag}

	doc, err := loadDocument(path, opts.Cache)
	if err != nil {
		bag.Add(loadFailure(err))
		return res
	}

	res.FileID = fileSet.AddVirtual(doc.Path, []byte(doc.Source))
	mod, err := snapshot.Materialize(doc, res.FileID)
	if err != nil {
		bag.Add(loadFailure(err))
		return res
	}
	res.Module = mod

	checkers.New(mod.Builder, mod.Engine, opts.Rules, diag.BagReporter{Bag: bag}).Run()
	bag.Sort()
	return res
}

// CheckDir checks every *.snap file under dir. Snapshots are loaded and
// registered serially (the FileSet is not thread-safe), then materialized
// and checked in parallel with at most Jobs workers.
func CheckDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []FileResult, error) {
	files, err := listSnapshotFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	results := make([]FileResult, len(files))
	docs := make([]*snapshot.Document, len(files))

	for i, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusWorking})
		started := time.Now()

		results[i] = FileResult{Path: path, Bag: diag.NewBag(opts.maxDiagnostics())}
		doc, err := loadDocument(path, opts.Cache)
		if err != nil {
			results[i].Bag.Add(loadFailure(err))
			emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: err, Elapsed: time.Since(started)})
			continue
		}
		docs[i] = doc
		results[i].FileID = fileSet.AddVirtual(doc.Path, []byte(doc.Source))
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusDone, Elapsed: time.Since(started)})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		if docs[i] == nil {
			continue
		}
		g.Go(func(i int, path string) func() error {
			return func() error {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				emit(opts.Progress, Event{File: path, Stage: StageCheck, Status: StatusWorking})
				started := time.Now()

				mod, err := snapshot.Materialize(docs[i], results[i].FileID)
				if err != nil {
					results[i].Bag.Add(loadFailure(err))
					emit(opts.Progress, Event{File: path, Stage: StageCheck, Status: StatusError, Err: err, Elapsed: time.Since(started)})
					return nil
				}
				results[i].Module = mod

				checkers.New(mod.Builder, mod.Engine, opts.Rules, diag.BagReporter{Bag: results[i].Bag}).Run()
				results[i].Bag.Sort()

				status := StatusDone
				if results[i].Bag.HasErrors() {
					status = StatusError
				}
				emit(opts.Progress, Event{File: path, Stage: StageCheck, Status: status, Elapsed: time.Since(started)})
				return nil
			}
		}(i, path))
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// MergeBags collects every file bag into one for rendering.
func MergeBags(results []FileResult, maxDiagnostics int) *diag.Bag {
	total := diag.NewBag(maxDiagnostics)
	for i := range results {
		total.Merge(results[i].Bag)
	}
	total.Sort()
	return total
}
