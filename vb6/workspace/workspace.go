package workspace

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/dhamidi/vbparse/vb6"
	"github.com/dhamidi/vbparse/vb6/parser"
)

// Workspace tracks the parsed state of a directory of legacy BASIC sources.
// Files enter it from disk scans or from editor buffers; either way every
// file keeps its decoded text, its syntax tree, and its parse failures.
type Workspace struct {
	mu      sync.RWMutex
	rootDir string
	files   map[string]*FileInfo
}

type FileInfo struct {
	Path     string
	Source   *vb6.SourceFile
	Tree     *parser.ConcreteSyntaxTree
	Failures []parser.ParseFailure
	ReadErr  error
}

func New(rootDir string) *Workspace {
	return &Workspace{
		rootDir: rootDir,
		files:   make(map[string]*FileInfo),
	}
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

// IsSourcePath reports whether the path has one of the source extensions
// the dialect uses: modules, classes, and forms.
func IsSourcePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bas", ".cls", ".frm", ".ctl":
		return true
	}
	return false
}

// ScanAll walks the root directory and parses every source file it finds,
// spreading the work across the available CPUs.
func (w *Workspace) ScanAll(ctx context.Context) error {
	var paths []string
	err := filepath.Walk(w.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if IsSourcePath(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return w.ParseFiles(ctx, paths)
}

// ParseFiles parses the given files concurrently. Per-file problems are
// recorded on the FileInfo rather than returned; the only error this
// returns is context cancellation.
func (w *Workspace) ParseFiles(ctx context.Context, paths []string) error {
	sem := semaphore.NewWeighted(int64(runtime.GOMAXPROCS(0)))
	var wg sync.WaitGroup
	for _, path := range paths {
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return err
		}
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer sem.Release(1)
			w.ScanFile(path)
		}(path)
	}
	wg.Wait()
	return ctx.Err()
}

// ScanFile reads and parses one file from disk. Bytes without a code page
// mapping decode to replacement characters rather than failing, so the only
// errors here are filesystem ones.
func (w *Workspace) ScanFile(path string) error {
	src, err := vb6.FromFile(path)
	if err != nil {
		w.mu.Lock()
		w.files[path] = &FileInfo{Path: path, ReadErr: err}
		w.mu.Unlock()
		return err
	}
	w.update(path, src)
	return nil
}

// UpdateFile replaces the tracked content of a file with already-decoded
// text, as delivered by an editor buffer.
func (w *Workspace) UpdateFile(path, content string) {
	w.update(path, vb6.FromString(filepath.Base(path), content))
}

func (w *Workspace) update(path string, src *vb6.SourceFile) {
	tree, failures := parser.FromSource(src)
	w.mu.Lock()
	w.files[path] = &FileInfo{
		Path:     path,
		Source:   src,
		Tree:     tree,
		Failures: failures,
	}
	w.mu.Unlock()
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	delete(w.files, path)
	w.mu.Unlock()
}

func (w *Workspace) GetFile(path string) *FileInfo {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Files returns every tracked file ordered by path.
func (w *Workspace) Files() []*FileInfo {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]*FileInfo, 0, len(w.files))
	for _, f := range w.files {
		result = append(result, f)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Path < result[j].Path })
	return result
}

// TotalFailures counts parse failures across all tracked files.
func (w *Workspace) TotalFailures() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	n := 0
	for _, f := range w.files {
		n += len(f.Failures)
	}
	return n
}
