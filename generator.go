package circles

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/geraldsadya/Circles/utils"
)

// maxWorkers sets the maximum number of concurrently running render workers.
const maxWorkers = 20

// IconFile identifies one produced icon file.
type IconFile struct {
	Path      string
	PixelSize int
}

// FileResult holds the per-file outcome of a batch run. Err carries the
// write failure for that file, if any.
type FileResult struct {
	File IconFile
	Err  error
}

// genResult pairs a file result with the fatal rendering error that
// produced it, if any.
type genResult struct {
	res   FileResult
	fatal error
}

// Generator renders the icon catalog into the output directory.
type Generator struct {
	// Palette holds the colors handed to the composer.
	Palette Palette
	// OutDir is the directory the files are written into, created when absent.
	OutDir string
	// Workers caps the concurrent renders. Zero or negative values fall back
	// to the number of CPUs.
	Workers int
	// Sizes overrides the stock catalog. Nil means IconSizes().
	Sizes []IconSize
}

// Generate renders every catalog entry and writes it as a PNG file.
//
// The derived filenames are deduplicated up front with the later catalog
// entries winning, so each distinct path is rendered and written exactly
// once and no two workers ever race on the same file. Non-square entries
// are skipped. Write failures are recorded per file and the batch carries
// on; a rendering failure aborts the whole batch instead, since the fixed
// catalog makes it a programming error, and the per-file results collected
// so far are returned alongside the error.
func (g *Generator) Generate() ([]FileResult, error) {
	sizes := g.Sizes
	if sizes == nil {
		sizes = IconSizes()
	}

	if err := os.MkdirAll(g.OutDir, 0755); err != nil {
		return nil, fmt.Errorf("unable to create the output directory: %w", err)
	}

	files := planFiles(g.OutDir, sizes)

	workers := g.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = utils.Min(workers, maxWorkers)

	jobs := make(chan IconFile)
	ch := make(chan genResult)
	done := make(chan struct{})

	var once sync.Once
	stop := func() {
		once.Do(func() { close(done) })
	}
	defer stop()

	// Feed the planned files to the workers.
	go func() {
		defer close(jobs)
		for _, f := range files {
			select {
			case <-done:
				return
			case jobs <- f:
			}
		}
	}()

	comp := &Composer{Palette: g.Palette}

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			consumer(done, jobs, comp, ch)
		}()
	}

	// Close the results channel after the workers are drained.
	go func() {
		wg.Wait()
		close(ch)
	}()

	var (
		results []FileResult
		fatal   error
	)
	for r := range ch {
		results = append(results, r.res)
		if r.fatal != nil && fatal == nil {
			fatal = r.fatal
			stop()
		}
	}
	return results, fatal
}

// planFiles derives the distinct output files for the catalog entries,
// keeping the catalog order of first appearance. Later entries mapping to
// an already planned name overwrite its pixel size.
func planFiles(dir string, sizes []IconSize) []IconFile {
	byName := make(map[string]int)
	files := make([]IconFile, 0, len(sizes))

	for _, s := range sizes {
		if !s.Square() {
			continue
		}
		name := s.Filename()
		file := IconFile{
			Path:      filepath.Join(dir, name),
			PixelSize: s.PixelSize(),
		}
		if i, ok := byName[name]; ok {
			files[i] = file
			continue
		}
		byName[name] = len(files)
		files = append(files, file)
	}
	return files
}

// consumer renders the files received on the jobs channel and reports one
// result per file. It returns when the jobs channel is exhausted or the
// done channel is closed.
func consumer(done <-chan struct{}, jobs <-chan IconFile, comp *Composer, ch chan<- genResult) {
	for file := range jobs {
		r := genResult{res: FileResult{File: file}}

		img, err := comp.Compose(file.PixelSize)
		if err != nil {
			r.fatal = fmt.Errorf("rendering %s: %w", filepath.Base(file.Path), err)
			r.res.Err = r.fatal
		} else if err := writeIcon(img, file.Path); err != nil {
			r.res.Err = err
		}

		select {
		case <-done:
			return
		case ch <- r:
		}
	}
}

// writeIcon encodes the rendered image into a PNG file at the given path.
func writeIcon(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("unable to write %s: %w", filepath.Base(path), err)
	}
	return nil
}
