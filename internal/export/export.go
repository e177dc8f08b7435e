// Package export writes a generated app's file bundles to disk.
package export

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/schollz/progressbar/v3"

	"github.com/appforge/appforge/internal/orchestrator"
	"github.com/appforge/appforge/internal/xos"
)

// Options controls how an app is written out.
type Options struct {
	// Dir is the destination root. Bundle directories (frontend/, backend/,
	// database/) are created beneath it.
	Dir string

	// Progress, when non-nil, receives a progress bar during the write.
	// Pass io.Discard to count files without rendering.
	Progress io.Writer
}

// Write persists every file of the app's three bundles under opts.Dir, using
// the same bundle-prefixed layout deployment commits. Writes are atomic per
// file; a failed export can leave earlier files behind but never a torn one.
func Write(app *orchestrator.GeneratedApp, opts Options) error {
	files := orchestrator.DeployFiles(app)

	// Stable order keeps progress output and failure points deterministic.
	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = progressbar.NewOptions(len(paths),
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription("writing files"),
			progressbar.OptionShowCount(),
		)
	}

	for _, path := range paths {
		target := filepath.Join(opts.Dir, filepath.FromSlash(path))
		if err := xos.CreateDir(filepath.Dir(target), 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
		if err := xos.WriteFile(target, []byte(files[path]), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		if bar != nil {
			bar.Add(1)
		}
	}

	return nil
}
