package scanner

import (
	"os"
	"path/filepath"

	"github.com/kism/smart-rom-sync/pkg/errors"
	"github.com/kism/smart-rom-sync/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// File is a regular file found under the scanned root
type File struct {
	// RelPath is relative to the root, with OS separators
	RelPath string
	Name    string
	Size    int64
}

// Scanner walks directories on a filesystem
type Scanner struct {
	fs     afero.Fs
	logger zerolog.Logger
}

// New creates a scanner. A nil fs uses the OS filesystem.
func New(fs afero.Fs) *Scanner {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Scanner{
		fs:     fs,
		logger: logging.GetLogger("scanner"),
	}
}

// List returns every regular file below root, recursively, in lexical order
func (s *Scanner) List(root string) ([]File, error) {
	info, err := s.fs.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrScanFailed, "cannot read %s", root).
			WithDetail("root", root)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrScanFailed, "%s is not a directory", root).
			WithDetail("root", root)
	}

	var files []File
	err = afero.Walk(s.fs, root, func(p string, fi os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !fi.Mode().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		files = append(files, File{RelPath: rel, Name: fi.Name(), Size: fi.Size()})
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrScanFailed, "failed to walk %s", root).
			WithDetail("root", root)
	}

	s.logger.Info().
		Int("count", len(files)).
		Str("root", root).
		Msg("Found files")

	return files, nil
}

// RelPaths returns the RelPath of each file, in order
func RelPaths(files []File) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.RelPath
	}
	return out
}

// TotalSize sums the sizes of files
func TotalSize(files []File) int64 {
	var total int64
	for _, f := range files {
		total += f.Size
	}
	return total
}
