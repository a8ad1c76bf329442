package transfer

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/kism/smart-rom-sync/pkg/classify"
	"github.com/kism/smart-rom-sync/pkg/errors"
	"github.com/kism/smart-rom-sync/pkg/logging"
	"github.com/kism/smart-rom-sync/pkg/paths"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// RsyncCommand is the executable invoked for every destination
const RsyncCommand = "rsync"

// Target types, matching the config values
const (
	TypeLocal = "local"
	TypeRsync = "rsync"
)

// Target says how destination paths are addressed
type Target struct {
	Type       string
	RemoteHost string
}

// Destination prefixes dest with "host:" for rsync targets
func (t Target) Destination(dest string) string {
	if t.Type == TypeRsync && t.RemoteHost != "" {
		return t.RemoteHost + ":" + dest
	}
	return dest
}

// Options control a Transfer
type Options struct {
	// DryRun passes --dry-run to rsync
	DryRun bool
	// NoRun only logs the commands
	NoRun bool
	// TempDir holds the file lists, defaults to paths.TempDir()
	TempDir string
	// Runner defaults to ExecRunner
	Runner Runner
	// Fs is where file lists are written, defaults to the OS filesystem
	Fs afero.Fs
}

// Transfer pushes plans to one target
type Transfer struct {
	target Target
	opts   Options
	logger zerolog.Logger
}

// New creates a Transfer, filling in option defaults
func New(target Target, opts Options) *Transfer {
	if opts.TempDir == "" {
		opts.TempDir = paths.TempDir()
	}
	if opts.Runner == nil {
		opts.Runner = ExecRunner{}
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	return &Transfer{
		target: target,
		opts:   opts,
		logger: logging.GetLogger("transfer"),
	}
}

// Args builds the rsync arguments for one destination. Files in the list are
// relative to localRoot and are flattened into dest.
func (t *Transfer) Args(listFile, localRoot, dest string) []string {
	args := []string{
		"-av",
		"--info=progress2",
		"--files-from=" + listFile,
		"--no-relative",
	}
	if t.opts.DryRun {
		args = append(args, "--dry-run")
	}
	return append(args,
		strings.TrimRight(localRoot, "/")+"/",
		t.target.Destination(dest),
	)
}

// Sync runs one rsync per destination of plan, in plan order. Failures are
// recorded in the returned Stats and do not stop later destinations.
func (t *Transfer) Sync(ctx context.Context, localRoot string, plan *classify.Plan) Stats {
	stats := Stats{System: localRoot}

	for _, dest := range plan.Destinations() {
		files := plan.Files(dest)
		result := DestinationResult{Destination: dest, Files: len(files)}

		if err := ctx.Err(); err != nil {
			result.Err = errors.Wrap(err, errors.ErrTransferFailed, "sync cancelled")
			stats.add(result)
			continue
		}

		t.logger.Info().
			Int("files", len(files)).
			Str("destination", dest).
			Msg("Syncing files")

		result.Skipped, result.Err = t.syncDestination(ctx, localRoot, dest, files)
		stats.add(result)
	}

	return stats
}

func (t *Transfer) syncDestination(ctx context.Context, localRoot, dest string, files []string) (bool, error) {
	listFile, err := t.writeList(files)
	if err != nil {
		return false, err
	}
	defer func() {
		if err := t.opts.Fs.Remove(listFile); err != nil {
			t.logger.Warn().Err(err).Str("path", listFile).Msg("Failed to remove file list")
		}
	}()

	args := t.Args(listFile, localRoot, dest)

	if t.opts.NoRun {
		t.logger.Info().
			Str("command", RsyncCommand+" "+strings.Join(args, " ")).
			Msg("Not running")
		return true, nil
	}

	out, err := t.opts.Runner.Run(ctx, RsyncCommand, args...)
	if err != nil {
		t.logger.Error().
			Err(err).
			Str("destination", dest).
			Str("stderr", out.Stderr).
			Msg("rsync failed")
		return false, errors.Wrapf(err, errors.ErrTransferFailed, "rsync to %s failed", dest).
			WithDetail("destination", dest).
			WithDetail("stderr", out.Stderr)
	}
	return false, nil
}

// writeList writes one path per line, with forward slashes as rsync expects
func (t *Transfer) writeList(files []string) (string, error) {
	if err := t.opts.Fs.MkdirAll(t.opts.TempDir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to create %s", t.opts.TempDir)
	}

	name := filepath.Join(t.opts.TempDir, fmt.Sprintf("smart-rom-sync-%s.txt", uuid.NewString()))

	var b strings.Builder
	for _, f := range files {
		b.WriteString(filepath.ToSlash(f))
		b.WriteByte('\n')
	}

	if err := afero.WriteFile(t.opts.Fs, name, []byte(b.String()), 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to write file list %s", name)
	}
	t.logger.Debug().Str("path", name).Int("files", len(files)).Msg("Wrote file list")
	return name, nil
}
