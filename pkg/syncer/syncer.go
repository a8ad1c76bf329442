package syncer

import (
	"context"

	"github.com/kism/smart-rom-sync/pkg/classify"
	"github.com/kism/smart-rom-sync/pkg/config"
	"github.com/kism/smart-rom-sync/pkg/logging"
	"github.com/kism/smart-rom-sync/pkg/paths"
	"github.com/kism/smart-rom-sync/pkg/release"
	"github.com/kism/smart-rom-sync/pkg/scanner"
	"github.com/kism/smart-rom-sync/pkg/transfer"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Options for a Syncer. Zero values use the real filesystem, rsync and the
// default lock file.
type Options struct {
	DryRun   bool
	NoRun    bool
	Fs       afero.Fs
	Runner   transfer.Runner
	TempDir  string
	LockPath string
	// Resolver defaults to the built-in vocabularies
	Resolver *release.Resolver
}

// SystemPlan is the plan for one system together with the file sizes
type SystemPlan struct {
	System config.System
	Base   string
	Plan   *classify.Plan
	// Sizes is keyed by the file paths in Plan
	Sizes map[string]int64
}

// Syncer syncs every system of a config to its target
type Syncer struct {
	cfg      *config.Config
	opts     Options
	scanner  *scanner.Scanner
	transfer *transfer.Transfer
	logger   zerolog.Logger
}

// New creates a Syncer for cfg
func New(cfg *config.Config, opts Options) *Syncer {
	if opts.LockPath == "" {
		opts.LockPath = paths.LockFilePath()
	}
	if opts.Resolver == nil {
		opts.Resolver = release.Default()
	}

	target := transfer.Target{Type: cfg.Target.Type, RemoteHost: cfg.Target.RemoteHost}
	return &Syncer{
		cfg:     cfg,
		opts:    opts,
		scanner: scanner.New(opts.Fs),
		transfer: transfer.New(target, transfer.Options{
			DryRun:  opts.DryRun,
			NoRun:   opts.NoRun,
			TempDir: opts.TempDir,
			Runner:  opts.Runner,
			Fs:      opts.Fs,
		}),
		logger: logging.GetLogger("syncer"),
	}
}

// PlanSystem scans sys.LocalDir and groups the admitted files by destination
func (s *Syncer) PlanSystem(sys config.System) (*classify.Plan, error) {
	sp, err := s.planSystem(sys)
	if err != nil {
		return nil, err
	}
	return sp.Plan, nil
}

// Plans plans every configured system. It stops at the first scan failure.
func (s *Syncer) Plans() ([]SystemPlan, error) {
	plans := make([]SystemPlan, 0, len(s.cfg.Systems))
	for _, sys := range s.cfg.Systems {
		sp, err := s.planSystem(sys)
		if err != nil {
			return nil, err
		}
		plans = append(plans, sp)
	}
	return plans, nil
}

func (s *Syncer) planSystem(sys config.System) (SystemPlan, error) {
	files, err := s.scanner.List(sys.LocalDir)
	if err != nil {
		return SystemPlan{}, err
	}

	base := s.cfg.RemoteBase(sys)
	classifier := classify.NewClassifierWithResolver(s.opts.Resolver, sys.FilterRule(), base)
	plan := classifier.Classify(scanner.RelPaths(files))

	sizes := make(map[string]int64, len(files))
	for _, f := range files {
		sizes[f.RelPath] = f.Size
	}

	s.logger.Info().
		Str("system", sys.LocalDir).
		Int("files", plan.FileCount()).
		Msgf("Found %d folders to push to", plan.Len())

	return SystemPlan{System: sys, Base: base, Plan: plan, Sizes: sizes}, nil
}

// Run takes the sync lock, then plans and transfers each system in config
// order. A system that cannot be scanned is recorded in its Stats and the
// run continues. The error is only set when the run could not start.
func (s *Syncer) Run(ctx context.Context) ([]transfer.Stats, error) {
	lock := transfer.NewLock(s.opts.LockPath)
	if err := lock.TryLock(); err != nil {
		return nil, err
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			s.logger.Warn().Err(err).Str("path", lock.Path()).Msg("Failed to release lock")
		}
	}()

	if len(s.cfg.Systems) == 0 {
		s.logger.Warn().Msg("No systems configured, nothing to sync")
	}

	done := logging.LogOperationStart(s.logger, "sync")
	defer done()

	stats := make([]transfer.Stats, 0, len(s.cfg.Systems))
	for _, sys := range s.cfg.Systems {
		s.logger.Info().Str("system", sys.LocalDir).Msg("Processing")

		plan, err := s.PlanSystem(sys)
		if err != nil {
			s.logger.Error().Err(err).Str("system", sys.LocalDir).Msg("Skipping system")
			stats = append(stats, transfer.Stats{System: sys.LocalDir, Err: err})
			continue
		}

		stats = append(stats, s.transfer.Sync(ctx, sys.LocalDir, plan))
	}

	for _, st := range stats {
		s.logger.Info().Msg(st.String())
	}
	return stats, nil
}

// Failed reports whether any system or destination in stats failed
func Failed(stats []transfer.Stats) bool {
	for _, st := range stats {
		if !st.OK() {
			return true
		}
	}
	return false
}
