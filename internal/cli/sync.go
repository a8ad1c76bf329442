package cli

import (
	"fmt"

	"github.com/kism/smart-rom-sync/pkg/config"
	"github.com/kism/smart-rom-sync/pkg/display"
	"github.com/kism/smart-rom-sync/pkg/errors"
	"github.com/kism/smart-rom-sync/pkg/logging"
	"github.com/kism/smart-rom-sync/pkg/syncer"
	"github.com/kism/smart-rom-sync/pkg/transfer"
	"github.com/spf13/cobra"
)

// newRunner is replaced in tests
var newRunner = func(cmd *cobra.Command) transfer.Runner {
	return transfer.ExecRunner{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()}
}

// targetFlags override the [target] section of the config file
type targetFlags struct {
	path       string
	remoteHost string
}

func (f *targetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.path, "target-path", "", MsgFlagTargetPath)
	cmd.Flags().StringVar(&f.remoteHost, "remote-host", "", MsgFlagRemoteHost)
}

func (f *targetFlags) overrides() map[string]interface{} {
	return map[string]interface{}{
		"target.path":        f.path,
		"target.remote_host": f.remoteHost,
	}
}

// loadConfig loads and validates the configuration for sync and plan
func loadConfig(path string, target targetFlags) (*config.Config, error) {
	cfg, err := config.LoadWithOverrides(path, target.overrides())
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newSyncCmd() *cobra.Command {
	var (
		dryRun, noRun bool
		target        targetFlags
	)

	cmd := &cobra.Command{
		Use:   "sync [config]",
		Short: MsgSyncShort,
		Long: `Sync scans each system's local_dir, classifies every file by its release
tags and runs one rsync per destination folder under target.path/remote_dir.

The config defaults to $XDG_CONFIG_HOME/smart-rom-sync/config.toml.`,
		Example: `  # Sync using the default config
  smart-rom-sync sync

  # See what rsync would transfer
  smart-rom-sync sync -n ~/roms.toml

  # Only print the rsync commands
  smart-rom-sync sync --no-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.sync")
			path := configPath(args)
			logger.Info().
				Str("config", path).
				Bool("dryRun", dryRun).
				Bool("noRun", noRun).
				Msg("Starting sync")

			cfg, err := loadConfig(path, target)
			if err != nil {
				return err
			}

			s := syncer.New(cfg, syncer.Options{
				DryRun: dryRun,
				NoRun:  noRun,
				Runner: newRunner(cmd),
			})
			stats, err := s.Run(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(stats) == 0 {
				fmt.Fprintln(out, MsgNoSystems)
				return nil
			}
			fmt.Fprintln(out, display.StatsTable(stats))
			fmt.Fprintln(out, display.Summary(stats))
			if noRun {
				fmt.Fprintln(out, MsgNotRunNotice)
			} else if dryRun {
				fmt.Fprintln(out, MsgDryRunNotice)
			}

			if syncer.Failed(stats) {
				failed := 0
				for _, st := range stats {
					if !st.OK() {
						failed++
					}
				}
				return errors.Newf(errors.ErrTransferFailed, MsgErrSyncFailed, failed, len(stats))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, MsgFlagDryRun)
	cmd.Flags().BoolVar(&noRun, "no-run", false, MsgFlagNoRun)
	target.register(cmd)

	return cmd
}

func newPlanCmd() *cobra.Command {
	var target targetFlags

	cmd := &cobra.Command{
		Use:   "plan [config]",
		Short: MsgPlanShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath(args), target)
			if err != nil {
				return err
			}

			plans, err := syncer.New(cfg, syncer.Options{}).Plans()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(plans) == 0 {
				fmt.Fprintln(out, MsgNoSystems)
				return nil
			}
			for _, sp := range plans {
				fmt.Fprintf(out, MsgSystemHeader, sp.System.LocalDir, sp.Base)
				fmt.Fprintln(out, display.PlanTable(sp.Plan, sp.Sizes))
			}
			return nil
		},
	}

	target.register(cmd)
	return cmd
}
