package cli

import (
	"fmt"
	"os"

	"github.com/kism/smart-rom-sync/pkg/config"
	"github.com/kism/smart-rom-sync/pkg/errors"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
	}
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: MsgConfigInitShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath(args)

			if _, err := os.Stat(path); err == nil && !force {
				return errors.Newf(errors.ErrInvalidInput, MsgErrConfigExists, path).
					WithDetail("path", path)
			}

			if err := config.WriteContent(path, config.Header()+config.GenerateConfigContent()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var (
		format string
		write  bool
	)

	cmd := &cobra.Command{
		Use:   "show [path]",
		Short: MsgConfigShowShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath(args)
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if write {
				if err := config.Write(path, cfg); err != nil {
					return err
				}
				fmt.Fprintf(out, MsgConfigSaved, path)
			}
			if format == "" {
				fmt.Fprintf(out, MsgConfigPathFormat, path)
				fmt.Fprintln(out, config.Summary(cfg))
				return nil
			}

			content, err := config.Encode(cfg, format)
			if err != nil {
				return err
			}
			_, err = out.Write(content)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "", MsgFlagFormat)
	cmd.Flags().BoolVar(&write, "write", false, MsgFlagWrite)
	return cmd
}
