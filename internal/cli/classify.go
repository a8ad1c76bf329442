package cli

import (
	"fmt"

	"github.com/kism/smart-rom-sync/pkg/classify"
	"github.com/kism/smart-rom-sync/pkg/display"
	"github.com/spf13/cobra"
)

func newClassifyCmd() *cobra.Command {
	var (
		rule classify.FilterRule
		base string
	)

	cmd := &cobra.Command{
		Use:   "classify <filename>...",
		Short: MsgClassifyShort,
		Long: `Classify reads the parenthesised release tags of each file name and shows
the region, special category and destination it resolves to, and whether the
include/exclude lists would sync it.`,
		Example: `  smart-rom-sync classify "Zelda (USA) (Rev 1).sfc"
  smart-rom-sync classify --include-region USA,Europe *.sfc`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := classify.NewClassifier(rule, base)

			entries := make([]classify.Entry, 0, len(args))
			for _, name := range args {
				entries = append(entries, c.Explain(name))
			}

			fmt.Fprintln(cmd.OutOrStdout(), display.ReleaseTable(entries))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&rule.RegionInclude, "include-region", nil, MsgFlagIncludeRegion)
	cmd.Flags().StringSliceVar(&rule.RegionExclude, "exclude-region", nil, MsgFlagExcludeRegion)
	cmd.Flags().StringSliceVar(&rule.SpecialInclude, "include-special", nil, MsgFlagIncludeSpecial)
	cmd.Flags().StringSliceVar(&rule.SpecialExclude, "exclude-special", nil, MsgFlagExcludeSpecial)
	cmd.Flags().StringVar(&base, "base", "", MsgFlagBase)

	return cmd
}
