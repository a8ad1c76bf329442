package cli

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/kism/smart-rom-sync/internal/version"
	"github.com/kism/smart-rom-sync/pkg/logging"
	"github.com/kism/smart-rom-sync/pkg/paths"
	"github.com/kism/smart-rom-sync/pkg/topics"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

//go:embed topics/*.md
var topicFiles embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		logLevel  string
		logFile   string
	)

	rootCmd := &cobra.Command{
		Use:   version.ProgramName,
		Short: MsgRootShort,
		Long: `smart-rom-sync reads No-Intro and Redump style release tags from ROM file
names, keeps the regions and release types you ask for, and pushes each
system's files with rsync into one folder per region or special category.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(logging.Options{
				Verbosity: verbosity,
				Level:     logLevel,
				LogFile:   logFile,
				Console:   cmd.ErrOrStderr(),
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", MsgFlagLogLevel)
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", MsgFlagLogFile)

	rootCmd.AddCommand(newSyncCmd())
	rootCmd.AddCommand(newPlanCmd())
	rootCmd.AddCommand(newClassifyCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	installTopics(rootCmd)

	return rootCmd
}

// installTopics adds "help <topic>" for the embedded docs. Markdown is
// rendered with glamour only when stdout is a terminal.
func installTopics(rootCmd *cobra.Command) {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return
	}

	var renderer topics.Renderer = &topics.PlainRenderer{}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		renderer = topics.NewGlamourRenderer()
	}

	m, err := topics.Load(sub, topics.Options{Renderer: renderer})
	if err != nil {
		return
	}
	m.Install(rootCmd)
}

// configPath is the first argument, or the default location
func configPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return paths.ExpandHome(args[0])
	}
	return paths.DefaultConfigPath()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.ProgramName, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: `To load completions:

Bash:
  $ source <(smart-rom-sync completion bash)

Zsh:
  $ smart-rom-sync completion zsh > "${fpath[1]}/_smart-rom-sync"

Fish:
  $ smart-rom-sync completion fish | source

PowerShell:
  PS> smart-rom-sync completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  MsgManShort,
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "SMART-ROM-SYNC",
				Section: "1",
				Source:  version.ProgramName + " " + version.Version,
				Manual:  version.ProgramName + " manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}
