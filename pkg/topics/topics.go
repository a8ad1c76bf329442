// Package topics adds help topics to a cobra application. Topics are text
// or markdown files read from an fs.FS, usually an embedded directory, and
// are shown by "help <topic>".
package topics

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// Topic is one help file
type Topic struct {
	Name    string
	Format  string // file extension, e.g. ".md"
	Content string
}

// Options configures a Manager
type Options struct {
	// Extensions considered as topics, defaults to .txt and .md
	Extensions []string
	// Renderer defaults to PlainRenderer
	Renderer Renderer
}

// Manager holds the topics found in a filesystem
type Manager struct {
	topics     map[string]Topic
	extensions []string
	renderer   Renderer
}

// Load reads every topic file at the top level of fsys
func Load(fsys fs.FS, opts Options) (*Manager, error) {
	m := &Manager{
		topics:     make(map[string]Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(m.extensions) == 0 {
		m.extensions = []string{".txt", ".md"}
	}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read topics: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := path.Ext(e.Name())
		if !m.hasExtension(ext) {
			continue
		}
		data, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read topic %s: %w", e.Name(), err)
		}
		name := strings.TrimSuffix(e.Name(), ext)
		m.topics[name] = Topic{Name: name, Format: ext, Content: string(data)}
	}
	return m, nil
}

func (m *Manager) hasExtension(ext string) bool {
	for _, e := range m.extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// Get returns the named topic
func (m *Manager) Get(name string) (Topic, bool) {
	t, ok := m.topics[name]
	return t, ok
}

// List returns the topic names, sorted
func (m *Manager) List() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns the named topic formatted by the renderer
func (m *Manager) Render(name string) (string, bool) {
	t, ok := m.Get(name)
	if !ok {
		return "", false
	}
	return m.renderer.Render(t.Content, t.Format), true
}

// Install replaces the help command of rootCmd with one that also knows the
// topics. "help topics" lists them.
func (m *Manager) Install(rootCmd *cobra.Command) {
	originalHelp := rootCmd.HelpFunc()
	name := rootCmd.Name()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.

To see all available help topics:
  ` + name + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			return append(completions, m.List()...), cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				originalHelp(rootCmd, nil)
				return
			}

			if args[0] == "topics" {
				names := m.List()
				if len(names) == 0 {
					fmt.Fprintln(out, "No help topics available.")
					return
				}
				fmt.Fprintln(out, "Available help topics:")
				for _, n := range names {
					fmt.Fprintf(out, "  %s\n", n)
				}
				fmt.Fprintf(out, "\nUse '%s help <topic>' to read about a specific topic.\n", name)
				return
			}

			if rendered, ok := m.Render(args[0]); ok {
				fmt.Fprint(out, rendered)
				return
			}

			target, _, err := rootCmd.Find(args)
			if err != nil || target == nil {
				originalHelp(rootCmd, args)
				return
			}
			originalHelp(target, nil)
		},
	}

	for _, c := range rootCmd.Commands() {
		if c.Name() == "help" {
			rootCmd.RemoveCommand(c)
			break
		}
	}
	rootCmd.SetHelpCommand(helpCmd)
}
