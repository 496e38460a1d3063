package app

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/bethropolis/tidal/internal/config"
	"github.com/bethropolis/tidal/internal/filetype"
	"github.com/bethropolis/tidal/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewRootCommand builds the tidal command tree. The App is created before
// any subcommand runs and closed after it returns.
func NewRootCommand() *cobra.Command {
	flags := &config.Flags{}
	var a *App

	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Syntax-highlighting text viewer and search tool",
		Long:          `tidal renders source files with per-language highlighting and searches them by grapheme position.`,
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			flags.Bind(cmd.Flags())
			cfg, err := config.Load(flags.ConfigFilePath, flags)
			if err != nil {
				return err
			}
			a, err = New(cfg)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a == nil {
				return nil
			}
			return a.Close()
		},
	}
	flags.DefineFlags(root.PersistentFlags())

	current := func() *App { return a }
	root.AddCommand(
		newRenderCommand(current),
		newFindCommand(current),
		newLanguagesCommand(),
		newThemesCommand(current),
	)
	return root
}

func newRenderCommand(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [flags] file...",
		Short: "Print files with syntax highlighting",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			width, err := renderWidth(cmd, a)
			if err != nil {
				return err
			}
			match, err := cmd.Flags().GetString("match")
			if err != nil {
				return fmt.Errorf("failed to get match flag: %w", err)
			}
			status, err := cmd.Flags().GetBool("status")
			if err != nil {
				return fmt.Errorf("failed to get status flag: %w", err)
			}

			docs, err := a.Open(cmd.Context(), args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, doc := range docs {
				if len(docs) > 1 {
					if i > 0 {
						fmt.Fprintln(out)
					}
					fmt.Fprintf(out, "==> %s <==\n", doc.Filename())
				}
				if err := a.Render(out, doc, width, match); err != nil {
					return err
				}
				if status {
					cursor := types.Position{}
					if hits := FindAll(doc, match, types.Forward); len(hits) > 0 {
						cursor = hits[0]
					}
					fmt.Fprintln(out, a.StatusLine(doc, cursor, width))
				}
			}
			return nil
		},
	}
	cmd.Flags().Int("width", 0, "Graphemes per row (default: terminal width, or whole rows when not a terminal)")
	cmd.Flags().String("match", "", "Highlight every occurrence of this word")
	cmd.Flags().Bool("status", false, "Print a status line after each file, with the cursor on the first --match hit")
	return cmd
}

// renderWidth resolves the row cut: the --width flag, then the config value,
// then the terminal width when writing to a terminal.
func renderWidth(cmd *cobra.Command, a *App) (int, error) {
	if cmd.Flags().Changed("width") {
		width, err := cmd.Flags().GetInt("width")
		if err != nil {
			return 0, fmt.Errorf("failed to get width flag: %w", err)
		}
		return width, nil
	}
	if a.cfg.Editor.RenderWidth > 0 {
		return a.cfg.Editor.RenderWidth, nil
	}
	if f, ok := cmd.OutOrStdout().(*os.File); ok && isTerminal(f) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil {
			return width, nil
		}
	}
	return 0, nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func newFindCommand(app func() *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find [flags] query file...",
		Short: "Print the line and column of every match",
		Long:  `Find prints file:line:column for every occurrence of query. Columns count grapheme clusters.`,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			backward, err := cmd.Flags().GetBool("backward")
			if err != nil {
				return fmt.Errorf("failed to get backward flag: %w", err)
			}
			direction := types.Forward
			if backward {
				direction = types.Backward
			}

			docs, err := app().Open(cmd.Context(), args[1:])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, doc := range docs {
				for _, hit := range FindAll(doc, args[0], direction) {
					fmt.Fprintf(out, "%s:%d:%d\n", doc.Filename(), hit.Y+1, hit.X+1)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolP("backward", "b", false, "Scan from the end of each file")
	return cmd
}

func newLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the registered language profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeTable(cmd.OutOrStdout(), func(w io.Writer) {
				for _, ft := range filetype.All() {
					fmt.Fprintf(w, "%s\t%s\n", ft.Name, strings.Join(ft.Extensions, " "))
				}
			})
		},
	}
}

func newThemesCommand(app func() *App) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the available themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app()
			active := a.Theme().Name
			return writeTable(cmd.OutOrStdout(), func(w io.Writer) {
				for _, name := range a.Themes().ListThemes() {
					marker := " "
					if name == active {
						marker = "*"
					}
					fmt.Fprintf(w, "%s\t%s\n", marker, name)
				}
			})
		},
	}
}

func writeTable(out io.Writer, rows func(w io.Writer)) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	rows(tw)
	return tw.Flush()
}
