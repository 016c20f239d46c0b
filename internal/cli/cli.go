// Package cli runs the diff2html pipeline: decode stdin, parse the unified
// diff, align both sides and write the HTML document.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"

	"diff2html/internal/config"
	"diff2html/internal/diffview"
	"diff2html/internal/textenc"
)

// FileSwitch selects file output instead of stdout.
const FileSwitch = "-f"

type Options struct {
	Args   []string
	Stdin  io.Reader
	Stdout io.Writer
	Config config.AppConfig
	Log    *slog.Logger
}

func Run(opts Options) error {
	log := opts.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	dec, err := textenc.NewDecoder(opts.Config.Encodings, log)
	if err != nil {
		return err
	}
	text, err := dec.DecodeLines(opts.Stdin)
	if err != nil {
		return fmt.Errorf("read diff: %w", err)
	}

	files, err := diffview.ParseUnifiedDiff([]byte(text))
	if err != nil {
		return fmt.Errorf("parse diff: %w", err)
	}
	doc := diffview.NewAligner(log).Align(files)
	log.Debug("aligned diff", "files", len(doc.Before))

	html := diffview.Render(doc)
	if wantsFile(opts.Args) {
		path := opts.Config.OutputPath
		if path == "" {
			path = config.DefaultOutputPath
		}
		log.Debug("writing document", "path", path, "bytes", len(html))
		return os.WriteFile(path, []byte(html), 0o644)
	}
	_, err = io.WriteString(opts.Stdout, html)
	return err
}

func wantsFile(args []string) bool {
	return len(args) > 0 && args[0] == FileSwitch
}

// PrintError writes a one-line diagnostic, styled when w is a terminal.
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, formatError(lipgloss.NewRenderer(w), err))
}

func formatError(r *lipgloss.Renderer, err error) string {
	label := r.NewStyle().Foreground(lipgloss.Color("203")).Bold(true).Render("diff2html:")
	return label + " " + err.Error()
}
