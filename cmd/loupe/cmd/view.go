package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loupedev/loupe/internal/page"
)

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Render a document with the current display preferences",
	Long: `Parse and render a document in the terminal. Reads from stdin when
no file is given.

Examples:
  loupe view notes.md
  cat notes.md | loupe view`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

func runView(cmd *cobra.Command, args []string) error {
	in := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening document: %w", err)
		}
		defer f.Close()
		in = f
	}

	doc, err := page.Parse(in)
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}
	if len(doc.Blocks) == 0 {
		logger.Warn("document is empty")
		return nil
	}

	fmt.Print(renderer.Render(doc))
	return nil
}
