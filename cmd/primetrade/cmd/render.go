package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/primetrade/landing/internal/landing"
	"github.com/primetrade/landing/internal/rendering"
	"github.com/primetrade/landing/internal/view"
	"github.com/primetrade/landing/web/templates/layouts"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// appFs is swapped for an in-memory filesystem in tests.
var appFs = afero.NewOsFs()

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the landing page HTML to stdout or a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := renderLanding(cmd.Context())
		if err != nil {
			return err
		}
		return writeOutput(appFs, cmd.OutOrStdout(), renderOut, page)
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(renderCmd)
}

// renderLanding produces the full landing document, as served at /.
func renderLanding(ctx context.Context) ([]byte, error) {
	page := layouts.Base("", view.FlashData{}, landing.View(landing.DefaultContent()))
	return rendering.NewUniversalRenderer().RenderComponent(ctx, page)
}

func writeOutput(fs afero.Fs, stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
