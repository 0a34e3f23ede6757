package main

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/moklet-dev/twibbon/app"
	"github.com/moklet-dev/twibbon/internal/errors"
	"github.com/moklet-dev/twibbon/internal/site"
)

func renderCmd(g *globals) *cobra.Command {
	var (
		page   bool
		pretty bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the features section to HTML",
		Long: `Render the features section fragment, or with --page the full
landing page, to HTML.

The full page inlines the motion runtime so the file works on its own.

Examples:
  twibbon render --pretty
  twibbon render --page > index.html
  twibbon render --page -o dist/index.html`,
		Annotations: map[string]string{needsConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("pretty") {
				cfg.Render.Pretty = pretty
			}
			if output != "" {
				cfg.Render.Output = output
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			b := site.New(cfg, site.WithLogger(g.logger))
			var buf bytes.Buffer
			if page {
				err = b.Page(cmd.Context(), &buf, app.RuntimeInline)
			} else {
				err = b.Section(cmd.Context(), &buf)
			}
			if err != nil {
				return err
			}

			if cfg.Render.Output == "" {
				if _, err := buf.WriteTo(g.stdout); err != nil {
					return errors.New(errors.CodeWriteOutput).Wrap(err)
				}
				return nil
			}
			if err := writeFile(cfg.Render.Output, buf.Bytes()); err != nil {
				return err
			}
			g.logger.Info("wrote output", "path", cfg.Render.Output, "page", page, "bytes", buf.Len())
			return nil
		},
	}

	cmd.Flags().BoolVar(&page, "page", false, "Render the full standalone page instead of the fragment")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the HTML output")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

// writeFile replaces path with data. The file is only opened once the
// render has succeeded, and a failed close is reported.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.New(errors.CodeWriteOutput).WithDetail(path).Wrap(err)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.New(errors.CodeWriteOutput).WithDetail(path).Wrap(err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return errors.New(errors.CodeWriteOutput).WithDetail(path).Wrap(err)
	}
	if err := f.Close(); err != nil {
		return errors.New(errors.CodeWriteOutput).WithDetail(path).Wrap(err)
	}
	return nil
}
