package main

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"github.com/QAddict/ruix/internal/errors"
	"github.com/QAddict/ruix/pkg/memdom"
	"github.com/QAddict/ruix/pkg/telemetry"
)

func renderCmd() *cobra.Command {
	var (
		out    string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the page to static HTML",
		Long: `Render builds the page once and writes it as a complete HTML document.

Examples:
  ruix render
  ruix render --out=index.html --pretty`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("pretty") {
				cfg.Render.Pretty = pretty
			}

			page, err := loadPage(cfg)
			if err != nil {
				return err
			}
			doc := page.Document(telemetry.NewLogObserver(logger))

			var buf bytes.Buffer
			opts := memdom.RenderOptions{Pretty: cfg.Render.Pretty, Indent: cfg.Render.Indent}
			if err := memdom.RenderDocument(&buf, doc, opts); err != nil {
				return errors.New("R141").Wrap(err)
			}

			if out == "" {
				if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
					return errors.New("R141").Wrap(err)
				}
				return nil
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return errors.New("R141").WithDetail("writing " + out).Wrap(err)
			}
			success(cmd.ErrOrStderr(), "Wrote %s (%d bytes)", out, buf.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent nested elements")

	return cmd
}
