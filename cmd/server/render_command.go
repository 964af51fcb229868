package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"directory/internal/directory"
	"directory/internal/logging"
	"directory/views/pages"
)

var errRenderLoadFailed = errors.New(directory.StatusLoadFailed)

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var out, raw string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Load the directory once and write the page HTML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := logging.New(os.Stderr, cfg.LogLevel)

			a, err := newApp(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer func() {
				closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				a.close(closeCtx)
			}()

			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			return renderPage(cmd.Context(), a.svc, directory.ParseRawState(raw), w)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the page to this file instead of stdout")
	cmd.Flags().StringVar(&raw, "raw", string(directory.RawCollapsed), "Starting state of every raw JSON block (collapsed or expanded)")
	return cmd
}

// renderPage writes the page for one load. The page is written even when the
// load fails; the failure is then reported as the command's error.
func renderPage(ctx context.Context, svc *directory.Service, raw directory.RawState, w io.Writer) error {
	res := svc.Load(ctx)
	if err := pages.DirectoryPage(directory.PageView(res, svc.Intro(), raw)).Render(ctx, w); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	if !res.OK() {
		return errRenderLoadFailed
	}
	return nil
}
