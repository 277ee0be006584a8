package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abdidvp/smartreview/internal/adapters/outbound/tui"
	"github.com/abdidvp/smartreview/internal/application"
	"github.com/abdidvp/smartreview/internal/domain"
)

const (
	formatConsole = "console"
	formatJSON    = "json"
	formatTable   = "table"
)

const stdinTarget = "-"

func (a *app) runReview(cmd *cobra.Command) error {
	target := a.v.GetString("target")

	format, err := a.outputFormat()
	if err != nil {
		return err
	}

	configRoot := target
	if target == stdinTarget {
		configRoot = "."
	} else if _, err := os.Stat(target); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", application.ErrPathNotFound, target)
	}

	cfg, err := a.settings(configRoot)
	if err != nil {
		return err
	}
	svc, err := a.newService(cfg)
	if err != nil {
		return err
	}

	reports, err := a.collect(cmd.Context(), cmd.InOrStdin(), svc, target, cfg.ExcludePaths)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No supported files found.")
		return nil
	}

	return render(cmd.OutOrStdout(), format, reports)
}

func (a *app) outputFormat() (string, error) {
	if a.v.GetBool("json") {
		return formatJSON, nil
	}
	switch f := a.v.GetString("format"); f {
	case formatConsole, formatJSON, formatTable:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (valid: console, json, table)", f)
	}
}

func (a *app) collect(
	ctx context.Context,
	stdin io.Reader,
	svc *application.ReviewService,
	target string,
	excludes []string,
) ([]domain.ReviewReport, error) {
	if target == stdinTarget {
		report, err := svc.ReviewReader(stdin, a.v.GetString("stdin-name"))
		if err != nil {
			return nil, err
		}
		return []domain.ReviewReport{report}, nil
	}

	if a.v.GetBool("changed") {
		return a.reviewChanged(ctx, svc, target, excludes)
	}
	return svc.ReviewPath(ctx, target, excludes...)
}

// reviewChanged reviews the files under dir that git reports as modified,
// staged or untracked, minus the ones the scanner would skip.
func (a *app) reviewChanged(
	ctx context.Context,
	svc *application.ReviewService,
	dir string,
	excludes []string,
) ([]domain.ReviewReport, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("inspecting %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("--changed needs a directory target: %s", dir)
	}

	if !a.changes.IsGitRepo(dir) {
		return nil, fmt.Errorf("--changed needs a git repository: %s", dir)
	}
	changed, err := a.changes.ChangedFiles(dir)
	if err != nil {
		return nil, err
	}
	scan, err := a.sources.Scan(dir, excludes...)
	if err != nil {
		return nil, err
	}

	candidates := make(map[string]bool, len(scan.Files))
	for _, f := range scan.Files {
		candidates[filepath.Clean(f)] = true
	}
	var files []string
	for _, f := range changed {
		if candidates[filepath.Clean(f)] {
			files = append(files, f)
		}
	}
	a.log.Debug("changed files", zap.Int("changed", len(changed)), zap.Int("reviewed", len(files)))

	return svc.ReviewFiles(ctx, dir, files)
}

func render(w io.Writer, format string, reports []domain.ReviewReport) error {
	switch format {
	case formatJSON:
		out, err := tui.RenderJSON(reports)
		if err != nil {
			return fmt.Errorf("rendering json: %w", err)
		}
		_, err = io.WriteString(w, out)
		return err
	case formatTable:
		out, err := tui.RenderTable(reports)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	default:
		_, err := io.WriteString(w, tui.RenderReports(reports))
		return err
	}
}
