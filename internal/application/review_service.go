package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abdidvp/smartreview/internal/domain"
	"github.com/abdidvp/smartreview/internal/domain/scoring"
)

// StdinName is the report path used for source read from standard input.
const StdinName = "<stdin>"

// ErrPathNotFound is returned when the review target does not exist.
var ErrPathNotFound = errors.New("path does not exist")

// ReviewService orchestrates the review pipeline:
// scan → read → measure → score → sort.
type ReviewService struct {
	provider domain.MetricsProvider
	scanner  domain.SourceScanner
	log      *zap.Logger
	workers  int
}

func NewReviewService(
	provider domain.MetricsProvider,
	scanner domain.SourceScanner,
	log *zap.Logger,
	workers int,
) *ReviewService {
	if log == nil {
		log = zap.NewNop()
	}
	if workers <= 0 {
		workers = domain.DefaultWorkers
	}
	return &ReviewService{
		provider: provider,
		scanner:  scanner,
		log:      log,
		workers:  workers,
	}
}

// ReviewSource measures and scores source held in memory.
func (s *ReviewService) ReviewSource(path, source string) domain.ReviewReport {
	m := s.provider.Measure(source, path)
	report := scoring.BuildReport(m)
	s.log.Debug("reviewed",
		zap.String("path", path),
		zap.String("language", m.Language),
		zap.Int("lines", m.LineCount),
		zap.Float64("readability", report.Readability.Score),
		zap.Float64("structure", report.Structure.Score),
		zap.Float64("maintainability", report.Maintainability.Score),
	)
	return report
}

// ReviewFile reads and reviews one file. Invalid UTF-8 is replaced. A read
// failure is reported in the returned report rather than as an error.
func (s *ReviewService) ReviewFile(path string) domain.ReviewReport {
	data, err := os.ReadFile(path)
	if err != nil {
		s.log.Warn("cannot read file", zap.String("path", path), zap.Error(err))
		return unreadable(path, err)
	}
	return s.ReviewSource(path, strings.ToValidUTF8(string(data), "\uFFFD"))
}

// ReviewReader reviews everything read from r under name.
func (s *ReviewService) ReviewReader(r io.Reader, name string) (domain.ReviewReport, error) {
	if name == "" {
		name = StdinName
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return domain.ReviewReport{}, fmt.Errorf("reading %s: %w", name, err)
	}
	return s.ReviewSource(name, strings.ToValidUTF8(string(data), "\uFFFD")), nil
}

// ReviewPath reviews a file or every supported file below a directory.
// An unsupported file yields no reports. Results are sorted by path.
func (s *ReviewService) ReviewPath(ctx context.Context, path string, excludes ...string) ([]domain.ReviewReport, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
		return nil, fmt.Errorf("inspecting %s: %w", path, err)
	}

	if !info.IsDir() {
		if !domain.IsSupportedSource(path) {
			s.log.Debug("unsupported file", zap.String("path", path))
			return nil, nil
		}
		return []domain.ReviewReport{s.ReviewFile(path)}, nil
	}

	scan, err := s.scanner.Scan(path, excludes...)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	s.log.Debug("scanned",
		zap.String("root", scan.RootPath),
		zap.Int("files", len(scan.Files)),
		zap.Int("excluded", scan.Skipped),
	)

	paths := make([]string, len(scan.Files))
	for i, f := range scan.Files {
		paths[i] = filepath.Join(path, f)
	}
	return s.reviewAll(ctx, paths)
}

// ReviewFiles reviews the supported files of an explicit list, each
// relative to root.
func (s *ReviewService) ReviewFiles(ctx context.Context, root string, files []string) ([]domain.ReviewReport, error) {
	var paths []string
	for _, f := range files {
		if domain.IsSupportedSource(f) {
			paths = append(paths, filepath.Join(root, f))
		}
	}
	return s.reviewAll(ctx, paths)
}

func (s *ReviewService) reviewAll(ctx context.Context, paths []string) ([]domain.ReviewReport, error) {
	reports := make([]domain.ReviewReport, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, p := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i] = s.ReviewFile(p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slices.SortFunc(reports, func(a, b domain.ReviewReport) int {
		return domain.ComparePaths(a.Path, b.Path)
	})
	return reports, nil
}

func unreadable(path string, err error) domain.ReviewReport {
	msg := err.Error()
	return domain.ReviewReport{
		Path:            path,
		Readability:     domain.EmptyCategory(),
		Structure:       domain.EmptyCategory(),
		Maintainability: domain.EmptyCategory(),
		Error:           &msg,
	}
}
