package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abdidvp/smartreview/internal/adapters/outbound/config"
	"github.com/abdidvp/smartreview/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/smartreview/internal/adapters/outbound/metrics"
	"github.com/abdidvp/smartreview/internal/adapters/outbound/scanner"
	"github.com/abdidvp/smartreview/internal/application"
	"github.com/abdidvp/smartreview/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

const envPrefix = "SMARTREVIEW"

// ports are the outbound adapters the commands depend on.
type ports struct {
	configs domain.ConfigLoader
	sources domain.SourceScanner
	changes domain.ChangeDetector
}

func defaultPorts() ports {
	return ports{
		configs: config.New(),
		sources: scanner.New(),
		changes: gitinfo.New(),
	}
}

// app carries the state shared by every command of one root.
type app struct {
	ports
	v   *viper.Viper
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(defaultPorts())
}

func newRootCmdWith(p ports) *cobra.Command {
	a := &app{ports: p, v: viper.New(), log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "smartreview",
		Short: "Review code for readability, structure, and maintainability",
		Long: "smartreview scores source files on readability, structure and maintainability (0-10 each) " +
			"and suggests concrete improvements. Python gets full analysis; JavaScript and TypeScript " +
			"get line-based checks.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runReview(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.Bool("verbose", false, "Log debug output to stderr")
	pf.Int("workers", domain.DefaultWorkers, "Number of files reviewed concurrently")
	pf.String("analyzer", string(domain.AnalyzerAuto), "Python analyzer: auto, rich or basic")
	pf.StringSlice("exclude", nil, "Glob of paths to skip (repeatable)")

	f := cmd.Flags()
	f.StringP("target", "t", ".", "File or directory to review, or '-' for stdin")
	f.BoolP("json", "j", false, "Output report as JSON")
	f.String("format", formatConsole, "Output format: console, json or table")
	f.Bool("changed", false, "Review only files changed in the git worktree")
	f.String("stdin-name", application.StdinName, "File name reported for stdin input")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newWebCmd(a))
	cmd.AddCommand(newMCPCmd(a))
	return cmd
}

// init binds flags and environment and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	logCfg := zap.NewProductionConfig()
	logCfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if a.v.GetBool("verbose") {
		logCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := logCfg.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	a.log = logger
	return nil
}

// settings merges .smartreview.yaml under root with flags and environment.
// Explicit flags and variables win over the file.
func (a *app) settings(root string) (domain.ProjectConfig, error) {
	cfg, err := a.configs.Load(root)
	if err != nil {
		return domain.ProjectConfig{}, err
	}
	if a.v.IsSet("workers") {
		cfg.Workers = a.v.GetInt("workers")
	}
	if a.v.IsSet("analyzer") {
		cfg.Analyzer = domain.AnalyzerMode(a.v.GetString("analyzer"))
	}
	cfg.ExcludePaths = append(cfg.ExcludePaths, a.v.GetStringSlice("exclude")...)

	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, err
	}
	if cfg.Workers == 0 {
		return domain.ProjectConfig{}, fmt.Errorf("workers must be positive (received 0)")
	}
	return cfg.WithDefaults(), nil
}

func (a *app) newService(cfg domain.ProjectConfig) (*application.ReviewService, error) {
	provider, err := metrics.New(cfg.Analyzer)
	if err != nil {
		return nil, err
	}
	a.log.Debug("analyzer selected",
		zap.String("mode", string(cfg.Analyzer)),
		zap.Bool("rich", provider.Rich()),
		zap.Int("workers", cfg.Workers),
	)
	return application.NewReviewService(provider, a.sources, a.log, cfg.Workers), nil
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	cmd := newRootCmd()
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}
