package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iwvelando/sem-planner/internal/config"
	"github.com/iwvelando/sem-planner/internal/plan"
	"github.com/iwvelando/sem-planner/pkg/constants"
	"github.com/iwvelando/sem-planner/pkg/output"
)

type generateOptions struct {
	configPath string
	brand      string
	competitor string
	locations  []string
	budget     float64
	targetCPA  float64
	format     string
	outputPath string
	pages      []string
	watch      bool
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a plan from a config file and flags",
		Long: `Generate builds a single plan. Campaign inputs come from the config file
(config.yaml by default, optional) and are overridden by flags. The plan is
written to --output, or to stdout when no path is given.

With --watch the plan is regenerated each time the config file changes
until the process is interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", constants.DefaultConfigFile, "path to configuration file")
	f.StringVar(&opts.brand, "brand", "", "brand website URL")
	f.StringVar(&opts.competitor, "competitor", "", "competitor website URL")
	f.StringArrayVar(&opts.locations, "location", nil, "service location (repeatable)")
	f.Float64Var(&opts.budget, "budget", 0, "total monthly budget")
	f.Float64Var(&opts.targetCPA, "target-cpa", 0, "target cost per acquisition")
	f.StringVarP(&opts.format, "format", "f", "", "output format: pretty, json, csv, xlsx")
	f.StringVarP(&opts.outputPath, "output", "o", "", "output file (default stdout)")
	f.StringArrayVar(&opts.pages, "page", nil, "local HTML page to mine for keyword ideas (repeatable)")
	f.BoolVar(&opts.watch, "watch", false, "regenerate when the config file changes")
	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	conf, err := loadGenerateConfig(cmd, opts)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, opts, conf)

	logLevel, _ := cmd.Flags().GetString("log-level")
	logger, err := initializeLogger(conf.Logging, logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := generateOnce(cmd, logger, conf); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchAndGenerate(ctx, cmd, opts, logger)
}

func watchAndGenerate(ctx context.Context, cmd *cobra.Command, opts *generateOptions, logger *zap.Logger) error {
	_, err := config.Watch(opts.configPath, logger, func(conf *config.Configuration) {
		applyFlagOverrides(cmd, opts, conf)
		if err := generateOnce(cmd, logger, conf); err != nil {
			logger.Error("failed to regenerate plan",
				zap.String("op", "cmd.watchAndGenerate"),
				zap.Error(err),
			)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", opts.configPath, err)
	}

	logger.Info("watching configuration for changes",
		zap.String("op", "cmd.watchAndGenerate"),
		zap.String("file", opts.configPath),
	)
	<-ctx.Done()
	return nil
}

// loadGenerateConfig reads the config file. A missing default file is not an
// error; a missing file named explicitly is.
func loadGenerateConfig(cmd *cobra.Command, opts *generateOptions) (*config.Configuration, error) {
	explicit := cmd.Flags().Changed("config")
	if _, err := os.Stat(opts.configPath); errors.Is(err, fs.ErrNotExist) && !explicit {
		if opts.watch {
			return nil, fmt.Errorf("--watch requires a config file, %s not found", opts.configPath)
		}
		return config.Default()
	}

	conf, err := config.LoadConfiguration(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration at %s: %w", opts.configPath, err)
	}
	return conf, nil
}

func applyFlagOverrides(cmd *cobra.Command, opts *generateOptions, conf *config.Configuration) {
	f := cmd.Flags()
	if f.Changed("brand") {
		conf.Campaign.BrandWebsite = opts.brand
	}
	if f.Changed("competitor") {
		conf.Campaign.CompetitorWebsite = opts.competitor
	}
	if f.Changed("location") {
		conf.Campaign.Locations = append([]string(nil), opts.locations...)
	}
	if f.Changed("budget") {
		conf.Campaign.TotalBudget = opts.budget
	}
	if f.Changed("target-cpa") {
		conf.Campaign.TargetCPA = opts.targetCPA
	}
	if f.Changed("format") {
		conf.Output.Format = opts.format
	}
	if f.Changed("output") {
		conf.Output.Path = opts.outputPath
	}
	if f.Changed("page") {
		conf.Discovery.Pages = append([]string(nil), opts.pages...)
	}
}

func generateOnce(cmd *cobra.Command, logger *zap.Logger, conf *config.Configuration) error {
	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "cmd.generate"),
		)
	}

	tables, err := conf.ToTables()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	p, err := plan.NewGenerator(logger, tables).Generate(conf.ToInput())
	if err != nil {
		return err
	}

	if conf.Output.Path == "" {
		return output.Write(cmd.OutOrStdout(), conf.Output.Format, p)
	}
	if err := output.ExportFile(conf.Output.Path, conf.Output.Format, p); err != nil {
		return err
	}
	logger.Info("plan exported",
		zap.String("op", "cmd.generate"),
		zap.String("path", conf.Output.Path),
		zap.String("format", conf.Output.Format),
	)
	return nil
}
