package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iwvelando/sem-planner/internal/config"
	"github.com/iwvelando/sem-planner/internal/plan"
	"github.com/iwvelando/sem-planner/internal/server"
	"github.com/iwvelando/sem-planner/pkg/constants"
)

func newServeCmd() *cobra.Command {
	var (
		serverConfigPath string
		address          string
		configPath       string
		maxRequestSize   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the plan API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadServerConfig(cmd, serverConfigPath, address, maxRequestSize)
			if err != nil {
				return err
			}

			logLevel, _ := cmd.Flags().GetString("log-level")
			logger, err := initializeLogger(cfg.Logging, logLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() {
				_ = logger.Sync()
			}()

			tables := plan.DefaultTables()
			if configPath != "" {
				conf, err := config.LoadConfiguration(configPath)
				if err != nil {
					return err
				}
				if err := conf.Validate(); err != nil {
					return fmt.Errorf("invalid configuration: %w", err)
				}
				if tables, err = conf.ToTables(); err != nil {
					return err
				}
				logger.Info("using tables from configuration",
					zap.String("op", "cmd.serve"),
					zap.String("file", configPath),
				)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			handler := server.NewHandler(logger, tables, cfg.RequestSizeBytes(), Version)
			return server.Run(ctx, cfg, handler, logger)
		},
	}

	cmd.Flags().StringVar(&serverConfigPath, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	cmd.Flags().StringVar(&address, "address", "", "listen address override (e.g. :8080)")
	cmd.Flags().StringVar(&configPath, "config", "", "optional planner config supplying keyword, rule and product tables")
	cmd.Flags().StringVar(&maxRequestSize, "max-request-size", "", "request body limit override (e.g. 64KB, 2MB)")
	return cmd
}

// loadServerConfig reads the server config file and applies flag overrides.
func loadServerConfig(cmd *cobra.Command, path, address, maxRequestSize string) (*server.Config, error) {
	cfg, err := server.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("address") {
		cfg.Address = address
	}
	if cmd.Flags().Changed("max-request-size") {
		size, err := server.ParseSize(maxRequestSize)
		if err != nil {
			return nil, fmt.Errorf("invalid --max-request-size: %w", err)
		}
		cfg.SetRequestSizeBytes(size)
	}
	return cfg, nil
}
