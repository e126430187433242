package cmd

import (
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-scorer/internal/audit"
	"github.com/spigell/resume-scorer/internal/logger"
	"github.com/spigell/resume-scorer/internal/scoring"
	"github.com/spigell/resume-scorer/internal/secrets"
	"github.com/spigell/resume-scorer/internal/server"
)

const defaultListen = ":8080"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scoring engine over HTTP",
	Run: func(cmd *cobra.Command, _ []string) {
		serve(cmd)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "listen address, overrides the config (default :8080)")
}

func serve(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the resume-scorer", zap.String("version", version))

	rules, err := resolveRules(config)
	if err != nil {
		logger.Fatal("loading rule set", zap.Error(err))
	}

	engine, err := scoring.New(rules, logger)
	if err != nil {
		logger.Fatal("building scoring engine", zap.Error(err))
	}

	logger.Info("rule set loaded", zap.String("rule_version", engine.Version()))

	recorder, err := newRecorder(config, logger)
	if err != nil {
		logger.Fatal("building audit recorder", zap.Error(err))
	}
	if recorder != nil {
		defer recorder.Close()
	}

	listen := cmd.Flag("listen").Value.String()
	if listen == "" && config != nil && config.Server != nil {
		listen = config.Server.Listen
	}
	if listen == "" {
		listen = defaultListen
	}

	var origins []string
	if config != nil && config.Server != nil {
		origins = config.Server.AllowedOrigins
	}

	srv := server.New(engine, recorder, logger, origins)
	if err := srv.ListenAndServe(listen); err != nil {
		logger.Fatal("http server failed", zap.Error(err))
	}
}

// newRecorder builds the optional Redis audit recorder. A disabled audit
// section yields a nil recorder, which downgrades recording to a no-op.
func newRecorder(config *Config, logger *zap.Logger) (*audit.Recorder, error) {
	if config == nil || config.Audit == nil || !config.Audit.Enabled {
		return nil, nil
	}

	password, err := secrets.LoadOptional(secrets.Source{
		Name: "redis password",
		File: config.Audit.RedisPasswordFile,
	})
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(config.Audit.TTLHours) * time.Hour

	return audit.New(config.Audit.RedisAddr, password, config.Audit.RedisDB, ttl, logger), nil
}
