package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/resume-scorer/internal/scoring"
)

const (
	app = "resume-scorer"
)

type Config struct {
	// RulesFile points to a rule-set JSON file. An inline RuleSet section
	// takes precedence when both are present.
	RulesFile string         `mapstructure:"rules-file"`
	RuleSet   map[string]any `mapstructure:"rule-set"`

	Extractor *ExtractorConfig `mapstructure:"extractor"`
	Server    *ServerConfig    `mapstructure:"server"`
	Audit     *AuditConfig     `mapstructure:"audit"`
}

type ExtractorConfig struct {
	URL        string `mapstructure:"url"`
	TokenFile  string `mapstructure:"token-file"`
	MaxRetries int    `mapstructure:"max-retries"`
}

type ServerConfig struct {
	Listen         string   `mapstructure:"listen"`
	AllowedOrigins []string `mapstructure:"allowed-origins"`
}

type AuditConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	RedisAddr         string `mapstructure:"redis-addr"`
	RedisPasswordFile string `mapstructure:"redis-password-file"`
	RedisDB           int    `mapstructure:"redis-db"`
	TTLHours          int    `mapstructure:"ttl-hours"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-scorer evaluates candidate resumes against declarative screening rules",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("extractor.token-file", "EXTRACTOR_TOKEN_FILE"); err != nil {
		log.Fatalf("binding EXTRACTOR_TOKEN_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-scorer.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().StringP("rules", "r", "", "path to a rule-set JSON file, overrides the config")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("rules", rootCmd.PersistentFlags().Lookup("rules"))
}

func initConfig() {
	// Config needed only for the score and serve commands. If there is no
	// config, we can skip initialization.
	if scoreCmd.CalledAs() == "" && serveCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

// resolveRules loads the active rule set: the --rules flag wins, then the
// rules-file config key, then an inline rule-set config section.
func resolveRules(config *Config) (*scoring.RuleSet, error) {
	if path := viper.GetString("rules"); path != "" {
		return scoring.LoadRuleSetFile(path)
	}

	if config != nil && config.RulesFile != "" {
		return scoring.LoadRuleSetFile(config.RulesFile)
	}

	if config != nil && len(config.RuleSet) > 0 {
		return scoring.DecodeRuleSet(config.RuleSet)
	}

	return nil, &scoring.ConfigError{Field: "rules", Reason: "no rule set configured: set --rules, rules-file or an inline rule-set section"}
}
