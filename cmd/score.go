package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-scorer/internal/extractor"
	"github.com/spigell/resume-scorer/internal/logger"
	"github.com/spigell/resume-scorer/internal/scoring"
	"github.com/spigell/resume-scorer/internal/secrets"
)

const (
	PromptShowReport = "Show full report"
	PromptShowResult = "Show result as JSON"
	PromptDumpToFile = "Dump result to file"
	PromptExit       = "Exit"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowReport, PromptShowResult, PromptDumpToFile, PromptExit},
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a candidate profile against the configured rule set",
	Run: func(cmd *cobra.Command, _ []string) {
		score(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringP("profile", "p", "", "path to a candidate profile JSON file (required)")
	scoreCmd.Flags().String("pdf", "", "path to a resume PDF, its text is extracted into the profile rawText")
	scoreCmd.Flags().BoolP("auto-approve", "y", false, "print the full report and exit without prompting")

	scoreCmd.MarkFlagRequired("profile")
}

// score is the main command for the cli.
func score(cmd *cobra.Command) {
	ctx := context.Background()

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

	candidate, err := loadCandidate(cmd.Flag("profile").Value.String())
	if err != nil {
		logger.Fatal("loading candidate profile", zap.Error(err))
	}

	if pdf := cmd.Flag("pdf").Value.String(); pdf != "" {
		if err := attachExtractedText(ctx, config, candidate, pdf, logger); err != nil {
			logger.Fatal("extracting resume text", zap.Error(err))
		}
	}

	for _, problem := range scoring.ValidateCandidate(candidate) {
		logger.Warn("incomplete candidate profile", zap.String("problem", problem))
	}

	result := engine.Score(candidate)

	logger.Info(result.Summary,
		zap.String("candidate", candidate.Name),
		zap.Float64("total_score", result.TotalScore),
		zap.String("grade", string(result.Grade)),
		zap.Int("risks", len(result.Risks)),
	)

	action := PromptShowReport
	auto := cmd.Flag("auto-approve").Value.String() == "true"

	for {
		if !auto {
			var err error
			if _, action, err = prompt.Run(); err != nil {
				logger.Fatal("exiting", zap.Error(err))
			}
		}

		if err := handleAction(action, result, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}

		if auto {
			return
		}
	}
}

func handleAction(action string, result *scoring.Result, logger *zap.Logger) error {
	switch action {
	case PromptShowReport:
		fmt.Println(result.Explanation)
		return nil
	case PromptShowResult:
		pretty, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(pretty))
		return nil
	case PromptDumpToFile:
		filename, err := dumpResult(result)
		if err != nil {
			return fmt.Errorf("dump result to file: %w", err)
		}
		logger.Info("dumped result to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func loadCandidate(path string) (*scoring.CandidateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile file: %w", err)
	}

	var candidate scoring.CandidateProfile
	if err := json.Unmarshal(data, &candidate); err != nil {
		return nil, fmt.Errorf("parsing profile file: %w", err)
	}

	return &candidate, nil
}

// attachExtractedText replaces the profile rawText with the text extracted
// from the given PDF. An already populated rawText is overwritten: the PDF is
// considered the more authoritative source.
func attachExtractedText(ctx context.Context, config *Config, candidate *scoring.CandidateProfile, pdf string, logger *zap.Logger) error {
	if config == nil || config.Extractor == nil || config.Extractor.URL == "" {
		return errors.New("extractor.url is not configured")
	}

	token, err := secrets.LoadOptional(secrets.Source{
		Name: "extractor token",
		File: config.Extractor.TokenFile,
	})
	if err != nil {
		return err
	}

	client := extractor.New(ctx, logger, config.Extractor.URL, token)
	if config.Extractor.MaxRetries > 0 {
		client.MaxRetries = config.Extractor.MaxRetries
	}

	extraction, err := client.Extract(pdf)
	if err != nil {
		return err
	}

	if extraction.Status == extractor.StatusNeedsReview {
		logger.Warn("extracted text may be incomplete",
			zap.String("hint", extraction.Hint),
			zap.Int("chars", extraction.Chars),
		)
	}

	candidate.RawText = extraction.Text

	return nil
}

func dumpResult(result *scoring.Result) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}

	file, err := os.CreateTemp("", "scoring-result-*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := file.Write(data); err != nil {
		return "", err
	}

	return file.Name(), nil
}
