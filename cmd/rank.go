package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"talentrank/internal/ai"
	"talentrank/internal/ai/gemini"
	"talentrank/internal/candidate"
	"talentrank/internal/industry"
	"talentrank/internal/logger"
	"talentrank/internal/ranking"
	"talentrank/internal/secrets"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptShowTop           = "Show top candidates"
	PromptReportBySeniority = "Report by seniority"
	PromptCandidatesToFile  = "Dump ranked candidates to file"
	PromptExit              = "Exit"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowTop, PromptReportBySeniority, PromptCandidatesToFile, PromptExit},
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank and enrich candidates from the input file",
	Run: func(cmd *cobra.Command, _ []string) {
		rank(cmd)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().StringP("input", "i", "", "JSON file with raw candidate records. Overrides the config value.")
	rankCmd.Flags().BoolP("auto-approve", "y", false, "dump the ranked list to a file without asking")

	viper.BindPFlag("input", rankCmd.Flags().Lookup("input"))
}

// rank is the main command for the cli.
func rank(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting talentrank", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		logger.Fatal("config is required")
	}

	input := strings.TrimSpace(viper.GetString("input"))
	if input == "" {
		input = strings.TrimSpace(config.Input)
	}
	if input == "" {
		logger.Fatal("candidates input file is required",
			zap.String("hint", "set the 'input' key in the configuration file or pass --input"),
		)
	}

	candidates, err := candidate.LoadFile(input)
	if err != nil {
		logger.Fatal("loading candidates", zap.Error(err))
	}

	logger.Info("loading candidates", zap.Int("count", candidates.Len()), zap.String("file", input))

	catalog, err := loadCatalog(config)
	if err != nil {
		logger.Fatal("loading industry catalog", zap.Error(err))
	}

	summarizer, err := prepareSummarizer(ctx, config.AI, logger)
	if err != nil {
		logger.Warn("skipping AI summary enhancement", zap.Error(err))
	}

	ranker := ranking.New(catalog, summarizer, logger)

	ranked, err := ranker.Rank(ctx, candidates, rankingOptions(config))
	if err != nil {
		logger.Fatal("ranking failed", zap.Error(err))
	}

	for {
		action := PromptCandidatesToFile
		if cmd.Flag("auto-approve").Value.String() == "false" {
			var err error
			_, action, err = prompt.Run()
			if err != nil {
				logger.Fatal("exiting", zap.Error(err))
			}
		}

		if err := handleAction(action, logger, ranked); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}

		if cmd.Flag("auto-approve").Value.String() == "true" {
			return
		}
	}
}

func handleAction(action string, logger *zap.Logger, ranked *candidate.RankedList) error {
	switch action {
	case PromptShowTop:
		pretty, _ := json.MarshalIndent(ranked.Top(5), "", "  ")
		fmt.Println(string(pretty))
		return nil
	case PromptReportBySeniority:
		pretty, _ := json.MarshalIndent(ranked.ReportBySeniority(), "", "  ")
		logger.Info(string(pretty), zap.Int("candidates count", ranked.Len()))
		return nil
	case PromptCandidatesToFile:
		filename, err := ranked.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func rankingOptions(config *Config) ranking.Options {
	if config.Ranking == nil {
		return ranking.Options{}
	}

	return ranking.Options{
		JobDescription:     config.Ranking.JobDescription,
		Industry:           config.Ranking.Industry,
		RequiredExperience: config.Ranking.RequiredExperience,
		RequiredSkills:     config.Ranking.RequiredSkills,
	}
}

func loadCatalog(config *Config) (*industry.Catalog, error) {
	if strings.TrimSpace(config.CatalogFile) == "" {
		return industry.Default(), nil
	}
	return industry.LoadFile(config.CatalogFile)
}

// prepareSummarizer builds the optional AI summarizer. A nil summarizer with
// a nil error means enhancement is simply not configured.
func prepareSummarizer(ctx context.Context, config *AIConfig, logger *zap.Logger) (ai.Summarizer, error) {
	if config == nil || !config.Enabled {
		return nil, nil
	}

	provider := strings.TrimSpace(strings.ToLower(config.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", config.Provider)
	}

	if config.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when ai enhancement is enabled")
	}

	keyFile := strings.TrimSpace(config.Gemini.APIKeyFile)
	if keyFile == "" {
		keyFile = strings.TrimSpace(viper.GetString("gemini-api-key-file"))
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: keyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, config.Gemini.Model)
	if err != nil {
		return nil, err
	}

	sumLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", generator.Model()),
	)

	return gemini.NewSummarizer(generator, config.Gemini.MaxLogLength, sumLogger), nil
}
