package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"askfolio/internal/classify"
	"askfolio/internal/config"
	"askfolio/internal/knowledge"
	"askfolio/internal/perception"
	"askfolio/internal/resolve"
)

var (
	// Global flags
	cfgPath string
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "askfolio",
	Short: "askfolio - portfolio Q&A resolution engine",
	Long: `askfolio answers visitor questions about a portfolio.

Questions are classified against a fixed local knowledge base first; only
unmatched or analytical questions reach the Gemini backend, and every
backend failure degrades to a canonical local answer. Without a
GEMINI_API_KEY the engine runs in local-only mode.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; the environment itself always wins.
		_ = godotenv.Load()

		zapCfg := zap.NewProductionConfig()
		if verbose {
			zapCfg = zap.NewDevelopmentConfig()
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// buildPipeline constructs the shared resolution pipeline both adapters
// (HTTP server, interactive chat) run on.
func buildPipeline(cfg *config.Config) *resolve.Pipeline {
	kb := knowledge.NewBase()
	classifier := classify.New(classify.Config{
		AnalyticalRouting: cfg.AnalyticalRouting(),
	})

	var backend perception.LLMClient
	geminiCfg := perception.DefaultGeminiConfig(cfg.LLM.APIKey)
	geminiCfg.Model = cfg.LLM.Model
	geminiCfg.Timeout = cfg.GetLLMTimeout()

	client, err := perception.NewGeminiClient(context.Background(), geminiCfg)
	if err != nil {
		logger.Warn("generative backend disabled, running local-only", zap.Error(err))
	} else {
		backend = client
		logger.Info("generative backend ready", zap.String("model", client.Model()))
	}

	return resolve.New(kb, classifier, backend, logger)
}

// signalContext returns a context canceled on SIGINT/SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "askfolio.yaml", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(chatCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
