package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	tt "github.com/sasstools/slin/internal/types"
	"github.com/sasstools/slin/lint"
)

// fanout command flags
var (
	fanoutThreshold  int
	fanoutJsonOutput bool
	fanoutOutputPath string
)

var fanoutCmd = &cobra.Command{
	Use:   "fanout [paths...]",
	Short: "Run extend fan-out analysis",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, err := lint.New(".", cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize lint engine", zap.Error(err))
		}

		runFanoutAnalysis(ctx, logger, engine, args, fanoutThreshold, fanoutJsonOutput, fanoutOutputPath)
	},
}

func init() {
	fanoutCmd.Flags().IntVar(&fanoutThreshold, "threshold", 3, "Selector group count above which an @extend target is reported")
	fanoutCmd.Flags().BoolVar(&fanoutJsonOutput, "json", false, "Output issues in JSON format")
	fanoutCmd.Flags().StringVarP(&fanoutOutputPath, "output", "o", "", "Output path (when using JSON)")
}

func runFanoutAnalysis(ctx context.Context, logger *zap.Logger, engine lint.LintEngine, paths []string, threshold int, isJson bool, jsonOutput string) {
	issues, err := lint.ProcessFiles(ctx, logger, engine, paths, func(_ lint.LintEngine, path string) ([]tt.Issue, error) {
		return lint.ProcessFanout(path, threshold)
	})
	if err != nil {
		logger.Error("Error processing files for fan-out analysis", zap.Error(err))
		os.Exit(1)
	}

	printIssues(logger, issues, isJson, jsonOutput)

	if len(issues) > 0 {
		os.Exit(1)
	}
}
