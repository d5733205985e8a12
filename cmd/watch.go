package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sasstools/slin/formatter"
	"github.com/sasstools/slin/internal"
	tt "github.com/sasstools/slin/internal/types"
	"github.com/sasstools/slin/lint"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dirs...]",
	Short: "Watch directories and re-lint stylesheets on change",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide directory paths to watch")
			os.Exit(1)
		}

		engine, err := lint.New(".", cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize lint engine", zap.Error(err))
		}

		if err := engine.Watch(args, printWatchedIssues); err != nil {
			logger.Fatal("Failed to configure watcher", zap.Error(err))
		}
		if err := engine.StartWatching(); err != nil {
			logger.Fatal("Failed to start watching", zap.Error(err))
		}
		defer engine.StopWatching()

		fmt.Printf("watching %v for changes, press Ctrl+C to stop\n", args)

		// block until interrupted
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
	},
}

func printWatchedIssues(filename string, issues []tt.Issue) {
	if len(issues) == 0 {
		fmt.Printf("%s: no issues\n", filename)
		return
	}

	sourceCode, err := internal.ReadSourceCode(filename)
	if err != nil {
		logger.Error("Error reading source file", zap.String("file", filename), zap.Error(err))
		return
	}
	fmt.Println(formatter.GenerateFormattedIssue(issues, sourceCode))
}
