package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sasstools/slin/internal"
	tt "github.com/sasstools/slin/internal/types"
	"github.com/sasstools/slin/lint"
)

// initCmd: slin init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new linter configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfigurationFile(cfgFile); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return
		}
		fmt.Printf("Configuration file created/updated: %s\n", cfgFile)
	},
}

func initConfigurationFile(configurationPath string) error {
	if configurationPath == "" {
		configurationPath = ".slin.yaml"
	}

	// Create a yaml file listing every rule at its default severity
	config := lint.Config{
		Name:  "slin",
		Rules: map[string]tt.ConfigRule{},
	}
	for _, name := range internal.RuleNames() {
		config.Rules[name] = tt.ConfigRule{Severity: tt.SeverityWarning}
	}

	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	f, err := os.Create(configurationPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	if err != nil {
		return err
	}

	return nil
}
