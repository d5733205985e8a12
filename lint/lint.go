package lint

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sasstools/slin/internal"
	"github.com/sasstools/slin/internal/lints"
	"github.com/sasstools/slin/internal/sass"
	tt "github.com/sasstools/slin/internal/types"
	"github.com/sasstools/slin/scanner"
)

const maxShowRecentFiles = 25

// LintEngine is the interface the processing helpers need from an engine.
type LintEngine interface {
	Run(filePath string) ([]tt.Issue, error)
	RunSource(source []byte) ([]tt.Issue, error)
	IgnoreRule(rule string)
	IgnorePath(path string)
	ShouldIgnorePath(path string) bool
}

// New creates a lint engine configured from the given configuration file.
// An empty configurationPath yields the default rule set.
func New(rootDir string, configurationPath string) (*internal.Engine, error) {
	var rules map[string]tt.ConfigRule
	if configurationPath != "" {
		config, err := parseConfigurationFile(configurationPath)
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		rules = config.Rules
	}

	return internal.NewEngine(rootDir, rules)
}

func ProcessSources(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	sources [][]byte,
	processor func(LintEngine, []byte) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	var allIssues []tt.Issue
	for i, source := range sources {
		issues, err := processor(engine, source)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing source", zap.Int("source", i), zap.Error(err))
			}
			return nil, err
		}
		allIssues = append(allIssues, issues...)
	}

	return allIssues, nil
}

func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	paths []string,
	processor func(LintEngine, string) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	var allIssues []tt.Issue
	for _, path := range paths {
		issues, err := ProcessPath(ctx, logger, engine, path, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		allIssues = append(allIssues, issues...)
	}

	return allIssues, nil
}

func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	path string,
	processor func(LintEngine, string) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	var issues []tt.Issue
	if info.IsDir() {
		found, err := scanner.New(path).Scan()
		if err != nil {
			return nil, fmt.Errorf("error scanning %s: %w", path, err)
		}
		var files []string
		for _, f := range found {
			if !engine.ShouldIgnorePath(f.Path) {
				files = append(files, f.Path)
			}
		}

		// mutex for recent files
		var recentFilesMutex sync.Mutex
		recentFiles := make([]string, maxShowRecentFiles)

		// make space for recent files
		for i := 0; i < maxShowRecentFiles+1; i++ {
			fmt.Println()
		}
		fmt.Printf("\033[%dA", maxShowRecentFiles+1)

		// one result per file, carrying either issues or the error
		type fileResult struct {
			issues []tt.Issue
			err    error
		}
		resultChan := make(chan fileResult, len(files))

		// limit the number of workers
		maxWorkers := runtime.NumCPU()
		sem := make(chan struct{}, maxWorkers)

		bar := progressbar.NewOptions(len(files),
			progressbar.OptionSetDescription(path),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))

		// update recent files
		updateRecentFiles := func(filename string) {
			recentFilesMutex.Lock()
			defer recentFilesMutex.Unlock()

			// update the list
			for j := maxShowRecentFiles - 1; j > 0; j-- {
				recentFiles[j] = recentFiles[j-1]
			}
			recentFiles[0] = filename

			// move the cursor up
			fmt.Printf("\033[%dA", maxShowRecentFiles)

			// print the list
			for j := range recentFiles {
				if recentFiles[j] != "" {
					// \033[2k: clear the line
					// \r: move the cursor to the beginning of the line
					fmt.Printf("\033[2K\r%s\n", recentFiles[j])
				} else {
					fmt.Printf("\033[2K\r\n")
				}
			}
		}

		// for each file, run a goroutine
		for _, filePath := range files {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
				sem <- struct{}{}
				go func(fp string) {
					defer func() { <-sem }()

					// show the start of file processing
					updateRecentFiles(filepath.Base(fp))

					fileIssues, err := processor(engine, fp)
					if err != nil && logger != nil {
						logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
					}
					resultChan <- fileResult{issues: fileIssues, err: err}
					bar.Add(1)
				}(filePath)
			}
		}

		// collect all results; files that failed are skipped,
		// the rest keep their findings
		for range files {
			result := <-resultChan
			if result.err != nil {
				continue
			}
			issues = append(issues, result.issues...)
		}

		fmt.Println()
		return issues, nil
	} else if hasDesiredExtension(path) {
		fileIssues, err := processor(engine, path)
		if err != nil {
			return nil, err
		}
		issues = append(issues, fileIssues...)
	}

	return issues, nil
}

// ProcessFanout runs only the fan-out analysis with an explicit threshold.
func ProcessFanout(path string, threshold int) ([]tt.Issue, error) {
	file, err := sass.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return lints.DetectExtendHighFanout(path, file, threshold, tt.SeverityWarning)
}

func ProcessFile(engine LintEngine, filePath string) ([]tt.Issue, error) {
	return engine.Run(filePath)
}

func ProcessSource(engine LintEngine, source []byte) ([]tt.Issue, error) {
	return engine.RunSource(source)
}

var desiredExtensions = map[string]bool{
	".scss": true,
	".css":  true,
}

func hasDesiredExtension(path string) bool {
	return desiredExtensions[filepath.Ext(path)]
}

// Config represents the overall configuration with a name and a slice of rules.
type Config struct {
	Name  string                   `yaml:"name"`
	Rules map[string]tt.ConfigRule `yaml:"rules"`
}

func parseConfigurationFile(configurationPath string) (Config, error) {
	var config Config

	// Read the configuration file
	f, err := os.Open(configurationPath)
	if err != nil {
		return config, err
	}
	defer f.Close()

	// Parse the configuration file
	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
