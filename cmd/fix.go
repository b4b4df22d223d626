package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/elmlint/elin/internal"
	"github.com/elmlint/elin/internal/fixer"
	tt "github.com/elmlint/elin/internal/types"
	"github.com/elmlint/elin/lint"
)

var dryRun bool

var fixCmd = &cobra.Command{
	Use:   "fix [paths...]",
	Short: "Automatically fix issues",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		// initialize the lint engine
		engine, err := lint.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize lint engine", zap.Error(err))
		}

		runAutoFix(logger, engine, args, dryRun)
	},
}

func init() {
	fixCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Run in dry-run mode (show fixes without applying them)")
}

func runAutoFix(logger *zap.Logger, engine *internal.Engine, paths []string, dryRun bool) {
	fix := fixer.New(dryRun)

	for _, path := range paths {
		files, err := collectElmFiles(path)
		if err != nil {
			logger.Error("error collecting files", zap.String("path", path), zap.Error(err))
			continue
		}
		for _, file := range files {
			relint := func(src string) ([]tt.Issue, error) {
				return engine.RunSource(file, src)
			}
			if err := fix.Fix(file, relint); err != nil {
				logger.Error("error fixing issues", zap.String("file", file), zap.Error(err))
			}
		}
	}
}

func collectElmFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		if strings.HasSuffix(path, ".elm") {
			return []string{path}, nil
		}
		return nil, nil
	}

	var files []string
	err = filepath.Walk(path, func(p string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !fi.IsDir() && strings.HasSuffix(p, ".elm") {
			files = append(files, p)
		}
		return nil
	})
	return files, err
}
