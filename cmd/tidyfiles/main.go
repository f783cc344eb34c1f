// tidyfiles organizes and analyzes local folders.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fenilsonani/tidyfiles/internal/analyzer"
	"github.com/fenilsonani/tidyfiles/internal/config"
	"github.com/fenilsonani/tidyfiles/internal/location"
	"github.com/fenilsonani/tidyfiles/internal/organizer"
	"github.com/fenilsonani/tidyfiles/internal/pruner"
	"github.com/fenilsonani/tidyfiles/internal/reporter"
	"github.com/fenilsonani/tidyfiles/internal/scanner"
	"github.com/fenilsonani/tidyfiles/internal/watcher"
	"github.com/fenilsonani/tidyfiles/pkg/utils"
)

var version = "dev"

var (
	configPath   string
	outputFormat string
	dryRun       bool
	destDir      string
	savePath     string
	minSizeFlag  string
	debounceFlag time.Duration
)

var rootCmd = &cobra.Command{
	Use:     "tidyfiles",
	Short:   "Organize and analyze local folders",
	Long:    "tidyfiles sorts files into category or date folders, finds duplicate candidates and large files, and reports folder statistics.\n\nFolders can be given as paths or as the names desktop, downloads, documents, pictures, music and videos.",
	Version: version,
}

var organizeCmd = &cobra.Command{
	Use:   "organize <folder>",
	Short: "Move files into category folders",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		root := app.resolver.Resolve(args[0])
		dest := ""
		if destDir != "" {
			dest = app.resolver.Resolve(destDir)
		}

		plan, err := app.organizer.PlanByType(root, dest)
		if err != nil {
			return err
		}
		return app.emit(app.organizer.Execute(plan, dryRun))
	},
}

var bydateCmd = &cobra.Command{
	Use:   "bydate <folder>",
	Short: "Move files into year/month folders by modification time",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		plan, err := app.organizer.PlanByDate(app.resolver.Resolve(args[0]))
		if err != nil {
			return err
		}
		return app.emit(app.organizer.Execute(plan, dryRun))
	},
}

var duplicatesCmd = &cobra.Command{
	Use:   "duplicates <folder>",
	Short: "Find files with matching sizes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		report, err := app.analyzer.FindDuplicates(app.resolver.Resolve(args[0]))
		if err != nil {
			return err
		}
		return app.emit(report)
	},
}

var largeCmd = &cobra.Command{
	Use:   "large <folder>",
	Short: "Find the biggest files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		minSize, err := app.cfg.MinLargeFileSize()
		if err != nil {
			return err
		}
		if minSizeFlag != "" {
			minSize, err = utils.ParseSize(minSizeFlag)
			if err != nil {
				return err
			}
		}

		report, err := app.analyzer.FindLargeFiles(app.resolver.Resolve(args[0]), minSize)
		if err != nil {
			return err
		}
		return app.emit(report)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats <folder>",
	Short: "Show file counts and sizes by category and extension",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		report, err := app.analyzer.Stats(app.resolver.Resolve(args[0]))
		if err != nil {
			return err
		}
		return app.emit(report)
	},
}

var pruneCmd = &cobra.Command{
	Use:   "prune <folder>",
	Short: "Remove empty folders",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		report, err := pruner.Prune(app.resolver.Resolve(args[0]))
		if err != nil {
			return err
		}
		return app.emit(report)
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch <folder>",
	Short: "Keep a folder organized as files arrive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}

		root := app.resolver.Resolve(args[0])
		dest := ""
		if destDir != "" {
			dest = app.resolver.Resolve(destDir)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Watching %s (Ctrl-C to stop)\n", root)
		w := watcher.New(app.organizer, root, dest, debounceFlag, func(r *organizer.Report) {
			if err := app.emit(r); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
		})
		if err := w.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", path)
		return configShowCmd.RunE(cmd, args)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file if none exists",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.EnsureConfigExists()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

// app bundles the wired components behind each command.
type app struct {
	cfg       *config.Config
	resolver  *location.Resolver
	organizer *organizer.Organizer
	analyzer  *analyzer.Analyzer
	reporter  *reporter.Reporter
}

func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	format, err := reporter.ParseFormat(outputFormat)
	if err != nil {
		return nil, err
	}

	resolver, err := cfg.Resolver()
	if err != nil {
		return nil, err
	}

	sc := scanner.New(cfg.Table())
	return &app{
		cfg:       cfg,
		resolver:  resolver,
		organizer: organizer.New(sc),
		analyzer:  analyzer.New(sc, cfg.Limits()),
		reporter: reporter.New(os.Stdout, format, reporter.Display{
			PreviewPerBucket: cfg.Display.PreviewPerBucket,
			TopCategories:    cfg.Display.TopCategories,
			TopExtensions:    cfg.Display.TopExtensions,
		}),
	}, nil
}

// emit renders the report and optionally saves a machine-readable copy.
func (a *app) emit(report any) error {
	if err := a.reporter.Render(report); err != nil {
		return err
	}
	if savePath != "" {
		return reporter.SaveToFile(savePath, report)
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.GetConfigPath()
		if err != nil {
			return nil, err
		}
	}
	return config.LoadConfig(path)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/tidyfiles/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "summary", "output format: summary, json or yaml")
	rootCmd.PersistentFlags().StringVar(&savePath, "save", "", "also write the report to a .json or .yaml file")

	organizeCmd.Flags().StringVar(&destDir, "dest", "", "destination folder (default: organize in place)")
	organizeCmd.Flags().BoolVar(&dryRun, "dry-run", false, "show the plan without moving anything")

	bydateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "show the plan without moving anything")

	largeCmd.Flags().StringVar(&minSizeFlag, "min-size", "", "minimum size, e.g. 100MB (default from config)")

	watchCmd.Flags().StringVar(&destDir, "dest", "", "destination folder (default: organize in place)")
	watchCmd.Flags().DurationVar(&debounceFlag, "debounce", 2*time.Second, "quiet period before an organize pass")

	configCmd.AddCommand(configInitCmd, configShowCmd)
	rootCmd.AddCommand(organizeCmd, bydateCmd, duplicatesCmd, largeCmd, statsCmd, pruneCmd, watchCmd, configCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
