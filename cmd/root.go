// Package cmd provides the root command and CLI setup for goozejs.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"gooze.dev/pkg/goozejs/internal/adapter"
	"gooze.dev/pkg/goozejs/internal/controller"
	"gooze.dev/pkg/goozejs/internal/domain"
	m "gooze.dev/pkg/goozejs/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var jestConfigLoader adapter.JestConfigLoader
var orchestrator domain.Orchestrator
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// verboseFlag lowers the log level to debug.
var verboseFlag bool

// Bundler flags are shared by run --transpile and transpile.
var (
	webpackConfigFlag  string
	webpackContextFlag string
	sourceMapsFlag     bool
	sourceDirsFlag     []string
)

func init() {
	configureRootFlags(rootCmd)

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
	}

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	jestConfigLoader = adapter.NewLocalJestConfigLoader()
	orchestrator = domain.NewOrchestrator(fsAdapter, jestConfigLoader, newJestRunner, newWebpackTranspiler)
	workflow = domain.NewWorkflow(
		fsAdapter,
		reportStore,
		ui,
		orchestrator,
		openHistoryStore,
		newWebpackTranspiler,
	)
}

const projectsHelp = `A project is any path inside a directory tree containing a package.json;
the nearest package.json marks the project root. Without arguments the
current directory is used.`

const rootLongDescription = `goozejs runs Jest test suites inside disposable sandbox copies of
JavaScript projects, optionally bundling the sources first with a
webpack-style configuration.

` + projectsHelp

const runLongDescription = `Run the Jest suites of the given projects (default: current directory),
each in its own sandbox.

` + projectsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "goozejs",
		Short:        "Sandboxed Jest runner and webpack-style bundler",
		Long:         rootLongDescription,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd builds a standalone root command with its persistent flags.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&reportsOutputDirFlag, outputFlagName, "o", viper.GetString(outputFlagName), "output directory for run reports")
	bindFlagToConfig(flags.Lookup(outputFlagName), outputFlagName)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.StringVar(&webpackConfigFlag, webpackConfigFlagName, viper.GetString(webpackConfigFileKey), "webpack-style bundler config file (json, yaml or toml)")
	bindFlagToConfig(flags.Lookup(webpackConfigFlagName), webpackConfigFileKey)

	flags.StringVar(&webpackContextFlag, webpackContextFlagName, viper.GetString(webpackContextKey), "bundler context directory for zero-config bundling")
	bindFlagToConfig(flags.Lookup(webpackContextFlagName), webpackContextKey)

	flags.BoolVar(&sourceMapsFlag, webpackSourceMapFlagName, viper.GetBool(webpackSourceMapsKey), "emit source maps for bundled files")
	bindFlagToConfig(flags.Lookup(webpackSourceMapFlagName), webpackSourceMapsKey)

	flags.StringSliceVar(&sourceDirsFlag, sourceDirsFlagName, viper.GetStringSlice(transpileDirsConfigKey), "project directories read as bundler input")
	bindFlagToConfig(flags.Lookup(sourceDirsFlagName), transpileDirsConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func bundlerOptionsFromConfig() m.BundlerOptions {
	return m.BundlerOptions{
		ConfigFile:        viper.GetString(webpackConfigFileKey),
		Context:           viper.GetString(webpackContextKey),
		Silent:            viper.GetBool(webpackSilentKey),
		ProduceSourceMaps: viper.GetBool(webpackSourceMapsKey),
	}
}

func newJestRunner(projectRoot m.Path, timeout time.Duration) (adapter.TestRunnerAdapter, error) {
	loader := adapter.NewLocalModuleLoader(string(projectRoot), timeout)

	runner, err := adapter.NewJestTestAdapter(loader.Require, slog.Default())
	if err != nil {
		return nil, err
	}

	return runner, nil
}

func newWebpackTranspiler(options m.BundlerOptions) adapter.Transpiler {
	logger := slog.Default()

	return adapter.NewWebpackTranspiler(options, adapter.NewLocalConfigLoader(), adapter.NewEsbuildBundler(logger), logger)
}

func openHistoryStore() (adapter.HistoryStore, error) {
	return adapter.OpenHistoryStore(viper.GetString(historyDBConfigKey))
}
