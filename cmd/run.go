package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/goozejs/internal/domain"
	m "gooze.dev/pkg/goozejs/internal/model"
)

var runParallelFlag int
var runTimeoutFlag string
var runTranspileFlag bool
var runJestConfigFlag string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [projects...]",
		Short: "Run Jest suites in sandboxed project copies",
		Long:  runLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Run(cmd.Context(), domain.RunArgs{
				Projects: parsePaths(args),
				Reports:  m.Path(viper.GetString(outputFlagName)),
				Parallel: viper.GetInt(runParallelConfigKey),
				Options: domain.RunOptions{
					JestConfigFile: viper.GetString(jestConfigFileKey),
					Timeout:        viper.GetDuration(runTimeoutConfigKey),
					Transpile:      viper.GetBool(runTranspileConfigKey),
					SourceDirs:     viper.GetStringSlice(transpileDirsConfigKey),
					Bundler:        bundlerOptionsFromConfig(),
				},
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of projects tested concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.Flags().StringVar(&runTimeoutFlag, runTimeoutFlagName, viper.GetString(runTimeoutConfigKey), "timeout for a single Jest invocation (e.g. 90s, 5m)")
	bindFlagToConfig(cmd.Flags().Lookup(runTimeoutFlagName), runTimeoutConfigKey)

	cmd.Flags().BoolVar(&runTranspileFlag, runTranspileFlagName, viper.GetBool(runTranspileConfigKey), "bundle the sources into the sandbox before testing")
	bindFlagToConfig(cmd.Flags().Lookup(runTranspileFlagName), runTranspileConfigKey)

	cmd.Flags().StringVar(&runJestConfigFlag, jestConfigFlagName, viper.GetString(jestConfigFileKey), "Jest config file (json or yaml), relative to the project root")
	bindFlagToConfig(cmd.Flags().Lookup(jestConfigFlagName), jestConfigFileKey)
}
