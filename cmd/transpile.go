package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/goozejs/internal/domain"
	m "gooze.dev/pkg/goozejs/internal/model"
)

var transpileOutDirFlag string

// transpileCmd represents the transpile command.
var transpileCmd = newTranspileCmd()

func newTranspileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transpile [project]",
		Short: "Bundle a project's sources with its webpack-style config",
		Long: `Bundle the sources of a project and write the generated files.

Without --out-dir the files land at the paths the bundler config names.
With --out-dir they are written relative to the project root under that
directory instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var project m.Path
			if len(args) == 1 {
				project = m.Path(args[0])
			}

			return workflow.Transpile(cmd.Context(), domain.TranspileArgs{
				Project:    project,
				OutDir:     m.Path(transpileOutDirFlag),
				SourceDirs: viper.GetStringSlice(transpileDirsConfigKey),
				Bundler:    bundlerOptionsFromConfig(),
			})
		},
	}

	cmd.Flags().StringVar(&transpileOutDirFlag, outDirFlagName, "", "write generated files under this directory")

	return cmd
}

func init() {
	rootCmd.AddCommand(transpileCmd)
}
