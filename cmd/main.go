package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ngld/shader-tools/pkg/shaders/cmd"
)

var rootCmd = &cobra.Command{
	Use:   "shader-tool",
	Short: "Shader build tools",
	Long: `This command bundles the tools used to build the simulation's shaders.
Run "shader-tool build" inside the shader directory to recompile outdated shaders.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(cmd.RootCmd)
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil && cmd.IsReported(err) {
		// already printed (compiler output or a logged error)
		os.Exit(1)
	}

	cobra.CheckErr(err)
}
