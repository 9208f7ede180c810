package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gojoint/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gojoint",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gojoint v%s\n", version.Version)
		fmt.Println("Steel Joint Shell Submodel Synthesizer")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit %s built %s\n", version.GitCommit, version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
