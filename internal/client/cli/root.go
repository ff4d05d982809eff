package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/filebox/filebox/internal/buildinfo"
	"github.com/filebox/filebox/internal/client/config"
)

// rootCmd drops straight into the interactive shell. Flag parsing is
// disabled so config.LoadConfig can consume -b/-t/-d the same way on
// every platform; cobra only handles subcommand dispatch.
var rootCmd = &cobra.Command{
	Use:                "filebox",
	Short:              "Interactive client for the Filebox file storage service",
	SilenceUsage:       true,
	SilenceErrors:      true,
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()
		app, err := NewApp(cfg)
		if err != nil {
			return err
		}
		app.Run(context.Background())
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		buildinfo.PrintBuildData(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
