package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sandevgo/elex/internal/config"
	"github.com/sandevgo/elex/internal/core"
	"github.com/sandevgo/elex/internal/service/ui"
	"github.com/sandevgo/elex/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug        bool
	dataFile     string
	formatJSON   bool
	testResults  bool
	nationalOnly bool
	raceIDs      []string
)

var rootCmd = &cobra.Command{
	Use:   core.ElexName,
	Short: "AP election results on the command line",
	Long:  `elex loads election results from the AP elections API or a saved data file and prints them as CSV or JSON.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the elex version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), core.ElexVersion)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data-file", "", "read results from a saved JSON file instead of the API")
	rootCmd.PersistentFlags().BoolVar(&formatJSON, "format-json", false, "print JSON instead of CSV")
	rootCmd.PersistentFlags().BoolVarP(&testResults, "test", "t", false, "request test results")
	rootCmd.PersistentFlags().BoolVar(&nationalOnly, "national-only", false, "only races AP tabulates nationally")
	rootCmd.PersistentFlags().StringSliceVar(&raceIDs, "raceids", nil, "comma separated race IDs to include")

	rootCmd.AddCommand(versionCmd)
}

func setupLogger(ctx context.Context) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, isDebug)
}

func CustomizeHelp(rootCmd *cobra.Command) {
	cobra.AddTemplateFunc("StyleTitle", func(s string) string { return ui.TitleStyle.Render(s) })
	cobra.AddTemplateFunc("StyleUsage", func(s string) string { return ui.UsageStyle.Render(s) })
	cobra.AddTemplateFunc("StyleFlag", func(s string) string { return ui.FlagStyle.Render(s) })
	cobra.AddTemplateFunc("StyleDesc", func(s string) string { return ui.DescStyle.Render(s) })

	template := `
{{StyleTitle "USAGE"}}
  {{StyleUsage .UseLine}}
{{if gt (len .Commands) 0}}{{StyleTitle "AVAILABLE COMMANDS"}}
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding}} {{StyleDesc .Short}}{{end}}
{{end}}{{end}}
{{if .HasAvailableLocalFlags}}{{StyleTitle "FLAGS"}}
{{StyleFlag (.LocalFlags.FlagUsages | trimTrailingWhitespaces)}}
{{end}}{{if .HasAvailableInheritedFlags}}{{StyleTitle "GLOBAL FLAGS"}}
{{StyleFlag (.InheritedFlags.FlagUsages | trimTrailingWhitespaces)}}
{{end}}
`
	rootCmd.SetHelpTemplate(template)
}
