package commands

import (
	"fmt"
	"runtime"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/penwyp/go-portfolio-grid/internal/analyzer"
	"github.com/penwyp/go-portfolio-grid/internal/util"
)

var yearsJSON bool

var yearsCmd = &cobra.Command{
	Use:   "years",
	Short: "List the years that have projects",
	Long: `Lists every year that has at least one project, newest first, with the
number of projects in each. Records without a usable year are not counted.`,
	RunE: runYears,
}

func init() {
	rootCmd.AddCommand(yearsCmd)

	yearsCmd.Flags().BoolVar(&yearsJSON, "json", false,
		"Print the year list as JSON")
}

func runYears(cmd *cobra.Command, args []string) error {
	setupLogging()

	paths, err := projectFiles(cmd)
	if err != nil {
		return err
	}

	a := analyzer.New(&analyzer.Config{
		Files:       paths,
		Concurrency: runtime.NumCPU(),
	}, cmd.OutOrStdout())

	view, err := a.Analyze()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if yearsJSON {
		data, err := sonic.ConfigStd.MarshalIndent(view.Tabs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode years: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	if len(view.Tabs) == 0 {
		_, err := fmt.Fprintln(out, "No years found.")
		return err
	}
	for _, tab := range view.Tabs {
		fmt.Fprintf(out, "%s  %s\n",
			util.PadLeft(tab.Year.String(), 8),
			util.Pluralize(tab.Count, "project", "projects"))
	}
	return nil
}
