package cmd

import "github.com/spf13/cobra"

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "solidview",
	Short: "Browse the SOLID principles documentation",
	Long: `solidview loads the SOLID principles Markdown documents from a
directory or a remote base URL, renders them with syntax highlighting and
diagrams, and serves them as a single-page viewer. It can also export a
static copy of the site and expose the documents to AI agents over MCP.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".solidview.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
