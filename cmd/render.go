package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/solidview/internal/progress"
	"github.com/ziadkadry99/solidview/internal/site"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Export the viewer as a static website",
	Long:  `Loads and renders all six documents and writes a self-contained static copy of the viewer. Nothing is written if any document fails.`,
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringP("output", "o", "", "output directory (overrides config)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer logger.Close()

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.Render.OutputDir
	}

	docs, err := loadDocuments(context.Background(), cfg, logger)
	if err != nil {
		return err
	}

	generator := site.NewSiteGenerator(outputDir)
	generator.Style = cfg.Render.HighlightStyle
	generator.Mermaid = cfg.Mermaid
	generator.Reporter = progress.NewReporter(logger.Logger)

	pageCount, err := generator.Generate(docs)
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	logger.Info("static site written", "dir", outputDir, "pages", pageCount)
	fmt.Fprintf(cmd.OutOrStdout(), "Static site generated: %s (%d pages)\n", outputDir, pageCount)
	return nil
}
