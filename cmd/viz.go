package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/chartloom-cli/internal/assistant"
)

var vizDataPath string

var vizCmd = &cobra.Command{
	Use:   "viz <request>",
	Short: "Generate and render a single chart",
	Long: `One-shot mode: loads the dataset given by --data, asks the model for
plotting code for the request, executes it and reports the chart path.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runViz,
}

func init() {
	vizCmd.Flags().StringVarP(&vizDataPath, "data", "d", "", "dataset file to load (required)")
	_ = vizCmd.MarkFlagRequired("data")
	rootCmd.AddCommand(vizCmd)
}

func runViz(cmd *cobra.Command, args []string) error {
	if err := cfg.RequireAPIKey(); err != nil {
		return err
	}
	a := assistant.New(cfg, newAIClient())
	rows, cols, err := a.Load(vizDataPath)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Loaded dataset: %d rows, %d columns\n", rows, cols)

	request := strings.Join(args, " ")
	fmt.Println("Generating visualization code...")
	code, chartPath, err := a.Visualize(cmd.Context(), request)
	if err != nil {
		return err
	}
	if debug {
		fmt.Println("--- generated code ---")
		fmt.Println(code)
		fmt.Println("----------------------")
	}
	fmt.Println("✓ Visualization created successfully!")
	if chartPath != "" {
		fmt.Println("  saved to:", chartPath)
	}
	return nil
}
