package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/chartloom-cli/internal/dataset"
	"github.com/KaramelBytes/chartloom-cli/internal/profile"
	"github.com/KaramelBytes/chartloom-cli/internal/utils"
)

var profileCmd = &cobra.Command{
	Use:   "profile <dataset>",
	Short: "Profile a dataset and print its summary",
	Long: `Loads a dataset and prints the same profiled summary the assistant
sends to the model. Does not require an API key.`,
	Args: cobra.ExactArgs(1),
	RunE: runProfile,
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	ds, err := dataset.LoadFile(args[0])
	if err != nil {
		return err
	}
	text, err := profile.Render(profile.Build(ds))
	if err != nil {
		return err
	}
	fmt.Println(text)
	if debug {
		fmt.Printf("(~%d tokens)\n", utils.CountTokens(text))
	}
	return nil
}
