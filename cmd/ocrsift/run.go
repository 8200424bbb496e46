package main

import (
	"github.com/spf13/cobra"
)

var (
	inputFile  string
	outputFile string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process one FineReader XML file",
	Long: `Process one FineReader XML file.

The body is written to <output>.xml and the extracted lines to
<output>_guard.xml. Without -o the input name is used and the body goes
to <input>_out.xml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return process(cmd.Context(), cfg, newLogger(cfg, cmd), inputFile, outputFile, cmd.OutOrStdout())
	},
}

func init() {
	runCmd.Flags().StringVarP(&inputFile, "input", "i", "", "FineReader XML file to process")
	runCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output base name")
	_ = runCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(runCmd)
}
