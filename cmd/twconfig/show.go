package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/yacobolo/twconfig"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the Tailwind descriptor",
	Long: `Print the descriptor in the requested record form.
Without a descriptor file the built-in default is printed.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runShow(cmd.OutOrStdout())
	},
}

func init() {
	showCmd.Flags().String("format", "js", "Output format: js|yaml|json")
}

func runShow(w io.Writer) error {
	format, err := twconfig.ParseFormat(getStringWithFallback("format", "show.format", string(twconfig.FormatJS)))
	if err != nil {
		return err
	}

	src, err := loadDescriptor()
	if err != nil {
		return err
	}

	data, err := twconfig.Marshal(src.descriptor, format)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", format, err)
	}

	_, err = w.Write(data)
	return err
}
