package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/twconfig"
	"github.com/yacobolo/twconfig/internal/logging"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Rewrite the descriptor in another record form",
	Long: `Convert the descriptor to js, yaml or json.
The target format defaults to the extension of --out.
Without --out the result is printed.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		to, _ := cmd.Flags().GetString("to")
		out, _ := cmd.Flags().GetString("out")
		force, _ := cmd.Flags().GetBool("force")
		return runConvert(cmd.OutOrStdout(), to, out, force)
	},
}

func init() {
	f := convertCmd.Flags()
	f.String("to", "", "Target format: js|yaml|json")
	f.StringP("out", "o", "", "Write to this file instead of stdout")
	f.Bool("force", false, "Overwrite an existing output file")
}

func runConvert(w io.Writer, to, out string, force bool) error {
	format, err := convertTarget(to, out)
	if err != nil {
		return err
	}

	src, err := loadDescriptor()
	if err != nil {
		return err
	}
	if len(src.unknown) > 0 {
		log := logging.WithComponent("convert")
		log.Warn().
			Strs("keys", src.unknown).
			Msg("unknown keys are dropped by the conversion")
	}

	data, err := twconfig.Marshal(src.descriptor, format)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", format, err)
	}

	if out == "" {
		_, err = w.Write(data)
		return err
	}

	if outInfo, err := os.Stat(out); err == nil {
		if isSameFile(outInfo, src) {
			return fmt.Errorf("refusing to overwrite the input file %s", out)
		}
		if !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", out)
		}
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		fmt.Fprintf(w, "Wrote %s (%s)\n", out, format)
	}
	return nil
}

// convertTarget picks the format from --to, falling back to the --out extension.
func convertTarget(to, out string) (twconfig.Format, error) {
	if to != "" {
		return twconfig.ParseFormat(to)
	}
	if out != "" {
		return twconfig.FormatFromPath(out)
	}
	return "", fmt.Errorf("--to is required when --out is not set")
}

// isSameFile reports whether info describes the file the descriptor was read from.
func isSameFile(info os.FileInfo, src loadedDescriptor) bool {
	if src.builtin {
		return false
	}
	inInfo, err := os.Stat(src.filename)
	return err == nil && os.SameFile(info, inInfo)
}
