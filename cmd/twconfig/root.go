package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "twconfig",
	Short: "Tailwind CSS descriptor toolkit",
	Long: `Inspect, check and convert the Tailwind CSS descriptor of a project.
The descriptor lists content globs, theme extensions and plugins.
It can be read from tailwind.config.js, .yaml or .json, or taken from the built-in default.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	// Default behavior: print the descriptor when no subcommand is given.
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runShow(cmd.OutOrStdout())
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug|info|warn|error")
	rootCmd.PersistentFlags().StringP("config", "c", "tailwind.config.js", "Descriptor file (.js, .yaml or .json)")
	rootCmd.PersistentFlags().Bool("builtin", false, "Use the built-in descriptor instead of a file")
	rootCmd.PersistentFlags().String("settings", defaultSettingsFile, "Settings file path")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
