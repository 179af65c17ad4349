package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"pytt/colors"
	"pytt/config"
)

var (
	cfgFile   string
	colorMode string
	cfg       *config.Config
	ansi      colors.Codes
)

var rootCmd = &cobra.Command{
	Use:   "pytt",
	Short: "Pyttipanna - small helpers for everyday terminal work",
	Long: `Pytt is a small toolkit for everyday terminal work: an English
title-casing filter, Git repository upkeep across a directory full of
checkouts, and an ANSI color table.

Example usage:
  pytt title "rule the world"   # Title-case text
  pytt repos ~/src              # List Git repositories
  pytt pull ~/src               # Pull every repository`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadDefault()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		mode := colorMode
		if mode == "" {
			mode = cfg.Colors.Mode
		}
		ansi, err = resolveColors(mode)
		if err != nil {
			return err
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/pytt/pytt.yaml)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "", "color output: auto, on or off (default from config)")
}

// resolveColors turns a mode name into an escape table.
func resolveColors(mode string) (colors.Codes, error) {
	switch mode {
	case "", "auto":
		return colors.InitAuto(), nil
	case "on", "always":
		return colors.InitOn(), nil
	case "off", "never":
		return colors.InitOff(), nil
	}
	return colors.Codes{}, fmt.Errorf("invalid color mode: %q", mode)
}

func GetConfig() *config.Config {
	return cfg
}

// Colors returns the escape table resolved for this invocation.
func Colors() colors.Codes {
	return ansi
}
