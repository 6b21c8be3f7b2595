package main

import (
	"fmt"
	"github.com/jamesungureanu/LifeTune/cmd/cli/sessions"
	"github.com/jamesungureanu/LifeTune/cmd/cli/simulate"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"os"
)

func init() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rootCmd.AddGroup(simulate.Group)
	rootCmd.AddCommand(simulate.Command)
	rootCmd.AddGroup(sessions.Group)
	rootCmd.AddCommand(sessions.Command)
}

var rootCmd = &cobra.Command{
	Use:          "lifetune-cli",
	Long:         `Command line utilities for LIFEtune`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
