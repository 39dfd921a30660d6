package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/sheaf"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of sheaf",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sheaf version %s\n", strings.TrimSpace(sheaf.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
