package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print lottosync version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("lottosync v1.0.0")
		},
	}
}
