package main

import (
	"fmt"

	"github.com/spf13/cobra"

	uuidv4 "github.com/jdziat/uuidv4-go"
)

func featuresCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "features",
		Short: "Show hardware entropy support on this CPU",
		Run: func(cmd *cobra.Command, args []string) {
			hw := uuidv4.DetectHardware()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "RDRAND: %t\n", hw.RDRAND)
			fmt.Fprintf(out, "RDSEED: %t\n", hw.RDSEED)
			fmt.Fprintf(out, "AES-NI: %t\n", hw.AES)
			fmt.Fprintf(out, "Hardware path: %t\n", hw.RDRAND || hw.RDSEED)
		},
	}
}
