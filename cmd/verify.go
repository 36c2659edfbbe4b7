package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wkalt/cdrcat/mcap"
	"github.com/wkalt/cdrcat/util"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify [file]",
	Short: "Check that every cdr message in an mcap file round-trips byte-exactly",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			bailf("Usage: cdrcat verify [file]")
		}
		f, err := os.Open(args[0])
		if err != nil {
			bailf("failed to open file: %v", err)
		}
		defer f.Close()
		report, err := mcap.Verify(cmd.Context(), f)
		if err != nil {
			bailf("failed to verify file: %v", err)
		}
		for _, channel := range report.Channels {
			c := getColor(channel.Topic)
			c.Printf("%s (%s): %d messages, %s, %d decoded, %d canonical\n",
				channel.Topic, channel.SchemaName, channel.Messages,
				util.HumanBytes(channel.Bytes), channel.Decoded, channel.Canonical)
			for _, failure := range channel.Failures {
				fmt.Printf("  %s\n", failure)
			}
		}
		if report.Skipped > 0 {
			fmt.Printf("skipped %d non-cdr messages\n", report.Skipped)
		}
		fmt.Printf("verification %s\n", util.When(report.OK(), "passed", "failed"))
		if !report.OK() {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
