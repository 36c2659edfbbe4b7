package cmd

import (
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wkalt/cdrcat/registry"
)

var colors = []*color.Color{
	color.New(color.FgRed),
	color.New(color.FgBlue),
	color.New(color.FgYellow),
	color.New(color.FgCyan),
	color.New(color.FgGreen),
	color.New(color.FgMagenta),
	color.New(color.FgWhite),
	color.New(color.FgHiRed),
	color.New(color.FgHiBlue),
	color.New(color.FgHiYellow),
	color.New(color.FgHiCyan),
	color.New(color.FgHiGreen),
	color.New(color.FgHiMagenta),
}

func getColor(s string) *color.Color {
	sum := 0
	for _, c := range s {
		sum += int(c)
	}
	return colors[sum%len(colors)]
}

// schemasCmd represents the schemas command
var schemasCmd = &cobra.Command{
	Use:   "schemas",
	Short: "List the built-in schema catalogue, colored by package",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range registry.List() {
			pkg, _, _ := strings.Cut(name, "/")
			c := getColor(pkg)
			c.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(schemasCmd)
}
