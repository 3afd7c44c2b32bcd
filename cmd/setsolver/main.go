package main

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func applyLogLevel(s string) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	root := &cobra.Command{
		Use:   "setsolver",
		Short: "setsolver finds every valid Set-game set on a board and a largest disjoint grouping",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			lvl, _ := cmd.Flags().GetString("log-level")
			applyLogLevel(lvl)
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().String("log-level", "info", "debug|info|warn|error")

	root.AddCommand(newSolveCmd(), newServeCmd(), newDealCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
