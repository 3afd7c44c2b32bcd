package main

import (
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newDealCmd() *cobra.Command {
	var seed int64
	var size int
	cmd := &cobra.Command{
		Use:   "deal",
		Short: "Deal a random board containing at least one valid set",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			uc := newService("")
			b, st, err := uc.Deal(cmd.Context(), seed, size)
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{"seed": seed, "cards": len(b), "dur": st.Duration}).Debug("dealt")
			codes := b.Codes()
			for i := 0; i < len(codes); i += 4 {
				end := i + 4
				if end > len(codes) {
					end = len(codes)
				}
				fmt.Println(strings.Join(codes[i:end], " "))
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "deal seed (0 = time-based)")
	cmd.Flags().IntVar(&size, "size", 12, "number of cards to deal")
	return cmd
}
