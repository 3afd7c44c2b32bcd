package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/setgame/internal/config"
	"svw.info/setgame/internal/domain"
	"svw.info/setgame/internal/generator"
	"svw.info/setgame/internal/hint"
	"svw.info/setgame/internal/ports"
	"svw.info/setgame/internal/solver"
	"svw.info/setgame/internal/usecase"
	"svw.info/setgame/internal/validator"
)

// The classic 12-card deal, used when no board is given.
var defaultBoard = [][]string{
	{"3TPS", "2OGD", "2SPD", "2TGS"},
	{"3TRS", "3TGD", "1TRS", "2SRO"},
	{"1OPS", "3TGO", "1ORS", "1SPO"},
}

func newSolveCmd() *cobra.Command {
	var boardFile string
	var grouperKind string
	cmd := &cobra.Command{
		Use:   "solve [card codes...]",
		Short: "Find the largest collection of disjoint sets on a board",
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := resolveBoard(boardFile, args)
			if err != nil {
				return err
			}
			uc := newService(grouperKind)
			sol, st, err := uc.Solve(cmd.Context(), board)
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{
				"cards":  len(board),
				"sets":   len(sol.Sets),
				"inPlay": len(domain.UsedCards(sol.Sets)),
				"group":  sol.Group.Size(),
				"pairs":  st.Pairs,
				"dur":    st.Duration,
			}).Debug("solved")
			printGroup(sol.Group)
			return nil
		},
	}
	cmd.Flags().StringVar(&boardFile, "board", "", "YAML file with a board literal")
	cmd.Flags().StringVar(&grouperKind, "grouper", "frontier", "grouping search: frontier|exhaustive")
	return cmd
}

// resolveBoard picks the board source: a YAML file, card codes on the
// command line, or the built-in deal.
func resolveBoard(path string, codes []string) (domain.Board, error) {
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		b, err := cfg.ParseBoard()
		if err != nil {
			return nil, err
		}
		if len(b) == 0 {
			return nil, errors.Errorf("config %s has no board", path)
		}
		return b, nil
	}
	if len(codes) > 0 {
		return domain.ParseCodes(codes)
	}
	return domain.ParseBoard(defaultBoard)
}

// newService wires providers into the use-case layer.
func newService(grouperKind string) *usecase.Service {
	e := solver.NewPairEnumerator()
	var g ports.Grouper
	switch strings.ToLower(strings.TrimSpace(grouperKind)) {
	case "exhaustive":
		g = solver.NewExhaustiveGrouper()
	default:
		g = solver.NewFrontierGrouper()
	}
	return usecase.NewService(e, g, validator.New(), generator.NewRandomDealer(e), hint.NewFirstSet())
}

// printGroup writes each winning set on its own line, cards tinted by their
// color dimension.
func printGroup(g domain.SetGroup) {
	for _, s := range g.Members {
		parts := make([]string, 0, 3)
		for _, c := range s.Cards {
			parts = append(parts, tint(c).Sprint(c.String()))
		}
		fmt.Println(strings.Join(parts, "  "))
	}
}

func tint(c domain.Card) *color.Color {
	switch c.Color {
	case domain.Red:
		return color.New(color.FgRed)
	case domain.Green:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgMagenta)
	}
}
