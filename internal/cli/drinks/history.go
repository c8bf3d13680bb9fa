package drinks

import (
	"fmt"

	"github.com/julianstephens/sipwait/internal/cli"
	"github.com/julianstephens/sipwait/internal/constants"
)

type HistoryCmd struct {
	Limit int `help:"Maximum number of drinks to show." default:"20"`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	limit := c.Limit
	if limit <= 0 {
		limit = constants.DefaultHistoryLimit
	}

	events, err := ctx.Store.GetDrinkEvents(limit)
	if err != nil {
		return fmt.Errorf("failed to load drink history: %w", err)
	}
	if len(events) == 0 {
		fmt.Println("No drinks recorded yet.")
		return nil
	}

	fmt.Printf("Last %d drinks:\n", len(events))
	for _, e := range events {
		fmt.Printf("  %s\n", e.At.Local().Format("Mon Jan 2 15:04"))
	}
	return nil
}
