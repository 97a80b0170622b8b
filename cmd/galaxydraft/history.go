package main

import (
	"fmt"
	"time"

	"github.com/lox/galaxydraft/internal/config"
	"github.com/lox/galaxydraft/internal/history"
)

// HistoryCmd shows recent generated drafts
type HistoryCmd struct {
	Limit  int    `kong:"default='10',help='Maximum records to show (0 for all)'"`
	Config string `kong:"default='galaxydraft.hcl',help='Config file path'"`
}

func (c *HistoryCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.Recent(c.Limit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println(dimStyle.Render("no drafts recorded yet"))
		return nil
	}

	fmt.Println(titleStyle.Render("Recent drafts"))
	for _, rec := range records {
		fmt.Printf("%s  %s  seed=%d players=%d\n",
			headerStyle.Render(rec.ID),
			rec.CreatedAt.Format(time.DateTime),
			rec.Seed, rec.Players)
		fmt.Printf("  values=%v\n", rec.SliceValues)
		fmt.Printf("  %s\n", dimStyle.Render(rec.MapString))
	}
	return nil
}
