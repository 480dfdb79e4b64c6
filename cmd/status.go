package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SyedTasneemKousar/asana/internal/store"
)

var statusFlags struct {
	db dbFlags
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show row counts for every workspace table",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusFlags.db.register(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(&statusFlags.db)
	if err != nil {
		return err
	}
	ctx := context.Background()
	pg, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer pg.Close(ctx)

	fmt.Printf("%-28s %s\n", "TABLE", "ROWS")
	var total int64
	for _, tmpl := range store.CreationOrder(store.Tables()) {
		n, err := pg.CountRows(ctx, tmpl.Name)
		if err != nil {
			return err
		}
		total += n
		fmt.Printf("%-28s %d\n", tmpl.Name, n)
	}
	fmt.Printf("%-28s %d\n", "total", total)
	return nil
}
