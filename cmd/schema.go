package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SyedTasneemKousar/asana/internal/store"
)

var schemaFlags struct {
	db    dbFlags
	apply bool
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print or apply the workspace schema DDL",
	RunE:  runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaFlags.db.register(schemaCmd)
	schemaCmd.Flags().BoolVar(&schemaFlags.apply, "apply", false, "Apply the DDL to the database instead of printing it")
}

func runSchema(cmd *cobra.Command, args []string) error {
	if !schemaFlags.apply {
		for _, tmpl := range store.CreationOrder(store.Tables()) {
			for _, stmt := range store.GenerateDDL(tmpl) {
				fmt.Printf("%s;\n\n", stmt)
			}
		}
		return nil
	}

	cfg, err := resolveConfig(&schemaFlags.db)
	if err != nil {
		return err
	}
	ctx := context.Background()
	pg, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer pg.Close(ctx)

	if err := pg.EnsureSchema(ctx); err != nil {
		return err
	}
	log.Info("schema applied")
	return nil
}
