package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rahulkhanna/dukaan/config"
	"github.com/rahulkhanna/dukaan/database/indexes"
	"github.com/rahulkhanna/dukaan/database/seeders"
	"github.com/rahulkhanna/dukaan/pkg/store"
)

// bootStore loads config and opens the record store.
func bootStore(ctx context.Context) (*store.Mongo, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}
	return store.ConnectMongo(ctx, config.MongoURI(), config.MongoDatabase(), indexes.All())
}

// dukaan db:index — ensure the declared indexes exist.
var dbIndexCmd = &cobra.Command{
	Use:   "db:index",
	Short: "Ensure the record store indexes exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		st, err := bootStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close(context.Background()) //nolint:errcheck

		// ConnectMongo already ensures indexes; run again explicitly so
		// the command reports success even on a pre-existing database.
		if err := st.EnsureIndexes(ctx); err != nil {
			return err
		}
		fmt.Println("Indexes ensured.")
		return nil
	},
}

// dukaan seed — run all registered seeders.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all record store seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()

		st, err := bootStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close(context.Background()) //nolint:errcheck

		fmt.Println("Running seeders…")
		return seeders.RunAll(ctx, st)
	},
}
