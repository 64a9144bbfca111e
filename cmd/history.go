/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/valpere/notedoc/internal/store"
)

var historyDBPath string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the push history",
	Long:  `List, inspect, and clear the SQLite push history.`,
}

func openHistoryStore() (*store.Store, error) {
	cfg, _, err := loadConfig()
	if err != nil {
		return nil, err
	}
	db, err := store.New(firstNonEmpty(historyDBPath, cfg.DBPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded pushes",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openHistoryStore()
		if err != nil {
			return err
		}
		defer db.Close()

		pushes, err := db.ListPushes(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list pushes: %w", err)
		}

		if len(pushes) == 0 {
			fmt.Println("No pushes recorded.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "WHEN\tFILE\tDOCUMENT\tTITLE\tREQUESTS\tFOOTER")
		for _, p := range pushes {
			title := p.Title
			if len(title) > 30 {
				title = title[:27] + "..."
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n",
				p.CreatedAt.Format("2006-01-02 15:04"),
				p.InputFile, p.DocID, title, p.RequestCount, p.FooterChars)
		}
		return w.Flush()
	},
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show push history statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openHistoryStore()
		if err != nil {
			return err
		}
		defer db.Close()

		stats, err := db.GetStats(context.Background())
		if err != nil {
			return fmt.Errorf("failed to get stats: %w", err)
		}

		fmt.Printf("Total pushes:    %d\n", stats.TotalPushes)
		fmt.Printf("Distinct files:  %d\n", stats.DistinctFiles)
		fmt.Printf("Distinct docs:   %d\n", stats.DistinctDocs)
		fmt.Printf("Total requests:  %d\n", stats.TotalRequests)
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all entries from the push history",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openHistoryStore()
		if err != nil {
			return err
		}
		defer db.Close()

		n, err := db.Clear(context.Background())
		if err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		fmt.Printf("Cleared %d entries from push history.\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.PersistentFlags().StringVar(&historyDBPath, "db", "", "Push history database path")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyStatsCmd)
	historyCmd.AddCommand(historyClearCmd)
}
