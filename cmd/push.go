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
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/valpere/notedoc/internal/gdocs"
	"github.com/valpere/notedoc/internal/parser"
	"github.com/valpere/notedoc/internal/store"
)

var (
	pushInput       string
	pushDocID       string
	pushTitle       string
	pushCredentials string
	pushDBPath      string
	pushNoCache     bool
	pushDryRun      bool
	pushTranslateTo string
	pushEndpoint    string
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Convert a markdown note and upload it to a Google Doc",
	Long: `Convert a markdown note into Docs batchUpdate requests and apply them.

Without --doc-id a new document is created and its id printed; pass the id on
later runs to keep updating the same document. Footer content (everything
after a --- delimiter line) is written into the document footer, which is
created on first use.

A push is recorded in the local history database; when the note has not
changed since its last recorded push the upload is skipped (disable with
--no-cache). --dry-run prints the request JSON instead of calling the API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		credentials := firstNonEmpty(pushCredentials, cfg.Credentials)
		title := firstNonEmpty(pushTitle, cfg.Title)
		dbPath := firstNonEmpty(pushDBPath, cfg.DBPath)

		text, err := readNote(ctx, pushInput, pushTranslateTo, credentials, logger)
		if err != nil {
			return err
		}

		requests, footer, err := parser.New().Parse(strings.NewReader(text))
		if err != nil {
			return fmt.Errorf("failed to parse note: %w", err)
		}
		logger.Debug("parsed note", "file", pushInput, "requests", len(requests), "footer_chars", len(footer))

		if pushDryRun {
			out, err := json.MarshalIndent(requests, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode requests: %w", err)
			}
			fmt.Println(string(out))
			if footer != "" {
				fmt.Fprintf(os.Stderr, "Footer (%d chars):\n%s", len(footer), footer)
			}
			return nil
		}

		// The history database records every real push; --no-cache only
		// disables the unchanged-note short circuit.
		var db *store.Store
		hash := store.ContentHash(text)
		if dbPath != "" {
			db, err = store.New(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()

			if !pushNoCache {
				last, found, lookupErr := db.LastPush(ctx, pushInput)
				if lookupErr == nil && found && last.ContentHash == hash &&
					(pushDocID == "" || pushDocID == last.DocID) {
					fmt.Printf("Note unchanged since last push to document %s, skipping\n", last.DocID)
					return nil
				}
			}
		}

		client, err := gdocs.New(ctx, gdocs.Config{Credentials: credentials, Endpoint: pushEndpoint}, logger)
		if err != nil {
			return err
		}

		docID := pushDocID
		if docID == "" {
			doc, err := client.Create(ctx, title)
			if err != nil {
				return err
			}
			docID = doc.DocumentId
			fmt.Printf("Created document %q\n", title)
			fmt.Printf("Document ID: %s\n", docID)
		}

		if err := client.BatchUpdate(ctx, docID, requests); err != nil {
			return err
		}

		if footer != "" {
			if err := client.UpdateFooter(ctx, docID, footer); err != nil {
				return err
			}
		}

		if db != nil {
			err := db.SavePush(ctx, store.Push{
				ID:           uuid.New().String(),
				InputFile:    pushInput,
				DocID:        docID,
				Title:        title,
				RequestCount: len(requests),
				FooterChars:  len(footer),
				ContentHash:  hash,
			})
			if err != nil {
				logger.Warn("failed to record push", "error", err)
			}
		}

		fmt.Printf("Pushed %d requests to document %s\n", len(requests), docID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pushCmd)

	pushCmd.Flags().StringVarP(&pushInput, "input", "i", "", "Markdown note to push (required)")
	pushCmd.Flags().StringVarP(&pushDocID, "doc-id", "d", "", "Existing document ID (default: create a new document)")
	pushCmd.Flags().StringVarP(&pushTitle, "title", "t", "", "Title for a newly created document")
	pushCmd.Flags().StringVarP(&pushCredentials, "credentials", "c", "", "Path to Google credentials file")
	pushCmd.Flags().StringVar(&pushDBPath, "db", "", "Push history database path")
	pushCmd.Flags().BoolVar(&pushNoCache, "no-cache", false, "Push even when the note is unchanged")
	pushCmd.Flags().BoolVar(&pushDryRun, "dry-run", false, "Print the generated requests instead of calling the API")
	pushCmd.Flags().StringVar(&pushTranslateTo, "translate-to", "", "Translate the note to this language before pushing")
	pushCmd.Flags().StringVar(&pushEndpoint, "endpoint", "", "Override the Docs API endpoint")
	pushCmd.Flags().MarkHidden("endpoint")

	pushCmd.MarkFlagRequired("input")
}
