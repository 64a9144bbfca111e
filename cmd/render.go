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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/valpere/notedoc/internal/ops"
	"github.com/valpere/notedoc/internal/parser"
)

var (
	renderInput  string
	renderOutput string
	renderPretty bool
)

// renderResult is the offline output shape: the request array exactly as it
// would be sent, plus the footer text that would go into the footer segment.
type renderResult struct {
	Requests []ops.Request `json:"requests"`
	Footer   string        `json:"footer,omitempty"`
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Convert a markdown note to Docs requests without uploading",
	Long: `Run the markdown translator and print the resulting batchUpdate
requests as JSON. Useful for inspecting offsets and for feeding the requests
to another consumer.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		requests, footer, err := parser.New().ParseFile(renderInput)
		if err != nil {
			return fmt.Errorf("failed to parse note: %w", err)
		}

		result := renderResult{Requests: requests, Footer: footer}
		if result.Requests == nil {
			result.Requests = []ops.Request{}
		}

		var out []byte
		if renderPretty {
			out, err = json.MarshalIndent(result, "", "  ")
		} else {
			out, err = json.Marshal(result)
		}
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}

		if renderOutput == "" {
			fmt.Println(string(out))
			return nil
		}

		if err := os.MkdirAll(filepath.Dir(renderOutput), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(renderOutput, out, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Printf("Wrote %d requests to %s\n", len(requests), renderOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderInput, "input", "i", "", "Markdown note to convert (required)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file (default: stdout)")
	renderCmd.Flags().BoolVar(&renderPretty, "pretty", false, "Indent the JSON output")

	renderCmd.MarkFlagRequired("input")
}
