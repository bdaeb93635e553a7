package client

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
)

// newOrderWatchCommand constructs the `order watch` subcommand. It holds the
// event stream open and prints one JSON line per mutation event until the
// context is cancelled or the limit is reached.
func newOrderWatchCommand(baseURL BaseURLFunc) *cobra.Command {
	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch live order mutation events",
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, baseURL()+"/api/orders/stream", nil)
			if err != nil {
				return err
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return err
			}
			defer func() { _ = resp.Body.Close() }()
			if resp.StatusCode >= 300 {
				return fmt.Errorf("http error: %s", resp.Status)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			scanner := bufio.NewScanner(resp.Body)
			var name, data string
			seen := 0
			for scanner.Scan() {
				line := scanner.Text()
				switch {
				case strings.HasPrefix(line, "event: "):
					name = strings.TrimPrefix(line, "event: ")
				case strings.HasPrefix(line, "data: "):
					data = strings.TrimPrefix(line, "data: ")
				case line == "":
					if name == "" {
						continue
					}
					out := map[string]any{"event": name}
					var payload any
					if json.Unmarshal([]byte(data), &payload) == nil {
						out["data"] = payload
					} else {
						out["data"] = data
					}
					_ = enc.Encode(out)
					name, data = "", ""
					seen++
					if limit > 0 && seen >= limit {
						return nil
					}
				}
			}
			if err := scanner.Err(); err != nil && cmd.Context().Err() == nil {
				return err
			}
			return nil
		},
	}
	watchCmd.Flags().Int("limit", 0, "Stop after N events (0 = infinite)")
	return watchCmd
}
