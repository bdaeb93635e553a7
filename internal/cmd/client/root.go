package client

import (
	"github.com/spf13/cobra"
)

// BaseURLFunc provides the base HTTP API URL (e.g., from env or flag).
type BaseURLFunc func() string

// NewRoot constructs a root Cobra command for the client. It registers the
// order command group. A nil baseURL falls back to KEBAB_HTTP.
func NewRoot(baseURL BaseURLFunc) *cobra.Command {
	if baseURL == nil {
		baseURL = httpAddrFromEnv
	}
	root := &cobra.Command{
		Use:   "client",
		Short: "Client commands",
	}
	root.AddCommand(NewOrderCommand(baseURL))
	return root
}
