package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func refreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Trigger an inventory refresh now",
		Long: "Fetches the storefront snapshot immediately instead of waiting for the\n" +
			"next scheduled pass, and reports what changed.",
		Example: `  rsk refresh
  rsk refresh --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			result, err := c.TriggerRefresh(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(result)
			}

			fmt.Printf("updated %d, added %d, restocked %d\n",
				result.Updated, result.Added, len(result.Restocked))
			if len(result.Restocked) > 0 {
				fmt.Println("back in stock: " + strings.Join(result.RestockedIDs(), ", "))
			}
			return nil
		},
	}
}
