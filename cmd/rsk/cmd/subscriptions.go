package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func subscriptionsCmd() *cobra.Command {
	subsRoot := &cobra.Command{
		Use:     "subscriptions",
		Aliases: []string{"subs"},
		Short:   "Manage restock subscriptions",
	}

	subsRoot.AddCommand(
		subscriptionsAddCmd(),
		subscriptionsRemoveCmd(),
		subscriptionsListCmd(),
	)

	return subsRoot
}

func subscriptionsAddCmd() *cobra.Command {
	var telegramUsername string

	cmd := &cobra.Command{
		Use:   "add <email> <product_id>",
		Short: "Subscribe an email to restock alerts for a product",
		Args:  cobra.ExactArgs(2),
		Example: `  rsk subscriptions add user@example.com 5f3a9b2c1d
  rsk subscriptions add user@example.com 5f3a9b2c1d --telegram chaifan`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			result, err := c.Subscribe(context.Background(), args[0], args[1], telegramUsername)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(result)
			}
			fmt.Printf("%s: %s -> %s\n",
				result.Status,
				result.Subscription.Email,
				result.Subscription.ProductID,
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&telegramUsername, "telegram", "", "Telegram username for chat notifications")
	return cmd
}

func subscriptionsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <email> <product_id>",
		Short:   "Unsubscribe an email from a product",
		Args:    cobra.ExactArgs(2),
		Example: `  rsk subscriptions remove user@example.com 5f3a9b2c1d`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.Unsubscribe(context.Background(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("unsubscribed: %s -> %s\n", args[0], args[1])
			return nil
		},
	}
}

func subscriptionsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list <email>",
		Short:   "List active subscriptions for an email",
		Args:    cobra.ExactArgs(1),
		Example: `  rsk subscriptions list user@example.com`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			subs, err := c.ListSubscriptions(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(subs)
			}
			if len(subs) == 0 {
				fmt.Printf("No active subscriptions for %s.\n", args[0])
				return nil
			}
			return printSubscriptionTable(subs)
		},
	}
}
