package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/lvnb04/cloudtrack/internal/api/client"
)

func trackCmd() *cobra.Command {
	var (
		trackPrice   string
		trackService string
		trackChannel string
		trackTarget  string
	)

	cmd := &cobra.Command{
		Use:   "track <url>",
		Short: "Track a product",
		Long: "Add a product to the tracking catalog. The server fetches the\n" +
			"product's current state, stores it under its canonical URL, and\n" +
			"sends a confirmation on the chosen channel.",
		Example: `  # Track a price drop below 50000
  ctrack track "https://www.amazon.in/dp/B0CHX1W1XY" --price 50000 --target user@example.com

  # Track stock availability via Telegram
  ctrack track "https://www.amazon.in/dp/B0CHX1W1XY" --service STOCK \
    --channel TELEGRAM --target 123456789`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if trackTarget == "" {
				return fmt.Errorf("--target is required")
			}

			c := newClient()
			resp, err := c.TrackProduct(context.Background(), apiclient.TrackRequest{
				URL:                args[0],
				Price:              trackPrice,
				ServiceType:        trackService,
				NotificationType:   trackChannel,
				NotificationTarget: trackTarget,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}
			fmt.Println(resp.Status)
			fmt.Println("Canonical ID:", resp.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&trackPrice, "price", "", "target price (required for PRICE/BOTH)")
	cmd.Flags().StringVar(&trackService, "service", "PRICE", "service type (PRICE, STOCK, BOTH)")
	cmd.Flags().StringVar(&trackChannel, "channel", "EMAIL", "notification channel (EMAIL, TELEGRAM)")
	cmd.Flags().StringVar(&trackTarget, "target", "", "notification target (email address or chat ID)")

	return cmd
}
