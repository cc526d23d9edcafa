package engine

import (
	"fmt"
	"time"

	"github.com/lvnb04/cloudtrack/internal/notify"
	domain "github.com/lvnb04/cloudtrack/pkg/types"
)

// buildAlertMessage composes the notification for a fired alert. When both
// conditions triggered in the same run the item gets one combined message.
func buildAlertMessage(
	item *domain.TrackedItem,
	snap *domain.Snapshot,
	d Decision,
) notify.Message {
	price := snap.Price.StringFixed(2)

	switch {
	case d.StockAlert && d.PriceAlert:
		return notify.Message{
			Subject: fmt.Sprintf("Alert! %s", snap.Name),
			Body: fmt.Sprintf(
				"Price drop! Now ₹%s (target was ₹%s).\nIt's also back in stock!\n\nBuy now: %s",
				price, item.TargetPriceLow.StringFixed(2), item.ID,
			),
		}
	case d.StockAlert:
		return notify.Message{
			Subject: fmt.Sprintf("Back in Stock! %s", snap.Name),
			Body: fmt.Sprintf(
				"%s is back in stock at ₹%s!\n\nBuy now: %s",
				snap.Name, price, item.ID,
			),
		}
	default:
		return notify.Message{
			Subject: fmt.Sprintf("Price Drop Alert! %s", snap.Name),
			Body: fmt.Sprintf(
				"Price drop! %s is now ₹%s!\nYour target was ₹%s.\n\nBuy now: %s",
				snap.Name, price, item.TargetPriceLow.StringFixed(2), item.ID,
			),
		}
	}
}

// buildConfirmationMessage composes the onboarding confirmation. Email gets
// a rich HTML card; the chat channel gets a short Markdown note.
func buildConfirmationMessage(item *domain.TrackedItem, now time.Time) notify.Message {
	if item.Channel == domain.ChannelTelegram {
		return notify.Message{
			Body: fmt.Sprintf(
				"✅ *Tracking Added!*\n\n*%s*\n\n"+
					"We'll notify you here based on your selection (Price, Stock, or Both)."+
					"\n\n[View Product](%s)",
				item.ProductName, item.ID,
			),
		}
	}

	return notify.Message{
		Subject: fmt.Sprintf("Tracking Added: %s", item.ProductName),
		Body: fmt.Sprintf(
			"We've added %s to your tracking list.\nCurrent Price: ₹%s\n\nView product: %s",
			item.ProductName, item.LastKnownPrice.StringFixed(2), item.ID,
		),
		HTML: confirmationHTML(item, now),
	}
}

func confirmationHTML(item *domain.TrackedItem, now time.Time) string {
	return fmt.Sprintf(`<html>
<head></head>
<body style="font-family: Arial, sans-serif; font-size: 16px;">
    <h1>Tracking Confirmation</h1>
    <p>We've successfully added the following product to your tracking list:</p>

    <h2 style="color: #007bff;">%s</h2>

    <div style="display: flex;">
        <img src="%s" alt="Product Image" style="max-width: 200px; margin-right: 20px;">
        <div>
            <p><strong>Current Price:</strong> ₹%s</p>
            <p><strong>Tracking URL:</strong> <a href="%s">View Product</a></p>
            <p>We will notify you at this email address (or via Telegram) if the price drops below your target or if it comes back in stock.</p>
        </div>
    </div>

    <p style="font-size: 12px; color: #888;">Timestamp: %s</p>
</body>
</html>`,
		item.ProductName,
		item.ProductImageURL,
		item.LastKnownPrice.StringFixed(2),
		item.ID,
		now.Format(time.RFC3339),
	)
}
