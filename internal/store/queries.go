package store

// SQL query constants. All SQL lives here — PostgresStore methods reference
// these constants. Price columns are NUMERIC and cross the wire as text so
// they round-trip through decimal.Decimal without a float conversion.

const (
	queryPutItem = `
		INSERT INTO tracked_items (
			id, target_price_low, last_known_price,
			service_type, notify_on_stock,
			notification_channel, notification_target,
			product_name, product_image_url,
			last_known_stock, date_added
		) VALUES (
			@id, @target_price_low::numeric, @last_known_price::numeric,
			@service_type, @notify_on_stock,
			@notification_channel, @notification_target,
			@product_name, @product_image_url,
			@last_known_stock, now()
		)
		ON CONFLICT (id) DO UPDATE SET
			target_price_low = EXCLUDED.target_price_low,
			last_known_price = EXCLUDED.last_known_price,
			service_type = EXCLUDED.service_type,
			notify_on_stock = EXCLUDED.notify_on_stock,
			notification_channel = EXCLUDED.notification_channel,
			notification_target = EXCLUDED.notification_target,
			product_name = EXCLUDED.product_name,
			product_image_url = EXCLUDED.product_image_url,
			last_known_stock = EXCLUDED.last_known_stock,
			date_added = EXCLUDED.date_added
		RETURNING date_added`

	queryGetItem = `
		SELECT id, target_price_low::text, last_known_price::text,
			service_type, notify_on_stock,
			notification_channel, notification_target,
			product_name, product_image_url,
			last_known_stock, date_added
		FROM tracked_items
		WHERE id = $1`

	queryListItems = `
		SELECT id, target_price_low::text, last_known_price::text,
			service_type, notify_on_stock,
			notification_channel, notification_target,
			product_name, product_image_url,
			last_known_stock, date_added
		FROM tracked_items
		ORDER BY date_added`

	queryUpdateItemState = `
		UPDATE tracked_items
		SET last_known_stock = $2, notify_on_stock = $3
		WHERE id = $1`

	queryCountItems = `SELECT count(*) FROM tracked_items`
)
