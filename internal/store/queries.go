package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Product queries.
const (
	queryUpsertProduct = `
		INSERT INTO products (
			product_id, name, alias, brand,
			price, inventory_quantity, was_out_of_stock, image,
			last_checked, created_at, updated_at
		) VALUES (
			@product_id, @name, @alias, @brand,
			@price, @inventory_quantity, @was_out_of_stock, @image,
			@last_checked, now(), now()
		)
		ON CONFLICT (product_id) DO UPDATE SET
			name = EXCLUDED.name,
			alias = EXCLUDED.alias,
			brand = EXCLUDED.brand,
			price = EXCLUDED.price,
			inventory_quantity = EXCLUDED.inventory_quantity,
			was_out_of_stock = EXCLUDED.was_out_of_stock,
			image = EXCLUDED.image,
			last_checked = EXCLUDED.last_checked,
			updated_at = now()
		RETURNING id, created_at, updated_at`

	queryGetProduct = `
		SELECT id, product_id, name, alias, COALESCE(brand, ''),
			price, inventory_quantity, was_out_of_stock, COALESCE(image, ''),
			last_checked, created_at, updated_at
		FROM products
		WHERE product_id = $1`

	queryListProducts = `
		SELECT id, product_id, name, alias, COALESCE(brand, ''),
			price, inventory_quantity, was_out_of_stock, COALESCE(image, ''),
			last_checked, created_at, updated_at
		FROM products
		ORDER BY name`
)

// Subscription queries.
const (
	queryCreateSubscription = `
		INSERT INTO subscriptions (
			email, product_id, telegram_username, is_active,
			subscribed_at, created_at, updated_at
		) VALUES (
			@email, @product_id, @telegram_username, true,
			now(), now(), now()
		)
		RETURNING id, subscribed_at, created_at, updated_at`

	queryGetSubscription = `
		SELECT id, email, product_id, COALESCE(telegram_username, ''),
			COALESCE(telegram_chat_id, 0), is_active,
			subscribed_at, created_at, updated_at
		FROM subscriptions
		WHERE email = $1 AND product_id = $2`

	querySetSubscriptionActive = `
		UPDATE subscriptions SET
			is_active = $3,
			subscribed_at = CASE WHEN $3 THEN now() ELSE subscribed_at END,
			updated_at = now()
		WHERE email = $1 AND product_id = $2`

	queryFindActiveSubscriptions = `
		SELECT id, email, product_id, COALESCE(telegram_username, ''),
			COALESCE(telegram_chat_id, 0), is_active,
			subscribed_at, created_at, updated_at
		FROM subscriptions
		WHERE product_id = $1 AND is_active`

	queryListSubscriptionsByEmail = `
		SELECT id, email, product_id, COALESCE(telegram_username, ''),
			COALESCE(telegram_chat_id, 0), is_active,
			subscribed_at, created_at, updated_at
		FROM subscriptions
		WHERE email = $1 AND is_active
		ORDER BY subscribed_at DESC`

	queryUpdateSubscriptionChat = `
		UPDATE subscriptions SET
			telegram_chat_id = $2,
			updated_at = now()
		WHERE telegram_username = $1`
)

// Scheduler queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name, started_at, status)
		VALUES ($1, now(), 'running')
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at = now(),
			status = $2,
			error_text = $3,
			rows_affected = $4
		WHERE id = $1`

	queryListJobRuns = `
		SELECT id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		WHERE job_name = $1
		ORDER BY started_at DESC
		LIMIT $2`

	queryListLatestJobRuns = `
		SELECT DISTINCT ON (job_name)
			id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		ORDER BY job_name, started_at DESC`
)
