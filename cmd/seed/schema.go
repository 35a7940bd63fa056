package main

// schemaStatements creates every table the API reads and writes. Statements
// are idempotent so the seed can run against an existing database.
var schemaStatements = []string{
	`create table if not exists users (
		id bigserial primary key,
		name text not null default '',
		email text not null unique,
		password_hash text not null,
		created_at timestamptz not null default now()
	)`,
	`create table if not exists gifts (
		id bigserial primary key,
		name text not null,
		description text not null default '',
		price_cents bigint not null,
		image text not null default '',
		stock integer not null default 0,
		created_at timestamptz not null default now(),
		updated_at timestamptz not null default now()
	)`,
	`create table if not exists orders (
		id bigserial primary key,
		gift_id bigint not null references gifts (id),
		customer_name text not null,
		customer_email text not null default '',
		status text not null default 'pending',
		payment_ref text,
		created_at timestamptz not null default now(),
		updated_at timestamptz not null default now()
	)`,
	`create table if not exists sales (
		id bigserial primary key,
		gift_id bigint not null references gifts (id),
		customer_name text not null default '',
		customer_email text not null default '',
		amount_cents bigint not null,
		payment_method text not null default '',
		payment_ref text not null default '',
		status text not null default 'paid',
		notes text not null default '',
		created_at timestamptz not null default now(),
		updated_at timestamptz not null default now()
	)`,
	`create table if not exists rsvps (
		id bigserial primary key,
		name text not null,
		companions integer not null default 0,
		email text not null default '',
		phone text not null default '',
		message text not null default '',
		confirmed boolean not null default true,
		country text not null default '',
		created_at timestamptz not null default now()
	)`,
	`create table if not exists album_photos (
		id bigserial primary key,
		gallery text not null,
		image text not null,
		title text not null default '',
		sort_order integer not null default 0,
		active boolean not null default true,
		created_at timestamptz not null default now()
	)`,
	`create table if not exists story_events (
		id bigserial primary key,
		event_date text not null default '',
		title text not null,
		body text not null default '',
		image text not null default '',
		sort_order integer not null default 0,
		created_at timestamptz not null default now()
	)`,
	`create table if not exists contents (
		id bigserial primary key,
		section text not null unique,
		body text not null default '',
		created_at timestamptz not null default now(),
		updated_at timestamptz not null default now()
	)`,
	`create table if not exists background_images (
		id bigserial primary key,
		image text not null,
		title text not null default '',
		sort_order integer not null default 0,
		active boolean not null default true,
		created_at timestamptz not null default now()
	)`,
	`create table if not exists site_config (
		id bigserial primary key,
		site_title text not null default '',
		wedding_date text not null default '',
		pix_key text not null default '',
		pix_description text not null default '',
		pix_qrcode_image text not null default '',
		mp_public_key text not null default '',
		mp_access_token text not null default '',
		mp_webhook_secret text not null default '',
		mp_notification_url text not null default '',
		created_at timestamptz not null default now(),
		updated_at timestamptz not null default now()
	)`,
	`create index if not exists idx_orders_gift on orders (gift_id)`,
	`create index if not exists idx_album_gallery on album_photos (gallery, sort_order)`,
	`create index if not exists idx_sales_created on sales (created_at desc)`,
}
