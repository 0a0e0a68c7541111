package db

// SchemaSQL is the complete schema for fresh installs.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All repository
// tests build their in-memory database from GetSchemaSQL(), so a repository
// referencing a column that does not exist here fails immediately with
// "no such column" instead of drifting.
const SchemaSQL = `
-- Menu categories. Items cascade with their category.
CREATE TABLE IF NOT EXISTS categories (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	active INTEGER NOT NULL DEFAULT 1,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

-- Menu items. Sizes is a JSON array of ordered size labels; an empty array
-- means the item has no size variants. Veg is strictly binary: the "Both"
-- creation-time input expands into two rows before it gets here.
CREATE TABLE IF NOT EXISTS items (
	id TEXT PRIMARY KEY,
	category_id TEXT NOT NULL,
	name TEXT NOT NULL,
	sizes TEXT NOT NULL DEFAULT '[]',
	veg TEXT NOT NULL CHECK(veg IN ('Veg', 'NonVeg')),
	active INTEGER NOT NULL DEFAULT 1,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE CASCADE
);

-- Placed orders. Number is the human-facing sequential order number issued
-- by the counters table.
CREATE TABLE IF NOT EXISTS orders (
	id TEXT PRIMARY KEY,
	number INTEGER NOT NULL UNIQUE,
	type TEXT NOT NULL CHECK(type IN ('DineIn', 'Parcel', 'Delivery')),
	chef_note TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL CHECK(status IN ('Created', 'Accepted', 'InKitchen', 'Prepared', 'Delivered', 'Closed', 'Canceled')),
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

-- Order line snapshots. Name and veg are frozen copies of the menu item at
-- add time; position preserves line order within the order.
CREATE TABLE IF NOT EXISTS order_items (
	id TEXT PRIMARY KEY,
	order_id TEXT NOT NULL,
	item_id TEXT NOT NULL,
	name TEXT NOT NULL,
	veg TEXT NOT NULL CHECK(veg IN ('Veg', 'NonVeg')),
	size TEXT NOT NULL DEFAULT '',
	note TEXT NOT NULL DEFAULT '',
	qty INTEGER NOT NULL CHECK(qty >= 1),
	position INTEGER NOT NULL,
	FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE
);

-- Monotonic counters (order numbering).
CREATE TABLE IF NOT EXISTS counters (
	name TEXT PRIMARY KEY,
	value INTEGER NOT NULL
);

-- Opaque keyed records (serialized draft, login session).
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value BLOB NOT NULL
);
`

// GetSchemaSQL returns the authoritative schema SQL.
func GetSchemaSQL() string {
	return SchemaSQL
}
