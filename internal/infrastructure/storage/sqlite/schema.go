package sqlite

// schemaDDL drops and recreates every table. Order matters: children
// before parents on DROP, parents before children on CREATE.
//
// Relational rules:
//   - account -> ledger entries: ON DELETE CASCADE (history is
//     account-scoped, meaningless once the account is gone)
//   - sales/products/phones -> account: ON DELETE SET NULL (sales are an
//     immutable audit trail and survive account deletion)
const schemaDDL = `
DROP TABLE IF EXISTS sale_transactions;
DROP TABLE IF EXISTS customer_ledger_entries;
DROP TABLE IF EXISTS partner_ledger_entries;
DROP TABLE IF EXISTS phones;
DROP TABLE IF EXISTS products;
DROP TABLE IF EXISTS categories;
DROP TABLE IF EXISTS customers;
DROP TABLE IF EXISTS partners;
DROP TABLE IF EXISTS users;
DROP TABLE IF EXISTS settings;

CREATE TABLE customers (
    id         TEXT PRIMARY KEY,
    created_at TIMESTAMP NOT NULL,
    name       TEXT NOT NULL,
    phone      TEXT NOT NULL UNIQUE,
    email      TEXT,
    address    TEXT
);

CREATE TABLE partners (
    id         TEXT PRIMARY KEY,
    created_at TIMESTAMP NOT NULL,
    name       TEXT NOT NULL,
    phone      TEXT NOT NULL UNIQUE,
    company    TEXT,
    address    TEXT
);

CREATE TABLE categories (
    id         TEXT PRIMARY KEY,
    created_at TIMESTAMP NOT NULL,
    name       TEXT NOT NULL UNIQUE
);

CREATE TABLE products (
    id             TEXT PRIMARY KEY,
    created_at     TIMESTAMP NOT NULL,
    name           TEXT NOT NULL,
    category_id    TEXT REFERENCES categories(id) ON DELETE SET NULL,
    supplier_id    TEXT REFERENCES partners(id) ON DELETE SET NULL,
    purchase_price TEXT NOT NULL DEFAULT '0',
    selling_price  TEXT NOT NULL DEFAULT '0',
    stock_quantity INTEGER NOT NULL DEFAULT 0,
    sold_quantity  INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE phones (
    id             TEXT PRIMARY KEY,
    created_at     TIMESTAMP NOT NULL,
    brand          TEXT NOT NULL,
    model          TEXT NOT NULL,
    imei           TEXT NOT NULL UNIQUE,
    supplier_id    TEXT REFERENCES partners(id) ON DELETE SET NULL,
    purchase_price TEXT NOT NULL DEFAULT '0',
    sale_price     TEXT NOT NULL DEFAULT '0',
    status         TEXT NOT NULL DEFAULT 'in stock',
    sold_at        TIMESTAMP
);

CREATE TABLE customer_ledger_entries (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    customer_id TEXT NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
    entry_date  TIMESTAMP NOT NULL,
    description TEXT NOT NULL,
    debit       TEXT NOT NULL DEFAULT '0',
    credit      TEXT NOT NULL DEFAULT '0',
    balance     TEXT NOT NULL
);
CREATE INDEX idx_customer_ledger_account ON customer_ledger_entries(customer_id, id);

CREATE TABLE partner_ledger_entries (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    partner_id  TEXT NOT NULL REFERENCES partners(id) ON DELETE CASCADE,
    entry_date  TIMESTAMP NOT NULL,
    description TEXT NOT NULL,
    debit       TEXT NOT NULL DEFAULT '0',
    credit      TEXT NOT NULL DEFAULT '0',
    balance     TEXT NOT NULL
);
CREATE INDEX idx_partner_ledger_account ON partner_ledger_entries(partner_id, id);

CREATE TABLE sale_transactions (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    item_kind   TEXT NOT NULL,
    product_id  TEXT REFERENCES products(id) ON DELETE SET NULL,
    phone_id    TEXT REFERENCES phones(id) ON DELETE SET NULL,
    item_name   TEXT NOT NULL,
    quantity    INTEGER NOT NULL,
    unit_price  TEXT NOT NULL,
    unit_cost   TEXT NOT NULL DEFAULT '0',
    discount    TEXT NOT NULL DEFAULT '0',
    total       TEXT NOT NULL,
    customer_id TEXT REFERENCES customers(id) ON DELETE SET NULL,
    sale_date   TIMESTAMP NOT NULL,
    notes       TEXT,
    created_at  TIMESTAMP NOT NULL
);
CREATE INDEX idx_sales_date ON sale_transactions(sale_date);
CREATE INDEX idx_sales_customer ON sale_transactions(customer_id);

CREATE TABLE users (
    id            TEXT PRIMARY KEY,
    created_at    TIMESTAMP NOT NULL,
    username      TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    role          TEXT NOT NULL DEFAULT 'staff'
);

CREATE TABLE settings (
    id        INTEGER PRIMARY KEY CHECK (id = 1),
    shop_name TEXT NOT NULL,
    address   TEXT,
    phone     TEXT,
    logo_path TEXT
);
`

// seedSQL inserts the fixed default reference data.
// The default admin user is seeded separately (auth owns password hashing).
const seedSQL = `
INSERT INTO categories (id, created_at, name) VALUES
    ('018f0000-0000-7000-8000-000000000001', CURRENT_TIMESTAMP, 'Phones'),
    ('018f0000-0000-7000-8000-000000000002', CURRENT_TIMESTAMP, 'Accessories'),
    ('018f0000-0000-7000-8000-000000000003', CURRENT_TIMESTAMP, 'General');

INSERT INTO partners (id, created_at, name, phone, company, address) VALUES
    ('018f0000-0000-7000-8000-000000000010', CURRENT_TIMESTAMP, 'Unknown Supplier', '-', NULL, NULL);

INSERT INTO settings (id, shop_name, address, phone, logo_path) VALUES
    (1, 'My Shop', NULL, NULL, NULL);
`
