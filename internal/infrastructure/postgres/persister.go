package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/cantina-api/internal/application/store"
	"github.com/jhoicas/cantina-api/internal/domain/entity"
)

var _ store.Persister = (*Persister)(nil)

// Persister implementación del puerto de persistencia sobre PostgreSQL.
// Mantiene la semántica replace del contenedor: cada colección se
// sobreescribe COMPLETA (DELETE + INSERT) dentro de una transacción,
// Commit o Rollback; nunca hay patch a nivel de fila visible a medias.
type Persister struct {
	pool *pgxpool.Pool
}

// New construye el adaptador con el pool.
func New(pool *pgxpool.Pool) *Persister {
	return &Persister{pool: pool}
}

// EnsureSchema crea las tablas si no existen. Las colecciones con
// líneas anidadas (recetas, líneas de orden/compra) van como JSONB.
func (p *Persister) EnsureSchema(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, schema)
	if err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS products (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	stock         NUMERIC NOT NULL DEFAULT 0,
	avg_buy_price NUMERIC NOT NULL DEFAULT 0,
	sell_price    NUMERIC NOT NULL DEFAULT 0,
	min_stock     NUMERIC NOT NULL DEFAULT 0,
	image_id      TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS ingredients (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	variant_name  TEXT NOT NULL DEFAULT '',
	unit          TEXT NOT NULL,
	stock         NUMERIC NOT NULL DEFAULT 0,
	avg_buy_price NUMERIC NOT NULL DEFAULT 0,
	min_stock     NUMERIC NOT NULL DEFAULT 0,
	image_id      TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS foods (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	recipe     JSONB NOT NULL DEFAULT '[]',
	sell_price NUMERIC NOT NULL DEFAULT 0,
	image_id   TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS orders (
	id          TEXT PRIMARY KEY,
	lines       JSONB NOT NULL DEFAULT '[]',
	total       NUMERIC NOT NULL DEFAULT 0,
	customer_id TEXT NOT NULL DEFAULT '',
	payment     TEXT NOT NULL,
	status      TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS purchases (
	id             TEXT PRIMARY KEY,
	supplier       TEXT NOT NULL DEFAULT '',
	lines          JSONB NOT NULL DEFAULT '[]',
	transport_cost NUMERIC NOT NULL DEFAULT 0,
	date           TIMESTAMPTZ NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS wastes (
	id        TEXT PRIMARY KEY,
	kind      TEXT NOT NULL,
	item_id   TEXT NOT NULL,
	item_name TEXT NOT NULL DEFAULT '',
	quantity  NUMERIC NOT NULL,
	unit      TEXT NOT NULL DEFAULT '',
	cost      NUMERIC NOT NULL DEFAULT 0,
	reason    TEXT NOT NULL DEFAULT '',
	date      TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS customers (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	phone      TEXT NOT NULL DEFAULT '',
	balance    NUMERIC NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS expenses (
	id          TEXT PRIMARY KEY,
	category    TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	amount      NUMERIC NOT NULL,
	date        TIMESTAMPTZ NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL
);
`

// Load lee el estado completo.
func (p *Persister) Load(ctx context.Context) (*store.State, error) {
	st := store.NewState()

	rows, err := p.pool.Query(ctx, `SELECT id, name, stock, avg_buy_price, sell_price, min_stock, image_id, created_at, updated_at FROM products ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("leer products: %w", err)
	}
	for rows.Next() {
		var e entity.Product
		if err := rows.Scan(&e.ID, &e.Name, &e.Stock, &e.AvgBuyPrice, &e.SellPrice, &e.MinStock, &e.ImageID, &e.CreatedAt, &e.UpdatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan product: %w", err)
		}
		st.Products = append(st.Products, e)
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	rows, err = p.pool.Query(ctx, `SELECT id, name, variant_name, unit, stock, avg_buy_price, min_stock, image_id, created_at, updated_at FROM ingredients ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("leer ingredients: %w", err)
	}
	for rows.Next() {
		var e entity.Ingredient
		if err := rows.Scan(&e.ID, &e.Name, &e.VariantName, &e.Unit, &e.Stock, &e.AvgBuyPrice, &e.MinStock, &e.ImageID, &e.CreatedAt, &e.UpdatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		st.Ingredients = append(st.Ingredients, e)
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	rows, err = p.pool.Query(ctx, `SELECT id, name, recipe, sell_price, image_id, created_at, updated_at FROM foods ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("leer foods: %w", err)
	}
	for rows.Next() {
		var e entity.Food
		var recipe []byte
		if err := rows.Scan(&e.ID, &e.Name, &recipe, &e.SellPrice, &e.ImageID, &e.CreatedAt, &e.UpdatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan food: %w", err)
		}
		if err := json.Unmarshal(recipe, &e.Recipe); err != nil {
			rows.Close()
			return nil, fmt.Errorf("decodificar receta: %w", err)
		}
		st.Foods = append(st.Foods, e)
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	rows, err = p.pool.Query(ctx, `SELECT id, lines, total, customer_id, payment, status, created_at FROM orders ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("leer orders: %w", err)
	}
	for rows.Next() {
		var e entity.Order
		var lines []byte
		if err := rows.Scan(&e.ID, &lines, &e.Total, &e.CustomerID, &e.Payment, &e.Status, &e.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if err := json.Unmarshal(lines, &e.Lines); err != nil {
			rows.Close()
			return nil, fmt.Errorf("decodificar líneas de orden: %w", err)
		}
		st.Orders = append(st.Orders, e)
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	rows, err = p.pool.Query(ctx, `SELECT id, supplier, lines, transport_cost, date, created_at FROM purchases ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("leer purchases: %w", err)
	}
	for rows.Next() {
		var e entity.Purchase
		var lines []byte
		if err := rows.Scan(&e.ID, &e.Supplier, &lines, &e.TransportCost, &e.Date, &e.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		if err := json.Unmarshal(lines, &e.Lines); err != nil {
			rows.Close()
			return nil, fmt.Errorf("decodificar líneas de compra: %w", err)
		}
		st.Purchases = append(st.Purchases, e)
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	rows, err = p.pool.Query(ctx, `SELECT id, kind, item_id, item_name, quantity, unit, cost, reason, date FROM wastes ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("leer wastes: %w", err)
	}
	for rows.Next() {
		var e entity.WasteRecord
		if err := rows.Scan(&e.ID, &e.Kind, &e.ItemID, &e.ItemName, &e.Quantity, &e.Unit, &e.Cost, &e.Reason, &e.Date); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan waste: %w", err)
		}
		st.Wastes = append(st.Wastes, e)
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	rows, err = p.pool.Query(ctx, `SELECT id, name, phone, balance, created_at, updated_at FROM customers ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("leer customers: %w", err)
	}
	for rows.Next() {
		var e entity.Customer
		if err := rows.Scan(&e.ID, &e.Name, &e.Phone, &e.Balance, &e.CreatedAt, &e.UpdatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		st.Customers = append(st.Customers, e)
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	rows, err = p.pool.Query(ctx, `SELECT id, category, description, amount, date, created_at FROM expenses ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("leer expenses: %w", err)
	}
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, &e.Category, &e.Description, &e.Amount, &e.Date, &e.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		st.Expenses = append(st.Expenses, e)
	}
	rows.Close()
	if rows.Err() != nil {
		return nil, rows.Err()
	}

	return st, nil
}

// Replace sobreescribe las colecciones indicadas (todas si cols está
// vacío) dentro de una transacción: Commit si todo ok, Rollback si algo
// falla.
func (p *Persister) Replace(ctx context.Context, st *store.State, cols ...store.Collection) error {
	if len(cols) == 0 {
		cols = store.Collections
	}
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, col := range cols {
		if err := replaceCollection(ctx, tx, st, col); err != nil {
			return err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func replaceCollection(ctx context.Context, tx pgx.Tx, st *store.State, col store.Collection) error {
	if _, err := tx.Exec(ctx, fmt.Sprintf("DELETE FROM %s", col)); err != nil {
		return fmt.Errorf("vaciar %s: %w", col, err)
	}
	switch col {
	case store.ColProducts:
		for _, e := range st.Products {
			if _, err := tx.Exec(ctx,
				`INSERT INTO products (id, name, stock, avg_buy_price, sell_price, min_stock, image_id, created_at, updated_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				e.ID, e.Name, e.Stock, e.AvgBuyPrice, e.SellPrice, e.MinStock, e.ImageID, e.CreatedAt, e.UpdatedAt,
			); err != nil {
				return fmt.Errorf("insert product: %w", err)
			}
		}
	case store.ColIngredients:
		for _, e := range st.Ingredients {
			if _, err := tx.Exec(ctx,
				`INSERT INTO ingredients (id, name, variant_name, unit, stock, avg_buy_price, min_stock, image_id, created_at, updated_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
				e.ID, e.Name, e.VariantName, e.Unit, e.Stock, e.AvgBuyPrice, e.MinStock, e.ImageID, e.CreatedAt, e.UpdatedAt,
			); err != nil {
				return fmt.Errorf("insert ingredient: %w", err)
			}
		}
	case store.ColFoods:
		for _, e := range st.Foods {
			recipe, err := json.Marshal(e.Recipe)
			if err != nil {
				return fmt.Errorf("codificar receta: %w", err)
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO foods (id, name, recipe, sell_price, image_id, created_at, updated_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				e.ID, e.Name, recipe, e.SellPrice, e.ImageID, e.CreatedAt, e.UpdatedAt,
			); err != nil {
				return fmt.Errorf("insert food: %w", err)
			}
		}
	case store.ColOrders:
		for _, e := range st.Orders {
			lines, err := json.Marshal(e.Lines)
			if err != nil {
				return fmt.Errorf("codificar líneas de orden: %w", err)
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO orders (id, lines, total, customer_id, payment, status, created_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				e.ID, lines, e.Total, e.CustomerID, e.Payment, e.Status, e.CreatedAt,
			); err != nil {
				return fmt.Errorf("insert order: %w", err)
			}
		}
	case store.ColPurchases:
		for _, e := range st.Purchases {
			lines, err := json.Marshal(e.Lines)
			if err != nil {
				return fmt.Errorf("codificar líneas de compra: %w", err)
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO purchases (id, supplier, lines, transport_cost, date, created_at)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				e.ID, e.Supplier, lines, e.TransportCost, e.Date, e.CreatedAt,
			); err != nil {
				return fmt.Errorf("insert purchase: %w", err)
			}
		}
	case store.ColWastes:
		for _, e := range st.Wastes {
			if _, err := tx.Exec(ctx,
				`INSERT INTO wastes (id, kind, item_id, item_name, quantity, unit, cost, reason, date)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				e.ID, e.Kind, e.ItemID, e.ItemName, e.Quantity, e.Unit, e.Cost, e.Reason, e.Date,
			); err != nil {
				return fmt.Errorf("insert waste: %w", err)
			}
		}
	case store.ColCustomers:
		for _, e := range st.Customers {
			if _, err := tx.Exec(ctx,
				`INSERT INTO customers (id, name, phone, balance, created_at, updated_at)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				e.ID, e.Name, e.Phone, e.Balance, e.CreatedAt, e.UpdatedAt,
			); err != nil {
				return fmt.Errorf("insert customer: %w", err)
			}
		}
	case store.ColExpenses:
		for _, e := range st.Expenses {
			if _, err := tx.Exec(ctx,
				`INSERT INTO expenses (id, category, description, amount, date, created_at)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				e.ID, e.Category, e.Description, e.Amount, e.Date, e.CreatedAt,
			); err != nil {
				return fmt.Errorf("insert expense: %w", err)
			}
		}
	}
	return nil
}
