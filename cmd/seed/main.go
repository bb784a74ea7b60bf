// seed puebla el almacén con un catálogo de demostración: productos de
// reventa, ingredientes, platos con receta, un cliente de crédito y una
// compra inicial que deja stock y costos promedio realistas.
//
// Uso: go run ./cmd/seed
// Respeta STORE_DRIVER / STORE_DATA_DIR igual que el servidor.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cantina-api/internal/application/dto"
	"github.com/jhoicas/cantina-api/internal/application/store"
	"github.com/jhoicas/cantina-api/internal/application/usecase"
	"github.com/jhoicas/cantina-api/internal/infrastructure/jsonfile"
	"github.com/jhoicas/cantina-api/internal/infrastructure/postgres"
	"github.com/jhoicas/cantina-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración", err)
	}

	ctx := context.Background()

	var persister store.Persister
	switch cfg.Store.Driver {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			fail("conexión a PostgreSQL", err)
		}
		defer pool.Close()
		pg := postgres.New(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			fail("crear esquema", err)
		}
		persister = pg
	default:
		jf, err := jsonfile.New(cfg.Store.DataDir)
		if err != nil {
			fail("abrir directorio de datos", err)
		}
		persister = jf
	}

	st := store.New(persister)
	if err := st.Load(ctx); err != nil {
		fail("cargar estado", err)
	}
	if snap := st.GetSnapshot(); len(snap.Products) > 0 || len(snap.Ingredients) > 0 {
		fmt.Println("el almacén ya tiene datos, no se siembra nada")
		return
	}

	productUC := usecase.NewProductUseCase(st)
	ingredientUC := usecase.NewIngredientUseCase(st)
	foodUC := usecase.NewFoodUseCase(st)
	customerUC := usecase.NewCustomerUseCase(st)
	purchaseUC := usecase.NewPurchaseUseCase(st)

	// Productos de reventa
	products := []dto.CreateProductRequest{
		{Name: "Gatorade 500ml", SellPrice: dec(6000), MinStock: dec(6)},
		{Name: "Barra de proteína", SellPrice: dec(8000), MinStock: dec(10)},
		{Name: "Agua 600ml", SellPrice: dec(3000), MinStock: dec(12)},
	}
	productIDs := make([]string, 0, len(products))
	for _, in := range products {
		out, err := productUC.Create(ctx, in)
		if err != nil {
			fail("crear producto "+in.Name, err)
		}
		productIDs = append(productIDs, out.ID)
	}

	// Ingredientes
	ingredients := []dto.CreateIngredientRequest{
		{Name: "Pechuga de pollo", Unit: "g", MinStock: dec(1000)},
		{Name: "Arroz", Unit: "g", MinStock: dec(2000)},
		{Name: "Huevo", Unit: "unidad", MinStock: dec(12)},
	}
	ingredientIDs := make([]string, 0, len(ingredients))
	for _, in := range ingredients {
		out, err := ingredientUC.Create(ctx, in)
		if err != nil {
			fail("crear ingrediente "+in.Name, err)
		}
		ingredientIDs = append(ingredientIDs, out.ID)
	}

	// Platos con receta
	if _, err := foodUC.Create(ctx, dto.CreateFoodRequest{
		Name:      "Bowl de pollo",
		SellPrice: dec(18000),
		Recipe: []dto.RecipeLineDTO{
			{IngredientID: ingredientIDs[0], Quantity: dec(200)},
			{IngredientID: ingredientIDs[1], Quantity: dec(150)},
		},
	}); err != nil {
		fail("crear plato", err)
	}
	if _, err := foodUC.Create(ctx, dto.CreateFoodRequest{
		Name:      "Omelette fitness",
		SellPrice: dec(12000),
		Recipe: []dto.RecipeLineDTO{
			{IngredientID: ingredientIDs[2], Quantity: dec(3)},
		},
	}); err != nil {
		fail("crear plato", err)
	}

	// Cliente de crédito
	if _, err := customerUC.Create(ctx, dto.CreateCustomerRequest{
		Name: "Carlos Entrenador", Phone: "3001234567",
	}); err != nil {
		fail("crear cliente", err)
	}

	// Compra inicial: deja stock y costo promedio en todos los items
	if _, err := purchaseUC.Record(ctx, dto.RecordPurchaseRequest{
		Supplier:      "Distribuidora El Atleta",
		TransportCost: dec(10000),
		Lines: []dto.PurchaseLineRequest{
			{Kind: "producto", ItemID: productIDs[0], Quantity: dec(24), LineTotal: dec(96000)},
			{Kind: "producto", ItemID: productIDs[1], Quantity: dec(30), LineTotal: dec(150000)},
			{Kind: "producto", ItemID: productIDs[2], Quantity: dec(48), LineTotal: dec(48000)},
			{Kind: "ingrediente", ItemID: ingredientIDs[0], Quantity: dec(5000), LineTotal: dec(90000)},
			{Kind: "ingrediente", ItemID: ingredientIDs[1], Quantity: dec(10000), LineTotal: dec(45000)},
			{Kind: "ingrediente", ItemID: ingredientIDs[2], Quantity: dec(60), LineTotal: dec(36000)},
		},
	}); err != nil {
		fail("registrar compra inicial", err)
	}

	fmt.Println("catálogo de demostración sembrado")
}

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func fail(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
