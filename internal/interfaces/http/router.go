package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cantina-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC    *usecase.ProductUseCase
	IngredientUC *usecase.IngredientUseCase
	FoodUC       *usecase.FoodUseCase
	OrderUC      *usecase.OrderUseCase
	PurchaseUC   *usecase.PurchaseUseCase
	WasteUC      *usecase.WasteUseCase
	CustomerUC   *usecase.CustomerUseCase
	ExpenseUC    *usecase.ExpenseUseCase
	ReportUC     *usecase.ReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Catálogo de productos
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Catálogo de ingredientes
	ingredients := api.Group("/ingredients")
	ingredientHandler := NewIngredientHandler(deps.IngredientUC)
	ingredients.Post("/", ingredientHandler.Create)
	ingredients.Get("/", ingredientHandler.List)
	ingredients.Get("/:id", ingredientHandler.GetByID)
	ingredients.Put("/:id", ingredientHandler.Update)
	ingredients.Delete("/:id", ingredientHandler.Delete)

	// Platos preparados
	foods := api.Group("/foods")
	foodHandler := NewFoodHandler(deps.FoodUC)
	foods.Post("/", foodHandler.Create)
	foods.Get("/", foodHandler.List)
	foods.Get("/:id", foodHandler.GetByID)
	foods.Put("/:id", foodHandler.Update)
	foods.Delete("/:id", foodHandler.Delete)

	// Caja
	orders := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/can-add", orderHandler.CanAdd)
	orders.Post("/checkout", orderHandler.Checkout)
	orders.Get("/", orderHandler.List)

	// Compras
	purchases := api.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Post("/", purchaseHandler.Record)
	purchases.Get("/", purchaseHandler.List)
	purchases.Put("/:id", purchaseHandler.Update)
	purchases.Delete("/:id", purchaseHandler.Delete)

	// Mermas y consumibles
	wastes := api.Group("/wastes")
	wasteHandler := NewWasteHandler(deps.WasteUC)
	wastes.Post("/", wasteHandler.Create)
	wastes.Get("/", wasteHandler.List)
	wastes.Put("/:id", wasteHandler.Update)
	wastes.Delete("/:id", wasteHandler.Delete)

	// Clientes con cuenta de crédito
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Post("/:id/payments", customerHandler.RegisterPayment)

	// Gastos operativos
	expenses := api.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Reportes
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/sales", reportHandler.Sales)
	reports.Get("/waste", reportHandler.Waste)
	reports.Get("/valuation", reportHandler.Valuation)
	reports.Get("/valuation/pdf", reportHandler.ValuationPDF)
	reports.Get("/low-stock", reportHandler.LowStock)
}
