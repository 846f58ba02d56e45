package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Pixoll/db-uni-project-api/internal/domain/entity"
)

// RouterDeps handlers y autenticador para el router.
type RouterDeps struct {
	Auth      Authenticator
	Products  *ProductHandler
	Sales     *SaleHandler
	Sessions  *AuthHandler
	Staff     *StaffHandler
	Catalog   *CatalogHandler
	Clients   *ClientHandler
	Reference *ReferenceHandler
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authn := AuthMiddleware(deps.Auth)
	employee := RequireRole(entity.RoleCashier, entity.RoleManager)
	cashier := RequireRole(entity.RoleCashier)
	manager := RequireRole(entity.RoleManager)

	// Catálogo (público; con sesión devuelve los productos de la sucursal)
	products := api.Group("/products")
	products.Get("/", OptionalAuth(deps.Auth), deps.Products.List)
	products.Post("/", authn, manager, deps.Catalog.CreateProduct)
	products.Post("/brands", authn, manager, deps.Catalog.CreateBrand)
	products.Post("/sizes", authn, manager, deps.Catalog.CreateSize)
	products.Get("/colors", deps.Products.Colors)
	products.Get("/types", deps.Reference.Types)
	products.Get("/sizes", deps.Reference.Sizes)
	products.Get("/stocks", deps.Products.Stocks)
	products.Patch("/stocks", authn, manager, deps.Products.UpdateStock)
	products.Post("/stocks/transfer", authn, manager, deps.Products.TransferStock)
	products.Get("/replenishment", authn, manager, deps.Products.Replenishment)
	products.Get("/:sku<int>", deps.Products.GetBySKU)

	api.Get("/brands", deps.Reference.Brands)
	api.Get("/regions", deps.Reference.Regions)
	api.Get("/stores", deps.Reference.Stores)

	// Proveedores (gerente)
	suppliers := api.Group("/suppliers", authn, manager)
	suppliers.Get("/", deps.Reference.Suppliers)
	suppliers.Get("/:rut", deps.Reference.Supplier)

	// Empleados y sesiones
	employees := api.Group("/employees")
	employees.Post("/sessions", deps.Sessions.Login)
	employees.Delete("/sessions", authn, employee, deps.Sessions.Logout)
	employees.Get("/me", authn, employee, deps.Sessions.Me)
	employees.Get("/cashiers", authn, manager, deps.Sessions.Cashiers)

	// Cajeros de la sucursal (gerente)
	employees.Get("/", authn, manager, deps.Staff.Get)
	employees.Post("/", authn, manager, deps.Staff.Hire)
	employees.Delete("/", authn, manager, deps.Staff.Fire)
	employees.Patch("/contracts", authn, manager, deps.Staff.ChangeContract)
	employees.Get("/salaries", authn, manager, deps.Staff.Salaries)
	employees.Post("/salaries", authn, manager, deps.Staff.AddSalary)

	// Clientes
	clients := api.Group("/clients", authn, employee)
	clients.Post("/", cashier, deps.Clients.Create)
	clients.Get("/:rut", deps.Clients.GetByRut)

	// Ventas
	sales := api.Group("/sales")
	sales.Get("/tax", deps.Sales.Tax)
	sales.Post("/", authn, cashier, deps.Sales.Create)
	sales.Get("/", authn, employee, deps.Sales.List)
	sales.Get("/:id<int>", authn, employee, deps.Sales.GetByID)
	sales.Get("/:id<int>/pdf", authn, employee, deps.Sales.PDF)
}
