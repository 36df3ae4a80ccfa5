package http

import (
	"github.com/gofiber/fiber/v2"
	appauth "github.com/wramirez/minimarket-crm/internal/application/auth"
	"github.com/wramirez/minimarket-crm/internal/application/checkout"
	"github.com/wramirez/minimarket-crm/internal/application/reports"
	"github.com/wramirez/minimarket-crm/internal/application/usecase"
	"github.com/wramirez/minimarket-crm/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *usecase.CustomerUseCase
	EmployeeUC *usecase.EmployeeUseCase
	ContractUC *usecase.ContractUseCase
	ProductUC  *usecase.ProductUseCase
	UserUC     *usecase.UserUseCase
	AuthUC     *appauth.UseCase
	Checkout   *checkout.Service
	Reports    *reports.Service
	JWTSecret  string
}

// Router registra las rutas de la API.
//
// Reparto de roles: administrador accede a todo; vendedor solo a clientes,
// productos y ventas. Empleados, contratos, usuarios y reportes son de
// administración.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/reset", authHandler.ResetPassword)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	anyStaff := RequireRole(entity.RoleAdmin, entity.RoleVendedor)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Solicitud de cambio de contraseña (solo vendedores)
	protected.Post("/auth/password-request", RequireRole(entity.RoleVendedor), authHandler.RequestPasswordChange)

	// Clientes (administrador y vendedor)
	customers := protected.Group("/clientes", anyStaff)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Empleados (solo administrador). Las exportaciones van antes de /:id
	// para que "exportar" no se capture como parámetro.
	employees := protected.Group("/empleados", adminOnly)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, deps.Reports)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/exportar/excel", employeeHandler.ExportExcel)
	employees.Get("/exportar/pdf", employeeHandler.ExportPDF)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Contratos (solo administrador)
	contracts := protected.Group("/contratos", adminOnly)
	contractHandler := NewContractHandler(deps.ContractUC)
	contracts.Post("/", contractHandler.Create)
	contracts.Get("/", contractHandler.List)
	contracts.Get("/:id", contractHandler.GetByID)
	contracts.Put("/:id", contractHandler.Update)
	contracts.Delete("/:id", contractHandler.Delete)
	contracts.Get("/:id/pdf", contractHandler.DownloadPDF)

	// Productos (administrador y vendedor)
	products := protected.Group("/productos", anyStaff)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Ventas y facturas (administrador y vendedor)
	sales := protected.Group("/ventas", anyStaff)
	saleHandler := NewSaleHandler(deps.Checkout)
	sales.Post("/", saleHandler.Checkout)
	sales.Get("/facturas", saleHandler.ListInvoices)
	sales.Get("/:id/factura", saleHandler.GetInvoice)
	sales.Get("/:id/factura/pdf", saleHandler.DownloadInvoicePDF)

	// Reportes (solo administrador)
	reportGroup := protected.Group("/reportes", adminOnly)
	reportHandler := NewReportHandler(deps.Reports)
	reportGroup.Get("/ventas", reportHandler.SalesReport)
	reportGroup.Get("/ventas/exportar", reportHandler.ExportSalesExcel)
	reportGroup.Get("/clientes-por-pais", reportHandler.CustomersByCountry)

	// Usuarios (solo administrador)
	users := protected.Group("/usuarios", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
