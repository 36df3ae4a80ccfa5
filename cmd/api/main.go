package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appauth "github.com/wramirez/minimarket-crm/internal/application/auth"
	"github.com/wramirez/minimarket-crm/internal/application/checkout"
	"github.com/wramirez/minimarket-crm/internal/application/reports"
	"github.com/wramirez/minimarket-crm/internal/application/usecase"
	"github.com/wramirez/minimarket-crm/internal/infrastructure/excel"
	inframail "github.com/wramirez/minimarket-crm/internal/infrastructure/mail"
	"github.com/wramirez/minimarket-crm/internal/infrastructure/mongodb"
	infrapdf "github.com/wramirez/minimarket-crm/internal/infrastructure/pdf"
	httpRouter "github.com/wramirez/minimarket-crm/internal/interfaces/http"
	"github.com/wramirez/minimarket-crm/pkg/config"
	"github.com/wramirez/minimarket-crm/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	db, disconnect, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		if err := disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("cerrar conexión a MongoDB")
		}
	}()

	counterRepo := mongodb.NewCounterRepository(db)
	customerRepo := mongodb.NewCustomerRepository(db)
	employeeRepo := mongodb.NewEmployeeRepository(db)
	contractRepo := mongodb.NewContractRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	stockRepo := mongodb.NewStockRepository(db)
	saleRepo := mongodb.NewSaleRepository(db)
	invoiceRepo := mongodb.NewInvoiceRepository(db)
	reportRepo := mongodb.NewReportRepository(db)
	userRepo := mongodb.NewUserRepository(db)

	pdfGen := infrapdf.NewGenerator(cfg.App.Name)
	excelExp := excel.NewExporter()
	mailer := inframail.NewSMTPMailer(cfg.Mail, log)

	customerUC := usecase.NewCustomerUseCase(customerRepo, counterRepo, log)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, counterRepo, log)
	contractUC := usecase.NewContractUseCase(contractRepo, employeeRepo, counterRepo, pdfGen, log)
	productUC := usecase.NewProductUseCase(productRepo, stockRepo, log)
	userUC := usecase.NewUserUseCase(userRepo, counterRepo, log)
	authUC := appauth.NewUseCase(
		userRepo, counterRepo, mailer,
		cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration, log,
	)
	checkoutSvc := checkout.NewService(customerRepo, productRepo, stockRepo, saleRepo, invoiceRepo, pdfGen, log)
	reportsSvc := reports.NewService(reportRepo, employeeRepo, pdfGen, excelExp, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC: customerUC,
		EmployeeUC: employeeUC,
		ContractUC: contractUC,
		ProductUC:  productUC,
		UserUC:     userUC,
		AuthUC:     authUC,
		Checkout:   checkoutSvc,
		Reports:    reportsSvc,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
