package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/electromovil99-art/sapisoft-ledger/internal/application/ledger"
	"github.com/electromovil99-art/sapisoft-ledger/internal/infrastructure/postgres"
	httpRouter "github.com/electromovil99-art/sapisoft-ledger/internal/interfaces/http"
	"github.com/electromovil99-art/sapisoft-ledger/pkg/config"
	"github.com/electromovil99-art/sapisoft-ledger/pkg/logger"
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
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	txRunner := postgres.NewTxRunner(pool)
	// Bundle atado al pool, solo para las consultas (los comandos usan el txRunner).
	queryLedger := postgres.NewLedger(pool)

	saleUC := ledger.NewSaleUseCase(txRunner)
	purchaseUC := ledger.NewPurchaseUseCase(txRunner)
	paymentUC := ledger.NewPaymentUseCase(txRunner)
	cashBoxUC := ledger.NewCashBoxUseCase(txRunner)
	transferUC := ledger.NewTransferUseCase(txRunner)
	cashTransferUC := ledger.NewCashTransferUseCase(txRunner)
	countUC := ledger.NewCountUseCase(txRunner)
	queryUC := ledger.NewQueryUseCase(queryLedger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Sapisoft Ledger API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SaleUC:         saleUC,
		PurchaseUC:     purchaseUC,
		PaymentUC:      paymentUC,
		CashBoxUC:      cashBoxUC,
		TransferUC:     transferUC,
		CashTransferUC: cashTransferUC,
		CountUC:        countUC,
		QueryUC:        queryUC,
		JWTSecret:      cfg.JWT.Secret,
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
