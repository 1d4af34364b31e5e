package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/latehar-tourism/backend/app/controllers"
	"github.com/latehar-tourism/backend/app/repository"
	"github.com/latehar-tourism/backend/internal/pkg/env"
	"github.com/latehar-tourism/backend/internal/pkg/notify"
	"github.com/latehar-tourism/backend/internal/pkg/payments"
	"github.com/latehar-tourism/backend/internal/pkg/router"
	"github.com/latehar-tourism/backend/internal/pkg/whatsapp"
)

func main() {
	env.SetupEnvFile()

	// Refuse to start without gateway credentials: a process that
	// cannot verify signatures would accept forged confirmations.
	keySecret := env.GetEnv("RAZORPAY_KEY_SECRET", "")
	if env.GetEnv("RAZORPAY_KEY_ID", "") == "" || keySecret == "" {
		log.Fatal("RAZORPAY_KEY_ID and RAZORPAY_KEY_SECRET must be set")
	}

	repos := repository.NewFactory()
	paymentService := payments.NewService(repos.GetPaymentRepository(), payments.NewRazorpayClientFromEnv(), keySecret)

	waClient := whatsapp.NewClientFromEnv()
	if !waClient.Configured() {
		log.Print("whatsapp is not configured, booking acknowledgements will be skipped")
	}

	notifier := notify.NewQueue(waClient)
	notifier.Start()

	app := NewApplication(paymentService, repos, notifier, waClient)

	// Drain fiber first, then the notifier workers.
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "0.0.0.0"), env.GetEnv("APP_PORT", "5000"))
	if err := app.Listen(addr); err != nil {
		log.Fatal(err)
	}
	notifier.Stop()
}

// NewApplication builds the Fiber app with all routes installed.
func NewApplication(paymentService *payments.Service, repos *repository.Factory, notifier *notify.Queue, waClient *whatsapp.Client) *fiber.App {
	app := fiber.New()
	app.Use(recover.New(), logger.New())

	// Fiber metrics dashboard, only exposed when credentials are set.
	if metricsPass := env.GetEnv("METRICS_PASSWORD", ""); metricsPass != "" {
		app.Get("/metrics", basicauth.New(basicauth.Config{
			Users: map[string]string{
				env.GetEnv("METRICS_USER", "admin"): metricsPass,
			},
		}), monitor.New())
	}

	// front-end assets (hero video mute toggle script etc.)
	app.Static("/", "./public/assets")

	paymentController := controllers.NewPaymentController(paymentService)
	bookingController := controllers.NewBookingController(repos.GetBookingRepository(), notifier)
	webhookController := controllers.NewWebhookController(waClient)

	router.InstallRouter(app,
		router.NewApiRouter(paymentController, bookingController),
		router.NewWebhookRouter(webhookController),
	)

	return app
}
