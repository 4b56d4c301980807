package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"github.com/yuhyam95/meenos-menu/docs"
	"github.com/yuhyam95/meenos-menu/internal/auth"
	"github.com/yuhyam95/meenos-menu/internal/metrics"
	"github.com/yuhyam95/meenos-menu/internal/notify"
	"github.com/yuhyam95/meenos-menu/internal/queue"
	"github.com/yuhyam95/meenos-menu/internal/ratelimiter"
	"github.com/yuhyam95/meenos-menu/internal/repo"
	"github.com/yuhyam95/meenos-menu/internal/service"
	"github.com/yuhyam95/meenos-menu/internal/store/mongo"
	"github.com/yuhyam95/meenos-menu/internal/worker"
	"go.uber.org/zap"
)

type application struct {
	config             config
	logger             *zap.SugaredLogger
	rateLimiter        ratelimiter.Limiter
	storage            *mongo.Storage
	broker             queue.Broker
	sessions           *auth.SessionManager
	notifier           *notify.Notifier
	itemRepo           repo.FoodItemRepository
	categoryRepo       repo.FoodCategoryRepository
	deliveryRepo       repo.DeliveryLocationRepository
	settingRepo        repo.StoreSettingRepository
	userRepo           repo.UserRepository
	cartService        *service.CartService
	orderService       *service.OrderService
	notificationWorker *worker.OrderNotificationWorker
	metrics            *metrics.ServerMetrics
}

type config struct {
	addr        string
	env         string
	apiURL      string
	rateLimiter ratelimiter.Config
	mongo       mongoConfig
	rabbitMQ    rabbitMQConfig
	auth        authConfig
	notify      notify.Config
	resend      notify.ResendConfig
	whatsapp    notify.WhatsAppConfig
}

type mongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type rabbitMQConfig struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
}

type authConfig struct {
	secret       string
	ttl          time.Duration
	secureCookie bool
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.MetricsMiddleware)

	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		// public storefront
		r.Group(func(r chi.Router) {
			r.Use(app.RateLimiterMiddleware)

			r.Get("/menu", app.listMenuItemsHandler)
			r.Get("/menu/{item_id}", app.getMenuItemHandler)
			r.Get("/categories", app.listCategoriesHandler)
			r.Get("/delivery-locations", app.listDeliveryLocationsHandler)
			r.Get("/settings", app.getPublicSettingsHandler)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", app.getCartHandler)
				r.Delete("/", app.clearCartHandler)
				r.Post("/items", app.addCartItemHandler)
				r.Patch("/items/{item_id}", app.updateCartItemHandler)
				r.Delete("/items/{item_id}", app.removeCartItemHandler)
			})

			r.Post("/checkout", app.checkoutHandler)
			r.Post("/orders/{order_number}/payment", app.confirmPaymentHandler)

			r.Post("/login", app.loginHandler)
			r.Post("/logout", app.logoutHandler)
		})

		// admin back office
		r.Route("/admin", func(r chi.Router) {
			r.Use(app.AdminSessionMiddleware)

			r.Post("/menu", app.createMenuItemHandler)
			r.Put("/menu/{item_id}", app.updateMenuItemHandler)
			r.Delete("/menu/{item_id}", app.deleteMenuItemHandler)

			r.Post("/categories", app.createCategoryHandler)
			r.Put("/categories/{category_id}", app.updateCategoryHandler)
			r.Delete("/categories/{category_id}", app.deleteCategoryHandler)

			r.Post("/delivery-locations", app.createDeliveryLocationHandler)
			r.Put("/delivery-locations/{location_id}", app.updateDeliveryLocationHandler)
			r.Delete("/delivery-locations/{location_id}", app.deleteDeliveryLocationHandler)

			r.Get("/orders", app.listOrdersHandler)
			r.Patch("/orders/{order_id}/status", app.updateOrderStatusHandler)

			r.Get("/users", app.listUsersHandler)
			r.Post("/users", app.createUserHandler)
			r.Put("/users/{user_id}", app.updateUserHandler)
			r.Delete("/users/{user_id}", app.deleteUserHandler)

			r.Get("/settings", app.getSettingsHandler)
			r.Put("/settings", app.updateSettingsHandler)

			r.Post("/notifications/test", app.testNotificationsHandler)
		})

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "Meenos Storefront"
	docs.SwaggerInfo.Description = "Storefront and back-office API for the Meenos restaurant"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api/v1"

	// workers
	if app.notificationWorker != nil {
		if err := app.notificationWorker.Start(); err != nil {
			return fmt.Errorf("failed to start notification worker: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		if app.notificationWorker != nil {
			app.notificationWorker.Stop()
		}

		if app.storage != nil {
			if err := app.storage.Close(ctx); err != nil {
				app.logger.Errorw("error closing MongoDB", "error", err)
			} else {
				app.logger.Info("MongoDB connection closed gracefully")
			}
		}

		if app.broker != nil {
			if err := app.broker.Close(); err != nil {
				app.logger.Errorw("error closing RabbitMQ", "error", err)
			} else {
				app.logger.Info("RabbitMQ connection closed gracefully")
			}
		}

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server have started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
