package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	capturePaymentOrderHandler "github.com/Amir3629/vocal-booking-service/internal/api/handlers/capture_payment_order"
	createBookingHandler "github.com/Amir3629/vocal-booking-service/internal/api/handlers/create_booking"
	createPaymentOrderHandler "github.com/Amir3629/vocal-booking-service/internal/api/handlers/create_payment_order"
	getAvailableSlotsHandler "github.com/Amir3629/vocal-booking-service/internal/api/handlers/get_available_slots"
	"github.com/Amir3629/vocal-booking-service/internal/api/middleware"
	"github.com/Amir3629/vocal-booking-service/internal/config"
	bookingRepo "github.com/Amir3629/vocal-booking-service/internal/infra/storage/booking"
	orderRepo "github.com/Amir3629/vocal-booking-service/internal/infra/storage/order"
	calendarServiceClient "github.com/Amir3629/vocal-booking-service/internal/integrations/calendarservice"
	mailServiceClient "github.com/Amir3629/vocal-booking-service/internal/integrations/mailservice"
	paymentServiceClient "github.com/Amir3629/vocal-booking-service/internal/integrations/paymentservice"
	paymentsService "github.com/Amir3629/vocal-booking-service/internal/service/payments"
	createBookingUC "github.com/Amir3629/vocal-booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/Amir3629/vocal-booking-service/internal/usecase/get_available_slots"
	"github.com/Amir3629/vocal-booking-service/pkg/logger"
	"github.com/Amir3629/vocal-booking-service/pkg/metrics"
	"github.com/Amir3629/vocal-booking-service/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting vocal-booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов
	calendarClient := calendarServiceClient.NewClient(
		cfg.CalendarService.URL,
		cfg.CalendarService.CalendarID,
		cfg.CalendarService.APIKey,
		time.Duration(cfg.CalendarService.Timeout)*time.Second,
		log,
	)
	paymentClient := paymentServiceClient.NewClient(
		cfg.PaymentService.URL,
		cfg.PaymentService.ClientID,
		cfg.PaymentService.ClientSecret,
		time.Duration(cfg.PaymentService.Timeout)*time.Second,
		log,
	)
	mailClient := mailServiceClient.NewClient(
		cfg.MailService.URL,
		cfg.MailService.APIKey,
		cfg.MailService.FromEmail,
		cfg.MailService.FromName,
		time.Duration(cfg.MailService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (Calendar=%s timeout=%ds, Payment=%s timeout=%ds, Mail=%s timeout=%ds)",
		cfg.CalendarService.URL, cfg.CalendarService.Timeout,
		cfg.PaymentService.URL, cfg.PaymentService.Timeout,
		cfg.MailService.URL, cfg.MailService.Timeout)

	// Инициализируем репозитории и transaction manager
	bookingRepository := bookingRepo.NewRepository(db)
	orderRepository := orderRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	paymentsSvc := paymentsService.NewService(
		paymentClient,
		orderRepository,
		paymentsService.Deposit{
			Amount:   cfg.Booking.DepositAmount,
			Currency: cfg.Booking.DepositCurrency,
		},
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		orderRepository,
		calendarClient,
		paymentClient,
		mailClient,
		txMgr,
		createBookingUC.Deposit{
			Amount:         cfg.Booking.DepositAmount,
			Currency:       cfg.Booking.DepositCurrency,
			PaymentPageURL: cfg.PaymentService.PaymentPageURL,
		},
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(calendarClient, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createPaymentOrder := createPaymentOrderHandler.NewHandler(paymentsSvc, log)
	capturePaymentOrder := capturePaymentOrderHandler.NewHandler(paymentsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Доступные слоты на дату
	r.HandleFunc("/booking", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования (календарь + депозит + письмо)
	r.HandleFunc("/booking", createBooking.Handle).Methods(http.MethodPost)

	// Платежные ордера (используются страницей оплаты)
	r.HandleFunc("/create-payment-order", createPaymentOrder.Handle).Methods(http.MethodPost)
	r.HandleFunc("/capture-payment-order", capturePaymentOrder.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
