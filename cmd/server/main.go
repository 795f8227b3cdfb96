package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // Драйвер PostgreSQL

	"github.com/Elmoustafi-22/HOMEstate/internal/handlers"
	appmiddleware "github.com/Elmoustafi-22/HOMEstate/internal/middleware"
	"github.com/Elmoustafi-22/HOMEstate/internal/repository"
	"github.com/Elmoustafi-22/HOMEstate/internal/services"
	"github.com/Elmoustafi-22/HOMEstate/internal/storage"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 30 * time.Second
)

// Структура для хранения инициализированных зависимостей.
type dependencies struct {
	db             *sqlx.DB
	authHandler    *handlers.AuthHandler
	userHandler    *handlers.UserHandler
	listingHandler *handlers.ListingHandler
	jwtSecret      []byte
}

// main - точка входа. Вызывает run и обрабатывает ошибку.
func main() {
	if err := run(); err != nil {
		log.Printf("Ошибка выполнения сервера: %v", err)
		os.Exit(1)
	}
}

// run содержит основную логику запуска сервера и возвращает ошибку.
func run() error {
	log.Println("Запуск сервера HOMEstate...")

	cfg, err := parseFlags()
	if err != nil {
		return fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	// Инициализация зависимостей
	deps, err := setupDependencies(cfg)
	if err != nil {
		return fmt.Errorf("ошибка инициализации зависимостей: %w", err)
	}
	// Отложенное закрытие соединения с БД
	defer func() {
		if deps.db != nil {
			if closeErr := deps.db.Close(); closeErr != nil {
				log.Printf("Ошибка закрытия соединения с БД: %v", closeErr)
			}
		}
	}()

	// Настройка роутера
	r := setupRouter(deps)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	if cfg.CertFile != "" && cfg.KeyFile != "" {
		log.Printf("Запуск HTTPS-сервера на порту %s...", cfg.Port)
		err = server.ListenAndServeTLS(cfg.CertFile, cfg.KeyFile)
	} else {
		log.Printf("Запуск HTTP-сервера на порту %s...", cfg.Port)
		err = server.ListenAndServe()
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("ошибка запуска сервера: %w", err)
	}
	return nil
}

// setupDependencies инициализирует и возвращает все необходимые зависимости сервера.
func setupDependencies(cfg *config) (*dependencies, error) {
	deps := &dependencies{jwtSecret: []byte(cfg.JWTSecret)}
	var err error

	// 1. Подключение к БД и миграции
	deps.db, err = repository.NewPostgresDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации БД: %w", err)
	}
	if err = repository.RunMigrations(deps.db); err != nil {
		if dbCloseErr := deps.db.Close(); dbCloseErr != nil {
			log.Printf("Ошибка закрытия соединения с БД при ошибке миграций: %v", dbCloseErr)
		}
		return nil, err
	}

	// 2. Инициализация клиента MinIO для изображений объявлений
	minioCfg := storage.MinioConfig{
		Endpoint:        cfg.MinioEndpoint,
		AccessKeyID:     cfg.MinioUser,
		SecretAccessKey: cfg.MinioPassword,
		UseSSL:          false, // Для локальной разработки
		BucketName:      cfg.MinioBucket,
	}
	imageStorage, err := storage.NewMinioClient(minioCfg)
	if err != nil {
		if dbCloseErr := deps.db.Close(); dbCloseErr != nil {
			log.Printf("Ошибка закрытия соединения с БД при ошибке MinIO: %v", dbCloseErr)
		}
		return nil, fmt.Errorf("ошибка инициализации клиента MinIO: %w", err)
	}

	// 3. Создание репозиториев
	userRepo := repository.NewPostgresUserRepository(deps.db)
	listingRepo := repository.NewPostgresListingRepository(deps.db)

	// 4. Создание сервисов
	authService := services.NewAuthService(userRepo, deps.jwtSecret)
	userService := services.NewUserService(userRepo, listingRepo)
	listingService := services.NewListingService(listingRepo)

	// 5. Создание обработчиков
	deps.authHandler = handlers.NewAuthHandler(authService)
	deps.userHandler = handlers.NewUserHandler(userService)
	deps.listingHandler = handlers.NewListingHandler(listingService, imageStorage)

	return deps, nil
}

// setupRouter настраивает и возвращает роутер chi.
func setupRouter(deps *dependencies) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong\n"))
	})

	authenticator := appmiddleware.Authenticator(deps.jwtSecret)

	r.Route("/api", func(r chi.Router) {
		// Аутентификация
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", deps.authHandler.SignUp)
			r.Post("/signin", deps.authHandler.SignIn)
			r.Post("/google", deps.authHandler.GoogleAuth)
			r.Get("/signout", deps.authHandler.SignOut)
		})

		// Объявления: чтение публично, мутации требуют аутентификации
		r.Route("/listing", func(r chi.Router) {
			r.Get("/get", deps.listingHandler.SearchListings)
			r.Get("/get/{id}", deps.listingHandler.GetListing)

			r.Group(func(r chi.Router) {
				r.Use(authenticator)
				r.Post("/create", deps.listingHandler.CreateListing)
				r.Post("/update/{id}", deps.listingHandler.UpdateListing)
				r.Delete("/delete/{id}", deps.listingHandler.DeleteListing)
				r.Post("/images", deps.listingHandler.UploadImage)
			})
		})

		// Профиль пользователя (весь раздел требует аутентификации)
		r.Route("/user", func(r chi.Router) {
			r.Use(authenticator)
			r.Get("/{id}", deps.userHandler.GetUser)
			r.Post("/update/{id}", deps.userHandler.UpdateUser)
			r.Delete("/delete/{id}", deps.userHandler.DeleteUser)
			r.Get("/listings/{id}", deps.userHandler.GetUserListings)
		})
	})
	return r
}
