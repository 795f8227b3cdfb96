package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

const (
	// Порт по умолчанию для HTTP-сервера.
	defaultServerPort = "8080"

	// Переменные окружения.
	envServerPort  = "SERVER_PORT"
	envTLSCertFile = "TLS_CERT_FILE"
	envTLSKeyFile  = "TLS_KEY_FILE"
	envDatabaseDSN = "DATABASE_DSN"
	envJWTSecret   = "JWT_SECRET"

	// Переменные окружения для MinIO (значения по умолчанию из docker-compose).
	envMinioEndpoint     = "MINIO_ENDPOINT"
	envMinioUser         = "MINIO_USER"
	envMinioPassword     = "MINIO_PASSWORD"
	envMinioBucket       = "MINIO_BUCKET"
	defaultMinioEndpoint = "localhost:9000"
	defaultMinioUser     = "minioadmin"
	defaultMinioPassword = "minioadmin"
	defaultMinioBucket   = "homestate-images"
)

// config хранит конфигурацию сервера.
type config struct {
	Port        string
	CertFile    string
	KeyFile     string
	DatabaseDSN string
	JWTSecret   string

	MinioEndpoint string
	MinioUser     string
	MinioPassword string
	MinioBucket   string
}

// parseFlags разбирает флаги и переменные окружения, возвращает config или ошибку.
func parseFlags() (*config, error) {
	cfg := &config{}

	// Определяем флаги
	flag.StringVar(&cfg.Port, "port", "",
		fmt.Sprintf("Порт для запуска сервера (env: %s, default: %s)", envServerPort, defaultServerPort))
	flag.StringVar(&cfg.CertFile, "cert-file", "",
		fmt.Sprintf("Путь к файлу TLS-сертификата, опционально (env: %s)", envTLSCertFile))
	flag.StringVar(&cfg.KeyFile, "key-file", "",
		fmt.Sprintf("Путь к файлу TLS-ключа, опционально (env: %s)", envTLSKeyFile))
	flag.StringVar(&cfg.DatabaseDSN, "database-dsn", "",
		fmt.Sprintf("Строка подключения к базе данных (env: %s)", envDatabaseDSN))
	flag.StringVar(&cfg.JWTSecret, "jwt-secret", "",
		fmt.Sprintf("Секрет для подписи токенов сессии (env: %s)", envJWTSecret))

	// Парсим флаги
	flag.Parse()

	// Применяем переменные окружения, если флаги не заданы
	if cfg.Port == "" {
		cfg.Port = getEnv(envServerPort, defaultServerPort)
	}
	if cfg.CertFile == "" {
		cfg.CertFile = getEnv(envTLSCertFile, "")
	}
	if cfg.KeyFile == "" {
		cfg.KeyFile = getEnv(envTLSKeyFile, "")
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = getEnv(envDatabaseDSN, "")
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = getEnv(envJWTSecret, "")
	}

	cfg.MinioEndpoint = getEnv(envMinioEndpoint, defaultMinioEndpoint)
	cfg.MinioUser = getEnv(envMinioUser, defaultMinioUser)
	cfg.MinioPassword = getEnv(envMinioPassword, defaultMinioPassword)
	cfg.MinioBucket = getEnv(envMinioBucket, defaultMinioBucket)

	// Проверяем обязательные параметры
	if cfg.DatabaseDSN == "" {
		return nil, errors.New("не указана строка подключения к БД (--database-dsn или " + envDatabaseDSN + ")")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("не указан секрет для подписи токенов (--jwt-secret или " + envJWTSecret + ")")
	}
	// TLS включается только при наличии обоих файлов
	if (cfg.CertFile == "") != (cfg.KeyFile == "") {
		return nil, errors.New("для TLS нужны оба файла: сертификат и ключ")
	}

	return cfg, nil
}

// getEnv получает значение переменной окружения или возвращает значение по умолчанию.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
