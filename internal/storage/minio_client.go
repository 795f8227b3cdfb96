package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// FileStorage определяет интерфейс для объектного хранилища изображений.
type FileStorage interface {
	// UploadImage сохраняет изображение и возвращает его публичный URL.
	UploadImage(ctx context.Context, userID int64, reader io.Reader, size int64, contentType string) (string, error)
	DeleteImage(ctx context.Context, objectKey string) error
}

// MinioClient реализует FileStorage для MinIO.
type MinioClient struct {
	client     *minio.Client
	bucketName string
	publicBase string
}

// MinioConfig содержит параметры для подключения к MinIO.
type MinioConfig struct {
	Endpoint        string // Адрес MinIO (например, "localhost:9000")
	AccessKeyID     string // Логин
	SecretAccessKey string // Пароль
	UseSSL          bool   // Использовать SSL (обычно false для локальной разработки)
	BucketName      string // Имя бакета для хранения изображений
	Region          string // Регион (не обязательно для MinIO, но может требоваться)
}

// NewMinioClient создает новый клиент MinIO.
func NewMinioClient(cfg MinioConfig) (*MinioClient, error) {
	log.Printf("Инициализация клиента MinIO для эндпоинта %s...", cfg.Endpoint)

	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации клиента MinIO: %w", err)
	}

	// Проверка существования бакета и создание при необходимости
	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки существования бакета '%s': %w", cfg.BucketName, err)
	}
	if !exists {
		log.Printf("Бакет '%s' не найден, попытка создания...", cfg.BucketName)
		err = minioClient.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{Region: cfg.Region})
		if err != nil {
			return nil, fmt.Errorf("ошибка создания бакета '%s': %w", cfg.BucketName, err)
		}
		log.Printf("Бакет '%s' успешно создан.", cfg.BucketName)
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}

	log.Printf("Клиент MinIO успешно инициализирован для бакета '%s'.", cfg.BucketName)
	return &MinioClient{
		client:     minioClient,
		bucketName: cfg.BucketName,
		publicBase: fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.BucketName),
	}, nil
}

// UploadImage загружает изображение в MinIO и возвращает его публичный URL.
// Ключ объекта генерируется случайным образом в пространстве пользователя.
func (c *MinioClient) UploadImage(
	ctx context.Context,
	userID int64,
	reader io.Reader,
	size int64,
	contentType string,
) (string, error) {
	objectKey := fmt.Sprintf("listings/%d/%s.%s", userID, uuid.NewString(), imageExtension(contentType))
	log.Printf("[Minio] Загрузка изображения '%s' в бакет '%s'...", objectKey, c.bucketName)

	opts := minio.PutObjectOptions{ContentType: contentType}
	uploadInfo, err := c.client.PutObject(ctx, c.bucketName, objectKey, reader, size, opts)
	if err != nil {
		log.Printf("[Minio] Ошибка загрузки изображения '%s': %v", objectKey, err)
		return "", fmt.Errorf("ошибка загрузки изображения в MinIO: %w", err)
	}

	log.Printf("[Minio] Изображение '%s' успешно загружено, размер: %d, ETag: %s",
		objectKey, uploadInfo.Size, uploadInfo.ETag)
	return c.publicBase + "/" + objectKey, nil
}

// DeleteImage удаляет изображение из MinIO по ключу объекта.
func (c *MinioClient) DeleteImage(ctx context.Context, objectKey string) error {
	log.Printf("[Minio] Удаление изображения '%s' из бакета '%s'...", objectKey, c.bucketName)

	err := c.client.RemoveObject(ctx, c.bucketName, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		log.Printf("[Minio] Ошибка удаления изображения '%s': %v", objectKey, err)
		return fmt.Errorf("ошибка удаления изображения из MinIO: %w", err)
	}

	log.Printf("[Minio] Изображение '%s' успешно удалено", objectKey)
	return nil
}

// imageExtension выводит расширение файла из Content-Type.
func imageExtension(contentType string) string {
	ext := strings.TrimPrefix(contentType, "image/")
	if ext == "" || strings.ContainsAny(ext, "/+;") {
		return "bin"
	}
	return ext
}
