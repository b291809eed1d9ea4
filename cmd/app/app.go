package app

import (
	"context"

	"go.uber.org/zap"

	"blogsphere/internal/config"
	"blogsphere/internal/database"
	"blogsphere/internal/repository"
	"blogsphere/internal/service"
	"blogsphere/internal/storage"
)

func App(ctx context.Context, cfg *config.Config, log *zap.Logger) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(ctx, cfg, log)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(ctx, cfg.MinIO, log)
	if err != nil {
		_ = db.CloseDB()
		log.Fatal("minio initialization failed", zap.Error(err))
	}

	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient, db, log)

	return db, repo, services
}
