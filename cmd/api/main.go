package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"

	"shopdb/internal/config"
	"shopdb/internal/domain/model"
	"shopdb/internal/handler"
	"shopdb/internal/infra/auth"
	"shopdb/internal/infra/db"
	infraRepo "shopdb/internal/infra/repository"
	"shopdb/internal/logger"
	"shopdb/internal/server"
	"shopdb/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	//.envはなくてもよい
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	zl, err := logger.New(cfg.IsProduction())
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = zl.Sync() }()

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		zl.Error("db connect failed", zap.Error(err))
		return err
	}
	if err := db.Migrate(gormDB, model.All()...); err != nil {
		zl.Error("migrate failed", zap.Error(err))
		return err
	}

	//Repository（GORM実装）生成
	sessions := infraRepo.NewSessionFactoryGorm(gormDB)
	catalogRepo := infraRepo.NewCatalogGormRepository(gormDB)

	//bcrypt（作成：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(cfg.BcryptCost)
	verifier := auth.NewBcryptPasswordVerifier()
	issuer := auth.NewJWTIssuer(cfg.JWTSecret, cfg.AccessTokenTTL)

	//Usecase生成
	adminUC := usecase.NewAdminUsecase(sessions, hasher, verifier, issuer, auth.RealClock{}, zl)
	catalogUC := usecase.NewCatalogUsecase(catalogRepo)

	//初期SuperAdmin
	if cfg.BootstrapAdminEmail != "" {
		created, err := adminUC.EnsureAdmin(context.Background(), usecase.CreateAdminInput{
			Name:     cfg.BootstrapAdminName,
			Email:    cfg.BootstrapAdminEmail,
			Password: cfg.BootstrapAdminPassword,
			Role:     model.RoleSuperAdmin,
		})
		if err != nil {
			zl.Error("bootstrap admin failed", zap.Error(err))
			return err
		}
		zl.Info("bootstrap admin", zap.String("email", cfg.BootstrapAdminEmail), zap.Bool("created", created))
	}

	//Handler生成
	e := server.New(zl, cfg.JWTSecret, server.Handlers{
		Admin:   handler.NewAdminHandler(adminUC),
		Catalog: handler.NewCatalogHandler(catalogUC),
	})

	//Server起動
	zl.Info("server starting", zap.String("addr", cfg.Addr()))
	if err := server.Start(e, cfg.Addr()); err != nil {
		zl.Error("server stopped", zap.Error(err))
		return err
	}
	return nil
}
