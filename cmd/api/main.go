package main

import (
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/joho/godotenv"
)

func main() {
	// .envは無くてもよい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		panic(err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Contact{},
		&model.CartRecord{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	contactRepo := infraRepo.NewContactGormRepository(gormDB)
	cartRepo := infraRepo.NewCartRecordGormRepository(gormDB)

	//Server
	e := server.New(cfg)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(cfg, userRepo, validator.NewAuthValidator())
	contactUC := usecase.NewContactUsecase(contactRepo, validator.NewContactValidator())

	// カート保存失敗はログに残すだけで状態は返す
	cartUC := usecase.NewCartUsecase(cartRepo, func(err error) {
		e.Logger.Errorf("cart snapshot save failed: %v", err)
	})

	//Handler生成とルート登録
	handler.NewAuthHandler(authUC).RegisterRoutes(e, cfg)
	handler.NewContactHandler(contactUC).RegisterRoutes(e)
	handler.NewCartHandler(cartUC).RegisterRoutes(e, cfg)
	handler.NewProductHandler().RegisterRoutes(e)

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(e, addr); err != nil {
		panic(err)
	}
}
