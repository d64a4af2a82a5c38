package app

import (
	"fmt"

	"github.com/congregate-app/congregate/internal/config"
	"github.com/congregate-app/congregate/internal/db"
	"github.com/congregate-app/congregate/internal/repository"
	"github.com/congregate-app/congregate/internal/service"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Cfg             *config.Config
	DB              *sqlx.DB
	AuthService     *service.AuthService
	UserService     *service.UserService
	TitheService    *service.TitheService
	ReceiptService  *service.ReceiptService
	SermonService   *service.SermonService
	ScheduleService *service.ScheduleService
}

func New(cfg *config.Config) (*App, error) {
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	titheRepository := repository.NewTitheRepository(database)
	sermonRepository := repository.NewSermonRepository(database)
	serviceItemRepository := repository.NewServiceItemRepository(database)

	// Services
	authService := service.NewAuthService(
		userRepository,
		cfg.JWTSecret,
		cfg.JWTExpiry,
		cfg.IsProduction(),
		cfg.AdminEmails,
	)
	userService := service.NewUserService(userRepository)
	titheService := service.NewTitheService(titheRepository, userRepository)
	receiptService := service.NewReceiptService(titheRepository, userRepository, cfg.AppName)
	sermonService := service.NewSermonService(sermonRepository)
	scheduleService := service.NewScheduleService(serviceItemRepository)

	return &App{
		Cfg:             cfg,
		DB:              database,
		AuthService:     authService,
		UserService:     userService,
		TitheService:    titheService,
		ReceiptService:  receiptService,
		SermonService:   sermonService,
		ScheduleService: scheduleService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
