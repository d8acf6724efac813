package config

import (
	"fmt"

	"doc-processor/internal/domain"
	"doc-processor/internal/repository"
	"doc-processor/internal/service"
	"doc-processor/pkg/logger"

	"github.com/jmoiron/sqlx"
)

// Container holds all application dependencies
type Container struct {
	Config domain.Config
	Logger domain.Logger
	DB     *sqlx.DB

	UserRepository        domain.UserRepository
	DocumentLogRepository domain.DocumentLogRepository
	PanRepository         domain.PanRepository
	VoterIDRepository     domain.VoterIDRepository
	PassportRepository    domain.PassportRepository

	FileStore         domain.FileStore
	PDFConverter      domain.PDFConverter
	OCRGateway        domain.OCRGateway
	AuthService       domain.AuthService
	ProcessingService domain.ProcessingService
}

// NewContainer creates a new dependency injection container
func NewContainer() (*Container, error) {
	cfg := NewConfig()
	appLogger := logger.NewLogger(cfg.GetLogLevel())

	db, err := repository.Connect(cfg.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	if err := repository.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	logRepo := repository.NewDocumentLogRepository(db)
	panRepo := repository.NewPanRepository(db)
	voterRepo := repository.NewVoterIDRepository(db)
	passportRepo := repository.NewPassportRepository(db)

	// Services
	fileStore, err := service.NewFileStorage(cfg.GetTempDir(), cfg.GetStorageDir(), appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage roots: %w", err)
	}
	converter := service.NewPDFConverter(appLogger)
	ocrGateway := service.NewOCRClient(cfg.GetOCRURL(), appLogger)
	authService := service.NewAuthService(userRepo, cfg.GetJWTSecret(), cfg.GetJWTExpiry(), appLogger)
	processingService := service.NewProcessingService(
		fileStore,
		converter,
		ocrGateway,
		panRepo,
		voterRepo,
		passportRepo,
		logRepo,
		appLogger,
	)

	return &Container{
		Config:                cfg,
		Logger:                appLogger,
		DB:                    db,
		UserRepository:        userRepo,
		DocumentLogRepository: logRepo,
		PanRepository:         panRepo,
		VoterIDRepository:     voterRepo,
		PassportRepository:    passportRepo,
		FileStore:             fileStore,
		PDFConverter:          converter,
		OCRGateway:            ocrGateway,
		AuthService:           authService,
		ProcessingService:     processingService,
	}, nil
}
