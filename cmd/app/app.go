package app

import (
	"log"

	"stayhaven/internal/config"
	"stayhaven/internal/database"
	"stayhaven/internal/notify"
	"stayhaven/internal/repository"
	"stayhaven/internal/service"
	"stayhaven/internal/storage"
)

type App struct {
	DB         *database.DB
	ElevatedDB *database.DB
	Repo       *repository.Repository
	Services   *service.Service
	Storage    storage.Storage
	Notifier   notify.Notifier
}

func New(cfg *config.Config) *App {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// the elevated connection is optional; without it the inquiry
	// fallback path is disabled
	elevatedDB, err := database.ConnectElevatedDB(cfg)
	if err != nil {
		log.Printf("Warning: elevated database connection unavailable: %v", err)
		elevatedDB = nil
	}

	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO: %v", err)
	}

	// notifications are best-effort end to end, a missing broker only
	// disables them
	notifier, err := notify.NewAMQPNotifier(cfg)
	if err != nil {
		log.Printf("Warning: AMQP notifier unavailable: %v", err)
		notifier = nil
	}

	var repo *repository.Repository
	if elevatedDB != nil {
		repo = repository.NewRepository(db.DB, elevatedDB.DB)
	} else {
		repo = repository.NewRepository(db.DB, nil)
	}

	// keep the interface nil when the broker is down, a typed nil would
	// dodge the nil checks downstream
	var n notify.Notifier
	if notifier != nil {
		n = notifier
	}

	services := service.NewService(repo, cfg, minioClient, n)

	return &App{
		DB:         db,
		ElevatedDB: elevatedDB,
		Repo:       repo,
		Services:   services,
		Storage:    minioClient,
		Notifier:   n,
	}
}

func (a *App) Close() {
	if a.Notifier != nil {
		a.Notifier.Close()
	}
	if a.ElevatedDB != nil {
		a.ElevatedDB.CloseDB()
	}
	if a.DB != nil {
		a.DB.CloseDB()
	}
}
