package main

import (
	"context"
	"log"

	"github.com/ayushfaujdar/oodio-solutions/config"
	"github.com/ayushfaujdar/oodio-solutions/controllers"
	"github.com/ayushfaujdar/oodio-solutions/routes"
	"github.com/ayushfaujdar/oodio-solutions/services"
	"github.com/ayushfaujdar/oodio-solutions/storage"
	"github.com/ayushfaujdar/oodio-solutions/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	store := storage.NewGormStorage(db)

	var uploader services.Uploader
	uploadDir := ""
	switch cfg.UploadBackend {
	case "s3":
		uploader, err = services.NewS3Uploader(context.Background())
		if err != nil {
			log.Fatalf("Failed to initialize S3 uploader: %v", err)
		}
	default:
		uploader, err = services.NewLocalUploader(cfg.UploadDir)
		if err != nil {
			log.Fatalf("Failed to initialize local uploader: %v", err)
		}
		uploadDir = cfg.UploadDir
	}

	var notifier services.Notifier
	if cfg.EmailConfigured() {
		notifier = services.NewSMTPNotifier(services.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.EmailUser,
			Password: cfg.EmailPass,
			To:       cfg.ContactEmail,
		})
	} else {
		log.Println("Email credentials not configured; contact notifications disabled")
	}

	validate := utils.NewValidator()

	r := routes.SetupRouter(routes.Deps{
		Portfolio:   &controllers.PortfolioController{Store: store, Validate: validate},
		Category:    &controllers.CategoryController{Store: store, Validate: validate},
		Contact:     &controllers.ContactController{Store: store, Validate: validate, Notifier: notifier},
		Upload:      &controllers.UploadController{Uploader: uploader, MaxBytes: cfg.MaxUploadBytes()},
		Admin:       &controllers.AdminController{Store: store, AdminPassword: cfg.AdminPassword},
		CORSOrigins: cfg.CORSOrigins,
		UploadDir:   uploadDir,
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
