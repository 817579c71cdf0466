package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/basingerf-felix/spilna-peremoga-website/api/core"
	"github.com/basingerf-felix/spilna-peremoga-website/config"
	"github.com/basingerf-felix/spilna-peremoga-website/database"
	"github.com/basingerf-felix/spilna-peremoga-website/database/repo/contacts"
	repoDashboard "github.com/basingerf-felix/spilna-peremoga-website/database/repo/dashboard"
	"github.com/basingerf-felix/spilna-peremoga-website/database/repo/details"
	repoProjects "github.com/basingerf-felix/spilna-peremoga-website/database/repo/projects"
	"github.com/basingerf-felix/spilna-peremoga-website/database/repo/units"
	"github.com/basingerf-felix/spilna-peremoga-website/internal/auth"
	contactSvc "github.com/basingerf-felix/spilna-peremoga-website/internal/contact"
	"github.com/basingerf-felix/spilna-peremoga-website/internal/dashboard"
	"github.com/basingerf-felix/spilna-peremoga-website/internal/gallery"
	"github.com/basingerf-felix/spilna-peremoga-website/internal/mailer"
	projectsSvc "github.com/basingerf-felix/spilna-peremoga-website/internal/projects"
	"github.com/basingerf-felix/spilna-peremoga-website/storage"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start API server",
	Run: func(cmd *cobra.Command, args []string) {
		RunServer()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func RunServer() {
	config.InitConfig()
	cfg := config.Get()

	if err := os.MkdirAll("./data", os.ModePerm); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	db, err := database.NewDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to auto migrate database: %v", err)
	}
	if err := seedOrgUnits(db, cfg); err != nil {
		log.Fatalf("Failed to seed organizational units: %v", err)
	}

	storageFactory, err := storage.NewFactory(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	log.Printf("Default storage provider: %s", storageFactory.GetDefaultName())

	deps, err := buildDependencies(db, cfg, storageFactory)
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}

	server, cleanup := core.StartServer(deps)
	go func() {
		log.Printf("Server started on %s", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if cleanup != nil {
		cleanup()
	}

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited successfully")
}

func buildDependencies(db *gorm.DB, cfg *config.Config, storageFactory *storage.Factory) (*core.ServerDependencies, error) {
	unitsRepo := units.NewRepository(db)
	projectsRepo := repoProjects.NewRepository(db)
	detailsRepo := details.NewRepository(db)
	contactsRepo := contacts.NewRepository(db)
	statsRepo := repoDashboard.NewRepository(db)

	expiresIn, err := time.ParseDuration(cfg.JWTExpiresIn)
	if err != nil {
		return nil, err
	}
	jwtService, err := auth.NewJWTService(cfg.JWTSecret, expiresIn)
	if err != nil {
		return nil, err
	}
	loginService, err := auth.NewLoginService(cfg.AdminUsername, cfg.AdminPasswordHash, jwtService)
	if err != nil {
		return nil, err
	}

	var notifier contactSvc.Notifier
	if cfg.MailEnabled() {
		m, err := mailer.New(mailer.Config{
			Host:         cfg.SMTPHost,
			Port:         cfg.SMTPPort,
			Username:     cfg.SMTPUsername,
			Password:     cfg.SMTPPassword,
			FromName:     cfg.MailFromName,
			FromEmail:    cfg.MailFromEmail,
			ManagerEmail: cfg.ContactRecipient,
		})
		if err != nil {
			return nil, err
		}
		notifier = m
	} else {
		log.Println("SMTP is not configured, contact notifications are disabled")
	}

	pages := projectsSvc.UnitPages{
		Platform:  cfg.UnitSlugPlatform,
		Education: cfg.UnitSlugEducation,
		Sport:     cfg.UnitSlugSport,
	}

	return &core.ServerDependencies{
		DB:               db,
		StorageFactory:   storageFactory,
		ProjectsService:  projectsSvc.NewService(projectsRepo, unitsRepo, detailsRepo, pages),
		ContactService:   contactSvc.NewService(contactsRepo, notifier),
		GalleryService:   gallery.NewService(detailsRepo, storageFactory.GetDefault()),
		DashboardService: dashboard.NewService(statsRepo, contactsRepo),
		ContactsRepo:     contactsRepo,
		LoginService:     loginService,
		JWTService:       jwtService,
	}, nil
}
