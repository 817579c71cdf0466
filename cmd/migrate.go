package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/basingerf-felix/spilna-peremoga-website/config"
	"github.com/basingerf-felix/spilna-peremoga-website/database"
	"github.com/basingerf-felix/spilna-peremoga-website/database/models"
)

// migrateCmd applies the schema and seeds the organizational units.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Run: func(cmd *cobra.Command, args []string) {
		config.InitConfig()
		cfg := config.Get()

		db, err := database.NewDB(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}

		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}

		if err := seedOrgUnits(db, cfg); err != nil {
			log.Fatalf("Failed to seed organizational units: %v", err)
		}

		log.Println("Database migrated successfully")
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

// seedOrgUnits makes sure the three fixed units behind the landing
// pages exist.
func seedOrgUnits(db *gorm.DB, cfg *config.Config) error {
	seeds := []models.OrgUnit{
		{Name: "Громадська організація «Спільна Перемога»", Slug: cfg.UnitSlugPlatform},
		{Name: "ТОВ «Креативна агенція «Спільна Перемога»", Slug: cfg.UnitSlugEducation},
		{Name: "Продакшн-студія «Спільна Перемога»", Slug: cfg.UnitSlugSport},
	}

	for _, seed := range seeds {
		if seed.Slug == "" {
			continue
		}
		var unit models.OrgUnit
		err := db.Where(models.OrgUnit{Slug: seed.Slug}).
			Attrs(models.OrgUnit{Name: seed.Name}).
			FirstOrCreate(&unit).Error
		if err != nil {
			return err
		}
	}
	return nil
}
