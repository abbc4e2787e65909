package repositories

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/jobboardly/backend/internal/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {
	models := []any{
		entities.Company{},
		entities.Job{},
		entities.UserProfile{},
		entities.ExperienceEntry{},
		entities.EducationEntry{},
		entities.LanguageEntry{},
		entities.Application{},
		entities.ApplicationAnswer{},
		entities.Notification{},
	}

	for _, model := range models {
		if err := c.DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// one application per (job, applicant)
	if err := c.DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_job_applicant ON applications (job_id, applicant_id);").
		Error; err != nil {
		return fmt.Errorf("failed to create application index: %w", err)
	}

	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
