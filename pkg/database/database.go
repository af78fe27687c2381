package database

import (
	"exam_ingest_backend/internal/config"
	"exam_ingest_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		path := cfg.Path
		if path == "" {
			path = "exam_ingest.db"
		}
		dialector = sqlite.Open(path)
	default:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
			cfg.ParseTime,
		)
		dialector = mysql.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.Module{},
		&model.Topic{},
		&model.Exam{},
		&model.Question{},
		&model.Answer{},
		&model.ImportRun{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Default module/topic so freshly imported questions always have a home.
	var count int64
	db.Model(&model.Module{}).Count(&count)
	if count == 0 {
		module := &model.Module{
			Name:        "Python Fundamentals",
			Description: "PCEP certification exam content",
			Order:       1,
		}
		if err := db.Create(module).Error; err == nil {
			db.Create(&model.Topic{
				ModuleID:    module.ID,
				Name:        "Python Fundamentals",
				Description: "Core Python programming concepts",
			})
		}
	}

	return db, nil
}
