package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"WayToEarth/internal/model"
	"WayToEarth/pkg/logger"
)

// Migrate 运行数据库迁移，创建所有表
func Migrate() error {
	db := DB()
	if db == nil {
		return gorm.ErrInvalidDB
	}

	logger.Logger.Info("Starting database migration...")

	if err := AutoMigrate(db); err != nil {
		logger.Logger.Error("Database migration failed", zap.Error(err))
		return err
	}

	logger.Logger.Info("Database migration completed successfully")
	return nil
}

// AutoMigrate 对任意连接建表，测试用 sqlite 时也走这里
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.CourseSegment{},
		&model.Landmark{},
		&model.Enrollment{},
		&model.SegmentProgress{},
		&model.Stamp{},
		&model.ProgressFingerprint{},
		&model.Emblem{},
		&model.UserEmblem{},
		&model.RunningRecord{},
	)
}
