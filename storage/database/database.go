package database

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	"WayToEarth/config"
	dbotel "WayToEarth/pkg/database"
	"WayToEarth/pkg/logger"
)

var (
	db     *gorm.DB
	dbOnce sync.Once
	dbErr  error
)

func Init() error {
	dbOnce.Do(func() {
		gormCfg := &gorm.Config{
			DisableForeignKeyConstraintWhenMigrating: true,
			PrepareStmt:                              true,
			SkipDefaultTransaction:                   true,
			TranslateError:                           true, // 唯一约束冲突翻译为 gorm.ErrDuplicatedKey
		}

		var gormDB *gorm.DB
		gormDB, dbErr = gorm.Open(postgres.Open(config.Cfg.GetDSN()), gormCfg)
		if dbErr != nil {
			logger.Logger.Error("Failed to open database", zap.String("dsn", "please check databse connection"), zap.Error(dbErr))
			return
		}

		// 只读副本：配速教练和徽章汇总走副本，账本写入和 CAS 永远走主库
		if replica := config.Cfg.PostgreSQLReplicaDSN; replica != "" {
			resolver := dbresolver.Register(dbresolver.Config{
				Replicas:          []gorm.Dialector{postgres.Open(replica)},
				Policy:            dbresolver.RandomPolicy{},
				TraceResolverMode: config.Cfg.IsDevelopment(),
			}).
				SetMaxIdleConns(config.Cfg.PostgreSQLMaxIdle).
				SetMaxOpenConns(config.Cfg.PostgreSQLMaxOpen)
			if dbErr = gormDB.Use(resolver); dbErr != nil {
				logger.Logger.Error("Failed to register read replica", zap.Error(dbErr))
				return
			}
		}

		if config.Cfg.OTelEnabled {
			pluginCfg := dbotel.DefaultPluginConfig()
			pluginCfg.ServiceName = config.Cfg.ServiceName
			if err := dbotel.WithOTELPlugin(gormDB, pluginCfg); err != nil {
				logger.Logger.Warn("Failed to register GORM OpenTelemetry plugin", zap.Error(err))
			}
		}

		sqlDB, err := gormDB.DB()
		if err != nil {
			dbErr = err
			logger.Logger.Error("Failed to get sql.DB from gorm", zap.Error(err))
			return
		}

		configureConnectionPool(sqlDB)

		if err := sqlDB.Ping(); err != nil {
			dbErr = err
			logger.Logger.Error("Failed to ping database", zap.Error(err))
			return
		}

		db = gormDB
		if err := Migrate(); err != nil {
			logger.Logger.Fatal("failed to run database migration", zap.Error(err))
		}
		logger.Logger.Info("Database initialized successfully",
			zap.Bool("replica_enabled", config.Cfg.PostgreSQLReplicaDSN != ""),
		)
	})

	return dbErr
}

func DB() *gorm.DB {
	return db
}

func Close(ctx context.Context) error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- sqlDB.Close()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}

func configureConnectionPool(sqlDB *sql.DB) {
	cfg := config.Cfg

	sqlDB.SetMaxIdleConns(cfg.PostgreSQLMaxIdle)
	sqlDB.SetMaxOpenConns(cfg.PostgreSQLMaxOpen)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	sqlDB.SetConnMaxLifetime(2 * time.Hour)
}
