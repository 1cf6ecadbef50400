package repository

import (
	"fmt"
	"os"
	"time"

	"gorm.io/gen"

	"WayToEarth/internal/model"
	"WayToEarth/storage/database"
)

// ProgressFingerprintQuerier 指纹清理，按创建时间整批删除
type ProgressFingerprintQuerier interface {
	// PurgeBefore 删除 cutoff 之前创建的指纹
	//
	// DELETE FROM @@table WHERE created_at < @cutoff
	PurgeBefore(cutoff time.Time) (gen.RowsAffected, error)
}

// Generate 重新生成 internal/repository/query，模型变更后在仓库根目录执行 go run ./cmd/gen
func Generate() error {
	// Init 内部会跑迁移，保证表结构和模型一致
	if err := database.Init(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	db := database.DB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:           "./internal/repository/query",
		ModelPkgPath:      "WayToEarth/internal/model",
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface | gen.WithoutContext,
		FieldNullable:     true,
		FieldCoverable:    false,
		FieldSignable:     false,
		FieldWithIndexTag: false,
		FieldWithTypeTag:  true,
	})

	g.UseDB(db)

	// 沿用手写的 model，不从表结构反向生成
	g.ApplyBasic(
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

	g.ApplyInterface(func(ProgressFingerprintQuerier) {}, &model.ProgressFingerprint{})

	g.Execute()

	return nil
}

func RunGenerate() {
	if err := Generate(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate code: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Code generation completed successfully!")
}
