package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gen"
	"gorm.io/gorm"

	"WayToEarth/internal/repository/query"
)

// Repository 基于 gen 生成的 query 包做数据访问，事务内通过 Transaction 拿到绑定 tx 的副本
type Repository struct {
	db      *gorm.DB
	q       *query.Query
	replica bool
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db, q: query.Use(db)}
}

// Transaction 在同一事务内执行 fn，fn 返回错误则回滚
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// ReadReplica 返回走只读副本的副本，只用于容忍延迟的统计读
// 未注册 dbresolver 时与主库等价
func (r *Repository) ReadReplica() *Repository {
	return &Repository{db: r.db, q: r.q, replica: true}
}

func (r *Repository) dao() *query.Query {
	if r.replica {
		return r.q.ReadDB()
	}
	return r.q
}

// IsUniqueViolation 只识别唯一约束冲突，外键、非空等其他约束错误照常向上返回
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// IsNotFound 包一层，service 层不直接依赖 gorm 的错误值
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// updateByVersion 乐观锁 CAS：update 只在 id 与 version 同时匹配时生效，并把 version 加一
// 返回 false 表示版本已被其他写入者推进
func updateByVersion(expectedVersion int64, update func() (gen.ResultInfo, error)) (bool, error) {
	if expectedVersion < 0 {
		return false, errors.New("expected version must be >= 0")
	}

	info, err := update()
	if err != nil {
		return false, err
	}
	return info.RowsAffected > 0, nil
}
