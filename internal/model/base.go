package model

import "time"

// BaseModel 账本类表不做软删除，行创建后只追加或更新
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
}
