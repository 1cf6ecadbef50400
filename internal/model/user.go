package model

// User 用户模型，核心只做存在性校验和全量扫描分页
type User struct {
	BaseModel
	Nickname string `gorm:"type:varchar(64);not null;default:''" json:"nickname"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
