package repository

import (
	"context"

	"WayToEarth/internal/model"
)

func (r *Repository) GetEmblem(ctx context.Context, id int64) (*model.Emblem, error) {
	e := r.dao().Emblem
	return e.WithContext(ctx).Where(e.ID.Eq(id)).First()
}

// ListEmblems conditionType 为空时返回全部
func (r *Repository) ListEmblems(ctx context.Context, conditionType model.ConditionType) ([]*model.Emblem, error) {
	e := r.dao().Emblem
	do := e.WithContext(ctx).Order(e.ID)
	if conditionType != "" {
		do = do.Where(e.ConditionType.Eq(string(conditionType)))
	}
	return do.Find()
}

func (r *Repository) CountEmblems(ctx context.Context) (int64, error) {
	return r.dao().Emblem.WithContext(ctx).Count()
}

func (r *Repository) HasUserEmblem(ctx context.Context, userID, emblemID int64) (bool, error) {
	ue := r.dao().UserEmblem
	count, err := ue.WithContext(ctx).
		Where(ue.UserID.Eq(userID), ue.EmblemID.Eq(emblemID)).
		Count()
	return count > 0, err
}

// CreateUserEmblem 唯一约束冲突原样返回，由调用方用 IsUniqueViolation 判断
func (r *Repository) CreateUserEmblem(ctx context.Context, grant *model.UserEmblem) error {
	return r.dao().UserEmblem.WithContext(ctx).Create(grant)
}

func (r *Repository) CountUserEmblems(ctx context.Context, userID int64) (int64, error) {
	ue := r.dao().UserEmblem
	return ue.WithContext(ctx).Where(ue.UserID.Eq(userID)).Count()
}

func (r *Repository) ListUserEmblemIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	ue := r.dao().UserEmblem
	err := ue.WithContext(ctx).
		Where(ue.UserID.Eq(userID)).
		Pluck(ue.EmblemID, &ids)
	return ids, err
}
