package repository

import (
	"context"

	"WayToEarth/internal/model"
)

func (r *Repository) GetCourse(ctx context.Context, id int64) (*model.Course, error) {
	c := r.dao().Course
	return c.WithContext(ctx).Where(c.ID.Eq(id)).First()
}

func (r *Repository) GetSegment(ctx context.Context, id int64) (*model.CourseSegment, error) {
	cs := r.dao().CourseSegment
	return cs.WithContext(ctx).Where(cs.ID.Eq(id)).First()
}

func (r *Repository) GetLandmark(ctx context.Context, id int64) (*model.Landmark, error) {
	l := r.dao().Landmark
	return l.WithContext(ctx).Where(l.ID.Eq(id)).First()
}

func (r *Repository) UserExists(ctx context.Context, id int64) (bool, error) {
	u := r.dao().User
	count, err := u.WithContext(ctx).Where(u.ID.Eq(id)).Count()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListUserIDsAfter 按 id 游标分页，供全量徽章扫描使用
func (r *Repository) ListUserIDsAfter(ctx context.Context, afterID int64, limit int) ([]int64, error) {
	var ids []int64
	u := r.dao().User
	err := u.WithContext(ctx).
		Where(u.ID.Gt(afterID)).
		Order(u.ID).
		Limit(limit).
		Pluck(u.ID, &ids)
	return ids, err
}
