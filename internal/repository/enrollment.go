package repository

import (
	"context"
	"time"

	"gorm.io/gen"
	"gorm.io/gen/field"

	"WayToEarth/internal/model"
)

// ProgressWrite 一次账本 CAS 写入的新值
// Status 为空表示不改状态，CompletedAt 为 nil 表示不写完成时间
type ProgressWrite struct {
	AccumulatedKm   float64
	ProgressPercent float64 // 分段行没有百分比，忽略
	Status          model.ProgressStatus
	CompletedAt     *time.Time
}

func (r *Repository) GetEnrollment(ctx context.Context, id int64) (*model.Enrollment, error) {
	e := r.dao().Enrollment
	return e.WithContext(ctx).Where(e.ID.Eq(id)).First()
}

func (r *Repository) FindEnrollment(ctx context.Context, userID, courseID int64) (*model.Enrollment, error) {
	e := r.dao().Enrollment
	return e.WithContext(ctx).
		Where(e.UserID.Eq(userID), e.CourseID.Eq(courseID)).
		First()
}

func (r *Repository) CreateEnrollment(ctx context.Context, enrollment *model.Enrollment) error {
	return r.dao().Enrollment.WithContext(ctx).Create(enrollment)
}

// UpdateEnrollmentProgress 课程账本行的 CAS 写入
func (r *Repository) UpdateEnrollmentProgress(ctx context.Context, id, expectedVersion int64, w ProgressWrite) (bool, error) {
	e := r.dao().Enrollment
	assigns := []field.AssignExpr{
		e.AccumulatedKm.Value(w.AccumulatedKm),
		e.ProgressPercent.Value(w.ProgressPercent),
		e.Version.Add(1),
	}
	if w.Status != "" {
		assigns = append(assigns, e.Status.Value(string(w.Status)))
	}
	if w.CompletedAt != nil {
		assigns = append(assigns, e.CompletedAt.Value(*w.CompletedAt))
	}

	return updateByVersion(expectedVersion, func() (gen.ResultInfo, error) {
		return e.WithContext(ctx).
			Where(e.ID.Eq(id), e.Version.Eq(expectedVersion)).
			UpdateSimple(assigns...)
	})
}

// UpdateEnrollmentStatus 暂停/恢复的 CAS 写入，pausedAt 为 nil 时清空暂停时间
func (r *Repository) UpdateEnrollmentStatus(ctx context.Context, id, expectedVersion int64, status model.ProgressStatus, pausedAt *time.Time) (bool, error) {
	e := r.dao().Enrollment
	assigns := []field.AssignExpr{
		e.Status.Value(string(status)),
		e.Version.Add(1),
	}
	if pausedAt != nil {
		assigns = append(assigns, e.PausedAt.Value(*pausedAt))
	} else {
		assigns = append(assigns, e.PausedAt.Null())
	}

	return updateByVersion(expectedVersion, func() (gen.ResultInfo, error) {
		return e.WithContext(ctx).
			Where(e.ID.Eq(id), e.Version.Eq(expectedVersion)).
			UpdateSimple(assigns...)
	})
}

func (r *Repository) CountCompletedEnrollments(ctx context.Context, userID int64) (int64, error) {
	e := r.dao().Enrollment
	return e.WithContext(ctx).
		Where(e.UserID.Eq(userID), e.Status.Eq(string(model.ProgressStatusCompleted))).
		Count()
}

func (r *Repository) FindSegmentProgress(ctx context.Context, enrollmentID, segmentID int64) (*model.SegmentProgress, error) {
	sp := r.dao().SegmentProgress
	return sp.WithContext(ctx).
		Where(sp.EnrollmentID.Eq(enrollmentID), sp.SegmentID.Eq(segmentID)).
		First()
}

func (r *Repository) CreateSegmentProgress(ctx context.Context, progress *model.SegmentProgress) error {
	return r.dao().SegmentProgress.WithContext(ctx).Create(progress)
}

// UpdateSegmentProgress 分段行的 CAS 写入
func (r *Repository) UpdateSegmentProgress(ctx context.Context, id, expectedVersion int64, w ProgressWrite) (bool, error) {
	sp := r.dao().SegmentProgress
	assigns := []field.AssignExpr{
		sp.AccumulatedKm.Value(w.AccumulatedKm),
		sp.Version.Add(1),
	}
	if w.Status != "" {
		assigns = append(assigns, sp.Status.Value(string(w.Status)))
	}
	if w.CompletedAt != nil {
		assigns = append(assigns, sp.CompletedAt.Value(*w.CompletedAt))
	}

	return updateByVersion(expectedVersion, func() (gen.ResultInfo, error) {
		return sp.WithContext(ctx).
			Where(sp.ID.Eq(id), sp.Version.Eq(expectedVersion)).
			UpdateSimple(assigns...)
	})
}

func (r *Repository) FindStamp(ctx context.Context, enrollmentID, landmarkID int64) (*model.Stamp, error) {
	s := r.dao().Stamp
	return s.WithContext(ctx).
		Where(s.EnrollmentID.Eq(enrollmentID), s.LandmarkID.Eq(landmarkID)).
		First()
}

func (r *Repository) CreateStamp(ctx context.Context, stamp *model.Stamp) error {
	return r.dao().Stamp.WithContext(ctx).Create(stamp)
}

// CountStampsByUser 用户在所有旅程中收集的印章数
func (r *Repository) CountStampsByUser(ctx context.Context, userID int64) (int64, error) {
	q := r.dao()
	s, e := q.Stamp, q.Enrollment
	return s.WithContext(ctx).
		Join(&e, e.ID.EqCol(s.EnrollmentID)).
		Where(e.UserID.Eq(userID)).
		Count()
}
