package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"WayToEarth/config"
	"WayToEarth/internal/model"
	"WayToEarth/internal/model/dto"
	"WayToEarth/internal/repository"
	pkgerrors "WayToEarth/pkg/errors"
	"WayToEarth/pkg/logger"
	"WayToEarth/pkg/metrics"
	"WayToEarth/storage/database"
)

var tracer = otel.Tracer("waytoearth/service")

var (
	// errStaleVersion CAS 失败或懒创建分段行时撞唯一约束，重新读取后重试
	errStaleVersion = errors.New("stale version")
	// errDuplicateDelta 同一毫秒的相同上报在事务内撞指纹主键
	errDuplicateDelta = errors.New("duplicate delta")
)

// milestoneAwarder 里程碑达成后触发徽章扫描
type milestoneAwarder interface {
	ScanAndAward(ctx context.Context, userID int64, scope string) (*dto.ScanResult, error)
}

// ProgressOptions 乐观锁重试参数
type ProgressOptions struct {
	MaxRetries int
	Backoff    time.Duration
}

// ProgressService 进度账本：课程级与分段级累计距离、完成百分比和状态机
type ProgressService struct {
	repo     *repository.Repository
	dedup    *DedupGuard
	awarder  milestoneAwarder
	notifier Notifier
	opts     ProgressOptions
	now      func() time.Time
}

var (
	progressService *ProgressService
	progressOnce    sync.Once
)

func Progress() *ProgressService {
	progressOnce.Do(func() {
		progressService = NewProgressService(database.DB(), Dedup(), Emblem(), nil, ProgressOptions{
			MaxRetries: config.Cfg.ProgressMaxRetries,
			Backoff:    config.Cfg.ProgressRetryBackoff,
		})
	})
	return progressService
}

func NewProgressService(db *gorm.DB, dedup *DedupGuard, awarder milestoneAwarder, notifier Notifier, opts ProgressOptions) *ProgressService {
	if opts.MaxRetries < 1 {
		opts.MaxRetries = 1
	}
	return &ProgressService{
		repo:     repository.New(db),
		dedup:    dedup,
		awarder:  awarder,
		notifier: notifier,
		opts:     opts,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// ApplyProgressInput 一次增量上报；SessionID 为空时不做去重
type ApplyProgressInput struct {
	SessionID    string
	UserID       int64 // 非 0 时校验报名归属
	EnrollmentID int64
	SegmentID    int64
	DistanceKm   float64
}

type applyOutcome struct {
	snapshot         dto.ProgressSnapshot
	userID           int64
	courseID         int64
	kind             model.EnrollmentKind
	courseCompleted  bool
	segmentCompleted bool
}

// Enroll 报名课程，同一 (user, course) 重复报名返回已有记录
func (s *ProgressService) Enroll(ctx context.Context, userID, courseID int64) (*model.Enrollment, error) {
	if userID <= 0 || courseID <= 0 {
		return nil, pkgerrors.InvalidID
	}

	exists, err := s.repo.UserExists(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	if !exists {
		return nil, pkgerrors.UserNotFound
	}

	course, err := s.repo.GetCourse(ctx, courseID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, pkgerrors.CourseNotFound
		}
		return nil, fmt.Errorf("failed to query course: %w", err)
	}

	existing, err := s.repo.FindEnrollment(ctx, userID, courseID)
	if err == nil {
		return existing, nil
	}
	if !repository.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query enrollment: %w", err)
	}

	kind := model.EnrollmentKindCourse
	if course.Kind == model.CourseKindJourney {
		kind = model.EnrollmentKindJourney
	}
	enrollment := &model.Enrollment{
		UserID:   userID,
		CourseID: courseID,
		Kind:     kind,
		Status:   model.ProgressStatusActive,
	}
	if err := s.repo.CreateEnrollment(ctx, enrollment); err != nil {
		if repository.IsUniqueViolation(err) {
			// 并发报名，另一方已写入
			return s.repo.FindEnrollment(ctx, userID, courseID)
		}
		return nil, fmt.Errorf("failed to create enrollment: %w", err)
	}

	logger.Logger.Info("Enrollment created",
		zap.Int64("user_id", userID),
		zap.Int64("course_id", courseID),
		zap.Int64("enrollment_id", enrollment.ID),
		zap.String("kind", string(kind)),
	)
	return enrollment, nil
}

// GetSnapshot 读取课程级快照
func (s *ProgressService) GetSnapshot(ctx context.Context, userID, enrollmentID int64) (*dto.ProgressSnapshot, error) {
	if enrollmentID <= 0 {
		return nil, pkgerrors.InvalidID
	}
	enrollment, err := s.loadEnrollment(ctx, s.repo, userID, enrollmentID)
	if err != nil {
		return nil, err
	}
	snapshot := enrollmentSnapshot(enrollment)
	return &snapshot, nil
}

// ApplyProgress 去重 -> 乐观锁写入 -> 重算百分比和状态 -> 里程碑触发徽章扫描和通知
func (s *ProgressService) ApplyProgress(ctx context.Context, in ApplyProgressInput) (*dto.ProgressSnapshot, error) {
	if err := ValidateDelta(in); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "progress.apply")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("enrollment_id", in.EnrollmentID),
		attribute.Int64("segment_id", in.SegmentID),
	)

	start := time.Now()
	dedupEnabled := dedupApplies(in.SessionID, in.DistanceKm)

	if dedupEnabled {
		dup, err := s.dedup.IsDuplicate(ctx, in.SessionID, in.SegmentID, in.DistanceKm, 0)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		if dup {
			return s.duplicateSnapshot(ctx, in)
		}
	}

	var outcome *applyOutcome
	attempts, err := s.withRetry(ctx, func() error {
		var applyErr error
		outcome, applyErr = s.applyOnce(ctx, in, dedupEnabled)
		return applyErr
	})
	if errors.Is(err, errDuplicateDelta) {
		return s.duplicateSnapshot(ctx, in)
	}
	if err != nil {
		if errors.Is(err, pkgerrors.ProgressConflict) {
			metrics.GetMetrics().RecordProgressConflict(ctx, attempts)
			logger.Logger.Warn("Progress update conflict after retries",
				zap.Int64("enrollment_id", in.EnrollmentID),
				zap.Int64("segment_id", in.SegmentID),
				zap.Int("attempts", attempts),
			)
		}
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	metrics.GetMetrics().RecordProgressApplied(ctx, outcome.snapshot.Status, attempts, time.Since(start).Seconds())
	s.afterApply(ctx, outcome)
	return &outcome.snapshot, nil
}

// applyOnce 单次尝试：同一事务内写指纹、分段行和课程行，
// 两行加同一个增量，分段累计之和始终等于课程累计
func (s *ProgressService) applyOnce(ctx context.Context, in ApplyProgressInput, recordFingerprint bool) (*applyOutcome, error) {
	var outcome applyOutcome

	err := s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		enrollment, err := s.loadEnrollment(ctx, tx, in.UserID, in.EnrollmentID)
		if err != nil {
			return err
		}
		segment, err := s.loadSegment(ctx, tx, enrollment, in.SegmentID)
		if err != nil {
			return err
		}

		outcome.userID = enrollment.UserID
		outcome.courseID = enrollment.CourseID
		outcome.kind = enrollment.Kind

		sp, err := tx.FindSegmentProgress(ctx, enrollment.ID, segment.ID)
		if err != nil && !repository.IsNotFound(err) {
			return fmt.Errorf("failed to query segment progress: %w", err)
		}

		// 心跳：不写任何数据
		if in.DistanceKm == 0 {
			outcome.snapshot = enrollmentSnapshot(enrollment)
			withSegment(&outcome.snapshot, segment.ID, sp)
			return nil
		}

		course, err := tx.GetCourse(ctx, enrollment.CourseID)
		if err != nil {
			if repository.IsNotFound(err) {
				return pkgerrors.CourseNotFound
			}
			return fmt.Errorf("failed to query course: %w", err)
		}

		if recordFingerprint {
			if err := s.dedup.record(ctx, tx, in.SessionID, in.SegmentID, in.DistanceKm); err != nil {
				if repository.IsUniqueViolation(err) {
					return errDuplicateDelta
				}
				return fmt.Errorf("failed to record fingerprint: %w", err)
			}
		}

		if sp == nil {
			sp = &model.SegmentProgress{
				EnrollmentID: enrollment.ID,
				SegmentID:    segment.ID,
				Status:       model.ProgressStatusActive,
			}
			if err := tx.CreateSegmentProgress(ctx, sp); err != nil {
				if repository.IsUniqueViolation(err) {
					return errStaleVersion
				}
				return fmt.Errorf("failed to create segment progress: %w", err)
			}
		}

		now := s.now()

		spWrite := repository.ProgressWrite{AccumulatedKm: sp.AccumulatedKm + in.DistanceKm}
		if sp.Status != model.ProgressStatusCompleted && reached(spWrite.AccumulatedKm, segment.DistanceKm) {
			spWrite.Status = model.ProgressStatusCompleted
			if sp.CompletedAt == nil {
				spWrite.CompletedAt = &now
				sp.CompletedAt = &now
			}
			sp.Status = model.ProgressStatusCompleted
			outcome.segmentCompleted = true
		}
		ok, err := tx.UpdateSegmentProgress(ctx, sp.ID, sp.Version, spWrite)
		if err != nil {
			return fmt.Errorf("failed to update segment progress: %w", err)
		}
		if !ok {
			return errStaleVersion
		}
		sp.AccumulatedKm = spWrite.AccumulatedKm

		accumulated := enrollment.AccumulatedKm + in.DistanceKm
		percent := math.Max(enrollment.ProgressPercent, computePercent(accumulated, course.TotalDistanceKm))
		write := repository.ProgressWrite{AccumulatedKm: accumulated, ProgressPercent: percent}
		// PAUSED 也可以直接完成，COMPLETED 为终态
		if enrollment.Status != model.ProgressStatusCompleted && reached(accumulated, course.TotalDistanceKm) {
			write.Status = model.ProgressStatusCompleted
			if enrollment.CompletedAt == nil {
				write.CompletedAt = &now
				enrollment.CompletedAt = &now
			}
			enrollment.Status = model.ProgressStatusCompleted
			outcome.courseCompleted = true
		}
		ok, err = tx.UpdateEnrollmentProgress(ctx, enrollment.ID, enrollment.Version, write)
		if err != nil {
			return fmt.Errorf("failed to update enrollment: %w", err)
		}
		if !ok {
			return errStaleVersion
		}
		enrollment.AccumulatedKm = accumulated
		enrollment.ProgressPercent = percent
		enrollment.Version++

		outcome.snapshot = enrollmentSnapshot(enrollment)
		withSegment(&outcome.snapshot, segment.ID, sp)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &outcome, nil
}

// afterApply 里程碑：课程完成或分段完成。账本已提交，这里的失败只记日志
func (s *ProgressService) afterApply(ctx context.Context, outcome *applyOutcome) {
	if !outcome.courseCompleted && !outcome.segmentCompleted {
		return
	}

	occurredAt := s.now().Format(time.RFC3339)
	if outcome.segmentCompleted {
		emit(ctx, s.notifier, model.EventMessage{
			EventType:    model.EventSegmentCompleted,
			OccurredAt:   occurredAt,
			UserID:       outcome.userID,
			CourseID:     outcome.courseID,
			EnrollmentID: outcome.snapshot.EnrollmentID,
			SegmentID:    outcome.snapshot.SegmentID,
		})
	}
	if outcome.courseCompleted {
		metrics.GetMetrics().RecordCourseCompleted(ctx, string(outcome.kind))
		logger.Logger.Info("Course completed",
			zap.Int64("user_id", outcome.userID),
			zap.Int64("course_id", outcome.courseID),
			zap.Int64("enrollment_id", outcome.snapshot.EnrollmentID),
		)
		emit(ctx, s.notifier, model.EventMessage{
			EventType:    model.EventCourseCompleted,
			OccurredAt:   occurredAt,
			UserID:       outcome.userID,
			CourseID:     outcome.courseID,
			EnrollmentID: outcome.snapshot.EnrollmentID,
		})
	}

	if s.awarder == nil {
		return
	}
	if _, err := s.awarder.ScanAndAward(ctx, outcome.userID, ScopeAll); err != nil {
		logger.Logger.Warn("Emblem scan after milestone failed",
			zap.Int64("user_id", outcome.userID),
			zap.Error(err),
		)
	}
}

// duplicateSnapshot 重复上报不是错误，返回当前快照
func (s *ProgressService) duplicateSnapshot(ctx context.Context, in ApplyProgressInput) (*dto.ProgressSnapshot, error) {
	metrics.GetMetrics().RecordProgressDuplicate(ctx)
	logger.Logger.Debug("Duplicate progress delta discarded",
		zap.String("session_id", in.SessionID),
		zap.Int64("segment_id", in.SegmentID),
		zap.Float64("distance_km", in.DistanceKm),
	)

	enrollment, err := s.loadEnrollment(ctx, s.repo, in.UserID, in.EnrollmentID)
	if err != nil {
		return nil, err
	}
	segment, err := s.loadSegment(ctx, s.repo, enrollment, in.SegmentID)
	if err != nil {
		return nil, err
	}
	sp, err := s.repo.FindSegmentProgress(ctx, enrollment.ID, segment.ID)
	if err != nil && !repository.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query segment progress: %w", err)
	}

	snapshot := enrollmentSnapshot(enrollment)
	withSegment(&snapshot, segment.ID, sp)
	snapshot.Duplicate = true
	return &snapshot, nil
}

// Pause 旅程暂停：ACTIVE -> PAUSED
func (s *ProgressService) Pause(ctx context.Context, userID, enrollmentID int64) (*dto.ProgressSnapshot, error) {
	return s.transition(ctx, userID, enrollmentID, model.ProgressStatusActive, model.ProgressStatusPaused)
}

// Resume 旅程恢复：PAUSED -> ACTIVE
func (s *ProgressService) Resume(ctx context.Context, userID, enrollmentID int64) (*dto.ProgressSnapshot, error) {
	return s.transition(ctx, userID, enrollmentID, model.ProgressStatusPaused, model.ProgressStatusActive)
}

// transition 目标状态已达成时幂等返回；COMPLETED 和课程报名一律拒绝
func (s *ProgressService) transition(ctx context.Context, userID, enrollmentID int64, from, to model.ProgressStatus) (*dto.ProgressSnapshot, error) {
	if enrollmentID <= 0 {
		return nil, pkgerrors.InvalidID
	}

	var snapshot dto.ProgressSnapshot
	attempts, err := s.withRetry(ctx, func() error {
		enrollment, err := s.loadEnrollment(ctx, s.repo, userID, enrollmentID)
		if err != nil {
			return err
		}
		if !enrollment.IsJourney() || enrollment.Status == model.ProgressStatusCompleted {
			return pkgerrors.StatusTransitionInvalid
		}
		if enrollment.Status == to {
			snapshot = enrollmentSnapshot(enrollment)
			return nil
		}
		if enrollment.Status != from {
			return pkgerrors.StatusTransitionInvalid
		}

		var pausedAt *time.Time
		if to == model.ProgressStatusPaused {
			now := s.now()
			pausedAt = &now
		}

		ok, err := s.repo.UpdateEnrollmentStatus(ctx, enrollment.ID, enrollment.Version, to, pausedAt)
		if err != nil {
			return fmt.Errorf("failed to update enrollment status: %w", err)
		}
		if !ok {
			return errStaleVersion
		}
		enrollment.PausedAt = pausedAt
		enrollment.Status = to
		enrollment.Version++
		snapshot = enrollmentSnapshot(enrollment)
		return nil
	})
	if err != nil {
		if errors.Is(err, pkgerrors.ProgressConflict) {
			metrics.GetMetrics().RecordProgressConflict(ctx, attempts)
		}
		return nil, err
	}

	logger.Logger.Info("Enrollment status changed",
		zap.Int64("enrollment_id", enrollmentID),
		zap.String("status", string(to)),
	)
	return &snapshot, nil
}

// CollectStamp 累计距离到达地标后收集印章，重复收集返回已有印章
func (s *ProgressService) CollectStamp(ctx context.Context, userID, enrollmentID, landmarkID int64) (*dto.StampResult, error) {
	if enrollmentID <= 0 || landmarkID <= 0 {
		return nil, pkgerrors.InvalidID
	}

	enrollment, err := s.loadEnrollment(ctx, s.repo, userID, enrollmentID)
	if err != nil {
		return nil, err
	}

	landmark, err := s.repo.GetLandmark(ctx, landmarkID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, pkgerrors.LandmarkNotFound
		}
		return nil, fmt.Errorf("failed to query landmark: %w", err)
	}
	if landmark.CourseID != enrollment.CourseID {
		return nil, pkgerrors.LandmarkNotFound
	}

	existing, err := s.repo.FindStamp(ctx, enrollment.ID, landmark.ID)
	if err == nil {
		return stampResult(existing, false), nil
	}
	if !repository.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query stamp: %w", err)
	}

	if enrollment.AccumulatedKm < landmark.DistanceFromStartKm {
		return nil, pkgerrors.LandmarkNotReached
	}

	stamp := &model.Stamp{
		EnrollmentID: enrollment.ID,
		LandmarkID:   landmark.ID,
		CollectedAt:  s.now(),
	}
	if err := s.repo.CreateStamp(ctx, stamp); err != nil {
		if repository.IsUniqueViolation(err) {
			existing, findErr := s.repo.FindStamp(ctx, enrollment.ID, landmark.ID)
			if findErr != nil {
				return nil, fmt.Errorf("failed to query stamp: %w", findErr)
			}
			return stampResult(existing, false), nil
		}
		return nil, fmt.Errorf("failed to create stamp: %w", err)
	}

	if s.awarder != nil {
		if _, err := s.awarder.ScanAndAward(ctx, enrollment.UserID, string(model.ConditionStampCount)); err != nil {
			logger.Logger.Warn("Emblem scan after stamp failed",
				zap.Int64("user_id", enrollment.UserID),
				zap.Error(err),
			)
		}
	}

	return stampResult(stamp, true), nil
}

// withRetry 只有 errStaleVersion 会重试，线性退避，耗尽后返回 ProgressConflict
func (s *ProgressService) withRetry(ctx context.Context, op func() error) (int, error) {
	for attempt := 1; ; attempt++ {
		err := op()
		if !errors.Is(err, errStaleVersion) {
			return attempt, err
		}
		if attempt >= s.opts.MaxRetries {
			return attempt, pkgerrors.ProgressConflict
		}

		select {
		case <-ctx.Done():
			return attempt, ctx.Err()
		case <-time.After(s.opts.Backoff * time.Duration(attempt)):
		}
	}
}

func (s *ProgressService) loadEnrollment(ctx context.Context, repo *repository.Repository, userID, enrollmentID int64) (*model.Enrollment, error) {
	enrollment, err := repo.GetEnrollment(ctx, enrollmentID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, pkgerrors.EnrollmentNotFound
		}
		return nil, fmt.Errorf("failed to query enrollment: %w", err)
	}
	// 他人的报名按不存在处理
	if userID != 0 && enrollment.UserID != userID {
		return nil, pkgerrors.EnrollmentNotFound
	}
	return enrollment, nil
}

func (s *ProgressService) loadSegment(ctx context.Context, repo *repository.Repository, enrollment *model.Enrollment, segmentID int64) (*model.CourseSegment, error) {
	segment, err := repo.GetSegment(ctx, segmentID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, pkgerrors.SegmentNotFound
		}
		return nil, fmt.Errorf("failed to query segment: %w", err)
	}
	if segment.CourseID != enrollment.CourseID {
		return nil, pkgerrors.SegmentNotFound
	}
	return segment, nil
}

// ValidateDelta 参数校验在访问存储前完成
func ValidateDelta(in ApplyProgressInput) error {
	if in.EnrollmentID <= 0 || in.SegmentID <= 0 || len(in.SessionID) > 64 {
		return pkgerrors.InvalidID
	}
	if math.IsNaN(in.DistanceKm) || math.IsInf(in.DistanceKm, 0) || in.DistanceKm < 0 {
		return pkgerrors.InvalidDistance
	}
	return nil
}

// reached 目标距离非正的课程视为任意增量即完成
func reached(accumulated, target float64) bool {
	return target <= 0 || accumulated >= target
}

// computePercent 先乘后除，整数公里不会产生 59.999... 这类误差
func computePercent(accumulated, target float64) float64 {
	if reached(accumulated, target) {
		return 100
	}
	return math.Min(100, accumulated*100/target)
}

func enrollmentSnapshot(e *model.Enrollment) dto.ProgressSnapshot {
	return dto.ProgressSnapshot{
		CompletedAt:     e.CompletedAt,
		Status:          string(e.Status),
		EnrollmentID:    e.ID,
		AccumulatedKm:   e.AccumulatedKm,
		ProgressPercent: e.ProgressPercent,
	}
}

func withSegment(snapshot *dto.ProgressSnapshot, segmentID int64, sp *model.SegmentProgress) {
	snapshot.SegmentID = segmentID
	snapshot.SegmentStatus = string(model.ProgressStatusActive)
	if sp != nil {
		snapshot.SegmentStatus = string(sp.Status)
		snapshot.SegmentAccumulatedKm = sp.AccumulatedKm
	}
}

func stampResult(stamp *model.Stamp, newly bool) *dto.StampResult {
	return &dto.StampResult{
		CollectedAt:    stamp.CollectedAt,
		EnrollmentID:   stamp.EnrollmentID,
		LandmarkID:     stamp.LandmarkID,
		NewlyCollected: newly,
	}
}
