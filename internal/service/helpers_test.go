package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"WayToEarth/internal/model"
	"WayToEarth/internal/testutil"
)

type fixture struct {
	db  *gorm.DB
	seq int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return &fixture{db: testutil.NewDB(t)}
}

func (f *fixture) user(t *testing.T) *model.User {
	t.Helper()
	f.seq++
	u := &model.User{Nickname: fmt.Sprintf("runner-%d", f.seq)}
	require.NoError(t, f.db.Create(u).Error)
	return u
}

// course 创建课程和分段，分段距离按顺序给出
func (f *fixture) course(t *testing.T, kind model.CourseKind, totalKm float64, segmentKms ...float64) (*model.Course, []*model.CourseSegment) {
	t.Helper()
	c := &model.Course{Title: "course", Kind: kind, TotalDistanceKm: totalKm}
	require.NoError(t, f.db.Create(c).Error)

	segments := make([]*model.CourseSegment, 0, len(segmentKms))
	for i, km := range segmentKms {
		seg := &model.CourseSegment{CourseID: c.ID, Sequence: i + 1, DistanceKm: km}
		require.NoError(t, f.db.Create(seg).Error)
		segments = append(segments, seg)
	}
	return c, segments
}

func (f *fixture) emblem(t *testing.T, code string, conditionType model.ConditionType, value float64) *model.Emblem {
	t.Helper()
	e := &model.Emblem{Code: code, Name: code, ConditionType: conditionType, ConditionValue: value}
	require.NoError(t, f.db.Create(e).Error)
	return e
}

func (f *fixture) completedRun(t *testing.T, userID int64, startedAt time.Time, distanceKm, paceSec float64) {
	t.Helper()
	f.seq++
	rec := &model.RunningRecord{
		UserID:         userID,
		SessionID:      fmt.Sprintf("run-%d", f.seq),
		Status:         model.RunningStatusCompleted,
		StartedAt:      startedAt,
		DistanceKm:     distanceKm,
		AveragePaceSec: paceSec,
	}
	require.NoError(t, f.db.Create(rec).Error)
}

// fakeClock 测试用可推进时钟
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 4, 1, 7, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []model.EventMessage
}

func (n *recordingNotifier) Notify(_ context.Context, event model.EventMessage) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
	return nil
}

func (n *recordingNotifier) ofType(eventType model.EventType) []model.EventMessage {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []model.EventMessage
	for _, e := range n.events {
		if e.EventType == eventType {
			out = append(out, e)
		}
	}
	return out
}

// progressHarness 组装账本、去重和徽章服务，共用一个时钟和通知器
type progressHarness struct {
	*fixture
	clock    *fakeClock
	notifier *recordingNotifier
	dedup    *DedupGuard
	emblems  *EmblemService
	progress *ProgressService
}

func newProgressHarness(t *testing.T) *progressHarness {
	t.Helper()
	f := newFixture(t)
	clock := newFakeClock()
	notifier := &recordingNotifier{}

	dedup := NewDedupGuard(f.db, 30*time.Second)
	dedup.now = clock.Now
	emblems := NewEmblemService(f.db, notifier, SweepOptions{PageSize: 2, Concurrency: 2})
	emblems.now = clock.Now
	progress := NewProgressService(f.db, dedup, emblems, notifier, ProgressOptions{MaxRetries: 3, Backoff: time.Millisecond})
	progress.now = clock.Now

	return &progressHarness{
		fixture:  f,
		clock:    clock,
		notifier: notifier,
		dedup:    dedup,
		emblems:  emblems,
		progress: progress,
	}
}
