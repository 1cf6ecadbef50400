package queue

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"WayToEarth/internal/model"
	"WayToEarth/internal/model/dto"
	"WayToEarth/internal/service"
	"WayToEarth/pkg/errors"
	"WayToEarth/pkg/snowflake"
	"WayToEarth/storage/mq"
)

type fakeApplier struct {
	calls []service.ApplyProgressInput
	err   error
}

func (f *fakeApplier) ApplyProgress(_ context.Context, in service.ApplyProgressInput) (*dto.ProgressSnapshot, error) {
	f.calls = append(f.calls, in)
	if f.err != nil {
		return nil, f.err
	}
	return &dto.ProgressSnapshot{EnrollmentID: in.EnrollmentID, AccumulatedKm: in.DistanceKm}, nil
}

type memoryMarks struct {
	mu    sync.Mutex
	state map[string]string
}

func (m *memoryMarks) marks() messageMarks {
	m.state = map[string]string{}
	return messageMarks{
		tryMark: func(_ context.Context, id string, _ time.Duration) (bool, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			if _, ok := m.state[id]; ok {
				return false, nil
			}
			m.state[id] = "processing"
			return true, nil
		},
		unmark: func(_ context.Context, id string) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			delete(m.state, id)
			return nil
		},
		markDone: func(_ context.Context, id string, _ time.Duration) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.state[id] = "processed"
			return nil
		},
	}
}

func deltaBody(t *testing.T, msg model.ProgressDeltaMessage) []byte {
	t.Helper()
	body, err := json.Marshal(msg)
	require.NoError(t, err)
	return body
}

func TestProgressDeltaHandlerSkipsRedelivery(t *testing.T) {
	ctx := context.Background()
	applier := &fakeApplier{}
	store := &memoryMarks{}
	handler := newProgressDeltaHandler(applier, store.marks())

	body := deltaBody(t, model.ProgressDeltaMessage{MessageID: "m1", SessionID: "s1", EnrollmentID: 3, SegmentID: 4, DistanceKm: 1.2})
	require.NoError(t, handler(ctx, body))
	require.Equal(t, "processed", store.state["m1"])

	err := handler(ctx, body)
	var skip *errors.SkipMessageError
	require.True(t, stderrors.As(err, &skip))
	require.Len(t, applier.calls, 1)
	require.Equal(t, "s1", applier.calls[0].SessionID)
}

func TestProgressDeltaHandlerErrorClassification(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed body is skipped", func(t *testing.T) {
		store := &memoryMarks{}
		handler := newProgressDeltaHandler(&fakeApplier{}, store.marks())
		var skip *errors.SkipMessageError
		require.True(t, stderrors.As(handler(ctx, []byte("{")), &skip))
	})

	t.Run("business error is skipped", func(t *testing.T) {
		store := &memoryMarks{}
		handler := newProgressDeltaHandler(&fakeApplier{err: errors.EnrollmentNotFound}, store.marks())
		err := handler(ctx, deltaBody(t, model.ProgressDeltaMessage{MessageID: "m2", EnrollmentID: 1, SegmentID: 1, DistanceKm: 1}))
		var skip *errors.SkipMessageError
		require.True(t, stderrors.As(err, &skip))
		require.Equal(t, errors.EnrollmentNotFound.Code, skip.Reason)
	})

	t.Run("conflict is requeued and unmarked", func(t *testing.T) {
		store := &memoryMarks{}
		handler := newProgressDeltaHandler(&fakeApplier{err: errors.ProgressConflict}, store.marks())
		err := handler(ctx, deltaBody(t, model.ProgressDeltaMessage{MessageID: "m3", EnrollmentID: 1, SegmentID: 1, DistanceKm: 1}))
		require.Error(t, err)
		var skip *errors.SkipMessageError
		require.False(t, stderrors.As(err, &skip))
		require.ErrorIs(t, err, errors.ProgressConflict)
		_, marked := store.state["m3"]
		require.False(t, marked)
	})

	t.Run("storage error is requeued", func(t *testing.T) {
		store := &memoryMarks{}
		handler := newProgressDeltaHandler(&fakeApplier{err: stderrors.New("connection reset")}, store.marks())
		err := handler(ctx, deltaBody(t, model.ProgressDeltaMessage{MessageID: "m4", EnrollmentID: 1, SegmentID: 1, DistanceKm: 1}))
		require.Error(t, err)
		_, marked := store.state["m4"]
		require.False(t, marked)
	})
}

type captured struct {
	exchange   string
	routingKey string
	body       interface{}
}

func TestEventNotifierRoutesByEventType(t *testing.T) {
	require.NoError(t, snowflake.Init(1, 1))

	var got []captured
	n := &EventNotifier{publish: func(_ context.Context, exchange, routingKey string, body interface{}) error {
		got = append(got, captured{exchange, routingKey, body})
		return nil
	}}

	err := n.Notify(context.Background(), model.EventMessage{EventType: model.EventEmblemGranted, UserID: 7, EmblemID: 9})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, mq.ExchangeEvents, got[0].exchange)
	require.Equal(t, "events.emblem_granted", got[0].routingKey)

	event := got[0].body.(model.EventMessage)
	require.True(t, strings.HasPrefix(event.MessageID, "evt_"))
	require.NotEmpty(t, event.OccurredAt)
	require.Equal(t, int64(9), event.EmblemID)
}

func TestPublishProgressDeltaFillsMessageID(t *testing.T) {
	require.NoError(t, snowflake.Init(1, 1))

	var got captured
	id, err := publishProgressDelta(context.Background(), func(_ context.Context, exchange, routingKey string, body interface{}) error {
		got = captured{exchange, routingKey, body}
		return nil
	}, model.ProgressDeltaMessage{SessionID: "s1", EnrollmentID: 1, SegmentID: 2, DistanceKm: 0.5})
	require.NoError(t, err)
	require.Equal(t, mq.ExchangeProgress, got.exchange)
	require.Equal(t, mq.RoutingProgressKey, got.routingKey)
	msg := got.body.(model.ProgressDeltaMessage)
	require.True(t, strings.HasPrefix(msg.MessageID, "delta_"))
	require.Equal(t, msg.MessageID, id)
}
