package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bay-services/dashboard/backend/internal/domain"
)

func TestEncodeDecode(t *testing.T) {
	event := domain.ChangeEvent{Collection: "dispatchingSchedule", ID: "3", Op: domain.ChangeUpdate}

	payload, err := Encode(event)
	require.NoError(t, err)
	assert.JSONEq(t, `{"collection":"dispatchingSchedule","id":"3","op":"update"}`, payload)

	got, err := Decode(payload)
	require.NoError(t, err)
	assert.Equal(t, event, got)
}

func TestDecode_Garbage(t *testing.T) {
	_, err := Decode("not json")
	assert.Error(t, err)
}

func TestIsScheduleChange(t *testing.T) {
	assert.True(t, IsScheduleChange(domain.ChangeEvent{Collection: "dispatchingSchedule"}))
	assert.True(t, IsScheduleChange(domain.ChangeEvent{Collection: "managementSchedule"}))
	assert.False(t, IsScheduleChange(domain.ChangeEvent{Collection: "propertyManagement"}))
	assert.False(t, IsScheduleChange(domain.ChangeEvent{}))
}

func newTestNotifier(t *testing.T) (*Notifier, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewNotifier(rdb), rdb
}

func TestNotifier_SubscribeSkipsUndecodableMessages(t *testing.T) {
	n, rdb := newTestNotifier(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := n.Subscribe(ctx)
	require.NoError(t, err)

	require.NoError(t, rdb.Publish(ctx, Channel, "not json").Err())
	require.NoError(t, n.Publish(ctx, "dispatchingSchedule", "3", domain.ChangeUpdate))

	select {
	case got := <-events:
		assert.Equal(t, domain.ChangeEvent{Collection: "dispatchingSchedule", ID: "3", Op: domain.ChangeUpdate}, got)
	case <-time.After(2 * time.Second):
		t.Fatal("no change event received")
	}

	select {
	case got := <-events:
		t.Fatalf("unexpected event %v", got)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestNotifier_SubscribeClosesWhenContextEnds(t *testing.T) {
	n, _ := newTestNotifier(t)

	ctx, cancel := context.WithCancel(context.Background())
	events, err := n.Subscribe(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("events channel was not closed")
	}
}

func TestNotifier_SubscribeFailsWithoutRedis(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	defer rdb.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := NewNotifier(rdb).Subscribe(ctx)
	assert.Error(t, err)
}
