package pubsub

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event struct {
	N int
}

type recordingSink struct {
	topics []string
	err    error
}

func (s *recordingSink) Publish(ctx context.Context, topic string, payload any) error {
	s.topics = append(s.topics, topic)
	return s.err
}

func TestTopicDeliversInOrder(t *testing.T) {
	topic := NewTopic[event]("numbers")
	assert.Equal(t, "numbers", topic.Name())

	var got []string
	topic.Subscribe(func(ctx context.Context, e event) { got = append(got, "a") })
	unsubscribe := topic.Subscribe(func(ctx context.Context, e event) { got = append(got, "b") })
	topic.Subscribe(func(ctx context.Context, e event) { got = append(got, "c") })

	require.NoError(t, topic.Publish(context.Background(), event{N: 1}))
	assert.Equal(t, []string{"a", "b", "c"}, got)

	got = nil
	unsubscribe()
	unsubscribe()
	require.NoError(t, topic.Publish(context.Background(), event{N: 2}))
	assert.Equal(t, []string{"a", "c"}, got)
}

func TestTopicSinks(t *testing.T) {
	topic := NewTopic[event]("numbers")
	ok := &recordingSink{}
	bad := &recordingSink{err: errors.New("down")}
	topic.AttachSink(ok)
	topic.AttachSink(bad)

	delivered := false
	topic.Subscribe(func(ctx context.Context, e event) { delivered = true })

	err := topic.Publish(context.Background(), event{N: 1})
	require.Error(t, err)
	assert.True(t, delivered, "subscribers run even when a sink fails")
	assert.Equal(t, []string{"numbers"}, ok.topics)
	assert.Equal(t, []string{"numbers"}, bad.topics)
}
