package notifier_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authflow/pkg/notifier"
)

func TestNew(t *testing.T) {
	t.Parallel()

	n := notifier.New(notifier.TypeError, "sign-in failed")
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, notifier.TypeError, n.Type)
	assert.Equal(t, "sign-in failed", n.Message)
	assert.False(t, n.CreatedAt.IsZero())
}

func TestMemory(t *testing.T) {
	t.Parallel()

	m := notifier.NewMemory()
	ctx := context.Background()

	_, ok := m.Last()
	assert.False(t, ok)

	require.NoError(t, m.Notify(ctx, notifier.New(notifier.TypeInfo, "first")))
	require.NoError(t, m.Notify(ctx, notifier.New(notifier.TypeSuccess, "second")))

	all := m.All()
	require.Len(t, all, 2)
	assert.Equal(t, "first", all[0].Message)

	last, ok := m.Last()
	require.True(t, ok)
	assert.Equal(t, "second", last.Message)

	m.Reset()
	assert.Empty(t, m.All())
}

func TestSlog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	s := notifier.NewSlog(log)
	require.NoError(t, s.Notify(context.Background(), notifier.New(notifier.TypeWarning, "careful")))

	out := buf.String()
	assert.Contains(t, out, "careful")
	assert.Contains(t, out, "level=WARN")
}

func TestMulti(t *testing.T) {
	t.Parallel()

	t.Run("delivers to all channels", func(t *testing.T) {
		t.Parallel()

		a := notifier.NewMemory()
		b := notifier.NewMemory()
		m := notifier.NewMulti([]notifier.Notifier{a, b})

		require.NoError(t, m.Notify(context.Background(), notifier.New(notifier.TypeInfo, "hello")))
		assert.Len(t, a.All(), 1)
		assert.Len(t, b.All(), 1)
	})

	t.Run("failing channel does not stop delivery", func(t *testing.T) {
		t.Parallel()

		failing := notifier.Func(func(context.Context, notifier.Notification) error {
			return errors.New("boom")
		})
		rec := notifier.NewMemory()
		m := notifier.NewMulti(
			[]notifier.Notifier{failing, rec},
			notifier.WithMultiLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))),
		)

		require.NoError(t, m.Notify(context.Background(), notifier.New(notifier.TypeInfo, "hello")))
		assert.Len(t, rec.All(), 1)
	})
}
