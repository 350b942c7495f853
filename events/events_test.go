package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeMemberBounds(t *testing.T) {
	t.Run("solo event has no member slots", func(t *testing.T) {
		min, max := Range{Min: 1, Max: 1}.MemberBounds()
		assert.Equal(t, 0, min)
		assert.Equal(t, 0, max)
		assert.True(t, Range{Min: 1, Max: 1}.Solo())
	})

	t.Run("registrant occupies one slot", func(t *testing.T) {
		min, max := Range{Min: 3, Max: 5}.MemberBounds()
		assert.Equal(t, 2, min)
		assert.Equal(t, 4, max)
	})

	t.Run("min of one floors at zero members", func(t *testing.T) {
		min, max := Range{Min: 1, Max: 3}.MemberBounds()
		assert.Equal(t, 0, min)
		assert.Equal(t, 2, max)
	})
}

func TestCatalogGetEvent(t *testing.T) {
	catalog := NewCatalog(DefaultCatalogTTL)

	t.Run("known event", func(t *testing.T) {
		event, err := catalog.GetEvent(context.Background(), "dark-coding")
		require.NoError(t, err)
		assert.Equal(t, "Dark Coding", event.Name)
		assert.Equal(t, FEST_TECHELONS, event.Fest)
		assert.Equal(t, Range{Min: 1, Max: 2}, event.TeamSize)
		assert.Equal(t, STATUS_OPEN, event.RegistrationStatus)
	})

	t.Run("unknown event", func(t *testing.T) {
		_, err := catalog.GetEvent(context.Background(), "nope")
		require.Error(t, err)
		var eventErr *Error
		require.True(t, errors.As(err, &eventErr))
		assert.Equal(t, REASON_EVENT_DOES_NOT_EXIST, eventErr.Reason)
	})

	t.Run("every catalog entry has valid team bounds", func(t *testing.T) {
		resp, err := catalog.GetEvents(context.Background(), nil, 50, nil)
		require.NoError(t, err)
		require.NotEmpty(t, resp.Data)
		for _, event := range resp.Data {
			assert.LessOrEqual(t, event.TeamSize.Min, event.TeamSize.Max, "event %s", event.ID)
		}
	})
}

func TestCatalogGetEvents(t *testing.T) {
	catalog := NewCatalog(DefaultCatalogTTL)

	t.Run("fest filter", func(t *testing.T) {
		fest := FEST_WORKSHOP
		resp, err := catalog.GetEvents(context.Background(), &fest, 50, nil)
		require.NoError(t, err)
		require.NotEmpty(t, resp.Data)
		for _, event := range resp.Data {
			assert.Equal(t, FEST_WORKSHOP, event.Fest)
		}
	})

	t.Run("paging walks the whole catalog without repeats", func(t *testing.T) {
		seen := map[string]bool{}
		var cursor *string
		for {
			resp, err := catalog.GetEvents(context.Background(), nil, 2, cursor)
			require.NoError(t, err)
			assert.LessOrEqual(t, len(resp.Data), 2)
			for _, event := range resp.Data {
				assert.False(t, seen[event.ID], "event %s returned twice", event.ID)
				seen[event.ID] = true
			}
			if !resp.HasNextPage {
				assert.Nil(t, resp.Cursor)
				break
			}
			require.NotNil(t, resp.Cursor)
			cursor = resp.Cursor
		}
		assert.GreaterOrEqual(t, len(seen), 3)
	})

	t.Run("invalid cursor", func(t *testing.T) {
		bad := "not-base64!!!"
		_, err := catalog.GetEvents(context.Background(), nil, 10, &bad)
		require.Error(t, err)
		var eventErr *Error
		require.True(t, errors.As(err, &eventErr))
		assert.Equal(t, REASON_INVALID_CURSOR, eventErr.Reason)
	})
}

func TestCatalogTTL(t *testing.T) {
	catalog := NewCatalog(time.Minute)

	now := time.Now()
	catalog.now = func() time.Time { return now }

	_, err := catalog.GetEvent(context.Background(), "web-hive")
	require.NoError(t, err)
	firstLoad := catalog.loadedAt

	// Within the TTL the memoized parse is reused.
	now = now.Add(30 * time.Second)
	_, err = catalog.GetEvent(context.Background(), "web-hive")
	require.NoError(t, err)
	assert.Equal(t, firstLoad, catalog.loadedAt)

	// Past the TTL the read re-derives the same catalog; a cache miss is
	// not observable beyond the reload timestamp.
	now = now.Add(2 * time.Minute)
	event, err := catalog.GetEvent(context.Background(), "web-hive")
	require.NoError(t, err)
	assert.Equal(t, "Web Hive", event.Name)
	assert.NotEqual(t, firstLoad, catalog.loadedAt)
}
