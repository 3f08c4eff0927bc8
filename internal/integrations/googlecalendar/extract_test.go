package googlecalendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TWS-LessonService/internal/domain"
)

func TestExtractDate_DateTimePreservesOffset(t *testing.T) {
	got, err := extractDate(eventTime{DateTime: "2026-03-10T09:00:00+01:00"}, time.UTC)

	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)))
	_, offset := got.Zone()
	assert.Equal(t, 3600, offset)
}

func TestExtractDate_DateOnlyIsLocalMidnight(t *testing.T) {
	loc := time.FixedZone("CET", 3600)

	got, err := extractDate(eventTime{Date: "2026-03-10"}, loc)

	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2026, time.March, 10, 0, 0, 0, 0, loc)))
}

func TestExtractDate_NeitherFieldIsError(t *testing.T) {
	_, err := extractDate(eventTime{}, time.UTC)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedEvent)
}

func TestExtractDate_GarbageDateTimeIsError(t *testing.T) {
	_, err := extractDate(eventTime{DateTime: "not-a-date"}, time.UTC)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedEvent)
}

func TestExtractEvents_DropsCancelled(t *testing.T) {
	items := []rawEvent{
		{
			Status: "confirmed",
			Start:  eventTime{DateTime: "2026-03-10T09:00:00Z"},
			End:    eventTime{DateTime: "2026-03-10T10:00:00Z"},
		},
		{
			Status: "cancelled",
			Start:  eventTime{},
			End:    eventTime{},
		},
	}

	events, err := extractEvents(items, time.UTC)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventStatusConfirmed, events[0].Status)
}

func TestExtractEvents_MalformedEventFailsLoudly(t *testing.T) {
	items := []rawEvent{
		{
			Status: "confirmed",
			Start:  eventTime{},
			End:    eventTime{DateTime: "2026-03-10T10:00:00Z"},
		},
	}

	_, err := extractEvents(items, time.UTC)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedEvent)
}
