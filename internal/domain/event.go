package domain

import "time"

// EventStatus represents the status of a calendar event
type EventStatus string

const (
	EventStatusConfirmed EventStatus = "confirmed"
	EventStatusTentative EventStatus = "tentative"
	EventStatusCancelled EventStatus = "cancelled"
)

// CalendarEvent represents a single busy interval on a tutor's calendar.
// Immutable once extracted from the provider response.
type CalendarEvent struct {
	StartDate time.Time
	EndDate   time.Time
	Status    EventStatus
}

// IsCancelled returns true if the event has been cancelled by the organizer
func (e *CalendarEvent) IsCancelled() bool {
	return e.Status == EventStatusCancelled
}

// HourSlot represents one hour of a day on the occupancy grid.
// Time is the UTC instant of the start of the local hour, in epoch milliseconds.
type HourSlot struct {
	Time     int64
	Occupied bool
}

// DayOccupancy represents the 24-slot occupancy grid of one calendar day.
// Date is the UTC instant of local midnight, in epoch milliseconds.
// Hours are ordered by timestamp ascending and always contain HoursPerDay entries.
type DayOccupancy struct {
	Date  int64
	Hours []HourSlot
}

// OccupiedCount returns the number of occupied hours of the day
func (d *DayOccupancy) OccupiedCount() int {
	count := 0
	for _, h := range d.Hours {
		if h.Occupied {
			count++
		}
	}
	return count
}

// IsFree returns true if no hour of the day is occupied
func (d *DayOccupancy) IsFree() bool {
	return d.OccupiedCount() == 0
}
