package domain

import "time"

// LessonCredit represents a student's lesson-credit account.
// AvailableLessons never goes negative: a regular-session booking requires
// at least one available lesson before the decrement lands.
type LessonCredit struct {
	ID               int64
	Email            string
	Name             string
	AvailableLessons int
	AllPaidLessons   int
	UsedTrial        bool
	LastBookingDate  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasAvailableLessons returns true if the student can book a regular session
func (c *LessonCredit) HasAvailableLessons() bool {
	return c.AvailableLessons >= 1
}

// CanBookTrial returns true if the student has not consumed the trial lesson yet
func (c *LessonCredit) CanBookTrial() bool {
	return !c.UsedTrial
}

// TutorInfo represents a tutor known to the service.
// CalendarID is the provider-side calendar the tutor's events live on.
type TutorInfo struct {
	ID         int64
	Email      string
	Name       string
	CalendarID string

	CreatedAt time.Time
}
