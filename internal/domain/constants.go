package domain

// Pricing defaults
const (
	DefaultLessonPrice = 15.0
	DefaultCurrency    = "USD"

	// DiscountBundleSize размер пакета уроков, закрытие которого дает скидку
	DiscountBundleSize = 5
	// DiscountRate доля от стоимости пакета, списываемая при закрытии
	DiscountRate = 0.05
)

// Event reminder defaults (minutes before the session start)
const (
	ReminderEmailMinutes = 24 * 60
	ReminderPopupMinutes = 10
)

// HoursPerDay количество часовых слотов в одном дне сетки занятости
const HoursPerDay = 24

// Business validation constants
const (
	MinLessonQuantity = 1
	MaxLessonQuantity = 100
	MinScheduleYear   = 2000
	MaxScheduleYear   = 2100
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
