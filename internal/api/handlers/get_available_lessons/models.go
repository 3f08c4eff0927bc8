package get_available_lessons

// AvailableLessonsResponse HTTP response model
type AvailableLessonsResponse struct {
	StudentEmail     string `json:"studentEmail"`
	AvailableLessons int    `json:"availableLessons"`
}
