package get_available_lessons

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/TWS-LessonService/internal/api/handlers"
	lessonsService "github.com/m04kA/TWS-LessonService/internal/service/lessons"
)

const (
	msgMissingEmail    = "email студента обязателен"
	msgStudentNotFound = "студент не найден"
)

type Handler struct {
	service LessonsService
	logger  Logger
}

func NewHandler(service LessonsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/students/{email}/lessons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем email студента из URL
	email := vars["email"]
	if email == "" {
		h.logger.Warn("GET /students/{email}/lessons - Missing email")
		handlers.RespondBadRequest(w, msgMissingEmail)
		return
	}

	// Вызываем сервис
	count, err := h.service.GetAvailableLessonCount(r.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, lessonsService.ErrStudentNotFound):
			h.logger.Warn("GET /students/{email}/lessons - Student not found: student=%s", email)
			handlers.RespondNotFound(w, msgStudentNotFound)

		default:
			h.logger.Error("GET /students/{email}/lessons - Failed to get lessons: student=%s, error=%v", email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /students/{email}/lessons - Lessons retrieved successfully: student=%s, available=%d",
		email, count)
	handlers.RespondJSON(w, http.StatusOK, &AvailableLessonsResponse{
		StudentEmail:     email,
		AvailableLessons: count,
	})
}
