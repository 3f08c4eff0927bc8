package get_trial_availability

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/TWS-LessonService/internal/api/handlers"
)

const msgMissingEmail = "email студента обязателен"

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

// Handle GET /api/v1/students/{email}/trial
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем email студента из URL
	email := vars["email"]
	if email == "" {
		h.logger.Warn("GET /students/{email}/trial - Missing email")
		handlers.RespondBadRequest(w, msgMissingEmail)
		return
	}

	// Вызываем сервис. Отсутствие записи о студенте - не ошибка,
	// пробный урок в этом случае доступен.
	available, err := h.service.IsTrialAvailable(r.Context(), email)
	if err != nil {
		h.logger.Error("GET /students/{email}/trial - Failed to check trial: student=%s, error=%v", email, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /students/{email}/trial - Trial availability checked: student=%s, available=%t",
		email, available)
	handlers.RespondJSON(w, http.StatusOK, &TrialAvailabilityResponse{
		StudentEmail:   email,
		TrialAvailable: available,
	})
}
