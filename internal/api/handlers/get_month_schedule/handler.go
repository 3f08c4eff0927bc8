package get_month_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/TWS-LessonService/internal/api/handlers"
	getMonthSchedule "github.com/m04kA/TWS-LessonService/internal/usecase/get_month_schedule"
)

const (
	msgMissingTutorEmail = "email тьютора обязателен"
	msgMissingYear       = "год обязателен"
	msgMissingMonth      = "месяц обязателен"
	msgInvalidYear       = "некорректный год"
	msgInvalidMonth      = "некорректный месяц, ожидается число от 0 до 11"
	msgInvalidPeriod     = "некорректный период расписания"
	msgTutorNotFound     = "тьютор не найден"
	msgProviderError     = "календарный провайдер недоступен"
)

type Handler struct {
	useCase GetMonthScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tutors/{tutorEmail}/schedule
// Query params: year (required), month (required, 0 - январь, 11 - декабрь)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем email тьютора из URL
	tutorEmail := vars["tutorEmail"]
	if tutorEmail == "" {
		h.logger.Warn("GET /tutors/{email}/schedule - Missing tutor email")
		handlers.RespondBadRequest(w, msgMissingTutorEmail)
		return
	}

	// Извлекаем year из query параметров
	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		h.logger.Warn("GET /tutors/{email}/schedule - Missing year")
		handlers.RespondBadRequest(w, msgMissingYear)
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		h.logger.Warn("GET /tutors/{email}/schedule - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	// Извлекаем month из query параметров
	monthStr := r.URL.Query().Get("month")
	if monthStr == "" {
		h.logger.Warn("GET /tutors/{email}/schedule - Missing month")
		handlers.RespondBadRequest(w, msgMissingMonth)
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		h.logger.Warn("GET /tutors/{email}/schedule - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getMonthSchedule.Request{
		TutorEmail: tutorEmail,
		Year:       year,
		Month:      month,
	})
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getMonthSchedule.ErrInvalidInput):
			h.logger.Warn("GET /tutors/{email}/schedule - Invalid input: tutor=%s, year=%d, month=%d",
				tutorEmail, year, month)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, getMonthSchedule.ErrTutorNotFound):
			h.logger.Warn("GET /tutors/{email}/schedule - Tutor not found: tutor=%s", tutorEmail)
			handlers.RespondNotFound(w, msgTutorNotFound)

		case errors.Is(err, getMonthSchedule.ErrProvider):
			h.logger.Error("GET /tutors/{email}/schedule - Provider error: tutor=%s, error=%v", tutorEmail, err)
			handlers.RespondError(w, http.StatusBadGateway, msgProviderError)

		default:
			h.logger.Error("GET /tutors/{email}/schedule - Failed to build schedule: tutor=%s, error=%v",
				tutorEmail, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(tutorEmail, year, month, result)

	h.logger.Info("GET /tutors/{email}/schedule - Schedule built successfully: tutor=%s, year=%d, month=%d, days=%d",
		tutorEmail, year, month, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
