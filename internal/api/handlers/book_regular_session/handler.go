package book_regular_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/TWS-LessonService/internal/api/handlers"
	bookRegularSession "github.com/m04kA/TWS-LessonService/internal/usecase/book_regular_session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные бронирования"
	msgStudentNotFound    = "студент не найден"
	msgTutorNotFound      = "тьютор не найден"
	msgNoAvailableLessons = "нет доступных уроков"
	msgProviderError      = "календарный провайдер недоступен"
)

type Handler struct {
	useCase BookRegularSessionUseCase
	logger  Logger
}

func NewHandler(useCase BookRegularSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/regular
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookRegularSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/regular - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, bookRegularSession.ErrInvalidInput):
			h.logger.Warn("POST /sessions/regular - Invalid input: student=%s, error=%v", req.StudentEmail, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, bookRegularSession.ErrStudentNotFound):
			h.logger.Warn("POST /sessions/regular - Student not found: student=%s", req.StudentEmail)
			handlers.RespondNotFound(w, msgStudentNotFound)

		case errors.Is(err, bookRegularSession.ErrTutorNotFound):
			h.logger.Warn("POST /sessions/regular - Tutor not found: tutor=%s", req.TutorEmail)
			handlers.RespondNotFound(w, msgTutorNotFound)

		case errors.Is(err, bookRegularSession.ErrNoAvailableLessons):
			h.logger.Warn("POST /sessions/regular - No available lessons: student=%s", req.StudentEmail)
			handlers.RespondError(w, http.StatusConflict, msgNoAvailableLessons)

		case errors.Is(err, bookRegularSession.ErrProvider):
			h.logger.Error("POST /sessions/regular - Provider error: student=%s, error=%v", req.StudentEmail, err)
			handlers.RespondError(w, http.StatusBadGateway, msgProviderError)

		default:
			h.logger.Error("POST /sessions/regular - Failed to book session: student=%s, tutor=%s, error=%v",
				req.StudentEmail, req.TutorEmail, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /sessions/regular - Session booked successfully: student=%s, tutor=%s, remaining=%d",
		req.StudentEmail, req.TutorEmail, result.RemainingLessons)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
