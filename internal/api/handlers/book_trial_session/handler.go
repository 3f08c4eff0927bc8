package book_trial_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/TWS-LessonService/internal/api/handlers"
	bookTrialSession "github.com/m04kA/TWS-LessonService/internal/usecase/book_trial_session"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные бронирования"
	msgTrialAlreadyUsed   = "пробный урок уже использован"
	msgTutorNotFound      = "тьютор не найден"
	msgProviderError      = "календарный провайдер недоступен"
)

type Handler struct {
	useCase BookTrialSessionUseCase
	logger  Logger
}

func NewHandler(useCase BookTrialSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/trial
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookTrialSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/trial - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, bookTrialSession.ErrInvalidInput):
			h.logger.Warn("POST /sessions/trial - Invalid input: student=%s, error=%v", req.StudentEmail, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, bookTrialSession.ErrTrialAlreadyUsed):
			h.logger.Warn("POST /sessions/trial - Trial already used: student=%s", req.StudentEmail)
			handlers.RespondError(w, http.StatusConflict, msgTrialAlreadyUsed)

		case errors.Is(err, bookTrialSession.ErrTutorNotFound):
			h.logger.Warn("POST /sessions/trial - Tutor not found: tutor=%s", req.TutorEmail)
			handlers.RespondNotFound(w, msgTutorNotFound)

		case errors.Is(err, bookTrialSession.ErrProvider):
			h.logger.Error("POST /sessions/trial - Provider error: student=%s, error=%v", req.StudentEmail, err)
			handlers.RespondError(w, http.StatusBadGateway, msgProviderError)

		default:
			h.logger.Error("POST /sessions/trial - Failed to book session: student=%s, tutor=%s, error=%v",
				req.StudentEmail, req.TutorEmail, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /sessions/trial - Session booked successfully: student=%s, tutor=%s",
		req.StudentEmail, req.TutorEmail)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
