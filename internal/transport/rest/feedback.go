package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nexgenhealth/internal/domain"
)

// @Summary Отправка отзыва
// @Description Сохраняет отзыв пользователя с оценкой от 1 до 5
// @Tags Отзывы
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body domain.CreateFeedbackDTO true "Отзыв"
// @Success 201 {object} successResponseBody "Идентификатор отзыва"
// @Failure 400 {object} errorResponseBody "Некорректная оценка"
// @Router /feedback [post]
func (h *Handler) createFeedback(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var input domain.CreateFeedbackDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Feedback.Create(c.Request.Context(), userID, input)
	if err != nil {
		h.logger.Error("ошибка при сохранении отзыва", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, map[string]interface{}{
		"id": id,
	})
}

// @Summary Мои отзывы
// @Description Возвращает отзывы текущего пользователя
// @Tags Отзывы
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} domain.Feedback "Список отзывов"
// @Router /feedback [get]
func (h *Handler) getMyFeedback(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	feedback, err := h.services.Feedback.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("ошибка при получении отзывов", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, feedback)
}

// @Summary Отзывы пользователя
// @Description Возвращает отзывы указанного пользователя
// @Tags Администрирование
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID пользователя"
// @Success 200 {array} domain.Feedback "Список отзывов"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Router /admin/users/{id}/feedback [get]
func (h *Handler) getUserFeedback(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID пользователя")
		return
	}

	feedback, err := h.services.Feedback.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("ошибка при получении отзывов", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, feedback)
}

// @Summary Все отзывы
// @Description Возвращает отзывы всех пользователей с их ролями
// @Tags Администрирование
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} domain.Feedback "Список отзывов"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Router /admin/feedback [get]
func (h *Handler) getAllFeedback(c *gin.Context) {
	feedback, err := h.services.Feedback.ListAll(c.Request.Context())
	if err != nil {
		h.logger.Error("ошибка при получении отзывов", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, feedback)
}
