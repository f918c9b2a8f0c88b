package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @Summary Уведомления пользователя
// @Description Возвращает уведомления текущего пользователя, новые первыми
// @Tags Уведомления
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} domain.Notification "Список уведомлений"
// @Failure 401 {object} errorResponseBody "Требуется авторизация"
// @Router /notifications [get]
func (h *Handler) getNotifications(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	notifications, err := h.services.Notification.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("ошибка при получении уведомлений", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, notifications)
}

// @Summary Отметка о прочтении
// @Description Помечает все уведомления пользователя прочитанными
// @Tags Уведомления
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} messageResponseType "Уведомления прочитаны"
// @Router /notifications/read [put]
func (h *Handler) markNotificationsRead(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	if err := h.services.Notification.MarkAllRead(c.Request.Context(), userID); err != nil {
		h.logger.Error("ошибка при обновлении уведомлений", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "уведомления прочитаны")
}
