package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nexgenhealth/internal/domain"
)

// @Summary Текущий пользователь
// @Description Возвращает профиль авторизованного пользователя
// @Tags Пользователи
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} domain.User "Профиль пользователя"
// @Failure 401 {object} errorResponseBody "Требуется авторизация"
// @Router /users/me [get]
func (h *Handler) getCurrentUser(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	user, err := h.services.User.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("ошибка при получении пользователя", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, user)
}

// @Summary Обновление профиля
// @Description Обновляет профиль текущего пользователя, включая медицинские данные
// @Tags Пользователи
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body domain.UpdateUserDTO true "Данные для обновления"
// @Success 200 {object} domain.User "Обновленный профиль"
// @Failure 400 {object} errorResponseBody "Пустое или некорректное обновление"
// @Router /users/me [put]
func (h *Handler) updateCurrentUser(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var input domain.UpdateUserDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	user, err := h.services.User.Update(c.Request.Context(), userID, input)
	if err != nil {
		h.logger.Error("ошибка при обновлении профиля", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, user)
}

type fcmTokenRequest struct {
	FCMToken string `json:"fcm_token" binding:"required"`
}

// @Summary Обновление FCM-токена
// @Description Сохраняет токен устройства для push-уведомлений
// @Tags Пользователи
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body fcmTokenRequest true "Токен устройства"
// @Success 200 {object} messageResponseType "Токен сохранен"
// @Router /users/me/fcm-token [put]
func (h *Handler) updateFCMToken(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var input fcmTokenRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.User.UpdateFCMToken(c.Request.Context(), userID, input.FCMToken); err != nil {
		h.logger.Error("ошибка при обновлении fcm-токена", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "токен сохранен")
}
