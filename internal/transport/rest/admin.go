package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nexgenhealth/internal/domain"
)

// @Summary Заявки на регистрацию
// @Description Возвращает пользователей, ожидающих одобрения
// @Tags Администрирование
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} domain.User "Список заявок"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Router /admin/approvals [get]
func (h *Handler) getPendingApprovals(c *gin.Context) {
	users, err := h.services.Admin.PendingApprovals(c.Request.Context())
	if err != nil {
		h.logger.Error("ошибка при получении заявок", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, users)
}

// @Summary Пользователь по ID
// @Description Возвращает профиль любого пользователя
// @Tags Администрирование
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID пользователя"
// @Success 200 {object} domain.User "Профиль пользователя"
// @Failure 404 {object} errorResponseBody "Пользователь не найден"
// @Router /admin/users/{id} [get]
func (h *Handler) getUserByID(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID пользователя")
		return
	}

	user, err := h.services.User.GetByID(c.Request.Context(), userID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, user)
}

type setStatusRequest struct {
	Status domain.UserStatus `json:"status" binding:"required,oneof=accepted rejected"`
}

// @Summary Решение по заявке
// @Description Принимает или отклоняет заявку на регистрацию и уведомляет пользователя
// @Tags Администрирование
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "ID пользователя"
// @Param input body setStatusRequest true "Новый статус"
// @Success 200 {object} messageResponseType "Статус обновлен"
// @Failure 404 {object} errorResponseBody "Пользователь не найден"
// @Router /admin/users/{id}/status [put]
func (h *Handler) setRegistrationStatus(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID пользователя")
		return
	}

	var input setStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "неверный формат данных")
		return
	}

	if err := h.services.Admin.SetRegistrationStatus(c.Request.Context(), userID, input.Status); err != nil {
		h.logger.Error("ошибка при обновлении статуса", zap.Int64("userId", userID), zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "статус обновлен")
}

// @Summary Список пациентов
// @Description Возвращает всех принятых пациентов
// @Tags Администрирование
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} domain.User "Список пациентов"
// @Router /admin/patients [get]
func (h *Handler) getPatients(c *gin.Context) {
	patients, err := h.services.Admin.ListPatients(c.Request.Context())
	if err != nil {
		h.logger.Error("ошибка при получении пациентов", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, patients)
}

// @Summary Список врачей
// @Description Возвращает всех принятых врачей
// @Tags Администрирование
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} domain.User "Список врачей"
// @Router /admin/doctors [get]
func (h *Handler) getDoctors(c *gin.Context) {
	doctors, err := h.services.Admin.ListDoctors(c.Request.Context())
	if err != nil {
		h.logger.Error("ошибка при получении врачей", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, doctors)
}
