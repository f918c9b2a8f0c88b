package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nexgenhealth/internal/domain"
)

// @Summary Регистрация нового пользователя
// @Description Регистрирует пользователя; аккаунт попадает в очередь на одобрение администратором
// @Tags Авторизация
// @Accept json
// @Produce json
// @Param input body domain.RegisterRequest true "Данные для регистрации"
// @Success 201 {object} successResponseBody "Идентификатор пользователя"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 409 {object} errorResponseBody "Email или имя уже заняты"
// @Failure 500 {object} errorResponseBody "Внутренняя ошибка сервера"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input domain.RegisterRequest

	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	id, err := h.services.Auth.Register(c.Request.Context(), input)
	if err != nil {
		h.logger.Error("ошибка при регистрации", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, map[string]interface{}{
		"id":     id,
		"status": domain.UserStatusPending,
	})
}

// @Summary Вход в систему
// @Description Авторизует принятого пользователя и возвращает токен доступа
// @Tags Авторизация
// @Accept json
// @Produce json
// @Param input body domain.LoginRequest true "Данные для входа"
// @Success 200 {object} domain.Token "Токен доступа"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Failure 401 {object} errorResponseBody "Неверные учетные данные"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input domain.LoginRequest

	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.Warn("неверный формат данных", zap.Error(err))
		badRequestResponse(c, "неверный формат данных")
		return
	}

	token, err := h.services.Auth.Login(c.Request.Context(), input)
	if err != nil {
		h.logger.Warn("ошибка при входе", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, token)
}

// @Summary Статус регистрации
// @Description Возвращает статус заявки на регистрацию по email
// @Tags Авторизация
// @Produce json
// @Param email query string true "Email пользователя"
// @Success 200 {object} successResponseBody "Статус заявки"
// @Failure 404 {object} errorResponseBody "Пользователь не найден"
// @Router /auth/status [get]
func (h *Handler) registrationStatus(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		badRequestResponse(c, "не указан email")
		return
	}

	status, err := h.services.Auth.StatusByEmail(c.Request.Context(), email)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, map[string]interface{}{
		"status": status,
	})
}
