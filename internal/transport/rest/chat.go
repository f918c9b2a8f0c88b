package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @Summary Начало чата
// @Description Открывает сессию с ИИ-ассистентом (multipart/form-data); при указании ticket_id контекстом становится обращение
// @Tags Чат
// @Security ApiKeyAuth
// @Accept mpfd
// @Produce json
// @Param ticket_id formData int false "ID обращения"
// @Param message formData string false "Первое сообщение"
// @Param image formData file false "Изображение"
// @Param document formData file false "Документ"
// @Success 201 {object} domain.ChatSession "Созданная сессия"
// @Failure 403 {object} errorResponseBody "Нет доступа к обращению"
// @Failure 404 {object} errorResponseBody "Обращение не найдено"
// @Router /chat/start [post]
func (h *Handler) startChat(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}
	role, err := getUserRole(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var ticketID *int64
	if ticketStr := c.PostForm("ticket_id"); ticketStr != "" {
		id, err := strconv.ParseInt(ticketStr, 10, 64)
		if err != nil {
			badRequestResponse(c, "некорректный ID обращения")
			return
		}
		ticketID = &id
	}

	image, err := formFileUpload(c, "image")
	if err != nil {
		badRequestResponse(c, "не удалось прочитать изображение")
		return
	}
	document, err := formFileUpload(c, "document")
	if err != nil {
		badRequestResponse(c, "не удалось прочитать документ")
		return
	}

	session, err := h.services.Chat.Start(c.Request.Context(), userID, role, ticketID, c.PostForm("message"), image, document)
	if err != nil {
		h.logger.Error("ошибка при создании чата", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, session)
}

// @Summary Продолжение чата
// @Description Отправляет сообщение в существующую сессию (multipart/form-data)
// @Tags Чат
// @Security ApiKeyAuth
// @Accept mpfd
// @Produce json
// @Param session_id path string true "ID сессии"
// @Param message formData string true "Сообщение"
// @Param image formData file false "Изображение"
// @Param document formData file false "Документ"
// @Success 200 {object} domain.ChatSession "Обновленная сессия"
// @Failure 404 {object} errorResponseBody "Сессия не найдена"
// @Router /chat/{session_id}/continue [post]
func (h *Handler) continueChat(c *gin.Context) {
	sessionID := c.Param("session_id")

	message := c.PostForm("message")
	if message == "" {
		badRequestResponse(c, "сообщение не может быть пустым")
		return
	}

	image, err := formFileUpload(c, "image")
	if err != nil {
		badRequestResponse(c, "не удалось прочитать изображение")
		return
	}
	document, err := formFileUpload(c, "document")
	if err != nil {
		badRequestResponse(c, "не удалось прочитать документ")
		return
	}

	session, err := h.services.Chat.Continue(c.Request.Context(), sessionID, message, image, document)
	if err != nil {
		h.logger.Error("ошибка при продолжении чата", zap.String("sessionId", sessionID), zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, session)
}

// @Summary Сессия чата
// @Description Возвращает сессию с историей сообщений
// @Tags Чат
// @Security ApiKeyAuth
// @Produce json
// @Param session_id path string true "ID сессии"
// @Success 200 {object} domain.ChatSession "Сессия"
// @Failure 404 {object} errorResponseBody "Сессия не найдена"
// @Router /chat/{session_id} [get]
func (h *Handler) getChatSession(c *gin.Context) {
	session, err := h.services.Chat.Get(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, session)
}

// @Summary Завершение чата
// @Description Завершает сессию и удаляет ее историю
// @Tags Чат
// @Security ApiKeyAuth
// @Produce json
// @Param session_id path string true "ID сессии"
// @Success 200 {object} messageResponseType "Сессия завершена"
// @Failure 404 {object} errorResponseBody "Сессия не найдена"
// @Router /chat/{session_id} [delete]
func (h *Handler) endChat(c *gin.Context) {
	sessionID := c.Param("session_id")

	if err := h.services.Chat.End(c.Request.Context(), sessionID); err != nil {
		h.logger.Error("ошибка при завершении чата", zap.String("sessionId", sessionID), zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "сессия завершена")
}

// @Summary Список сессий
// @Description Возвращает сессии текущего пользователя, опционально по обращению
// @Tags Чат
// @Security ApiKeyAuth
// @Produce json
// @Param ticket_id query int false "ID обращения"
// @Success 200 {array} domain.ChatSession "Список сессий"
// @Router /chat [get]
func (h *Handler) listChatSessions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	var ticketID *int64
	if ticketStr := c.Query("ticket_id"); ticketStr != "" {
		id, err := strconv.ParseInt(ticketStr, 10, 64)
		if err != nil {
			badRequestResponse(c, "некорректный ID обращения")
			return
		}
		ticketID = &id
	}

	sessions, err := h.services.Chat.List(c.Request.Context(), userID, ticketID)
	if err != nil {
		h.logger.Error("ошибка при получении сессий", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, sessions)
}
