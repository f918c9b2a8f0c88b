package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"nexgenhealth/internal/domain"
	"nexgenhealth/internal/service"
)

const maxUploadSize = 10 << 20 // 10 MB на файл

var errFileTooLarge = errors.New("файл превышает допустимый размер")

// formFileUpload reads an optional multipart file field into memory.
// A missing field yields (nil, nil).
func formFileUpload(c *gin.Context, field string) (*service.FileUpload, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, err
	}

	if fileHeader.Size > maxUploadSize {
		return nil, errFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &service.FileUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// @Summary Список обращений
// @Description Админ видит все, врач видит назначенные, пациент видит свои; опциональный фильтр по статусу
// @Tags Обращения
// @Security ApiKeyAuth
// @Produce json
// @Param status query string false "Фильтр по статусу (pending/resolved)"
// @Success 200 {array} domain.Ticket "Список обращений"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Router /tickets [get]
func (h *Handler) getTickets(c *gin.Context) {
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

	var status *domain.TicketStatus
	if statusStr := c.Query("status"); statusStr != "" {
		s := domain.TicketStatus(statusStr)
		status = &s
	}

	tickets, err := h.services.Ticket.List(c.Request.Context(), userID, role, status)
	if err != nil {
		h.logger.Error("ошибка при получении обращений", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, tickets)
}

// @Summary Обращение по ID
// @Description Возвращает обращение с проверкой прав доступа
// @Tags Обращения
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID обращения"
// @Success 200 {object} domain.Ticket "Обращение"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 404 {object} errorResponseBody "Обращение не найдено"
// @Router /tickets/{id} [get]
func (h *Handler) getTicketByID(c *gin.Context) {
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

	ticketID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID обращения")
		return
	}

	ticket, err := h.services.Ticket.GetByID(c.Request.Context(), userID, role, ticketID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, ticket)
}

// @Summary Создание обращения
// @Description Создает обращение пациента с опциональными вложениями (multipart/form-data)
// @Tags Обращения
// @Security ApiKeyAuth
// @Accept mpfd
// @Produce json
// @Param title formData string true "Заголовок"
// @Param description formData string true "Описание проблемы"
// @Param bp formData string false "Артериальное давление"
// @Param sugar_level formData string false "Уровень сахара"
// @Param weight formData number false "Вес"
// @Param symptoms formData string false "Симптомы"
// @Param image formData file false "Изображение"
// @Param document formData file false "Документ"
// @Success 201 {object} domain.Ticket "Созданное обращение"
// @Failure 400 {object} errorResponseBody "Ошибка валидации"
// @Router /tickets [post]
func (h *Handler) createTicket(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		unauthorizedResponse(c)
		return
	}

	dto := domain.CreateTicketDTO{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		BP:          c.PostForm("bp"),
		SugarLevel:  c.PostForm("sugar_level"),
		Symptoms:    c.PostForm("symptoms"),
	}
	if dto.Title == "" || dto.Description == "" {
		badRequestResponse(c, "заголовок и описание обязательны")
		return
	}

	if weightStr := c.PostForm("weight"); weightStr != "" {
		weight, err := strconv.ParseFloat(weightStr, 64)
		if err != nil {
			badRequestResponse(c, "некорректное значение веса")
			return
		}
		dto.Weight = &weight
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

	ticket, err := h.services.Ticket.Create(c.Request.Context(), userID, dto, image, document)
	if err != nil {
		h.logger.Error("ошибка при создании обращения", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, ticket)
}

// @Summary Обновление обращения
// @Description Обновляет обращение; доступно только пациенту-владельцу
// @Tags Обращения
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "ID обращения"
// @Param input body domain.UpdateTicketDTO true "Данные для обновления"
// @Success 200 {object} domain.Ticket "Обновленное обращение"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 404 {object} errorResponseBody "Обращение не найдено"
// @Router /tickets/{id} [put]
func (h *Handler) updateTicket(c *gin.Context) {
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

	ticketID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID обращения")
		return
	}

	var input domain.UpdateTicketDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "неверный формат данных")
		return
	}

	ticket, err := h.services.Ticket.Update(c.Request.Context(), userID, role, ticketID, input)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, ticket)
}

// @Summary Удаление обращения
// @Description Удаляет обращение; доступно только пациенту-владельцу
// @Tags Обращения
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID обращения"
// @Success 200 {object} messageResponseType "Обращение удалено"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 404 {object} errorResponseBody "Обращение не найдено"
// @Router /tickets/{id} [delete]
func (h *Handler) deleteTicket(c *gin.Context) {
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

	ticketID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID обращения")
		return
	}

	if err := h.services.Ticket.Delete(c.Request.Context(), userID, role, ticketID); err != nil {
		serviceErrorResponse(c, err)
		return
	}

	messageResponse(c, http.StatusOK, "обращение удалено")
}

type assignDoctorRequest struct {
	DoctorID int64 `json:"doctor_id" binding:"required"`
}

// @Summary Назначение врача
// @Description Назначает врача на обращение и уведомляет его
// @Tags Обращения
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path int true "ID обращения"
// @Param input body assignDoctorRequest true "ID врача"
// @Success 200 {object} domain.Ticket "Обновленное обращение"
// @Failure 400 {object} errorResponseBody "Пользователь не является принятым врачом"
// @Failure 404 {object} errorResponseBody "Обращение не найдено"
// @Router /tickets/{id}/assign [put]
func (h *Handler) assignDoctor(c *gin.Context) {
	ticketID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID обращения")
		return
	}

	var input assignDoctorRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequestResponse(c, "неверный формат данных")
		return
	}

	ticket, err := h.services.Ticket.AssignDoctor(c.Request.Context(), ticketID, input.DoctorID)
	if err != nil {
		h.logger.Error("ошибка при назначении врача", zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, ticket)
}

// @Summary Отправка отчета
// @Description Создает отчет по обращению (multipart/form-data); доступно только назначенному врачу
// @Tags Отчеты
// @Security ApiKeyAuth
// @Accept mpfd
// @Produce json
// @Param id path int true "ID обращения"
// @Param diagnosis formData string true "Диагноз"
// @Param recommendations formData string true "Рекомендации"
// @Param medications formData string false "Лекарства (JSON-массив строк)"
// @Param image formData file false "Изображение"
// @Param document formData file false "Документ"
// @Success 201 {object} domain.Report "Созданный отчет"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 409 {object} errorResponseBody "Отчет уже существует"
// @Router /tickets/{id}/report [post]
func (h *Handler) submitReport(c *gin.Context) {
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

	ticketID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID обращения")
		return
	}

	dto := domain.CreateReportDTO{
		Diagnosis:       c.PostForm("diagnosis"),
		Recommendations: c.PostForm("recommendations"),
	}
	if dto.Diagnosis == "" || dto.Recommendations == "" {
		badRequestResponse(c, "диагноз и рекомендации обязательны")
		return
	}

	if medsStr := c.PostForm("medications"); medsStr != "" {
		if err := json.Unmarshal([]byte(medsStr), &dto.Medications); err != nil {
			badRequestResponse(c, "некорректный список лекарств")
			return
		}
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

	report, err := h.services.Report.Submit(c.Request.Context(), userID, role, ticketID, dto, image, document)
	if err != nil {
		h.logger.Error("ошибка при создании отчета", zap.Int64("ticketId", ticketID), zap.Error(err))
		serviceErrorResponse(c, err)
		return
	}

	createdResponse(c, report)
}

// @Summary Отчет по обращению
// @Description Возвращает отчет по обращению с проверкой прав доступа
// @Tags Отчеты
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID обращения"
// @Success 200 {object} domain.Report "Отчет"
// @Failure 403 {object} errorResponseBody "Доступ запрещен"
// @Failure 404 {object} errorResponseBody "Отчет не найден"
// @Router /tickets/{id}/report [get]
func (h *Handler) getReport(c *gin.Context) {
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

	ticketID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequestResponse(c, "некорректный ID обращения")
		return
	}

	report, err := h.services.Report.GetByTicket(c.Request.Context(), userID, role, ticketID)
	if err != nil {
		serviceErrorResponse(c, err)
		return
	}

	successResponse(c, http.StatusOK, report)
}
