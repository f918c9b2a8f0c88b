package rest

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"nexgenhealth/config"
	"nexgenhealth/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())
	router.Use(h.errorMiddleware())
	router.Use(h.corsMiddleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.healthCheck)

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.register)
			auth.POST("/login", h.login)
			auth.GET("/status", h.registrationStatus)
		}

		users := api.Group("/users")
		users.Use(h.authMiddleware())
		{
			users.GET("/me", h.getCurrentUser)
			users.PUT("/me", h.updateCurrentUser)
			users.PUT("/me/fcm-token", h.updateFCMToken)
		}

		admin := api.Group("/admin")
		admin.Use(h.authMiddleware(), h.adminMiddleware())
		{
			admin.GET("/approvals", h.getPendingApprovals)
			admin.GET("/users/:id", h.getUserByID)
			admin.PUT("/users/:id/status", h.setRegistrationStatus)
			admin.GET("/users/:id/feedback", h.getUserFeedback)
			admin.GET("/patients", h.getPatients)
			admin.GET("/doctors", h.getDoctors)
			admin.GET("/feedback", h.getAllFeedback)
		}

		tickets := api.Group("/tickets")
		tickets.Use(h.authMiddleware())
		{
			tickets.GET("/", h.getTickets)
			tickets.GET("/:id", h.getTicketByID)
			tickets.POST("/", h.patientMiddleware(), h.createTicket)
			tickets.PUT("/:id", h.patientMiddleware(), h.updateTicket)
			tickets.DELETE("/:id", h.patientMiddleware(), h.deleteTicket)
			tickets.PUT("/:id/assign", h.adminMiddleware(), h.assignDoctor)

			tickets.POST("/:id/report", h.doctorMiddleware(), h.submitReport)
			tickets.GET("/:id/report", h.getReport)
		}

		chat := api.Group("/chat")
		chat.Use(h.authMiddleware())
		{
			chat.POST("/start", h.startChat)
			chat.POST("/:session_id/continue", h.continueChat)
			chat.GET("/:session_id", h.getChatSession)
			chat.DELETE("/:session_id", h.endChat)
			chat.GET("/", h.listChatSessions)
		}

		notifications := api.Group("/notifications")
		notifications.Use(h.authMiddleware())
		{
			notifications.GET("/", h.getNotifications)
			notifications.PUT("/read", h.markNotificationsRead)
		}

		feedback := api.Group("/feedback")
		feedback.Use(h.authMiddleware())
		{
			feedback.POST("/", h.createFeedback)
			feedback.GET("/", h.getMyFeedback)
		}

		api.GET("/faqs", h.getFAQs)
	}
}
