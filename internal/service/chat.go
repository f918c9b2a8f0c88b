package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"strconv"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	"nexgenhealth/internal/ai"
	"nexgenhealth/internal/domain"
	"nexgenhealth/internal/repository"
	"nexgenhealth/internal/storage"
)

const openingSystemPrompt = "\nSYSTEM INSTRUCTIONS:\n" +
	"You are the NexGenHealth AI Assistant, designed to provide medical information and support. " +
	"This is an educational project and not for real medical use. " +
	"Provide concise, informative responses in 6-8 lines. " +
	"Base your responses on the provided patient data and ticket details. " +
	"Be direct and avoid unnecessary medical disclaimers since this is a project. " +
	"Maintain a professional yet approachable tone."

const continuationSystemPrompt = "You are a NexGenHealth chatbot designed to assist with medical inquiries. " +
	"This is a college project and will not be used in a real medical setting. " +
	"Provide a concise and informative response in 4-8 lines. " +
	"Focus on the key points and avoid unnecessary warnings or disclaimers. "

type ChatServiceImpl struct {
	repo        repository.ChatRepository
	ticketRepo  repository.TicketRepository
	userRepo    repository.UserRepository
	model       ai.ChatModel
	fileStorage storage.FileStorage
	logger      *zap.Logger
}

func NewChatService(
	repo repository.ChatRepository,
	ticketRepo repository.TicketRepository,
	userRepo repository.UserRepository,
	model ai.ChatModel,
	fileStorage storage.FileStorage,
	logger *zap.Logger,
) *ChatServiceImpl {
	return &ChatServiceImpl{
		repo:        repo,
		ticketRepo:  ticketRepo,
		userRepo:    userRepo,
		model:       model,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// buildContextPrompt assembles the text block priming the model. With a
// ticket the caller is a doctor reviewing a patient (third-person
// framing, ticket details plus the patient's history); without one it is
// the patient's own conversation (second-person framing, own profile).
func buildContextPrompt(ticket *domain.Ticket, patient *domain.User) string {
	var lines []string

	if ticket != nil {
		lines = append(lines,
			"CONTEXT: Doctor analyzing patient ticket\n",
			"INSTRUCTIONS: Refer to the patient in third person. Don't use 'you'.\n",
		)

		lines = append(lines, "\nTICKET DETAILS:")
		lines = append(lines, fmt.Sprintf("Title: %s", ticket.Title))
		lines = append(lines, fmt.Sprintf("Description: %s", ticket.Description))
		lines = append(lines, "Vital Signs:")
		lines = append(lines, fmt.Sprintf("- Blood Pressure: %s", orNotProvided(ticket.BP)))
		lines = append(lines, fmt.Sprintf("- Sugar Level: %s", orNotProvided(ticket.SugarLevel)))
		lines = append(lines, fmt.Sprintf("- Weight: %s kg", floatOrNotProvided(ticket.Weight)))
		if ticket.Symptoms != "" {
			lines = append(lines, fmt.Sprintf("Symptoms: %s", ticket.Symptoms))
		}

		if patient != nil && patient.PatientData != nil {
			lines = append(lines, "\nPATIENT HISTORY:")
			lines = append(lines, profileLines(patient.PatientData)...)
		}

		return strings.Join(lines, "\n")
	}

	lines = append(lines,
		"CONTEXT: Direct patient conversation\n",
		"INSTRUCTIONS: Address the user directly using 'you'.\n",
	)

	if patient != nil && patient.PatientData != nil {
		lines = append(lines, "\nYOUR MEDICAL PROFILE:")
		lines = append(lines, profileLines(patient.PatientData)...)
	}

	return strings.Join(lines, "\n")
}

// profileLines renders the medical profile: scalar fields always appear
// with a "Not provided" fallback, list fields only when non-empty.
func profileLines(data *domain.PatientData) []string {
	lines := []string{
		fmt.Sprintf("Age: %s years", floatOrNotProvided(data.Age)),
		fmt.Sprintf("Height: %s cm", floatOrNotProvided(data.Height)),
		fmt.Sprintf("Weight: %s kg", floatOrNotProvided(data.Weight)),
		fmt.Sprintf("Blood Group: %s", orNotProvided(data.BloodGroup)),
	}

	if len(data.MedicalConditions) > 0 {
		lines = append(lines, fmt.Sprintf("Medical Conditions: %s", strings.Join(data.MedicalConditions, ", ")))
	}
	if len(data.MedicalHistory) > 0 {
		lines = append(lines, fmt.Sprintf("Medical History: %s", strings.Join(data.MedicalHistory, ", ")))
	}
	if len(data.Medications) > 0 {
		lines = append(lines, fmt.Sprintf("Current Medications: %s", strings.Join(data.Medications, ", ")))
	}
	if len(data.Allergies) > 0 {
		lines = append(lines, fmt.Sprintf("Allergies: %s", strings.Join(data.Allergies, ", ")))
	}

	return lines
}

func orNotProvided(s string) string {
	if s == "" {
		return "Not provided"
	}
	return s
}

func floatOrNotProvided(f *float64) string {
	if f == nil {
		return "Not provided"
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

// serializeHistory flattens model turns into (role, text) records. Text
// parts of a multi-part turn are joined with a newline; binary parts are
// not representable and are dropped.
func serializeHistory(history []ai.Content) []domain.ChatTurn {
	turns := make([]domain.ChatTurn, 0, len(history))
	for _, content := range history {
		var texts []string
		for _, part := range content.Parts {
			if part.Text != "" {
				texts = append(texts, part.Text)
			}
		}
		turns = append(turns, domain.ChatTurn{
			Role: content.Role,
			Text: strings.Join(texts, "\n"),
		})
	}
	return turns
}

// deserializeHistory rebuilds model turns from stored records, one text
// part per turn.
func deserializeHistory(turns []domain.ChatTurn) []ai.Content {
	history := make([]ai.Content, 0, len(turns))
	for _, turn := range turns {
		history = append(history, ai.Content{
			Role:  turn.Role,
			Parts: []ai.Part{ai.TextPart(turn.Text)},
		})
	}
	return history
}

// processImage validates the bytes as a raster image and wraps them for
// the model. Returns nil when the data is not a decodable image.
func (s *ChatServiceImpl) processImage(data []byte) *ai.Part {
	if len(data) == 0 {
		return nil
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		s.logger.Warn("ошибка декодирования изображения", zap.Error(err))
		return nil
	}

	return &ai.Part{InlineData: &ai.Blob{
		MIMEType: "image/" + format,
		Data:     base64.StdEncoding.EncodeToString(data),
	}}
}

// processDocument extracts text: PDF via the pdf reader, anything else
// as UTF-8 with invalid bytes dropped.
func (s *ChatServiceImpl) processDocument(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	if bytes.HasPrefix(data, []byte("%PDF")) {
		reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			s.logger.Warn("ошибка чтения pdf-документа", zap.Error(err))
			return ""
		}

		textReader, err := reader.GetPlainText()
		if err != nil {
			s.logger.Warn("ошибка извлечения текста из pdf", zap.Error(err))
			return ""
		}

		var buf bytes.Buffer
		if _, err := buf.ReadFrom(textReader); err != nil {
			s.logger.Warn("ошибка чтения текста из pdf", zap.Error(err))
			return ""
		}
		return buf.String()
	}

	return strings.ToValidUTF8(string(data), "")
}

func (s *ChatServiceImpl) Start(ctx context.Context, actorID int64, role domain.UserRole, ticketID *int64, message string, image, document *FileUpload) (*domain.ChatSession, error) {
	var imageData, documentData []byte
	if image != nil {
		imageData = image.Data
	}
	if document != nil {
		documentData = document.Data
	}

	var ticket *domain.Ticket
	var patient *domain.User

	if ticketID != nil {
		t, err := s.ticketRepo.GetByID(ctx, *ticketID)
		if err != nil {
			return nil, err
		}
		if !canAccess(t, actorID, role) {
			return nil, domain.ErrUnauthorizedAccess
		}
		ticket = t

		// Вложения из обращения подтягиваются из хранилища; сбой
		// загрузки не прерывает диалог, контекст просто беднее.
		if s.fileStorage != nil {
			if ticket.ImageURL != "" {
				data, err := s.fileStorage.GetFile(ctx, ticket.ImageURL)
				if err != nil {
					s.logger.Warn("ошибка загрузки изображения обращения", zap.String("url", ticket.ImageURL), zap.Error(err))
				} else {
					imageData = data
				}
			}
			if ticket.DocsURL != "" {
				data, err := s.fileStorage.GetFile(ctx, ticket.DocsURL)
				if err != nil {
					s.logger.Warn("ошибка загрузки документа обращения", zap.String("url", ticket.DocsURL), zap.Error(err))
				} else {
					documentData = data
				}
			}
		}

		patient, err = s.userRepo.GetByID(ctx, ticket.PatientID)
		if err != nil {
			return nil, err
		}
	} else {
		var err error
		patient, err = s.userRepo.GetByID(ctx, actorID)
		if err != nil {
			return nil, err
		}
	}

	parts := []ai.Part{ai.TextPart(buildContextPrompt(ticket, patient))}

	if message != "" {
		parts = append(parts, ai.TextPart(fmt.Sprintf("User Query: %s", message)))
	}
	if part := s.processImage(imageData); part != nil {
		parts = append(parts, *part)
	}
	if text := s.processDocument(documentData); text != "" {
		parts = append(parts, ai.TextPart(fmt.Sprintf("Document content: %s", text)))
	}
	parts = append(parts, ai.TextPart(openingSystemPrompt))

	chat := s.model.StartChat(nil)
	reply, err := chat.Send(ctx, parts)
	if err != nil {
		return nil, err
	}

	userText := message
	if userText == "" {
		userText = "Started chat"
	}

	now := time.Now()
	session := domain.ChatSession{
		SessionID: uuid.New().String(),
		UserID:    actorID,
		TicketID:  ticketID,
		Messages: []domain.ChatMessage{
			{Sender: domain.MessageSenderUser, Text: userText, Timestamp: now},
			{Sender: domain.MessageSenderBot, Text: reply, Timestamp: now},
		},
		History:   serializeHistory(chat.History()),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}

	return &session, nil
}

func (s *ChatServiceImpl) Continue(ctx context.Context, sessionID, message string, image, document *FileUpload) (*domain.ChatSession, error) {
	session, err := s.repo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	chat := s.model.StartChat(deserializeHistory(session.History))

	parts := []ai.Part{ai.TextPart(message)}
	if image != nil {
		if part := s.processImage(image.Data); part != nil {
			parts = append(parts, *part)
		}
	}
	if document != nil {
		if text := s.processDocument(document.Data); text != "" {
			parts = append(parts, ai.TextPart(fmt.Sprintf("Document content: %s", text)))
		}
	}
	parts = append(parts, ai.TextPart(continuationSystemPrompt))

	reply, err := chat.Send(ctx, parts)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session.Messages = append(session.Messages,
		domain.ChatMessage{Sender: domain.MessageSenderUser, Text: message, Timestamp: now},
		domain.ChatMessage{Sender: domain.MessageSenderBot, Text: reply, Timestamp: now},
	)
	session.History = serializeHistory(chat.History())
	session.UpdatedAt = now

	if err := s.repo.Update(ctx, *session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *ChatServiceImpl) End(ctx context.Context, sessionID string) error {
	if _, err := s.repo.GetBySessionID(ctx, sessionID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, sessionID)
}

func (s *ChatServiceImpl) Get(ctx context.Context, sessionID string) (*domain.ChatSession, error) {
	return s.repo.GetBySessionID(ctx, sessionID)
}

func (s *ChatServiceImpl) List(ctx context.Context, userID int64, ticketID *int64) ([]domain.ChatSession, error) {
	return s.repo.List(ctx, domain.ChatSessionFilter{
		UserID:   userID,
		TicketID: ticketID,
	})
}
