package service

import (
	"context"
	"fmt"
	"sync"

	"nexgenhealth/internal/ai"
	"nexgenhealth/internal/domain"
)

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[int64]*domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*domain.User), nextID: 1}
}

func (r *fakeUserRepo) add(user domain.User) *domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == 0 {
		user.ID = r.nextID
		r.nextID++
	} else if user.ID >= r.nextID {
		r.nextID = user.ID + 1
	}
	u := user
	r.users[u.ID] = &u
	return &u
}

func (r *fakeUserRepo) Create(ctx context.Context, user domain.User) (int64, error) {
	return r.add(user).ID, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("пользователь с id %d: %w", id, domain.ErrNotFound)
	}
	u := *user
	return &u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			u := *user
			return &u, nil
		}
	}
	return nil, fmt.Errorf("пользователь с email %s: %w", email, domain.ErrNotFound)
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			u := *user
			return &u, nil
		}
	}
	return nil, fmt.Errorf("пользователь %s: %w", username, domain.ErrNotFound)
}

func (r *fakeUserRepo) Update(ctx context.Context, id int64, dto domain.UpdateUserDTO) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	if dto.Username != nil {
		user.Username = *dto.Username
	}
	if dto.Email != nil {
		user.Email = *dto.Email
	}
	if dto.FCMToken != nil {
		user.FCMToken = *dto.FCMToken
	}
	if dto.PatientData != nil {
		user.PatientData = dto.PatientData
	}
	if dto.DoctorData != nil {
		user.DoctorData = dto.DoctorData
	}
	return nil
}

func (r *fakeUserRepo) UpdateStatus(ctx context.Context, id int64, status domain.UserStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	user.Status = status
	return nil
}

func (r *fakeUserRepo) UpdateFCMToken(ctx context.Context, id int64, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	user.FCMToken = token
	return nil
}

func (r *fakeUserRepo) AppendMedications(ctx context.Context, id int64, medications []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	if user.PatientData == nil {
		user.PatientData = &domain.PatientData{}
	}
	existing := make(map[string]bool)
	for _, m := range user.PatientData.Medications {
		existing[m] = true
	}
	for _, m := range medications {
		if m == "" || existing[m] {
			continue
		}
		user.PatientData.Medications = append(user.PatientData.Medications, m)
		existing[m] = true
	}
	return nil
}

func (r *fakeUserRepo) ListByRoleAndStatus(ctx context.Context, role domain.UserRole, status domain.UserStatus) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.User
	for _, user := range r.users {
		if user.Role == role && user.Status == status {
			out = append(out, *user)
		}
	}
	return out, nil
}

type fakeTicketRepo struct {
	mu      sync.Mutex
	tickets map[int64]*domain.Ticket
	nextID  int64
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: make(map[int64]*domain.Ticket), nextID: 1}
}

func (r *fakeTicketRepo) add(ticket domain.Ticket) *domain.Ticket {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ticket.ID == 0 {
		ticket.ID = r.nextID
		r.nextID++
	} else if ticket.ID >= r.nextID {
		r.nextID = ticket.ID + 1
	}
	if ticket.Status == "" {
		ticket.Status = domain.TicketStatusPending
	}
	t := ticket
	r.tickets[t.ID] = &t
	return &t
}

func (r *fakeTicketRepo) Create(ctx context.Context, patientID int64, dto domain.CreateTicketDTO) (int64, error) {
	t := r.add(domain.Ticket{
		Title:       dto.Title,
		Description: dto.Description,
		BP:          dto.BP,
		SugarLevel:  dto.SugarLevel,
		Weight:      dto.Weight,
		Symptoms:    dto.Symptoms,
		PatientID:   patientID,
	})
	return t.ID, nil
}

func (r *fakeTicketRepo) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, fmt.Errorf("обращение с id %d: %w", id, domain.ErrNotFound)
	}
	t := *ticket
	return &t, nil
}

func (r *fakeTicketRepo) Update(ctx context.Context, id int64, dto domain.UpdateTicketDTO) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return domain.ErrNotFound
	}
	if dto.Title != nil {
		ticket.Title = *dto.Title
	}
	if dto.Description != nil {
		ticket.Description = *dto.Description
	}
	if dto.BP != nil {
		ticket.BP = *dto.BP
	}
	if dto.SugarLevel != nil {
		ticket.SugarLevel = *dto.SugarLevel
	}
	if dto.Weight != nil {
		ticket.Weight = dto.Weight
	}
	if dto.Symptoms != nil {
		ticket.Symptoms = *dto.Symptoms
	}
	if dto.ImageURL != nil {
		ticket.ImageURL = *dto.ImageURL
	}
	if dto.DocsURL != nil {
		ticket.DocsURL = *dto.DocsURL
	}
	return nil
}

func (r *fakeTicketRepo) UpdateAttachments(ctx context.Context, id int64, imageURL, docsURL *string) error {
	return r.Update(ctx, id, domain.UpdateTicketDTO{ImageURL: imageURL, DocsURL: docsURL})
}

func (r *fakeTicketRepo) SetStatus(ctx context.Context, id int64, status domain.TicketStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return domain.ErrNotFound
	}
	ticket.Status = status
	return nil
}

func (r *fakeTicketRepo) AssignDoctor(ctx context.Context, id int64, doctorID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return domain.ErrNotFound
	}
	ticket.AssignedDoctorID = &doctorID
	return nil
}

func (r *fakeTicketRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tickets[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.tickets, id)
	return nil
}

func (r *fakeTicketRepo) ListAll(ctx context.Context) ([]domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Ticket
	for _, t := range r.tickets {
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeTicketRepo) ListByPatient(ctx context.Context, patientID int64) ([]domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Ticket
	for _, t := range r.tickets {
		if t.PatientID == patientID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTicketRepo) ListByDoctor(ctx context.Context, doctorID int64) ([]domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Ticket
	for _, t := range r.tickets {
		if t.AssignedDoctorID != nil && *t.AssignedDoctorID == doctorID {
			out = append(out, *t)
		}
	}
	return out, nil
}

type fakeReportRepo struct {
	mu       sync.Mutex
	byTicket map[int64]*domain.Report
	nextID   int64
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{byTicket: make(map[int64]*domain.Report), nextID: 1}
}

func (r *fakeReportRepo) Create(ctx context.Context, report domain.Report) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byTicket[report.TicketID]; ok {
		return 0, fmt.Errorf("отчет по обращению %d уже существует: %w", report.TicketID, domain.ErrConflict)
	}
	report.ID = r.nextID
	r.nextID++
	rep := report
	r.byTicket[report.TicketID] = &rep
	return report.ID, nil
}

func (r *fakeReportRepo) GetByTicketID(ctx context.Context, ticketID int64) (*domain.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	report, ok := r.byTicket[ticketID]
	if !ok {
		return nil, fmt.Errorf("отчет по обращению %d: %w", ticketID, domain.ErrNotFound)
	}
	rep := *report
	return &rep, nil
}

type fakeChatRepo struct {
	mu       sync.Mutex
	sessions map[string]domain.ChatSession
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{sessions: make(map[string]domain.ChatSession)}
}

func (r *fakeChatRepo) Save(ctx context.Context, session domain.ChatSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.SessionID] = session
	return nil
}

func (r *fakeChatRepo) GetBySessionID(ctx context.Context, sessionID string) (*domain.ChatSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("сессия чата %s: %w", sessionID, domain.ErrNotFound)
	}
	return &session, nil
}

func (r *fakeChatRepo) Update(ctx context.Context, session domain.ChatSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[session.SessionID]; !ok {
		return domain.ErrNotFound
	}
	r.sessions[session.SessionID] = session
	return nil
}

func (r *fakeChatRepo) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[sessionID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.sessions, sessionID)
	return nil
}

func (r *fakeChatRepo) List(ctx context.Context, filter domain.ChatSessionFilter) ([]domain.ChatSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.ChatSession
	for _, s := range r.sessions {
		if s.UserID != filter.UserID {
			continue
		}
		if filter.TicketID != nil && (s.TicketID == nil || *s.TicketID != *filter.TicketID) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []domain.Notification
	nextID        int64
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{nextID: 1}
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n domain.Notification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n.ID = r.nextID
	r.nextID++
	r.notifications = append(r.notifications, n)
	return n.ID, nil
}

func (r *fakeNotificationRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkAllRead(ctx context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.notifications {
		if r.notifications[i].UserID == userID {
			r.notifications[i].Read = true
		}
	}
	return nil
}

type fakeFeedbackRepo struct {
	mu     sync.Mutex
	items  []domain.Feedback
	nextID int64
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{nextID: 1}
}

func (r *fakeFeedbackRepo) Create(ctx context.Context, userID int64, dto domain.CreateFeedbackDTO) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f := domain.Feedback{ID: r.nextID, UserID: userID, Rating: dto.Rating, Comment: dto.Comment}
	r.nextID++
	r.items = append(r.items, f)
	return f.ID, nil
}

func (r *fakeFeedbackRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Feedback
	for _, f := range r.items {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fakeFeedbackRepo) ListAll(ctx context.Context) ([]domain.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Feedback(nil), r.items...), nil
}

// fakeChat mimics the model-side conversation: each Send appends a user
// turn and a scripted model turn to the history.
type fakeChat struct {
	history []ai.Content
	replies []string
	sent    [][]ai.Part
}

func (c *fakeChat) Send(ctx context.Context, parts []ai.Part) (string, error) {
	c.sent = append(c.sent, parts)

	reply := "ok"
	if len(c.replies) > 0 {
		reply = c.replies[0]
		c.replies = c.replies[1:]
	}

	c.history = append(c.history,
		ai.Content{Role: "user", Parts: parts},
		ai.Content{Role: "model", Parts: []ai.Part{ai.TextPart(reply)}},
	)
	return reply, nil
}

func (c *fakeChat) History() []ai.Content {
	return c.history
}

type fakeChatModel struct {
	replies []string
	chats   []*fakeChat
}

func (m *fakeChatModel) StartChat(history []ai.Content) ai.Chat {
	chat := &fakeChat{
		history: append([]ai.Content(nil), history...),
		replies: append([]string(nil), m.replies...),
	}
	m.chats = append(m.chats, chat)
	return chat
}

type fakeStorage struct {
	mu    sync.Mutex
	files map[string][]byte
	n     int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{files: make(map[string][]byte)}
}

func (s *fakeStorage) UploadFile(ctx context.Context, data []byte, dir, filename, contentType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	url := fmt.Sprintf("https://files.test/%s/%d-%s", dir, s.n, filename)
	s.files[url] = data
	return url, nil
}

func (s *fakeStorage) GetFile(ctx context.Context, fileURL string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[fileURL]
	if !ok {
		return nil, fmt.Errorf("файл %s: %w", fileURL, domain.ErrNotFound)
	}
	return data, nil
}

func (s *fakeStorage) DeleteFile(ctx context.Context, fileURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, fileURL)
	return nil
}
