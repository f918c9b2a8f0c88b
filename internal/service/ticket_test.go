package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"nexgenhealth/internal/domain"
)

func newTicketEnv() (*TicketServiceImpl, *fakeTicketRepo, *fakeUserRepo, *fakeNotificationRepo) {
	userRepo := newFakeUserRepo()
	ticketRepo := newFakeTicketRepo()
	notificationRepo := newFakeNotificationRepo()
	notifications := NewNotificationService(notificationRepo, userRepo, nil, zap.NewNop())
	svc := NewTicketService(ticketRepo, userRepo, notifications, newFakeStorage(), zap.NewNop())
	return svc, ticketRepo, userRepo, notificationRepo
}

func TestTicketGetAccessMatrix(t *testing.T) {
	svc, ticketRepo, userRepo, _ := newTicketEnv()

	owner := userRepo.add(domain.User{Role: domain.UserRolePatient, Status: domain.UserStatusAccepted})
	otherPatient := userRepo.add(domain.User{Role: domain.UserRolePatient, Status: domain.UserStatusAccepted})
	assigned := userRepo.add(domain.User{Role: domain.UserRoleDoctor, Status: domain.UserStatusAccepted})
	otherDoctor := userRepo.add(domain.User{Role: domain.UserRoleDoctor, Status: domain.UserStatusAccepted})
	admin := userRepo.add(domain.User{Role: domain.UserRoleAdmin, Status: domain.UserStatusAccepted})

	ticketRepo.add(domain.Ticket{ID: 10, Title: "t", Description: "d", PatientID: owner.ID, AssignedDoctorID: &assigned.ID})

	cases := []struct {
		name    string
		actorID int64
		role    domain.UserRole
		allowed bool
	}{
		{"админ видит все", admin.ID, domain.UserRoleAdmin, true},
		{"назначенный врач видит", assigned.ID, domain.UserRoleDoctor, true},
		{"чужой врач не видит", otherDoctor.ID, domain.UserRoleDoctor, false},
		{"пациент-владелец видит", owner.ID, domain.UserRolePatient, true},
		{"чужой пациент не видит", otherPatient.ID, domain.UserRolePatient, false},
		{"неизвестная роль отклоняется", admin.ID, domain.UserRole("support"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.GetByID(context.Background(), tc.actorID, tc.role, 10)
			if tc.allowed && err != nil {
				t.Errorf("ожидался доступ, получено %v", err)
			}
			if !tc.allowed && !errors.Is(err, domain.ErrUnauthorizedAccess) {
				t.Errorf("ожидался отказ в доступе, получено %v", err)
			}
		})
	}
}

func TestTicketGetNotFoundBeforeAccessCheck(t *testing.T) {
	svc, _, userRepo, _ := newTicketEnv()
	patient := userRepo.add(domain.User{Role: domain.UserRolePatient, Status: domain.UserStatusAccepted})

	_, err := svc.GetByID(context.Background(), patient.ID, domain.UserRolePatient, 999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("несуществующее обращение должно давать не найдено, получено %v", err)
	}
}

func TestTicketUpdateOnlyOwner(t *testing.T) {
	svc, ticketRepo, userRepo, _ := newTicketEnv()

	owner := userRepo.add(domain.User{Role: domain.UserRolePatient, Status: domain.UserStatusAccepted})
	doctor := userRepo.add(domain.User{Role: domain.UserRoleDoctor, Status: domain.UserStatusAccepted})
	admin := userRepo.add(domain.User{Role: domain.UserRoleAdmin, Status: domain.UserStatusAccepted})

	ticketRepo.add(domain.Ticket{ID: 5, Title: "old", Description: "d", PatientID: owner.ID, AssignedDoctorID: &doctor.ID})

	newTitle := "new title"
	dto := domain.UpdateTicketDTO{Title: &newTitle}

	if _, err := svc.Update(context.Background(), doctor.ID, domain.UserRoleDoctor, 5, dto); !errors.Is(err, domain.ErrUnauthorizedAccess) {
		t.Errorf("врач не должен обновлять обращение: %v", err)
	}
	if _, err := svc.Update(context.Background(), admin.ID, domain.UserRoleAdmin, 5, dto); !errors.Is(err, domain.ErrUnauthorizedAccess) {
		t.Errorf("админ не должен обновлять обращение: %v", err)
	}

	if _, err := svc.Update(context.Background(), owner.ID, domain.UserRolePatient, 5, domain.UpdateTicketDTO{}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("пустое обновление должно отклоняться: %v", err)
	}

	updated, err := svc.Update(context.Background(), owner.ID, domain.UserRolePatient, 5, dto)
	if err != nil {
		t.Fatalf("владелец должен обновлять обращение: %v", err)
	}
	if updated.Title != "new title" {
		t.Errorf("заголовок не обновлен: %q", updated.Title)
	}
}

func TestTicketDeleteOnlyOwner(t *testing.T) {
	svc, ticketRepo, userRepo, _ := newTicketEnv()

	owner := userRepo.add(domain.User{Role: domain.UserRolePatient, Status: domain.UserStatusAccepted})
	other := userRepo.add(domain.User{Role: domain.UserRolePatient, Status: domain.UserStatusAccepted})

	ticketRepo.add(domain.Ticket{ID: 3, Title: "t", Description: "d", PatientID: owner.ID})

	if err := svc.Delete(context.Background(), other.ID, domain.UserRolePatient, 3); !errors.Is(err, domain.ErrUnauthorizedAccess) {
		t.Errorf("чужой пациент не должен удалять обращение: %v", err)
	}

	if err := svc.Delete(context.Background(), owner.ID, domain.UserRolePatient, 3); err != nil {
		t.Fatalf("владелец должен удалять обращение: %v", err)
	}

	if _, err := ticketRepo.GetByID(context.Background(), 3); !errors.Is(err, domain.ErrNotFound) {
		t.Error("обращение не удалено")
	}
}

func TestTicketCreateNotifiesAcceptedAdmins(t *testing.T) {
	svc, _, userRepo, notificationRepo := newTicketEnv()

	patient := userRepo.add(domain.User{Username: "ivan", Role: domain.UserRolePatient, Status: domain.UserStatusAccepted})
	acceptedAdmin := userRepo.add(domain.User{Role: domain.UserRoleAdmin, Status: domain.UserStatusAccepted})
	pendingAdmin := userRepo.add(domain.User{Role: domain.UserRoleAdmin, Status: domain.UserStatusPending})

	ticket, err := svc.Create(context.Background(), patient.ID, domain.CreateTicketDTO{Title: "pain", Description: "back pain"}, nil, nil)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if ticket.Status != domain.TicketStatusPending {
		t.Errorf("новое обращение должно быть pending, получено %s", ticket.Status)
	}

	adminNotifications, _ := notificationRepo.ListByUser(context.Background(), acceptedAdmin.ID)
	if len(adminNotifications) != 1 {
		t.Fatalf("принятый админ должен получить уведомление, получено %d", len(adminNotifications))
	}
	n := adminNotifications[0]
	if n.Type != domain.NotificationTicketCreated {
		t.Errorf("неверный тип уведомления: %s", n.Type)
	}
	if n.Message != "New ticket created by ivan" {
		t.Errorf("неверный текст уведомления: %q", n.Message)
	}

	pendingNotifications, _ := notificationRepo.ListByUser(context.Background(), pendingAdmin.ID)
	if len(pendingNotifications) != 0 {
		t.Error("непринятый админ не должен получать уведомления")
	}
}

func TestTicketCreateWithAttachments(t *testing.T) {
	userRepo := newFakeUserRepo()
	ticketRepo := newFakeTicketRepo()
	store := newFakeStorage()
	notifications := NewNotificationService(newFakeNotificationRepo(), userRepo, nil, zap.NewNop())
	svc := NewTicketService(ticketRepo, userRepo, notifications, store, zap.NewNop())

	patient := userRepo.add(domain.User{Username: "p", Role: domain.UserRolePatient, Status: domain.UserStatusAccepted})

	doc := &FileUpload{Filename: "notes.txt", ContentType: "text/plain", Data: []byte("notes")}
	ticket, err := svc.Create(context.Background(), patient.ID, domain.CreateTicketDTO{Title: "t", Description: "d"}, nil, doc)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	if ticket.DocsURL == "" {
		t.Fatal("ссылка на документ не сохранена")
	}
	data, err := store.GetFile(context.Background(), ticket.DocsURL)
	if err != nil || string(data) != "notes" {
		t.Errorf("документ не загружен в хранилище: %v", err)
	}
}

func TestAssignDoctor(t *testing.T) {
	svc, ticketRepo, userRepo, notificationRepo := newTicketEnv()

	patient := userRepo.add(domain.User{Role: domain.UserRolePatient, Status: domain.UserStatusAccepted})
	doctor := userRepo.add(domain.User{Role: domain.UserRoleDoctor, Status: domain.UserStatusAccepted})
	pendingDoctor := userRepo.add(domain.User{Role: domain.UserRoleDoctor, Status: domain.UserStatusPending})

	ticketRepo.add(domain.Ticket{ID: 1, Title: "checkup", Description: "d", PatientID: patient.ID})

	if _, err := svc.AssignDoctor(context.Background(), 1, patient.ID); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("назначение пациента должно отклоняться: %v", err)
	}
	if _, err := svc.AssignDoctor(context.Background(), 1, pendingDoctor.ID); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("назначение непринятого врача должно отклоняться: %v", err)
	}
	if _, err := svc.AssignDoctor(context.Background(), 404, doctor.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("несуществующее обращение должно давать не найдено: %v", err)
	}

	ticket, err := svc.AssignDoctor(context.Background(), 1, doctor.ID)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if ticket.AssignedDoctorID == nil || *ticket.AssignedDoctorID != doctor.ID {
		t.Error("врач не назначен")
	}

	notifications, _ := notificationRepo.ListByUser(context.Background(), doctor.ID)
	if len(notifications) != 1 {
		t.Fatalf("врач должен получить уведомление, получено %d", len(notifications))
	}
	if notifications[0].Type != domain.NotificationTicketAssigned {
		t.Errorf("неверный тип уведомления: %s", notifications[0].Type)
	}
	if notifications[0].Message != "A new ticket titled 'checkup' has been assigned to you." {
		t.Errorf("неверный текст уведомления: %q", notifications[0].Message)
	}
}

func TestTicketListByRoleWithStatusFilter(t *testing.T) {
	svc, ticketRepo, userRepo, _ := newTicketEnv()

	patient := userRepo.add(domain.User{Role: domain.UserRolePatient, Status: domain.UserStatusAccepted})
	doctor := userRepo.add(domain.User{Role: domain.UserRoleDoctor, Status: domain.UserStatusAccepted})
	admin := userRepo.add(domain.User{Role: domain.UserRoleAdmin, Status: domain.UserStatusAccepted})

	ticketRepo.add(domain.Ticket{ID: 1, PatientID: patient.ID, AssignedDoctorID: &doctor.ID, Status: domain.TicketStatusResolved})
	ticketRepo.add(domain.Ticket{ID: 2, PatientID: patient.ID, Status: domain.TicketStatusPending})

	all, err := svc.List(context.Background(), admin.ID, domain.UserRoleAdmin, nil)
	if err != nil || len(all) != 2 {
		t.Errorf("админ должен видеть все обращения: %d, %v", len(all), err)
	}

	mine, err := svc.List(context.Background(), doctor.ID, domain.UserRoleDoctor, nil)
	if err != nil || len(mine) != 1 {
		t.Errorf("врач должен видеть только назначенные: %d, %v", len(mine), err)
	}

	resolved := domain.TicketStatusResolved
	filtered, err := svc.List(context.Background(), patient.ID, domain.UserRolePatient, &resolved)
	if err != nil || len(filtered) != 1 || filtered[0].ID != 1 {
		t.Errorf("фильтр по статусу работает неверно: %+v, %v", filtered, err)
	}

	if _, err := svc.List(context.Background(), admin.ID, domain.UserRole("support"), nil); !errors.Is(err, domain.ErrUnauthorizedAccess) {
		t.Errorf("неизвестная роль должна отклоняться: %v", err)
	}
}
