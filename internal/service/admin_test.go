package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"nexgenhealth/internal/domain"
)

func newAdminEnv() (*AdminServiceImpl, *fakeUserRepo, *fakeNotificationRepo) {
	userRepo := newFakeUserRepo()
	notificationRepo := newFakeNotificationRepo()
	notifications := NewNotificationService(notificationRepo, userRepo, nil, zap.NewNop())
	svc := NewAdminService(userRepo, notifications, zap.NewNop())
	return svc, userRepo, notificationRepo
}

func TestPendingApprovals(t *testing.T) {
	svc, userRepo, _ := newAdminEnv()

	userRepo.add(domain.User{Role: domain.UserRolePatient, Status: domain.UserStatusPending})
	userRepo.add(domain.User{Role: domain.UserRoleDoctor, Status: domain.UserStatusPending})
	userRepo.add(domain.User{Role: domain.UserRolePatient, Status: domain.UserStatusAccepted})
	userRepo.add(domain.User{Role: domain.UserRoleAdmin, Status: domain.UserStatusPending})

	pending, err := svc.PendingApprovals(context.Background())
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if len(pending) != 2 {
		t.Errorf("ожидалось 2 заявки, получено %d", len(pending))
	}
}

func TestSetRegistrationStatus(t *testing.T) {
	svc, userRepo, notificationRepo := newAdminEnv()

	user := userRepo.add(domain.User{Role: domain.UserRolePatient, Status: domain.UserStatusPending})

	if err := svc.SetRegistrationStatus(context.Background(), user.ID, domain.UserStatusAccepted); err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	updated, _ := userRepo.GetByID(context.Background(), user.ID)
	if updated.Status != domain.UserStatusAccepted {
		t.Errorf("статус не обновлен: %s", updated.Status)
	}

	notifications, _ := notificationRepo.ListByUser(context.Background(), user.ID)
	if len(notifications) != 1 {
		t.Fatalf("пользователь должен получить уведомление, получено %d", len(notifications))
	}
	if notifications[0].Type != domain.NotificationRegistrationAccepted {
		t.Errorf("неверный тип уведомления: %s", notifications[0].Type)
	}
	if notifications[0].Message != "Your registration has been accepted." {
		t.Errorf("неверный текст уведомления: %q", notifications[0].Message)
	}
}

func TestSetRegistrationStatusValidation(t *testing.T) {
	svc, userRepo, _ := newAdminEnv()

	user := userRepo.add(domain.User{Role: domain.UserRolePatient, Status: domain.UserStatusPending})

	if err := svc.SetRegistrationStatus(context.Background(), user.ID, domain.UserStatusPending); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("возврат в pending должен отклоняться: %v", err)
	}
	if err := svc.SetRegistrationStatus(context.Background(), 999, domain.UserStatusAccepted); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("несуществующий пользователь должен давать не найдено: %v", err)
	}
}

func TestListAcceptedByRole(t *testing.T) {
	svc, userRepo, _ := newAdminEnv()

	userRepo.add(domain.User{Role: domain.UserRoleDoctor, Status: domain.UserStatusAccepted})
	userRepo.add(domain.User{Role: domain.UserRoleDoctor, Status: domain.UserStatusPending})
	userRepo.add(domain.User{Role: domain.UserRolePatient, Status: domain.UserStatusAccepted})

	doctors, err := svc.ListDoctors(context.Background())
	if err != nil || len(doctors) != 1 {
		t.Errorf("ожидался 1 принятый врач: %d, %v", len(doctors), err)
	}

	patients, err := svc.ListPatients(context.Background())
	if err != nil || len(patients) != 1 {
		t.Errorf("ожидался 1 принятый пациент: %d, %v", len(patients), err)
	}
}
