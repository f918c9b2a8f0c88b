package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"nexgenhealth/internal/domain"
)

func newReportEnv() (*ReportServiceImpl, *fakeTicketRepo, *fakeUserRepo, *fakeNotificationRepo) {
	userRepo := newFakeUserRepo()
	ticketRepo := newFakeTicketRepo()
	reportRepo := newFakeReportRepo()
	notificationRepo := newFakeNotificationRepo()
	notifications := NewNotificationService(notificationRepo, userRepo, nil, zap.NewNop())
	svc := NewReportService(reportRepo, ticketRepo, userRepo, notifications, newFakeStorage(), zap.NewNop())
	return svc, ticketRepo, userRepo, notificationRepo
}

func TestSubmitReport(t *testing.T) {
	svc, ticketRepo, userRepo, notificationRepo := newReportEnv()

	patient := userRepo.add(domain.User{
		Role:        domain.UserRolePatient,
		Status:      domain.UserStatusAccepted,
		PatientData: &domain.PatientData{Medications: []string{"aspirin"}},
	})
	doctor := userRepo.add(domain.User{Role: domain.UserRoleDoctor, Status: domain.UserStatusAccepted})

	ticketRepo.add(domain.Ticket{ID: 1, Title: "flu", Description: "d", PatientID: patient.ID, AssignedDoctorID: &doctor.ID})

	dto := domain.CreateReportDTO{
		Diagnosis:       "seasonal flu",
		Recommendations: "rest and fluids",
		Medications:     []string{"paracetamol", "aspirin"},
	}

	report, err := svc.Submit(context.Background(), doctor.ID, domain.UserRoleDoctor, 1, dto, nil, nil)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if report.Diagnosis != "seasonal flu" || report.TicketID != 1 || report.DoctorID != doctor.ID {
		t.Errorf("неверный отчет: %+v", report)
	}

	ticket, _ := ticketRepo.GetByID(context.Background(), 1)
	if ticket.Status != domain.TicketStatusResolved {
		t.Errorf("обращение должно стать resolved, получено %s", ticket.Status)
	}

	updatedPatient, _ := userRepo.GetByID(context.Background(), patient.ID)
	meds := updatedPatient.PatientData.Medications
	if len(meds) != 2 || meds[0] != "aspirin" || meds[1] != "paracetamol" {
		t.Errorf("лекарства должны дополняться без дублей: %v", meds)
	}

	notifications, _ := notificationRepo.ListByUser(context.Background(), patient.ID)
	if len(notifications) != 1 {
		t.Fatalf("пациент должен получить уведомление, получено %d", len(notifications))
	}
	if notifications[0].Type != domain.NotificationReportSubmitted {
		t.Errorf("неверный тип уведомления: %s", notifications[0].Type)
	}
	if notifications[0].Message != "A report has been submitted for your ticket titled 'flu.'" {
		t.Errorf("неверный текст уведомления: %q", notifications[0].Message)
	}
}

func TestSubmitReportOnlyAssignedDoctor(t *testing.T) {
	svc, ticketRepo, userRepo, _ := newReportEnv()

	patient := userRepo.add(domain.User{Role: domain.UserRolePatient, Status: domain.UserStatusAccepted})
	assigned := userRepo.add(domain.User{Role: domain.UserRoleDoctor, Status: domain.UserStatusAccepted})
	other := userRepo.add(domain.User{Role: domain.UserRoleDoctor, Status: domain.UserStatusAccepted})

	ticketRepo.add(domain.Ticket{ID: 1, Title: "t", Description: "d", PatientID: patient.ID, AssignedDoctorID: &assigned.ID})
	ticketRepo.add(domain.Ticket{ID: 2, Title: "t2", Description: "d", PatientID: patient.ID})

	dto := domain.CreateReportDTO{Diagnosis: "x", Recommendations: "y"}

	if _, err := svc.Submit(context.Background(), other.ID, domain.UserRoleDoctor, 1, dto, nil, nil); !errors.Is(err, domain.ErrUnauthorizedAccess) {
		t.Errorf("чужой врач должен получать отказ: %v", err)
	}
	if _, err := svc.Submit(context.Background(), assigned.ID, domain.UserRoleDoctor, 2, dto, nil, nil); !errors.Is(err, domain.ErrUnauthorizedAccess) {
		t.Errorf("обращение без назначенного врача должно давать отказ: %v", err)
	}
	if _, err := svc.Submit(context.Background(), patient.ID, domain.UserRolePatient, 1, dto, nil, nil); !errors.Is(err, domain.ErrUnauthorizedAccess) {
		t.Errorf("пациент не должен отправлять отчет: %v", err)
	}
	if _, err := svc.Submit(context.Background(), assigned.ID, domain.UserRoleDoctor, 99, dto, nil, nil); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("несуществующее обращение должно давать не найдено: %v", err)
	}
}

func TestSubmitReportConflict(t *testing.T) {
	svc, ticketRepo, userRepo, _ := newReportEnv()

	patient := userRepo.add(domain.User{Role: domain.UserRolePatient, Status: domain.UserStatusAccepted})
	doctor := userRepo.add(domain.User{Role: domain.UserRoleDoctor, Status: domain.UserStatusAccepted})

	ticketRepo.add(domain.Ticket{ID: 1, Title: "t", Description: "d", PatientID: patient.ID, AssignedDoctorID: &doctor.ID})

	dto := domain.CreateReportDTO{Diagnosis: "first", Recommendations: "r"}
	if _, err := svc.Submit(context.Background(), doctor.ID, domain.UserRoleDoctor, 1, dto, nil, nil); err != nil {
		t.Fatalf("первый отчет должен создаваться: %v", err)
	}

	second := domain.CreateReportDTO{Diagnosis: "second", Recommendations: "r"}
	if _, err := svc.Submit(context.Background(), doctor.ID, domain.UserRoleDoctor, 1, second, nil, nil); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("повторный отчет должен давать конфликт: %v", err)
	}

	report, err := svc.GetByTicket(context.Background(), doctor.ID, domain.UserRoleDoctor, 1)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if report.Diagnosis != "first" {
		t.Errorf("первый отчет должен остаться без изменений: %q", report.Diagnosis)
	}
}

func TestGetReportAccess(t *testing.T) {
	svc, ticketRepo, userRepo, _ := newReportEnv()

	patient := userRepo.add(domain.User{Role: domain.UserRolePatient, Status: domain.UserStatusAccepted})
	other := userRepo.add(domain.User{Role: domain.UserRolePatient, Status: domain.UserStatusAccepted})
	doctor := userRepo.add(domain.User{Role: domain.UserRoleDoctor, Status: domain.UserStatusAccepted})

	ticketRepo.add(domain.Ticket{ID: 1, Title: "t", Description: "d", PatientID: patient.ID, AssignedDoctorID: &doctor.ID})

	dto := domain.CreateReportDTO{Diagnosis: "x", Recommendations: "y"}
	if _, err := svc.Submit(context.Background(), doctor.ID, domain.UserRoleDoctor, 1, dto, nil, nil); err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	if _, err := svc.GetByTicket(context.Background(), patient.ID, domain.UserRolePatient, 1); err != nil {
		t.Errorf("владелец должен читать отчет: %v", err)
	}
	if _, err := svc.GetByTicket(context.Background(), other.ID, domain.UserRolePatient, 1); !errors.Is(err, domain.ErrUnauthorizedAccess) {
		t.Errorf("чужой пациент не должен читать отчет: %v", err)
	}
}
