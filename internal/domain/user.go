package domain

import (
	"time"
)

type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleDoctor  UserRole = "doctor"
	UserRolePatient UserRole = "patient"
)

type UserStatus string

const (
	UserStatusPending  UserStatus = "pending"
	UserStatusAccepted UserStatus = "accepted"
	UserStatusRejected UserStatus = "rejected"
)

type User struct {
	ID           int64        `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	Role         UserRole     `json:"role"`
	Status       UserStatus   `json:"status"`
	FCMToken     string       `json:"fcm_token,omitempty"`
	PatientData  *PatientData `json:"patient_data,omitempty"`
	DoctorData   *DoctorData  `json:"doctor_data,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// PatientData holds the medical profile a patient fills in after approval.
type PatientData struct {
	Age               *float64 `json:"age,omitempty"`
	Height            *float64 `json:"height,omitempty"`
	Weight            *float64 `json:"weight,omitempty"`
	BloodGroup        string   `json:"blood_group,omitempty"`
	MedicalConditions []string `json:"medical_conditions,omitempty"`
	MedicalHistory    []string `json:"medical_history,omitempty"`
	Medications       []string `json:"medications,omitempty"`
	Allergies         []string `json:"allergies,omitempty"`
}

// DoctorData holds the professional profile of a doctor.
type DoctorData struct {
	Qualifications  []string `json:"qualifications,omitempty"`
	Specializations []string `json:"specializations,omitempty"`
	ExperienceYears *int     `json:"experience_years,omitempty"`
	LicenseNumber   string   `json:"license_number,omitempty"`
	Hospital        string   `json:"hospital,omitempty"`
	Age             *float64 `json:"age,omitempty"`
}

type RegisterRequest struct {
	Username string   `json:"username" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=8"`
	Role     UserRole `json:"role" binding:"required,oneof=admin doctor patient"`
	FCMToken string   `json:"fcm_token"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type UpdateUserDTO struct {
	Username    *string      `json:"username"`
	Email       *string      `json:"email" binding:"omitempty,email"`
	FCMToken    *string      `json:"fcm_token"`
	PatientData *PatientData `json:"patient_data"`
	DoctorData  *DoctorData  `json:"doctor_data"`
}

// IsEmpty reports whether the update carries no fields at all.
func (d UpdateUserDTO) IsEmpty() bool {
	return d.Username == nil && d.Email == nil && d.FCMToken == nil &&
		d.PatientData == nil && d.DoctorData == nil
}
