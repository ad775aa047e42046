package model

import "time"

type User struct {
	DTO
	Username string `gorm:"size:100;uniqueIndex;not null" validate:"required" json:"username"`
	Email    string `gorm:"size:255;uniqueIndex;not null" validate:"required,email" json:"email"`
	Password string `gorm:"not null" json:"-"`
	FullName string `gorm:"size:255" json:"fullName"`
	Phone    string `gorm:"size:20" json:"phone"`
	Role     string `gorm:"size:20;not null;default:'CUSTOMER'" json:"role"` // ADMIN, CUSTOMER
	IsActive bool   `gorm:"default:true" json:"isActive"`
}

type PasswordResetToken struct {
	DTO
	UserId    uint      `gorm:"index" json:"userId"`
	Token     string    `gorm:"size:64;uniqueIndex" json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName" validate:"omitempty,max=255"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
}

type CreateUserInput struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"fullName" validate:"omitempty,max=255"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	Role     string `json:"role" validate:"required,oneof=ADMIN CUSTOMER"`
}

type UpdateUserInput struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	FullName *string `json:"fullName" validate:"omitempty,max=255"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
	Role     *string `json:"role" validate:"omitempty,oneof=ADMIN CUSTOMER"`
	IsActive *bool   `json:"isActive"`
}

type FilterUserInput struct {
	Pagination
	Username string `query:"username"`
	Email    string `query:"email"`
	Role     string `query:"role" validate:"omitempty,oneof=ADMIN CUSTOMER"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	RepeatPassword  string `json:"repeatPassword" validate:"required,eqfield=NewPassword"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}
