package models

import "time"

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type UserCreatePayload struct {
	UserID   string `json:"userId" validate:"required,max=50"`
	UserName string `json:"userName" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Role     Role   `json:"role" validate:"omitempty,oneof=employee manager admin"`
}
