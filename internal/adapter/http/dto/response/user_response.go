package response

import (
	"time"

	"servineta/internal/domain/entities"
	"servineta/internal/usecase"
)

type UserResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	Active           bool      `json:"active"`
	ProfilePictureID string    `json:"profile_picture_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Role:             string(u.Role),
		Active:           u.Active,
		ProfilePictureID: u.ProfilePictureID,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

func FromAuthResult(r usecase.AuthResult) AuthResponse {
	return AuthResponse{User: FromUser(r.User), Token: r.Token}
}

type CreatedUserResponse struct {
	User     UserResponse `json:"user"`
	MailSent bool         `json:"mail_sent"`
}

func FromCreatedUser(c usecase.CreatedUser) CreatedUserResponse {
	return CreatedUserResponse{User: FromUser(c.User), MailSent: c.MailSent}
}

type UserListResponse struct {
	Items      []UserResponse `json:"items"`
	NextCursor string         `json:"next_cursor,omitempty"`
}

func FromUsers(users []entities.User, cursor string) UserListResponse {
	items := make([]UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, FromUser(u))
	}
	return UserListResponse{Items: items, NextCursor: cursor}
}
