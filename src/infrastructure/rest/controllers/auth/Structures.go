package auth

import "time"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,notblank"`
	Password string `json:"password" binding:"required"`
}

type UserData struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type LoginResponse struct {
	Success                  bool      `json:"success"`
	User                     UserData  `json:"user"`
	Token                    string    `json:"token"`
	ExpirationAccessDateTime time.Time `json:"expirationAccessDateTime"`
}
