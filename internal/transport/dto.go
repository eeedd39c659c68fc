package transport

import "github.com/Skotchmaster/localshop/internal/models"

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AddToCartRequest struct {
	ProductID int64 `json:"product_id"`
}

// UserResponse is a User without its stored password.
type UserResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

func NewUserResponse(u *models.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, IsAdmin: u.IsAdmin}
}

type CartCountResponse struct {
	Count int `json:"count"`
}
