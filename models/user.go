package models

import "time"

type User struct {
	ID             int64     `json:"user_id" db:"user_id"`
	Name           string    `json:"name" db:"name"`
	Email          string    `json:"email" db:"email"`
	PasswordHash   string    `json:"-" db:"password_hash"`
	ReferralCode   string    `json:"referral_code" db:"referral_code"`
	ReferrerID     *int64    `json:"referrer_id,omitempty" db:"referrer_id"`
	AccountBalance float64   `json:"account_balance" db:"account_balance"`
	TotalEarning   float64   `json:"total_earning" db:"total_earning"`
	Rewards        float64   `json:"rewards" db:"rewards"`
	Phone          string    `json:"phone" db:"phone"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

type RegisterInput struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	ReferralCode    string `json:"referralCode"`
}

type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// TokenClaims is the identity carried by a signed auth token.
type TokenClaims struct {
	UserID int64
	Email  string
}
