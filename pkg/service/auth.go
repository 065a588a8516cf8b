package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/mahimamj/bdspro/models"
	"github.com/mahimamj/bdspro/pkg/repository"
)

const (
	tokenTTL           = 24 * time.Hour
	bcryptCost         = 12
	referralCodeChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	referralCodeLength = 8
)

type AuthService struct {
	repos     repository.Authorization
	jwtSecret []byte
}

func NewAuthService(repos repository.Authorization, jwtSecret []byte) *AuthService {
	return &AuthService{
		repos:     repos,
		jwtSecret: jwtSecret,
	}
}

func (s *AuthService) Register(ctx context.Context, input models.RegisterInput) (models.AuthResponse, error) {
	if input.Password != input.ConfirmPassword {
		return models.AuthResponse{}, models.ValidationError("Passwords do not match")
	}
	if len(input.Password) < 6 {
		return models.AuthResponse{}, models.ValidationError("Password must be at least 6 characters long")
	}

	_, err := s.repos.GetUserByEmail(ctx, input.Email)
	if err == nil {
		return models.AuthResponse{}, models.ErrEmailTaken
	}
	if !errors.Is(err, models.ErrNotFound) {
		return models.AuthResponse{}, errors.Wrap(err, "check existing email")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return models.AuthResponse{}, errors.Wrap(err, "hash password")
	}

	code, err := uniqueReferralCode(ctx, s.repos)
	if err != nil {
		return models.AuthResponse{}, err
	}

	// An unknown referral code does not block registration, the user just
	// ends up without a referrer.
	var referrerID *int64
	if input.ReferralCode != "" {
		referrer, err := s.repos.GetUserByReferralCode(ctx, input.ReferralCode)
		switch {
		case err == nil:
			referrerID = &referrer.ID
		case errors.Is(err, models.ErrNotFound):
			logrus.Infof("referral code %s not found, registering without referrer", input.ReferralCode)
		default:
			return models.AuthResponse{}, errors.Wrap(err, "resolve referral code")
		}
	}

	user := models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashed),
		ReferralCode: code,
		ReferrerID:   referrerID,
	}
	id, err := s.repos.CreateUser(ctx, user)
	if err != nil {
		return models.AuthResponse{}, err
	}
	user.ID = id

	token, err := s.generateToken(user)
	if err != nil {
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{User: user, Token: token}, nil
}

// ParseToken validates a signed token and returns its identity claims.
func (s *AuthService) ParseToken(token string) (models.TokenClaims, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return models.TokenClaims{}, errors.New("invalid token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return models.TokenClaims{}, errors.New("invalid token claims")
	}
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return models.TokenClaims{}, errors.New("invalid token claims")
	}
	email, _ := claims["email"].(string)
	return models.TokenClaims{UserID: int64(userID), Email: email}, nil
}

func (s *AuthService) generateToken(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return signed, nil
}

func uniqueReferralCode(ctx context.Context, repos repository.Authorization) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		code, err := newReferralCode()
		if err != nil {
			return "", err
		}
		exists, err := repos.ReferralCodeExists(ctx, code)
		if err != nil {
			return "", errors.Wrap(err, "check referral code")
		}
		if !exists {
			return code, nil
		}
	}
	return "", errors.New("could not generate unique referral code")
}

// newReferralCode produces codes shaped like BDS_K4QX81MZ.
func newReferralCode() (string, error) {
	buf := make([]byte, referralCodeLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(referralCodeChars))))
		if err != nil {
			return "", errors.Wrap(err, "generate referral code")
		}
		buf[i] = referralCodeChars[n.Int64()]
	}
	return fmt.Sprintf("BDS_%s", buf), nil
}
