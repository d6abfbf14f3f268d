package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"github.com/gdugdh24/pairly-backend/internal/domain"
	"github.com/gdugdh24/pairly-backend/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// CodeSender delivers a one-time code to a phone number.
type CodeSender interface {
	SendCode(ctx context.Context, phone, code string) error
}

type PhoneAuthUseCase struct {
	userRepo      repository.UserRepository
	profileRepo   repository.ProfileRepository
	verifications repository.VerificationStore
	sender        CodeSender
	jwtSecret     string
	tokenTTL      time.Duration
	codeTTL       time.Duration
	now           func() time.Time
}

func NewPhoneAuthUseCase(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	verifications repository.VerificationStore,
	sender CodeSender,
	jwtSecret string,
	tokenTTL time.Duration,
	codeTTL time.Duration,
) *PhoneAuthUseCase {
	return &PhoneAuthUseCase{
		userRepo:      userRepo,
		profileRepo:   profileRepo,
		verifications: verifications,
		sender:        sender,
		jwtSecret:     jwtSecret,
		tokenTTL:      tokenTTL,
		codeTTL:       codeTTL,
		now:           time.Now,
	}
}

// LoginResponse is returned when a verification code has been sent
type LoginResponse struct {
	Message        string `json:"message"`
	VerificationID string `json:"verification_id"`
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	Token     string             `json:"token"`
	ExpiresAt time.Time          `json:"expires_at"`
	User      domain.UserSummary `json:"user"`
}

var e164 = regexp.MustCompile(`^\+[1-9][0-9]{7,14}$`)

// NormalizePhone strips formatting characters and checks E.164 shape.
func NormalizePhone(phone string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '.':
			return -1
		}
		return r
	}, strings.TrimSpace(phone))

	if !e164.MatchString(cleaned) {
		return "", fmt.Errorf("%w: phone must be in E.164 format", domain.ErrInvalidInput)
	}
	return cleaned, nil
}

// StartLogin issues a one-time code for phone and returns the verification id
// the client must echo back.
func (uc *PhoneAuthUseCase) StartLogin(ctx context.Context, phone string) (*LoginResponse, error) {
	normalized, err := NormalizePhone(phone)
	if err != nil {
		return nil, err
	}

	code, err := generateCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate code: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash code: %w", err)
	}

	verification := &domain.PendingVerification{
		ID:        uuid.NewString(),
		Phone:     normalized,
		CodeHash:  string(hash),
		CreatedAt: uc.now(),
	}
	if err := uc.verifications.Save(ctx, verification, uc.codeTTL); err != nil {
		return nil, err
	}

	if err := uc.sender.SendCode(ctx, normalized, code); err != nil {
		_ = uc.verifications.Delete(ctx, verification.ID)
		return nil, fmt.Errorf("failed to send verification code: %w", err)
	}

	return &LoginResponse{
		Message:        "verification code sent",
		VerificationID: verification.ID,
	}, nil
}

// Verify checks the code, creates the user on first login and issues a token.
// A code can be used once; too many wrong attempts burn the verification.
func (uc *PhoneAuthUseCase) Verify(ctx context.Context, verificationID, code string) (*AuthResponse, error) {
	attempts, err := uc.verifications.IncrementAttempts(ctx, verificationID)
	if err != nil {
		return nil, err
	}
	if attempts > domain.MaxVerificationAttempts {
		_ = uc.verifications.Delete(ctx, verificationID)
		return nil, domain.ErrTooManyAttempts
	}

	verification, err := uc.verifications.Get(ctx, verificationID)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(verification.CodeHash), []byte(code)); err != nil {
		return nil, domain.ErrInvalidCode
	}

	if err := uc.verifications.Delete(ctx, verificationID); err != nil {
		logrus.WithError(err).Warn("failed to delete used verification")
	}

	user, isNewUser, err := uc.userRepo.GetOrCreateByPhone(ctx, verification.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create user: %w", err)
	}

	isComplete := false
	profile, err := uc.profileRepo.GetByUserID(ctx, user.ID)
	switch {
	case err == nil:
		isComplete = profile.IsComplete
	case !errors.Is(err, domain.ErrProfileNotFound):
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	token, expiresAt, err := uc.IssueToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID, "new_user": isNewUser}).Info("phone verified")

	return &AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User: domain.UserSummary{
			ID:                user.ID,
			IsProfileComplete: isComplete,
			IsNewUser:         isNewUser,
		},
	}, nil
}

// IssueToken signs an HS256 token whose subject is the user id.
func (uc *PhoneAuthUseCase) IssueToken(userID uuid.UUID) (string, time.Time, error) {
	now := uc.now()
	expiresAt := now.Add(uc.tokenTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	tokenString, err := token.SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// VerifyToken verifies JWT token and returns user ID
func (uc *PhoneAuthUseCase) VerifyToken(tokenString string) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(uc.jwtSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(uc.now))
	if err != nil || !token.Valid {
		return uuid.Nil, domain.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidToken
	}
	return userID, nil
}

// generateCode returns a uniformly random 6-digit code.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
