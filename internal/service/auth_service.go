package service

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/polishedevents/backend/internal/models"
	"github.com/polishedevents/backend/pkg/bcrypt"
	"github.com/polishedevents/backend/pkg/email"
	jwtPkg "github.com/polishedevents/backend/pkg/jwt"
)

const TokenExpiryEmailVerify = 24 * time.Hour

type AuthService struct {
	userRepo     UserRepository
	emailService *email.EmailService
	logger       *zap.Logger
}

func NewAuthService(userRepo UserRepository, emailService *email.EmailService, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		emailService: emailService,
		logger:       logger,
	}
}

func (s *AuthService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	exists, err := s.userRepo.EmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.ErrEmailTaken
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  hashedPassword,
		Phone:     req.Phone,
		IsActive:  true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := jwtPkg.GenerateToken(user.Email, user.ID)
	if err != nil {
		return nil, err
	}

	if s.emailService != nil {
		verificationToken, err := s.generateVerificationToken(user.Email)
		if err != nil {
			s.logger.Warn("verification token generation failed", zap.Error(err))
		} else {
			go s.emailService.SendVerificationEmail(user.Email, user.FirstName, verificationToken)
		}
		go s.emailService.SendWelcomeEmail(user.Email, user.FirstName)
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	token, err := jwtPkg.GenerateToken(user.Email, user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

// VerifyEmail flips the EmailVerified flag for the user a verification token
// was issued to.
func (s *AuthService) VerifyEmail(token string) error {
	claims, err := jwtPkg.ValidateToken(token)
	if err != nil {
		return models.ErrTokenInvalid
	}

	if purpose, _ := claims["type"].(string); purpose != "email_verification" {
		return models.ErrTokenInvalid
	}

	emailClaim, ok := claims["email"].(string)
	if !ok {
		return models.ErrTokenInvalid
	}

	user, err := s.userRepo.GetByEmail(emailClaim)
	if err != nil {
		return err
	}

	if user.EmailVerified {
		return nil
	}

	user.EmailVerified = true
	return s.userRepo.Update(user)
}

func (s *AuthService) generateVerificationToken(emailAddr string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"email": emailAddr,
		"exp":   now.Add(TokenExpiryEmailVerify).Unix(),
		"iat":   now.Unix(),
		"iss":   os.Getenv("JWT_ISSUER"),
		"type":  "email_verification",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
