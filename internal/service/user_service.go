package service

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/polishedevents/backend/internal/models"
	"github.com/polishedevents/backend/pkg/bcrypt"
)

type UserService struct {
	userRepo UserRepository
	logger   *zap.Logger
}

func NewUserService(userRepo UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *UserService) GetUserByID(id uuid.UUID) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

func (s *UserService) ListUsers() ([]models.User, error) {
	return s.userRepo.ListAll()
}

// UpdateProfile merges only the fields present in the request; nil pointers
// leave the stored value untouched.
func (s *UserService) UpdateProfile(userID uuid.UUID, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.ProfileImage != nil {
		user.ProfileImage = *req.ProfileImage
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) ChangePassword(userID uuid.UUID, req models.ChangePasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return fmt.Errorf("%w: new passwords do not match", models.ErrValidation)
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}

	if err := bcrypt.ComparePassword(user.Password, req.CurrentPassword); err != nil {
		return models.ErrWrongPassword
	}

	hashedPassword, err := bcrypt.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(user.ID, hashedPassword)
}

// DeleteAccount removes the user row; events and bookings referencing it go
// with it through the FK cascade.
func (s *UserService) DeleteAccount(userID uuid.UUID) error {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return err
	}

	if err := s.userRepo.Delete(userID); err != nil {
		return err
	}

	s.logger.Info("account deleted", zap.String("user_id", userID.String()))
	return nil
}
