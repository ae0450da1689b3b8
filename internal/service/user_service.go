package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lshigami/atcprep/internal/auth"
	"github.com/lshigami/atcprep/internal/dto"
	"github.com/lshigami/atcprep/internal/model"
	"github.com/lshigami/atcprep/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

const (
	MinGrade = 0
	MaxGrade = 20
)

type UserService interface {
	Register(req dto.RegisterRequest) (*model.User, error)
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
	GetUser(id string) (*model.User, error)
	ListUsers() ([]model.User, error)
	SetGrade(userID string, req dto.GradeUpdateDTO) (*model.User, error)
	EnsureAdmin(email string) error
}

type userService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
}

func NewUserService(userRepo repository.UserRepository, tokens *auth.TokenManager) UserService {
	return &userService{userRepo: userRepo, tokens: tokens}
}

func (s *userService) Register(req dto.RegisterRequest) (*model.User, error) {
	email := normalizeEmail(req.Email)
	existing, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email %s is already registered", ErrConflict, email)
	}

	user := model.User{
		ID:        uuid.NewString(),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     email,
		Role:      model.RoleUser,
		Grades:    datatypes.NewJSONType(model.Grades{}),
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Msg("Failed to create user in database")
		return nil, fmt.Errorf("database error creating user: %w", err)
	}
	log.Info().Str("userID", user.ID).Msg("User registered")
	return &user, nil
}

// Login identifies the caller by email alone and issues a token.
func (s *userService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(normalizeEmail(req.Email))
	if err != nil {
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	if user == nil {
		return nil, ErrUnknownEmail
	}
	token, expires, err := s.tokens.Issue(user)
	if err != nil {
		log.Error().Err(err).Str("userID", user.ID).Msg("Failed to sign token")
		return nil, fmt.Errorf("error issuing token: %w", err)
	}
	return &dto.LoginResponse{Token: token, ExpiresAt: expires, User: *user}, nil
}

func (s *userService) GetUser(id string) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("error fetching user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, id)
	}
	return user, nil
}

func (s *userService) ListUsers() ([]model.User, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list users")
		return nil, fmt.Errorf("error fetching users: %w", err)
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

// SetGrade writes one admin-curated grade slot. Submissions never touch grades.
func (s *userService) SetGrade(userID string, req dto.GradeUpdateDTO) (*model.User, error) {
	slot := strings.TrimSpace(req.Slot)
	if slot == "" {
		return nil, fmt.Errorf("%w: grade slot is required", ErrInvalidInput)
	}
	if req.Grade == nil || *req.Grade < MinGrade || *req.Grade > MaxGrade {
		return nil, fmt.Errorf("%w: grade must be between %d and %d", ErrInvalidInput, MinGrade, MaxGrade)
	}
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	grades := model.Grades{}
	for k, v := range user.Grades.Data() {
		grades[k] = v
	}
	grades[slot] = *req.Grade
	user.Grades = datatypes.NewJSONType(grades)

	if err := s.userRepo.Update(user); err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to update user grades")
		return nil, fmt.Errorf("database error updating grades: %w", err)
	}
	log.Info().Str("userID", userID).Str("slot", slot).Float64("grade", *req.Grade).Msg("Grade updated")
	return user, nil
}

// EnsureAdmin creates or promotes the account for email. An empty email is a no-op.
func (s *userService) EnsureAdmin(email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return nil
	}
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return fmt.Errorf("error fetching admin user: %w", err)
	}
	if user == nil {
		admin := model.User{
			ID:        uuid.NewString(),
			FirstName: "Admin",
			LastName:  "ATC",
			Email:     email,
			Role:      model.RoleAdmin,
			Grades:    datatypes.NewJSONType(model.Grades{}),
		}
		if err := s.userRepo.Create(&admin); err != nil {
			return fmt.Errorf("database error creating admin user: %w", err)
		}
		log.Info().Str("email", email).Msg("Seeded admin account")
		return nil
	}
	if user.Role != model.RoleAdmin {
		user.Role = model.RoleAdmin
		if err := s.userRepo.Update(user); err != nil {
			return fmt.Errorf("database error promoting admin user: %w", err)
		}
		log.Info().Str("email", email).Msg("Promoted account to admin")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
