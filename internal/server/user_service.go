// Package server provides the HTTP REST API for the alumni network.
package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/alumni-connect/internal/config"
	"github.com/jonathan/alumni-connect/internal/db"
	"github.com/jonathan/alumni-connect/internal/types"
)

// DBClient is the database surface the server depends on.
// *db.DB satisfies it; tests substitute fakes.
type DBClient interface {
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, name, email, role string) (uuid.UUID, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
	GetUser(ctx context.Context, userID uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	UpdateProfile(ctx context.Context, user *db.User) error
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	ListUsers(ctx context.Context) ([]db.User, error)
	ListUsersByRole(ctx context.Context, role string) ([]db.User, error)
	ListFeaturedAlumni(ctx context.Context) ([]db.User, error)
	ListAlumniLocations(ctx context.Context) ([]db.AlumniLocation, error)
	SaveProfileEmbedding(ctx context.Context, userID uuid.UUID, embedding []float64) error
}

// UserService provides business logic for user account and profile operations
type UserService struct {
	db             DBClient
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(db DBClient, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		db:             db,
		passwordConfig: passwordConfig,
	}
}

// convertDBUserToTypesUser converts db.User to types.User, excluding password hash and embedding
func convertDBUserToTypesUser(dbUser *db.User) *types.User {
	if dbUser == nil {
		return nil
	}
	return &types.User{
		ID:              dbUser.ID,
		Name:            dbUser.Name,
		Email:           dbUser.Email,
		Role:            dbUser.Role,
		Course:          dbUser.Course,
		GraduationYear:  dbUser.GraduationYear,
		CurrentPosition: dbUser.CurrentPosition,
		Company:         dbUser.Company,
		Skills:          dbUser.Skills,
		Interests:       dbUser.Interests,
		Location:        dbUser.Location,
		City:            dbUser.City,
		Country:         dbUser.Country,
		Latitude:        dbUser.Latitude,
		Longitude:       dbUser.Longitude,
		Bio:             dbUser.Bio,
		Phone:           dbUser.Phone,
		LinkedIn:        dbUser.LinkedIn,
		GitHub:          dbUser.GitHub,
		AvatarURL:       dbUser.AvatarURL,
		IsFeatured:      dbUser.IsFeatured,
		Achievements:    dbUser.Achievements,
		PasswordSet:     dbUser.PasswordSet,
		CreatedAt:       dbUser.CreatedAt,
		UpdatedAt:       dbUser.UpdatedAt,
	}
}

// Register creates a new user with password authentication
func (s *UserService) Register(ctx context.Context, req *types.CreateUserRequest) (*types.User, error) {
	exists, err := s.db.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Two-step: create user, then set password
	userID, err := s.db.CreateUser(ctx, req.Name, req.Email, req.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	err = s.db.UpdatePassword(ctx, userID, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to set password: %w", err)
	}

	dbUser, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created user: %w", err)
	}
	if dbUser == nil {
		return nil, fmt.Errorf("created user not found: %s", userID)
	}

	return convertDBUserToTypesUser(dbUser), nil
}

// Login authenticates a user and returns user data
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	dbUser, err := s.db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Security: Always return generic error if user not found or password wrong
	if dbUser == nil {
		return nil, &ErrInvalidCredentials{}
	}

	if !s.passwordConfig.VerifyPassword(req.Password, dbUser.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	if !dbUser.PasswordSet {
		return nil, &ErrInvalidCredentials{}
	}

	return convertDBUserToTypesUser(dbUser), nil
}

// UpdatePassword updates a user's password
func (s *UserService) UpdatePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	dbUser, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if dbUser == nil {
		return &ErrUserNotFound{UserID: userID}
	}

	if !s.passwordConfig.VerifyPassword(currentPassword, dbUser.PasswordHash) {
		return &ErrPasswordMismatch{}
	}

	newPasswordHash, err := s.passwordConfig.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	err = s.db.UpdatePassword(ctx, userID, newPasswordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// UpdateProfile applies a partial profile update and returns the updated user.
// Fields left nil in the request keep their stored values.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*types.User, error) {
	dbUser, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if dbUser == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}

	if req.Name != nil {
		dbUser.Name = *req.Name
	}
	if req.Course != nil {
		dbUser.Course = *req.Course
	}
	if req.GraduationYear != nil {
		dbUser.GraduationYear = *req.GraduationYear
	}
	if req.CurrentPosition != nil {
		dbUser.CurrentPosition = *req.CurrentPosition
	}
	if req.Company != nil {
		dbUser.Company = *req.Company
	}
	if req.Skills != nil {
		dbUser.Skills = *req.Skills
	}
	if req.Interests != nil {
		dbUser.Interests = *req.Interests
	}
	if req.Location != nil {
		dbUser.Location = *req.Location
	}
	if req.City != nil {
		dbUser.City = *req.City
	}
	if req.Country != nil {
		dbUser.Country = *req.Country
	}
	if req.Latitude != nil {
		dbUser.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		dbUser.Longitude = req.Longitude
	}
	if req.Bio != nil {
		dbUser.Bio = *req.Bio
	}
	if req.Phone != nil {
		dbUser.Phone = *req.Phone
	}
	if req.LinkedIn != nil {
		dbUser.LinkedIn = *req.LinkedIn
	}
	if req.GitHub != nil {
		dbUser.GitHub = *req.GitHub
	}
	if req.AvatarURL != nil {
		dbUser.AvatarURL = *req.AvatarURL
	}

	if err := s.db.UpdateProfile(ctx, dbUser); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	updated, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve updated user: %w", err)
	}
	return convertDBUserToTypesUser(updated), nil
}

// GetUser returns a single user by ID.
func (s *UserService) GetUser(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	dbUser, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if dbUser == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}
	return convertDBUserToTypesUser(dbUser), nil
}

// DeleteUser removes a user account.
func (s *UserService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	dbUser, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if dbUser == nil {
		return &ErrUserNotFound{UserID: userID}
	}
	if err := s.db.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// ListUsers returns all users, optionally filtered by role.
func (s *UserService) ListUsers(ctx context.Context, role string) ([]types.User, error) {
	var (
		dbUsers []db.User
		err     error
	)
	if role != "" {
		dbUsers, err = s.db.ListUsersByRole(ctx, role)
	} else {
		dbUsers, err = s.db.ListUsers(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]types.User, 0, len(dbUsers))
	for i := range dbUsers {
		users = append(users, *convertDBUserToTypesUser(&dbUsers[i]))
	}
	return users, nil
}

// ListFeaturedAlumni returns alumni flagged for the landing page.
func (s *UserService) ListFeaturedAlumni(ctx context.Context) ([]types.User, error) {
	dbUsers, err := s.db.ListFeaturedAlumni(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured alumni: %w", err)
	}
	users := make([]types.User, 0, len(dbUsers))
	for i := range dbUsers {
		users = append(users, *convertDBUserToTypesUser(&dbUsers[i]))
	}
	return users, nil
}
