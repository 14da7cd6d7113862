package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"orgboard/internal/models"
	apperrors "orgboard/pkg/errors"
)

var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = apperrors.New("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	// ErrEmailTaken indicates the email is already used by another user.
	ErrEmailTaken = apperrors.New("USER_EMAIL_TAKEN", "User with this email already exists", http.StatusBadRequest)
	// ErrInvalidRole rejects role values outside the enumerated set.
	ErrInvalidRole = apperrors.New("USER_INVALID_ROLE", "Invalid role value", http.StatusBadRequest)
	// ErrUserOrganizationMissing rejects users referencing an unknown organization.
	ErrUserOrganizationMissing = apperrors.New("USER_ORG_NOT_FOUND", "Organization not found", http.StatusBadRequest)
	// ErrCoordinatorLimit enforces the per-organization co-ordinator cap.
	ErrCoordinatorLimit = apperrors.New("USER_COORDINATOR_LIMIT", "Organization has reached its co-ordinator limit", http.StatusBadRequest)
)

// CreateUserInput describes the fields accepted when creating a user.
type CreateUserInput struct {
	OrganizationID uint
	Name           string
	Email          string
	Role           string
}

// UpdateUserInput enumerates mutable user attributes.
type UpdateUserInput struct {
	Name  *string
	Email *string
	Role  *string
}

// ListUsersOptions captures listing filters.
type ListUsersOptions struct {
	OrganizationID *uint
}

// UserService manages CRUD lifecycle for users.
type UserService struct {
	db *gorm.DB
}

// NewUserService constructs a UserService instance.
func NewUserService(db *gorm.DB) (*UserService, error) {
	if db == nil {
		return nil, errors.New("user service: db is required")
	}
	return &UserService{db: db}, nil
}

// List retrieves users, optionally scoped to one organization.
func (s *UserService) List(ctx context.Context, opts ListUsersOptions) ([]models.User, error) {
	ctx = ensureContext(ctx)

	query := s.db.WithContext(ctx).Model(&models.User{})
	if opts.OrganizationID != nil {
		query = query.Where("organization_id = ?", *opts.OrganizationID)
	}

	var users []models.User
	if err := query.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("user service: list users: %w", err)
	}
	return users, nil
}

// GetByID loads a user by identifier including its organization.
func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	ctx = ensureContext(ctx)

	var user models.User
	err := s.db.WithContext(ctx).
		Preload("Organization").
		First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("user service: get user: %w", err)
	}
	return &user, nil
}

// Create provisions a new user under an existing organization. Emails are
// unique system-wide; co-ordinators count against the organization's cap.
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (user *models.User, err error) {
	ctx = ensureContext(ctx)
	defer func() { recordWrite("user", "create", err) }()

	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	role := strings.TrimSpace(input.Role)

	if name == "" || email == "" || role == "" || input.OrganizationID == 0 {
		return nil, apperrors.NewBadRequest("Name, email, role, and organization_id are required")
	}
	if !models.ValidUserRole(role) {
		return nil, ErrInvalidRole
	}

	var org models.Organization
	err = s.db.WithContext(ctx).First(&org, "id = ?", input.OrganizationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserOrganizationMissing
	}
	if err != nil {
		return nil, fmt.Errorf("user service: load organization: %w", err)
	}

	taken, err := s.emailTaken(ctx, email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	if role == models.RoleCoordinator {
		if err = s.checkCoordinatorCap(ctx, &org, 0); err != nil {
			return nil, err
		}
	}

	user = &models.User{
		OrganizationID: org.ID,
		Name:           name,
		Email:          email,
		Role:           role,
	}

	if err = s.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("user service: create user: %w", err)
	}

	return user, nil
}

// Update persists mutable attributes for an existing user.
func (s *UserService) Update(ctx context.Context, id uint, input UpdateUserInput) (result *models.User, err error) {
	ctx = ensureContext(ctx)
	defer func() { recordWrite("user", "update", err) }()

	var user models.User
	err = s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("user service: load user: %w", err)
	}

	updates := map[string]any{}

	if input.Name != nil {
		if name := strings.TrimSpace(*input.Name); name != "" {
			updates["name"] = name
		}
	}
	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if email != "" && email != user.Email {
			taken, terr := s.emailTaken(ctx, email, user.ID)
			if terr != nil {
				return nil, terr
			}
			if taken {
				return nil, ErrEmailTaken
			}
			updates["email"] = email
		}
	}
	if input.Role != nil {
		role := strings.TrimSpace(*input.Role)
		if !models.ValidUserRole(role) {
			return nil, ErrInvalidRole
		}
		if role == models.RoleCoordinator && user.Role != models.RoleCoordinator {
			var org models.Organization
			if err = s.db.WithContext(ctx).First(&org, "id = ?", user.OrganizationID).Error; err != nil {
				return nil, fmt.Errorf("user service: load organization: %w", err)
			}
			if err = s.checkCoordinatorCap(ctx, &org, user.ID); err != nil {
				return nil, err
			}
		}
		updates["role"] = role
	}

	if len(updates) == 0 {
		return &user, nil
	}

	if err = s.db.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("user service: update user: %w", err)
	}

	if err = s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("user service: reload user: %w", err)
	}

	return &user, nil
}

// Delete removes a user by identifier.
func (s *UserService) Delete(ctx context.Context, id uint) (err error) {
	ctx = ensureContext(ctx)
	defer func() { recordWrite("user", "delete", err) }()

	var user models.User
	err = s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("user service: load user: %w", err)
	}

	if err = s.db.WithContext(ctx).Delete(&user).Error; err != nil {
		return fmt.Errorf("user service: delete user: %w", err)
	}

	return nil
}

func (s *UserService) emailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	query := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("user service: check email: %w", err)
	}
	return count > 0, nil
}

func (s *UserService) checkCoordinatorCap(ctx context.Context, org *models.Organization, excludeID uint) error {
	limit := org.MaxCoordinators
	if limit <= 0 {
		limit = models.DefaultMaxCoordinators
	}

	query := s.db.WithContext(ctx).Model(&models.User{}).
		Where("organization_id = ? AND role = ?", org.ID, models.RoleCoordinator)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("user service: count co-ordinators: %w", err)
	}
	if count >= int64(limit) {
		return ErrCoordinatorLimit
	}
	return nil
}
