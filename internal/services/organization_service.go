package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"orgboard/internal/models"
	apperrors "orgboard/pkg/errors"
)

var (
	// ErrOrganizationNotFound indicates the requested organization does not exist.
	ErrOrganizationNotFound = apperrors.New("ORG_NOT_FOUND", "Organization not found", http.StatusNotFound)
	// ErrSlugTaken indicates the slug is already used by another organization.
	ErrSlugTaken = apperrors.New("ORG_SLUG_TAKEN", "Organization with this slug already exists", http.StatusBadRequest)
	// ErrInvalidStatus rejects status values outside the enumerated set.
	ErrInvalidStatus = apperrors.New("ORG_INVALID_STATUS", "Invalid status value", http.StatusBadRequest)
	// ErrOrganizationHasUsers blocks deletion of organizations that still own users.
	ErrOrganizationHasUsers = apperrors.New("ORG_HAS_USERS", "Organization cannot be deleted while it still has users", http.StatusBadRequest)
)

// OrganizationListItem is the list-view projection of an organization.
// PendingRequests is the count of users currently belonging to the
// organization; the name is part of the established wire format.
type OrganizationListItem struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Email           string    `json:"email"`
	Contact         string    `json:"contact"`
	Status          string    `json:"status"`
	PendingRequests int       `json:"pending_requests"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateOrganizationInput captures the attributes required to register an organization.
type CreateOrganizationInput struct {
	Name    string
	Slug    string
	Email   string
	Contact string
}

// UpdateOrganizationInput enumerates the mutable organization fields. Only
// fields explicitly listed here can ever be written through an update; nil
// pointers leave the stored value untouched.
type UpdateOrganizationInput struct {
	Name              *string
	Slug              *string
	Email             *string
	PrimaryAdminName  *string
	PrimaryAdminEmail *string
	Contact           *string
	Phone             *string
	AlternatePhone    *string
	Website           *string
	LogoURL           *string
	Status            *string
	MaxCoordinators   *int
	Timezone          *string
	Region            *string
	Language          *string
	Settings          map[string]any
}

// OrganizationService manages lifecycle operations for organizations.
type OrganizationService struct {
	db *gorm.DB
}

// NewOrganizationService constructs an OrganizationService instance.
func NewOrganizationService(db *gorm.DB) (*OrganizationService, error) {
	if db == nil {
		return nil, errors.New("organization service: db is required")
	}
	return &OrganizationService{db: db}, nil
}

// List returns all organizations ordered by creation date descending, each
// annotated with its current user count.
func (s *OrganizationService) List(ctx context.Context) ([]OrganizationListItem, error) {
	ctx = ensureContext(ctx)

	var orgs []models.Organization
	err := s.db.WithContext(ctx).
		Preload("Users", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "organization_id")
		}).
		Order("created_at DESC").
		Find(&orgs).Error
	if err != nil {
		return nil, fmt.Errorf("organization service: list organizations: %w", err)
	}

	items := make([]OrganizationListItem, 0, len(orgs))
	for _, org := range orgs {
		items = append(items, OrganizationListItem{
			ID:              org.ID,
			Name:            org.Name,
			Slug:            org.Slug,
			Email:           org.Email,
			Contact:         org.Contact,
			Status:          org.Status,
			PendingRequests: len(org.Users),
			CreatedAt:       org.CreatedAt,
			UpdatedAt:       org.UpdatedAt,
		})
	}
	return items, nil
}

// GetByID loads an organization together with its users.
func (s *OrganizationService) GetByID(ctx context.Context, id uint) (*models.Organization, error) {
	ctx = ensureContext(ctx)

	var org models.Organization
	err := s.db.WithContext(ctx).
		Preload("Users", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at ASC")
		}).
		First(&org, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrganizationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("organization service: get organization: %w", err)
	}
	return &org, nil
}

// Create registers a new organization with status defaulting to active.
func (s *OrganizationService) Create(ctx context.Context, input CreateOrganizationInput) (org *models.Organization, err error) {
	ctx = ensureContext(ctx)
	defer func() { recordWrite("organization", "create", err) }()

	name := strings.TrimSpace(input.Name)
	slug := strings.TrimSpace(input.Slug)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" || slug == "" || email == "" {
		return nil, apperrors.NewBadRequest("Name, slug, and email are required")
	}

	taken, err := s.slugTaken(ctx, slug, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlugTaken
	}

	org = &models.Organization{
		Name:            name,
		Slug:            slug,
		Email:           email,
		Contact:         strings.TrimSpace(input.Contact),
		Status:          models.OrgStatusActive,
		MaxCoordinators: models.DefaultMaxCoordinators,
	}

	if err = s.db.WithContext(ctx).Create(org).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("organization service: create organization: %w", err)
	}

	return org, nil
}

// Update applies the allow-listed fields to an existing organization.
func (s *OrganizationService) Update(ctx context.Context, id uint, input UpdateOrganizationInput) (result *models.Organization, err error) {
	ctx = ensureContext(ctx)
	defer func() { recordWrite("organization", "update", err) }()

	var org models.Organization
	err = s.db.WithContext(ctx).First(&org, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrganizationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("organization service: load organization: %w", err)
	}

	updates := map[string]any{}

	if input.Name != nil {
		if name := strings.TrimSpace(*input.Name); name != "" {
			updates["name"] = name
		}
	}
	if input.Slug != nil {
		slug := strings.TrimSpace(*input.Slug)
		if slug != "" && slug != org.Slug {
			taken, terr := s.slugTaken(ctx, slug, org.ID)
			if terr != nil {
				return nil, terr
			}
			if taken {
				return nil, ErrSlugTaken
			}
			updates["slug"] = slug
		}
	}
	if input.Email != nil {
		if email := strings.ToLower(strings.TrimSpace(*input.Email)); email != "" {
			updates["email"] = email
		}
	}
	if input.PrimaryAdminName != nil {
		updates["primary_admin_name"] = strings.TrimSpace(*input.PrimaryAdminName)
	}
	if input.PrimaryAdminEmail != nil {
		updates["primary_admin_email"] = strings.ToLower(strings.TrimSpace(*input.PrimaryAdminEmail))
	}
	if input.Contact != nil {
		updates["contact"] = strings.TrimSpace(*input.Contact)
	}
	if input.Phone != nil {
		updates["phone"] = strings.TrimSpace(*input.Phone)
	}
	if input.AlternatePhone != nil {
		updates["alternate_phone"] = strings.TrimSpace(*input.AlternatePhone)
	}
	if input.Website != nil {
		updates["website"] = strings.TrimSpace(*input.Website)
	}
	if input.LogoURL != nil {
		updates["logo_url"] = strings.TrimSpace(*input.LogoURL)
	}
	if input.Status != nil {
		status := strings.TrimSpace(*input.Status)
		if !models.ValidOrgStatus(status) {
			return nil, ErrInvalidStatus
		}
		updates["status"] = status
	}
	if input.MaxCoordinators != nil {
		if *input.MaxCoordinators < 0 {
			return nil, apperrors.NewBadRequest("max_coordinators must not be negative")
		}
		updates["max_coordinators"] = *input.MaxCoordinators
	}
	if input.Timezone != nil {
		updates["timezone"] = strings.TrimSpace(*input.Timezone)
	}
	if input.Region != nil {
		updates["region"] = strings.TrimSpace(*input.Region)
	}
	if input.Language != nil {
		updates["language"] = strings.TrimSpace(*input.Language)
	}
	if input.Settings != nil {
		data, merr := json.Marshal(input.Settings)
		if merr != nil {
			return nil, fmt.Errorf("organization service: marshal settings: %w", merr)
		}
		updates["settings"] = datatypes.JSON(data)
	}

	if len(updates) == 0 {
		return &org, nil
	}

	if err = s.db.WithContext(ctx).Model(&org).Updates(updates).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("organization service: update organization: %w", err)
	}

	if err = s.db.WithContext(ctx).First(&org, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("organization service: reload organization: %w", err)
	}

	return &org, nil
}

// UpdateStatus performs a partial update of the status field only.
func (s *OrganizationService) UpdateStatus(ctx context.Context, id uint, status string) (result *models.Organization, err error) {
	ctx = ensureContext(ctx)
	defer func() { recordWrite("organization", "update_status", err) }()

	status = strings.TrimSpace(status)
	if !models.ValidOrgStatus(status) {
		return nil, ErrInvalidStatus
	}

	var org models.Organization
	err = s.db.WithContext(ctx).First(&org, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrganizationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("organization service: load organization: %w", err)
	}

	if err = s.db.WithContext(ctx).Model(&org).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("organization service: update status: %w", err)
	}

	org.Status = status
	return &org, nil
}

// Delete removes an organization by identifier. Deletion is rejected while
// the organization still owns users; callers must remove them first.
func (s *OrganizationService) Delete(ctx context.Context, id uint) (err error) {
	ctx = ensureContext(ctx)
	defer func() { recordWrite("organization", "delete", err) }()

	var org models.Organization
	err = s.db.WithContext(ctx).First(&org, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrOrganizationNotFound
	}
	if err != nil {
		return fmt.Errorf("organization service: load organization: %w", err)
	}

	var userCount int64
	if err = s.db.WithContext(ctx).Model(&models.User{}).Where("organization_id = ?", org.ID).Count(&userCount).Error; err != nil {
		return fmt.Errorf("organization service: count users: %w", err)
	}
	if userCount > 0 {
		return ErrOrganizationHasUsers
	}

	if err = s.db.WithContext(ctx).Delete(&org).Error; err != nil {
		return fmt.Errorf("organization service: delete organization: %w", err)
	}

	return nil
}

func (s *OrganizationService) slugTaken(ctx context.Context, slug string, excludeID uint) (bool, error) {
	query := s.db.WithContext(ctx).Model(&models.Organization{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("organization service: check slug: %w", err)
	}
	return count > 0, nil
}
