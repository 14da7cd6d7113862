package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"orgboard/internal/services"
	"orgboard/pkg/errors"
	"orgboard/pkg/response"
)

// OrganizationHandler exposes the /api/organizations endpoints.
type OrganizationHandler struct {
	svc *services.OrganizationService
}

// NewOrganizationHandler wires an OrganizationHandler over the given database handle.
func NewOrganizationHandler(db *gorm.DB) (*OrganizationHandler, error) {
	svc, err := services.NewOrganizationService(db)
	if err != nil {
		return nil, err
	}
	return &OrganizationHandler{svc: svc}, nil
}

type createOrganizationRequest struct {
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Email   string `json:"email" validate:"omitempty,email"`
	Contact string `json:"contact"`
}

type updateOrganizationRequest struct {
	Name              *string        `json:"name"`
	Slug              *string        `json:"slug"`
	Email             *string        `json:"email" validate:"omitempty,email"`
	PrimaryAdminName  *string        `json:"primary_admin_name"`
	PrimaryAdminEmail *string        `json:"primary_admin_email" validate:"omitempty,email"`
	Contact           *string        `json:"contact"`
	Phone             *string        `json:"phone"`
	AlternatePhone    *string        `json:"alternate_phone"`
	Website           *string        `json:"website"`
	LogoURL           *string        `json:"logo_url"`
	Status            *string        `json:"status"`
	MaxCoordinators   *int           `json:"max_coordinators"`
	Timezone          *string        `json:"timezone"`
	Region            *string        `json:"region"`
	Language          *string        `json:"language"`
	Settings          map[string]any `json:"settings"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// GET /api/organizations
func (h *OrganizationHandler) List(c *gin.Context) {
	orgs, err := h.svc.List(requestContext(c))
	if err != nil {
		response.Error(c, errors.Wrap(err, "Error fetching organizations"))
		return
	}
	response.Success(c, http.StatusOK, orgs)
}

// GET /api/organizations/:id
func (h *OrganizationHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, services.ErrOrganizationNotFound)
		return
	}

	org, err := h.svc.GetByID(requestContext(c), id)
	if err != nil {
		response.Error(c, errors.Wrap(err, "Error fetching organization"))
		return
	}
	response.Success(c, http.StatusOK, org)
}

// POST /api/organizations
func (h *OrganizationHandler) Create(c *gin.Context) {
	var body createOrganizationRequest
	if !bindAndValidate(c, &body) {
		return
	}

	if strings.TrimSpace(body.Name) == "" || strings.TrimSpace(body.Slug) == "" || strings.TrimSpace(body.Email) == "" {
		response.Error(c, errors.NewBadRequest("Name, slug, and email are required"))
		return
	}

	org, err := h.svc.Create(requestContext(c), services.CreateOrganizationInput{
		Name:    body.Name,
		Slug:    body.Slug,
		Email:   body.Email,
		Contact: body.Contact,
	})
	if err != nil {
		response.Error(c, errors.Wrap(err, "Error creating organization"))
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, "Organization created successfully", org)
}

// PUT /api/organizations/:id
func (h *OrganizationHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, services.ErrOrganizationNotFound)
		return
	}

	var body updateOrganizationRequest
	if !bindAndValidate(c, &body) {
		return
	}

	org, err := h.svc.Update(requestContext(c), id, services.UpdateOrganizationInput{
		Name:              body.Name,
		Slug:              body.Slug,
		Email:             body.Email,
		PrimaryAdminName:  body.PrimaryAdminName,
		PrimaryAdminEmail: body.PrimaryAdminEmail,
		Contact:           body.Contact,
		Phone:             body.Phone,
		AlternatePhone:    body.AlternatePhone,
		Website:           body.Website,
		LogoURL:           body.LogoURL,
		Status:            body.Status,
		MaxCoordinators:   body.MaxCoordinators,
		Timezone:          body.Timezone,
		Region:            body.Region,
		Language:          body.Language,
		Settings:          body.Settings,
	})
	if err != nil {
		response.Error(c, errors.Wrap(err, "Error updating organization"))
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Organization updated successfully", org)
}

// PATCH /api/organizations/:id/status
func (h *OrganizationHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, services.ErrOrganizationNotFound)
		return
	}

	var body updateStatusRequest
	if !bindAndValidate(c, &body) {
		return
	}

	org, err := h.svc.UpdateStatus(requestContext(c), id, body.Status)
	if err != nil {
		response.Error(c, errors.Wrap(err, "Error updating organization status"))
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Organization status updated successfully", org)
}

// DELETE /api/organizations/:id
func (h *OrganizationHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, services.ErrOrganizationNotFound)
		return
	}

	if err := h.svc.Delete(requestContext(c), id); err != nil {
		response.Error(c, errors.Wrap(err, "Error deleting organization"))
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "Organization deleted successfully", nil)
}
