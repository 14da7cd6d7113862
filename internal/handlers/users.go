package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"orgboard/internal/services"
	"orgboard/pkg/errors"
	"orgboard/pkg/response"
)

// UserHandler exposes the /api/users endpoints.
type UserHandler struct {
	svc *services.UserService
}

// NewUserHandler wires a UserHandler over the given database handle.
func NewUserHandler(db *gorm.DB) (*UserHandler, error) {
	svc, err := services.NewUserService(db)
	if err != nil {
		return nil, err
	}
	return &UserHandler{svc: svc}, nil
}

type createUserRequest struct {
	OrganizationID uint   `json:"organization_id"`
	Name           string `json:"name"`
	Email          string `json:"email" validate:"omitempty,email"`
	Role           string `json:"role"`
}

type updateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" validate:"omitempty,email"`
	Role  *string `json:"role"`
}

// GET /api/users?organization_id=N
func (h *UserHandler) List(c *gin.Context) {
	var opts services.ListUsersOptions

	if raw := strings.TrimSpace(c.Query("organization_id")); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.Error(c, errors.NewBadRequest("organization_id must be a positive integer"))
			return
		}
		orgID := uint(parsed)
		opts.OrganizationID = &orgID
	}

	users, err := h.svc.List(requestContext(c), opts)
	if err != nil {
		response.Error(c, errors.Wrap(err, "Error fetching users"))
		return
	}
	response.Success(c, http.StatusOK, users)
}

// GET /api/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, services.ErrUserNotFound)
		return
	}

	user, err := h.svc.GetByID(requestContext(c), id)
	if err != nil {
		response.Error(c, errors.Wrap(err, "Error fetching user"))
		return
	}
	response.Success(c, http.StatusOK, user)
}

// POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	var body createUserRequest
	if !bindAndValidate(c, &body) {
		return
	}

	if strings.TrimSpace(body.Name) == "" || strings.TrimSpace(body.Email) == "" ||
		strings.TrimSpace(body.Role) == "" || body.OrganizationID == 0 {
		response.Error(c, errors.NewBadRequest("Name, email, role, and organization_id are required"))
		return
	}

	user, err := h.svc.Create(requestContext(c), services.CreateUserInput{
		OrganizationID: body.OrganizationID,
		Name:           body.Name,
		Email:          body.Email,
		Role:           body.Role,
	})
	if err != nil {
		response.Error(c, errors.Wrap(err, "Error creating user"))
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, "User created successfully", user)
}

// PUT /api/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, services.ErrUserNotFound)
		return
	}

	var body updateUserRequest
	if !bindAndValidate(c, &body) {
		return
	}

	user, err := h.svc.Update(requestContext(c), id, services.UpdateUserInput{
		Name:  body.Name,
		Email: body.Email,
		Role:  body.Role,
	})
	if err != nil {
		response.Error(c, errors.Wrap(err, "Error updating user"))
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "User updated successfully", user)
}

// DELETE /api/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, services.ErrUserNotFound)
		return
	}

	if err := h.svc.Delete(requestContext(c), id); err != nil {
		response.Error(c, errors.Wrap(err, "Error deleting user"))
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, "User deleted successfully", nil)
}
