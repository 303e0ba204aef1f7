package handler

import (
	"context"
	"log/slog"
	"net/http"

	"tickatch/internal/delivery/http/middleware"
	"tickatch/internal/delivery/http/response"
	"tickatch/internal/domain/entity"
	"tickatch/internal/domain/repository"
	"tickatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for administrator-related handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, logger: logger}
}

// Register handles the administrator registration request. The acting
// administrator comes from the X-User-Id header.
func (h *AdminHandler) Register(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_ACTOR", "X-User-Id header is required")
	}

	var input *usecase.CreateAdminInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid administrator registration input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}
	input.ActorID = actorID

	admin, err := h.uc.CreateAdmin(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAdminResponse(admin), "Administrator registered successfully")
}

// Get returns a single administrator by id.
func (h *AdminHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Administrator id must be a UUID")
	}

	admin, err := h.uc.GetAdmin(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAdminResponse(admin), "")
}

// GetByEmail looks an administrator up by registered email.
func (h *AdminHandler) GetByEmail(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.BadRequest(c, "INVALID_INPUT", "email query parameter is required")
	}

	admin, err := h.uc.GetAdminByEmail(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAdminResponse(admin), "")
}

// Search returns a paginated administrator list filtered by query parameters.
func (h *AdminHandler) Search(c echo.Context) error {
	cond := repository.AdminSearchCondition{
		Email:      c.QueryParam("email"),
		Name:       c.QueryParam("name"),
		Department: c.QueryParam("department"),
	}
	if v := c.QueryParam("status"); v != "" {
		status := entity.AccountStatus(v)
		cond.Status = &status
	}
	if v := c.QueryParam("role"); v != "" {
		role := entity.AdminRole(v)
		cond.Role = &role
	}
	page := parsePagination(c)

	admins, total, err := h.uc.SearchAdmins(c.Request().Context(), cond, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paginated(c, newAdminListResponse(admins), page.Page, page.Size, total, "")
}

// Exists reports whether an administrator is registered under the given email.
func (h *AdminHandler) Exists(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.BadRequest(c, "INVALID_INPUT", "email query parameter is required")
	}

	exists, err := h.uc.ExistsByEmail(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"exists": exists}, "")
}

// UpdateProfile handles partial profile updates.
func (h *AdminHandler) UpdateProfile(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Administrator id must be a UUID")
	}

	var input *usecase.UpdateAdminProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	admin, err := h.uc.UpdateProfile(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAdminResponse(admin), "Profile updated successfully")
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// ChangeRole reassigns the administrator's role. Only an ADMIN-role actor may
// do this, and never on their own account.
func (h *AdminHandler) ChangeRole(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_ACTOR", "X-User-Id header is required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Administrator id must be a UUID")
	}

	var input *changeRoleRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid role input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	admin, err := h.uc.ChangeRole(c.Request().Context(), id, entity.AdminRole(input.Role), actorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAdminResponse(admin), "Role updated successfully")
}

// Suspend puts the administrator account into the suspended state.
func (h *AdminHandler) Suspend(c echo.Context) error {
	return h.changeStatus(c, h.uc.Suspend, "Administrator suspended successfully")
}

// Activate restores a suspended administrator account.
func (h *AdminHandler) Activate(c echo.Context) error {
	return h.changeStatus(c, h.uc.Activate, "Administrator activated successfully")
}

// Withdraw closes the administrator account permanently.
func (h *AdminHandler) Withdraw(c echo.Context) error {
	return h.changeStatus(c, h.uc.Withdraw, "Administrator withdrawn successfully")
}

func (h *AdminHandler) changeStatus(c echo.Context, op func(ctx context.Context, id uuid.UUID) error, message string) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Administrator id must be a UUID")
	}

	if err := op(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, message)
}
