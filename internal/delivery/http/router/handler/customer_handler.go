// Package handler contains the HTTP handlers for the application.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"tickatch/internal/delivery/http/response"
	"tickatch/internal/domain/entity"
	"tickatch/internal/domain/repository"
	"tickatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CustomerHandler holds dependencies for customer-related handlers.
type CustomerHandler struct {
	uc     usecase.CustomerUsecase
	logger *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, logger: logger}
}

// Register handles the customer registration request.
func (h *CustomerHandler) Register(c echo.Context) error {
	var input *usecase.CreateCustomerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer registration input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	customer, err := h.uc.CreateCustomer(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newCustomerResponse(customer), "Customer registered successfully")
}

// Get returns a single customer by id.
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Customer id must be a UUID")
	}

	customer, err := h.uc.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCustomerResponse(customer), "")
}

// GetByEmail looks a customer up by registered email.
func (h *CustomerHandler) GetByEmail(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.BadRequest(c, "INVALID_INPUT", "email query parameter is required")
	}

	customer, err := h.uc.GetCustomerByEmail(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCustomerResponse(customer), "")
}

// Search returns a paginated customer list filtered by query parameters.
func (h *CustomerHandler) Search(c echo.Context) error {
	cond := repository.CustomerSearchCondition{
		Email: c.QueryParam("email"),
		Name:  c.QueryParam("name"),
		Phone: c.QueryParam("phone"),
	}
	if v := c.QueryParam("status"); v != "" {
		status := entity.AccountStatus(v)
		cond.Status = &status
	}
	if v := c.QueryParam("grade"); v != "" {
		grade := entity.CustomerGrade(v)
		cond.Grade = &grade
	}
	page := parsePagination(c)

	customers, total, err := h.uc.SearchCustomers(c.Request().Context(), cond, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paginated(c, newCustomerListResponse(customers), page.Page, page.Size, total, "")
}

// Exists reports whether a customer is registered under the given email.
func (h *CustomerHandler) Exists(c echo.Context) error {
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
func (h *CustomerHandler) UpdateProfile(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Customer id must be a UUID")
	}

	var input *usecase.UpdateCustomerProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	customer, err := h.uc.UpdateProfile(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCustomerResponse(customer), "Profile updated successfully")
}

type changeGradeRequest struct {
	Grade string `json:"grade" validate:"required"`
}

// ChangeGrade moves a customer up the grade ladder.
func (h *CustomerHandler) ChangeGrade(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Customer id must be a UUID")
	}

	var input *changeGradeRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid grade input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	customer, err := h.uc.UpgradeGrade(c.Request().Context(), id, entity.CustomerGrade(input.Grade))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCustomerResponse(customer), "Grade updated successfully")
}

// Suspend puts the customer account into the suspended state.
func (h *CustomerHandler) Suspend(c echo.Context) error {
	return h.changeStatus(c, h.uc.Suspend, "Customer suspended successfully")
}

// Activate restores a suspended customer account.
func (h *CustomerHandler) Activate(c echo.Context) error {
	return h.changeStatus(c, h.uc.Activate, "Customer activated successfully")
}

// Withdraw closes the customer account permanently.
func (h *CustomerHandler) Withdraw(c echo.Context) error {
	return h.changeStatus(c, h.uc.Withdraw, "Customer withdrawn successfully")
}

func (h *CustomerHandler) changeStatus(c echo.Context, op func(ctx context.Context, id uuid.UUID) error, message string) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Customer id must be a UUID")
	}

	if err := op(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, message)
}
