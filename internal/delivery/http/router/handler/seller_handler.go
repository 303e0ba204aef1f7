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

// SellerHandler holds dependencies for seller-related handlers.
type SellerHandler struct {
	uc     usecase.SellerUsecase
	logger *slog.Logger
}

// NewSellerHandler is the constructor for SellerHandler, injected by Fx.
func NewSellerHandler(uc usecase.SellerUsecase, logger *slog.Logger) *SellerHandler {
	return &SellerHandler{uc: uc, logger: logger}
}

// Register handles the seller registration request. New sellers start in the
// PENDING approval state.
func (h *SellerHandler) Register(c echo.Context) error {
	var input *usecase.CreateSellerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid seller registration input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	seller, err := h.uc.CreateSeller(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newSellerResponse(seller), "Seller registered successfully")
}

// Get returns a single seller by id.
func (h *SellerHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Seller id must be a UUID")
	}

	seller, err := h.uc.GetSeller(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSellerResponse(seller), "")
}

// GetByEmail looks a seller up by registered email.
func (h *SellerHandler) GetByEmail(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.BadRequest(c, "INVALID_INPUT", "email query parameter is required")
	}

	seller, err := h.uc.GetSellerByEmail(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSellerResponse(seller), "")
}

// Search returns a paginated seller list filtered by query parameters.
func (h *SellerHandler) Search(c echo.Context) error {
	cond := repository.SellerSearchCondition{
		Email:          c.QueryParam("email"),
		Name:           c.QueryParam("name"),
		BusinessName:   c.QueryParam("businessName"),
		BusinessNumber: c.QueryParam("businessNumber"),
	}
	if v := c.QueryParam("status"); v != "" {
		status := entity.AccountStatus(v)
		cond.Status = &status
	}
	if v := c.QueryParam("approval"); v != "" {
		approval := entity.ApprovalStatus(v)
		cond.Approval = &approval
	}
	page := parsePagination(c)

	sellers, total, err := h.uc.SearchSellers(c.Request().Context(), cond, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Paginated(c, newSellerListResponse(sellers), page.Page, page.Size, total, "")
}

// Exists reports whether a seller is registered under the given email.
func (h *SellerHandler) Exists(c echo.Context) error {
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
func (h *SellerHandler) UpdateProfile(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Seller id must be a UUID")
	}

	var input *usecase.UpdateSellerProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	seller, err := h.uc.UpdateProfile(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSellerResponse(seller), "Profile updated successfully")
}

// UpdateBusinessInfo amends the seller's business registration.
func (h *SellerHandler) UpdateBusinessInfo(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Seller id must be a UUID")
	}

	var input *usecase.UpdateBusinessInfoInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business info input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	seller, err := h.uc.UpdateBusinessInfo(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSellerResponse(seller), "Business info updated successfully")
}

// UpdateSettlementAccount sets the payout account of an approved seller.
func (h *SellerHandler) UpdateSettlementAccount(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Seller id must be a UUID")
	}

	var input *usecase.UpdateSettlementAccountInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settlement account input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	seller, err := h.uc.UpdateSettlementAccount(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSellerResponse(seller), "Settlement account updated successfully")
}

// Approve marks a pending seller as approved. The acting administrator comes
// from the X-User-Id header.
func (h *SellerHandler) Approve(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_ACTOR", "X-User-Id header is required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Seller id must be a UUID")
	}

	seller, err := h.uc.Approve(c.Request().Context(), id, actorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSellerResponse(seller), "Seller approved successfully")
}

type rejectRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// Reject marks a pending seller as rejected with a reason.
func (h *SellerHandler) Reject(c echo.Context) error {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_ACTOR", "X-User-Id header is required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Seller id must be a UUID")
	}

	var input *rejectRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rejection input")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	seller, err := h.uc.Reject(c.Request().Context(), id, input.Reason, actorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSellerResponse(seller), "Seller rejected")
}

// Suspend puts the seller account into the suspended state.
func (h *SellerHandler) Suspend(c echo.Context) error {
	return h.changeStatus(c, h.uc.Suspend, "Seller suspended successfully")
}

// Activate restores a suspended seller account.
func (h *SellerHandler) Activate(c echo.Context) error {
	return h.changeStatus(c, h.uc.Activate, "Seller activated successfully")
}

// Withdraw closes the seller account permanently.
func (h *SellerHandler) Withdraw(c echo.Context) error {
	return h.changeStatus(c, h.uc.Withdraw, "Seller withdrawn successfully")
}

func (h *SellerHandler) changeStatus(c echo.Context, op func(ctx context.Context, id uuid.UUID) error, message string) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Seller id must be a UUID")
	}

	if err := op(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": id.String()}, message)
}
