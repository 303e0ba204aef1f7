package handler

import (
	"strconv"
	"time"

	"tickatch/internal/domain/entity"
	"tickatch/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

// CustomerResponse is the wire representation of a customer account.
type CustomerResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Grade     string     `json:"grade"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func newCustomerResponse(c *entity.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        c.ID().String(),
		Email:     c.Email(),
		Name:      c.Profile().Name(),
		Phone:     c.Profile().Phone(),
		BirthDate: c.BirthDate(),
		Grade:     string(c.Grade()),
		Status:    string(c.Status()),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func newCustomerListResponse(customers []*entity.Customer) []*CustomerResponse {
	out := make([]*CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, newCustomerResponse(c))
	}

	return out
}

// AdminResponse is the wire representation of an administrator account.
type AdminResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone,omitempty"`
	Department string    `json:"department,omitempty"`
	Role       string    `json:"role"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func newAdminResponse(a *entity.Admin) *AdminResponse {
	return &AdminResponse{
		ID:         a.ID().String(),
		Email:      a.Email(),
		Name:       a.Profile().Name(),
		Phone:      a.Profile().Phone(),
		Department: a.Department(),
		Role:       string(a.Role()),
		Status:     string(a.Status()),
		CreatedAt:  a.CreatedAt(),
		UpdatedAt:  a.UpdatedAt(),
	}
}

func newAdminListResponse(admins []*entity.Admin) []*AdminResponse {
	out := make([]*AdminResponse, 0, len(admins))
	for _, a := range admins {
		out = append(out, newAdminResponse(a))
	}

	return out
}

// BusinessResponse is the wire representation of a seller's registration.
type BusinessResponse struct {
	BusinessName       string `json:"business_name"`
	BusinessNumber     string `json:"business_number"`
	RepresentativeName string `json:"representative_name"`
	ZipCode            string `json:"zip_code,omitempty"`
	Address1           string `json:"address1,omitempty"`
	Address2           string `json:"address2,omitempty"`
}

// SettlementResponse is the wire representation of a seller's payout account.
// The account number is masked.
type SettlementResponse struct {
	BankCode      string `json:"bank_code"`
	AccountNumber string `json:"account_number"`
	AccountHolder string `json:"account_holder"`
}

// SellerResponse is the wire representation of a seller account.
type SellerResponse struct {
	ID                 string              `json:"id"`
	Email              string              `json:"email"`
	Name               string              `json:"name"`
	Phone              string              `json:"phone,omitempty"`
	Status             string              `json:"status"`
	Business           *BusinessResponse   `json:"business"`
	Settlement         *SettlementResponse `json:"settlement,omitempty"`
	ApprovalStatus     string              `json:"approval_status"`
	ApprovedAt         *time.Time          `json:"approved_at,omitempty"`
	ApprovedBy         string              `json:"approved_by,omitempty"`
	RejectedReason     string              `json:"rejected_reason,omitempty"`
	CanRegisterListing bool                `json:"can_register_listing"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

func newSellerResponse(s *entity.Seller) *SellerResponse {
	registration := s.Registration()
	address := registration.BusinessAddress()
	resp := &SellerResponse{
		ID:     s.ID().String(),
		Email:  s.Email(),
		Name:   s.Profile().Name(),
		Phone:  s.Profile().Phone(),
		Status: string(s.Status()),
		Business: &BusinessResponse{
			BusinessName:       registration.BusinessName(),
			BusinessNumber:     registration.FormattedNumber(),
			RepresentativeName: registration.RepresentativeName(),
			ZipCode:            address.ZipCode(),
			Address1:           address.Address1(),
			Address2:           address.Address2(),
		},
		ApprovalStatus:     string(s.Approval()),
		ApprovedAt:         s.ApprovedAt(),
		ApprovedBy:         s.ApprovedBy(),
		RejectedReason:     s.RejectedReason(),
		CanRegisterListing: s.CanRegisterListing(),
		CreatedAt:          s.CreatedAt(),
		UpdatedAt:          s.UpdatedAt(),
	}

	if settlement := s.Settlement(); !settlement.IsZero() {
		resp.Settlement = &SettlementResponse{
			BankCode:      settlement.BankCode(),
			AccountNumber: settlement.MaskedAccountNumber(),
			AccountHolder: settlement.AccountHolder(),
		}
	}

	return resp
}

func newSellerListResponse(sellers []*entity.Seller) []*SellerResponse {
	out := make([]*SellerResponse, 0, len(sellers))
	for _, s := range sellers {
		out = append(out, newSellerResponse(s))
	}

	return out
}

// parsePagination reads page, size, sortBy and order query parameters,
// falling back to the repository defaults.
func parsePagination(c echo.Context) repository.Pagination {
	page := repository.DefaultPagination()
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		page.Page = v
	}
	if v, err := strconv.Atoi(c.QueryParam("size")); err == nil {
		page.Size = v
	}
	if v := c.QueryParam("sortBy"); v != "" {
		page.SortBy = v
		page.Desc = c.QueryParam("order") == "desc"
	}

	return page.Normalize()
}
