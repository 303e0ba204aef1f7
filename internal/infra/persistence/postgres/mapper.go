package postgres

import (
	"tickatch/internal/domain/entity"
	"tickatch/internal/infra/persistence/model"
)

func fromAdminDomain(admin *entity.Admin) *model.AdminModel {
	return &model.AdminModel{
		ID:         admin.ID(),
		Email:      admin.Email(),
		Name:       admin.Profile().Name(),
		Phone:      admin.Profile().Phone(),
		Department: admin.Department(),
		Role:       admin.Role().String(),
		Status:     admin.Status().String(),
		CreatedAt:  admin.CreatedAt(),
		UpdatedAt:  admin.UpdatedAt(),
	}
}

func toAdminDomain(m *model.AdminModel) *entity.Admin {
	account := entity.RestoreAccount(
		m.ID,
		m.Email,
		entity.RestoreProfile(m.Name, m.Phone),
		entity.AccountStatus(m.Status),
		m.CreatedAt,
		m.UpdatedAt,
	)

	return entity.RestoreAdmin(account, entity.AdminRole(m.Role), m.Department)
}

func fromCustomerDomain(customer *entity.Customer) *model.CustomerModel {
	return &model.CustomerModel{
		ID:        customer.ID(),
		Email:     customer.Email(),
		Name:      customer.Profile().Name(),
		Phone:     customer.Profile().Phone(),
		Grade:     customer.Grade().String(),
		BirthDate: customer.BirthDate(),
		Status:    customer.Status().String(),
		CreatedAt: customer.CreatedAt(),
		UpdatedAt: customer.UpdatedAt(),
	}
}

func toCustomerDomain(m *model.CustomerModel) *entity.Customer {
	account := entity.RestoreAccount(
		m.ID,
		m.Email,
		entity.RestoreProfile(m.Name, m.Phone),
		entity.AccountStatus(m.Status),
		m.CreatedAt,
		m.UpdatedAt,
	)

	return entity.RestoreCustomer(account, entity.CustomerGrade(m.Grade), m.BirthDate)
}

func fromSellerDomain(seller *entity.Seller) *model.SellerModel {
	registration := seller.Registration()
	settlement := seller.Settlement()
	address := registration.BusinessAddress()

	return &model.SellerModel{
		ID:    seller.ID(),
		Email: seller.Email(),
		Name:  seller.Profile().Name(),
		Phone: seller.Profile().Phone(),

		BusinessName:       registration.BusinessName(),
		BusinessNumber:     registration.BusinessNumber(),
		RepresentativeName: registration.RepresentativeName(),
		ZipCode:            address.ZipCode(),
		Address1:           address.Address1(),
		Address2:           address.Address2(),

		BankCode:      settlement.BankCode(),
		AccountNumber: settlement.AccountNumber(),
		AccountHolder: settlement.AccountHolder(),

		ApprovalStatus: seller.Approval().String(),
		ApprovedAt:     seller.ApprovedAt(),
		ApprovedBy:     seller.ApprovedBy(),
		RejectedReason: seller.RejectedReason(),

		Status:    seller.Status().String(),
		CreatedAt: seller.CreatedAt(),
		UpdatedAt: seller.UpdatedAt(),
	}
}

func toSellerDomain(m *model.SellerModel) *entity.Seller {
	account := entity.RestoreAccount(
		m.ID,
		m.Email,
		entity.RestoreProfile(m.Name, m.Phone),
		entity.AccountStatus(m.Status),
		m.CreatedAt,
		m.UpdatedAt,
	)

	registration := entity.RestoreBusinessRegistration(
		m.BusinessName,
		m.BusinessNumber,
		m.RepresentativeName,
		entity.RestoreAddress(m.ZipCode, m.Address1, m.Address2),
	)
	settlement := entity.RestoreSettlementAccount(m.BankCode, m.AccountNumber, m.AccountHolder)

	return entity.RestoreSeller(
		account,
		registration,
		settlement,
		entity.ApprovalStatus(m.ApprovalStatus),
		m.ApprovedAt,
		m.ApprovedBy,
		m.RejectedReason,
	)
}
