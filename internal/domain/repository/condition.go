// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"tickatch/internal/domain/entity"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// SortCreatedAt is the default sort key applied when none is requested or
// the requested key is not recognized by the persistence layer.
const SortCreatedAt = "createdAt"

// Pagination carries page, size and ordering for list queries. Blank or
// out-of-range values are repaired by Normalize, never rejected.
type Pagination struct {
	Page   int
	Size   int
	SortBy string
	Desc   bool
}

// DefaultPagination returns page 1 with the default size, sorted by creation
// time descending.
func DefaultPagination() Pagination {
	return Pagination{Page: 1, Size: defaultPageSize, SortBy: SortCreatedAt, Desc: true}
}

// Normalize repairs page/size bounds and fills in the default sort key.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size < 1 {
		p.Size = defaultPageSize
	}
	if p.Size > maxPageSize {
		p.Size = maxPageSize
	}
	if p.SortBy == "" {
		p.SortBy = SortCreatedAt
		p.Desc = true
	}

	return p
}

// Offset returns the row offset for the normalized page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Size
}

// AdminSearchCondition filters administrator list queries. Blank fields and
// nil enums mean "no constraint".
type AdminSearchCondition struct {
	Email      string
	Name       string
	Department string
	Status     *entity.AccountStatus
	Role       *entity.AdminRole
}

// CustomerSearchCondition filters customer list queries.
type CustomerSearchCondition struct {
	Email  string
	Name   string
	Phone  string
	Status *entity.AccountStatus
	Grade  *entity.CustomerGrade
}

// SellerSearchCondition filters seller list queries.
type SellerSearchCondition struct {
	Email          string
	Name           string
	BusinessName   string
	BusinessNumber string
	Status         *entity.AccountStatus
	Approval       *entity.ApprovalStatus
}
