package postgres

import (
	"tickatch/internal/domain/repository"
)

// Per-table whitelists mapping API sort keys to columns. An unrecognized key
// falls back to created_at instead of erroring.
var (
	adminSortColumns = map[string]string{
		"createdAt":  "created_at",
		"updatedAt":  "updated_at",
		"email":      "email",
		"name":       "name",
		"department": "department",
		"role":       "role",
		"status":     "status",
	}

	customerSortColumns = map[string]string{
		"createdAt": "created_at",
		"updatedAt": "updated_at",
		"email":     "email",
		"name":      "name",
		"grade":     "grade",
		"status":    "status",
	}

	sellerSortColumns = map[string]string{
		"createdAt":      "created_at",
		"updatedAt":      "updated_at",
		"email":          "email",
		"name":           "name",
		"businessName":   "business_name",
		"approvalStatus": "approval_status",
		"status":         "status",
	}
)

// orderClause renders the ORDER BY expression for a normalized pagination,
// restricted to the table's whitelist.
func orderClause(columns map[string]string, page repository.Pagination) string {
	column, ok := columns[page.SortBy]
	if !ok {
		column = "created_at"
	}

	if page.Desc {
		return column + " DESC"
	}

	return column + " ASC"
}
