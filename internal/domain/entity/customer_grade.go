package entity

// CustomerGrade is the ranked, monotonically increasing loyalty tier.
type CustomerGrade string

const (
	// GradeNormal is the default tier for every new customer.
	GradeNormal CustomerGrade = "NORMAL"
	// GradeVIP is the upper tier.
	GradeVIP CustomerGrade = "VIP"
)

var customerGradeLevels = map[CustomerGrade]int{
	GradeNormal: 0,
	GradeVIP:    1,
}

// Level returns the numeric rank of the grade, 0 for an unknown grade.
func (g CustomerGrade) Level() int {
	return customerGradeLevels[g]
}

// String returns the string representation of the grade.
func (g CustomerGrade) String() string {
	return string(g)
}

// IsValid checks if the CustomerGrade is a valid value.
func (g CustomerGrade) IsValid() bool {
	_, ok := customerGradeLevels[g]

	return ok
}

// IsNormal reports whether the grade is NORMAL.
func (g CustomerGrade) IsNormal() bool {
	return g == GradeNormal
}

// IsVIP reports whether the grade is VIP.
func (g CustomerGrade) IsVIP() bool {
	return g == GradeVIP
}

// CanUpgradeTo reports whether moving to target keeps the grade monotonic
// (equal or higher level).
func (g CustomerGrade) CanUpgradeTo(target CustomerGrade) bool {
	return target.Level() >= g.Level()
}
