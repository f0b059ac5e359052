package model

// ReportSummary mirrors GET /report/summary.
type ReportSummary struct {
	TotalEmployees    int64   `json:"totalEmployees"`
	ActiveEmployees   int64   `json:"activeEmployees"`
	InactiveEmployees int64   `json:"inactiveEmployees"`
	TotalDepartments  int64   `json:"totalDepartments"`
	TotalLeaves       int64   `json:"totalLeaves"`
	ApprovedLeaves    int64   `json:"approvedLeaves"`
	PendingLeaves     int64   `json:"pendingLeaves"`
	RejectedLeaves    int64   `json:"rejectedLeaves"`
	LeaveApprovalRate float64 `json:"leaveApprovalRate"`
	TotalPayroll      float64 `json:"totalPayroll"`
	AverageSalary     float64 `json:"averageSalary"`
	HighestSalary     float64 `json:"highestSalary"`
	LowestSalary      float64 `json:"lowestSalary"`
}

// DepartmentHeadCount mirrors one entry of GET /report/department-headcount.
type DepartmentHeadCount struct {
	Department DepartmentRef `json:"department"`
	HeadCount  int64         `json:"headCount"`
}

// LeaveTypeStats mirrors one entry of GET /report/leave-type-stats.
type LeaveTypeStats struct {
	LeaveType LeaveType `json:"leaveType"`
	Count     int64     `json:"count"`
	Approved  int64     `json:"approved"`
	Pending   int64     `json:"pending"`
	Rejected  int64     `json:"rejected"`
}

// DepartmentSalary mirrors one entry of GET /report/salary-by-department.
type DepartmentSalary struct {
	Department  string  `json:"department"`
	TotalSalary float64 `json:"totalSalary"`
	AvgSalary   float64 `json:"avgSalary"`
	MaxSalary   float64 `json:"maxSalary"`
	MinSalary   float64 `json:"minSalary"`
	HeadCount   int64   `json:"headCount"`
}

// StatusDistribution mirrors GET /report/status-distribution: a status →
// count map keyed by EmployeeStatus strings.
type StatusDistribution map[string]int64

// SalaryPartition mirrors GET /report/salary-partition: employees split
// above/below the company average.
type SalaryPartition struct {
	AboveAverage []Employee `json:"aboveAverage"`
	BelowAverage []Employee `json:"belowAverage"`
}

// HighSalaryDepartments mirrors GET /report/high-salary-departments:
// department name → average salary, for departments above the threshold.
type HighSalaryDepartments map[string]float64
