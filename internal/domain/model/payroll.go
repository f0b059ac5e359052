package model

// Payroll mirrors GET /payroll/{id}: the server-computed salary breakdown
// for one employee. All arithmetic happens on the backend; this client only
// displays the numbers.
type Payroll struct {
	EmployeeID   int64   `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	Designation  string  `json:"designation,omitempty"`
	BasicSalary  float64 `json:"basicSalary"`
	HRA          float64 `json:"hra"`
	PFDeduction  float64 `json:"pfDeduction"`
	NetSalary    float64 `json:"netSalary"`
}

// DepartmentPayroll mirrors GET /payroll/department/{deptId}.
type DepartmentPayroll struct {
	DepartmentName   string    `json:"departmentName"`
	TotalBasicSalary float64   `json:"totalBasicSalary"`
	TotalHRA         float64   `json:"totalHra"`
	TotalPFDeduction float64   `json:"totalPfDeduction"`
	TotalNetSalary   float64   `json:"totalNetSalary"`
	AverageNetSalary float64   `json:"averageNetSalary"`
	EmployeePayrolls []Payroll `json:"employeePayrolls"`
}
