package model

// Department mirrors the backend's department resource.
type Department struct {
	DepartmentID int64  `json:"departmentId"`
	Name         string `json:"name"`
}

// DepartmentRef is the nested department shape embedded in employee
// responses.
type DepartmentRef struct {
	DepartmentID int64  `json:"departmentId"`
	Name         string `json:"name"`
}

// CreateDepartmentRequest is the typed payload for POST /department/create.
type CreateDepartmentRequest struct {
	Name string `json:"name"`
}
