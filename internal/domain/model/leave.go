package model

// LeaveType enumerates the leave categories the backend accepts.
type LeaveType string

const (
	LeaveTypeSick     LeaveType = "SICK_LEAVE"
	LeaveTypeCasual   LeaveType = "CASUAL_LEAVE"
	LeaveTypeEarned   LeaveType = "EARNED_LEAVE"
	LeaveTypeUnpaid   LeaveType = "UNPAID_LEAVE"
	LeaveTypeMaternal LeaveType = "MATERNITY_LEAVE"
)

// LeaveStatus is the decision state of a leave request.
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "PENDING"
	LeaveStatusApproved LeaveStatus = "APPROVED"
	LeaveStatusRejected LeaveStatus = "REJECTED"
)

// Leave mirrors the backend's leave-request resource.
type Leave struct {
	LeaveID    int64       `json:"leaveId"`
	EmployeeID int64       `json:"employeeId"`
	LeaveType  LeaveType   `json:"leaveType"`
	StartDate  string      `json:"startDate"` // ISO date (yyyy-mm-dd)
	EndDate    string      `json:"endDate"`
	Reason     string      `json:"reason,omitempty"`
	Status     LeaveStatus `json:"leaveStatus"`
}

// IsPending reports whether the request still awaits a decision.
func (l Leave) IsPending() bool { return l.Status == LeaveStatusPending }

// CreateLeaveRequest is the typed payload for POST /leaves/leaveRequest.
type CreateLeaveRequest struct {
	LeaveType LeaveType `json:"leaveType"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Reason    string    `json:"reason,omitempty"`
}

// LeaveSummary mirrors GET /leaves/{id}/leaves/summary.
type LeaveSummary struct {
	EmployeeID     int64 `json:"employeeId"`
	TotalLeaves    int64 `json:"totalLeaves"`
	TotalLeaveDays int64 `json:"totalLeaveDays"`
	ApprovedLeaves int64 `json:"approvedLeaves"`
	PendingLeaves  int64 `json:"pendingLeaves"`
	RejectedLeaves int64 `json:"rejectedLeaves"`
}
