package leave

import "github.com/spcool555/leav-managment-fe/internal/gateway"

type DashboardView struct {
	AttendanceStatus *gateway.AttendanceStatus `json:"attendance_status,omitempty"`
	LeaveStats       *gateway.LeaveStats       `json:"leave_stats,omitempty"`
	LeaveHistory     []gateway.LeaveRecord     `json:"leave_history"`
}

type SubmitLeaveResponse struct {
	Message   string        `json:"message"`
	Dashboard DashboardView `json:"dashboard"`
}
