package adminreview

import "github.com/spcool555/leav-managment-fe/internal/gateway"

type HomeView struct {
	Stats  gateway.AdminStats    `json:"stats"`
	Filter string                `json:"filter"`
	Leaves []gateway.LeaveRecord `json:"leaves"`
}

type ReviewView struct {
	Filter string                `json:"filter"`
	Leaves []gateway.LeaveRecord `json:"leaves"`
}

type BeginActionRequest struct {
	Action string `json:"action" binding:"required"`
}

// PendingActionView menampilkan dialog konfirmasi approve/reject.
type PendingActionView struct {
	Action string              `json:"action"`
	Record gateway.LeaveRecord `json:"record"`
}

type ConfirmRequest struct {
	AdminComment string `json:"admin_comment"`
}

type ConfirmResponse struct {
	Message string                `json:"message"`
	Filter  string                `json:"filter"`
	Leaves  []gateway.LeaveRecord `json:"leaves"`
}
