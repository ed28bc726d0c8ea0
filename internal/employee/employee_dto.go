package employee

import "github.com/spcool555/leav-managment-fe/internal/gateway"

type CreateEmployeeRequest struct {
	ID       string `json:"id" binding:"required"`
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required"`
	IsAdmin  bool   `json:"is_admin"`
}

type ChangePasswordRequest struct {
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type ListMeta struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

type ListResponse struct {
	Employees []gateway.Employee `json:"employees"`
	Meta      ListMeta           `json:"meta"`
}
