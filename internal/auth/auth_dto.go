package auth

type LoginRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Employee any    `json:"employee"`
	Redirect string `json:"redirect"`
}
