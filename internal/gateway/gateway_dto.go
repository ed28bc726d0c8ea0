package gateway

// Bentuk wire mengikuti REST API backend HR apa adanya.

type Employee struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	IsAdmin  bool   `json:"is_admin"`
}

type LoginRequest struct {
	EmployeeID string `json:"employee_id"`
	Password   string `json:"password"`
}

type LoginResponse struct {
	Success  bool     `json:"success"`
	Employee Employee `json:"employee"`
}

type AttendanceStatus struct {
	CheckedIn    bool   `json:"checked_in"`
	CheckedOut   bool   `json:"checked_out"`
	CheckInTime  string `json:"check_in_time"`
	CheckOutTime string `json:"check_out_time"`
	OfficeTime   string `json:"office_time"`
	Status       string `json:"status"`
}

// AttendanceSubmission adalah payload multipart check-in / check-out.
type AttendanceSubmission struct {
	EmployeeID  string
	Location    string // "lat,lon"
	UserMessage string
	PhotoName   string
	Photo       []byte
}

type SubmitResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type AttendanceLog struct {
	EmployeeID    string `json:"employee_id"`
	EmployeeName  string `json:"employee_name"`
	Date          string `json:"date"`
	CheckInTime   string `json:"check_in_time"`
	CheckOutTime  string `json:"check_out_time"`
	OfficeTime    string `json:"office_time"`
	Status        string `json:"status"`
	CheckInPhoto  string `json:"check_in_photo"`
	CheckOutPhoto string `json:"check_out_photo"`
	Location      string `json:"location"`
}

type AttendanceLogFilter struct {
	EmployeeID string
	StartDate  string
	EndDate    string
}

type LeaveBalance struct {
	Remaining float64 `json:"remaining"`
	Total     float64 `json:"total"`
}

type LeaveStats struct {
	AnnualLeave LeaveBalance `json:"annual_leave"`
	CasualLeave LeaveBalance `json:"casual_leave"`
	SickLeave   LeaveBalance `json:"sick_leave"`
	TotalUsed   float64      `json:"total_used"`
}

type LeaveRecord struct {
	ID                 int     `json:"id"`
	EmployeeID         string  `json:"employee_id"`
	EmployeeName       string  `json:"employee_name"`
	LeaveType          string  `json:"leave_type"`
	StartDate          string  `json:"start_date"`
	EndDate            string  `json:"end_date"`
	Reason             string  `json:"reason"`
	IsHalfDay          bool    `json:"is_half_day"`
	HalfDayPeriod      string  `json:"half_day_period"`
	TotalDays          float64 `json:"total_days"`
	Status             string  `json:"status"`
	AdminComment       string  `json:"admin_comment"`
	SupportingDocument string  `json:"supporting_document"`
	CreatedAt          string  `json:"created_at"`
}

// Attachment adalah dokumen pendukung yang sudah diterima workflow.
type Attachment struct {
	Name string
	MIME string
	Size int64
	Data []byte
}

// LeaveSubmission adalah payload multipart pengajuan / edit cuti.
type LeaveSubmission struct {
	EmployeeID    string
	LeaveType     string
	StartDate     string
	EndDate       string
	Reason        string
	IsHalfDay     bool
	HalfDayPeriod string
	Document      *Attachment
}

type CreateEmployeeRequest struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

type CreateEmployeeResponse struct {
	Success  bool     `json:"success"`
	Employee Employee `json:"employee"`
}

type AdminStats struct {
	TotalEmployees int `json:"total_employees"`
	CheckedInToday int `json:"checked_in_today"`
	PendingLeaves  int `json:"pending_leaves"`
}

// FileDownload adalah hasil passthrough file biner (foto, dokumen, export).
type FileDownload struct {
	Name        string
	ContentType string
	Data        []byte
}
