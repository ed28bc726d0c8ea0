package employee

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spcool555/leav-managment-fe/internal/gateway"
	"github.com/spcool555/leav-managment-fe/internal/shared/apperror"
	"github.com/spcool555/leav-managment-fe/internal/shared/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create employee validation failed", zap.Error(err))
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	emp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, emp)
}

func (h *Handler) GetAll(c *gin.Context) {
	emps, err := h.service.Directory(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	q := strings.TrimSpace(strings.ToLower(c.Query("q")))
	if q != "" {
		filtered := make([]gateway.Employee, 0, len(emps))
		for _, e := range emps {
			if strings.Contains(strings.ToLower(e.FullName), q) || strings.Contains(strings.ToLower(e.Email), q) {
				filtered = append(filtered, e)
			}
		}
		emps = filtered
	}

	sortBy := strings.ToLower(strings.TrimSpace(c.DefaultQuery("sort_by", "name")))
	sortDir := strings.ToLower(strings.TrimSpace(c.DefaultQuery("sort_dir", "asc")))
	if sortDir != "desc" {
		sortDir = "asc"
	}
	sort.Slice(emps, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "email":
			less = strings.ToLower(emps[i].Email) < strings.ToLower(emps[j].Email)
		case "id":
			less = emps[i].ID < emps[j].ID
		default:
			less = strings.ToLower(emps[i].FullName) < strings.ToLower(emps[j].FullName)
		}
		if sortDir == "desc" {
			return !less
		}
		return less
	})

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	total := int64(len(emps))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(emps) {
		start = len(emps)
	}
	if end > len(emps) {
		end = len(emps)
	}

	response.Success(c, http.StatusOK, ListResponse{
		Employees: emps[start:end],
		Meta: ListMeta{
			Page:     page,
			PageSize: pageSize,
			Total:    total,
		},
	})
}

func (h *Handler) GetByID(c *gin.Context) {
	emp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, emp)
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), c.Param("id"), req); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Password updated successfully"})
}
