package employee

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	employeeerrors "github.com/spcool555/leav-managment-fe/internal/employee/errors"
	"github.com/spcool555/leav-managment-fe/internal/gateway"
	"github.com/spcool555/leav-managment-fe/internal/shared/contextutil"
)

const (
	directoryCacheKey = "portal:employees:directory"
	directoryCacheTTL = 5 * time.Minute

	minPasswordLength = 6
)

// Gateway adalah subset klien REST backend yang dipakai manajemen employee.
type Gateway interface {
	AdminEmployees(ctx context.Context) ([]gateway.Employee, error)
	CreateEmployee(ctx context.Context, req gateway.CreateEmployeeRequest) (gateway.Employee, error)
	AdminEmployee(ctx context.Context, id string) (gateway.Employee, error)
	UpdatePassword(ctx context.Context, id, newPassword string) error
}

type Service interface {
	Directory(ctx context.Context) ([]gateway.Employee, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (gateway.Employee, error)
	GetByID(ctx context.Context, id string) (gateway.Employee, error)
	ChangePassword(ctx context.Context, id string, req ChangePasswordRequest) error
}

type service struct {
	gw     Gateway
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(gw Gateway, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		gw:     gw,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// Directory mengembalikan daftar employee dari backend, di-cache sebentar di
// Redis karena layar admin membukanya berulang kali.
func (s *service) Directory(ctx context.Context) ([]gateway.Employee, error) {
	// 1. Cek Redis
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, directoryCacheKey).Result(); err == nil {
			var resp []gateway.Employee
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// 2. Singleflight supaya beberapa tab admin tidak memukul backend bersamaan
	v, err, _ := s.sf.Do(directoryCacheKey, func() (interface{}, error) {
		emps, err := s.gw.AdminEmployees(ctx)
		if err != nil {
			return nil, err
		}

		// 3. Simpan ke Redis
		if s.rdb != nil {
			if jsonData, err := json.Marshal(emps); err == nil {
				s.rdb.Set(ctx, directoryCacheKey, jsonData, directoryCacheTTL)
			}
		}

		return emps, nil
	})
	if err != nil {
		s.logger.Error("fetch employee directory failed", zap.Error(err))
		return nil, err
	}

	return v.([]gateway.Employee), nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (gateway.Employee, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.ID),
		zap.String("email", req.Email),
	)

	if len(req.Password) < minPasswordLength {
		s.logger.Warn("create employee password too short", zap.String("employee_id", req.ID))
		return gateway.Employee{}, employeeerrors.ErrPasswordTooShort
	}

	emp, err := s.gw.CreateEmployee(ctx, gateway.CreateEmployeeRequest{
		ID:       req.ID,
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		s.logger.Error("create employee failed", zap.String("request_id", rid), zap.Error(err))
		return gateway.Employee{}, err
	}

	s.invalidateDirectory(ctx)
	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", emp.ID),
	)
	return emp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (gateway.Employee, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))
	emp, err := s.gw.AdminEmployee(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return gateway.Employee{}, err
	}
	return emp, nil
}

func (s *service) ChangePassword(ctx context.Context, id string, req ChangePasswordRequest) error {
	if len(req.NewPassword) < minPasswordLength {
		return employeeerrors.ErrPasswordTooShort
	}
	if req.NewPassword != req.ConfirmPassword {
		return employeeerrors.ErrPasswordMismatch
	}

	if err := s.gw.UpdatePassword(ctx, id, req.NewPassword); err != nil {
		s.logger.Error("change password failed", zap.String("employee_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("change password success", zap.String("employee_id", id))
	return nil
}

func (s *service) invalidateDirectory(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, directoryCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee directory cache",
			zap.Error(err),
			zap.String("key", directoryCacheKey),
		)
	}
}
