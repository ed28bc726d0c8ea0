package auth

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spcool555/leav-managment-fe/internal/gateway"
	"github.com/spcool555/leav-managment-fe/internal/routeguard"
	"github.com/spcool555/leav-managment-fe/internal/session"
)

//go:generate mockgen -source=auth_controller.go -destination=mock/auth_controller_mock.go -package=mock
type Gateway interface {
	Login(ctx context.Context, employeeID, password string) (gateway.Employee, error)
}

// Controller memiliki AuthState untuk satu request/sesi dan mengeluarkan
// navigation intent (path redirect) pada transisi login/logout.
type Controller struct {
	store  session.Store
	gw     Gateway
	logger *zap.Logger
}

func NewController(store session.Store, gw Gateway, logger ...*zap.Logger) *Controller {
	l := zap.L().Named("auth.controller")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.controller")
	}
	return &Controller{store: store, gw: gw, logger: l}
}

// Login memanggil backend, mem-persist sesi baru, dan mengembalikan
// (sid, session, redirect). Saat gagal AuthState tetap Anonymous dan error
// membawa pesan server atau "Login failed".
func (c *Controller) Login(ctx context.Context, employeeID, password string) (string, session.Session, string, error) {
	emp, err := c.gw.Login(ctx, employeeID, password)
	if err != nil {
		c.logger.Warn("login rejected", zap.String("employee_id", employeeID), zap.Error(err))
		return "", session.Session{}, "", err
	}

	sess := session.Session{
		EmployeeID: emp.ID,
		FullName:   emp.FullName,
		Email:      emp.Email,
		Phone:      emp.Phone,
		IsAdmin:    emp.IsAdmin,
	}

	sid := uuid.New().String()
	if err := c.store.Persist(ctx, sid, sess); err != nil {
		c.logger.Error("persist session failed", zap.Error(err))
		return "", session.Session{}, "", err
	}

	redirect := routeguard.Landing(sess.IsAdmin)
	c.logger.Info("login success",
		zap.String("employee_id", sess.EmployeeID),
		zap.Bool("is_admin", sess.IsAdmin),
		zap.String("redirect", redirect),
	)
	return sid, sess, redirect, nil
}

// Logout membuang record sesi dan mengarahkan ke halaman login dengan
// semantik replace (handler menambahkan Cache-Control no-store supaya
// back-navigation tidak menampilkan konten terproteksi).
func (c *Controller) Logout(ctx context.Context, sid string) string {
	if sid != "" {
		if err := c.store.Clear(ctx, sid); err != nil {
			c.logger.Error("clear session failed", zap.Error(err))
		}
	}
	c.logger.Info("logout", zap.String("sid", sid))
	return routeguard.PathLogin
}

// Resolve menyelesaikan AuthState dari Loading ke Anonymous/Authenticated
// sebelum guard mengambil keputusan. Store bermasalah dianggap Anonymous
// (fail soft), tidak pernah fatal.
func (c *Controller) Resolve(ctx context.Context, sid string) session.AuthState {
	if sid == "" {
		return session.Anonymous()
	}
	sess, err := c.store.Restore(ctx, sid)
	if err != nil {
		c.logger.Error("restore session failed", zap.Error(err))
		return session.Anonymous()
	}
	if sess == nil {
		return session.Anonymous()
	}
	return session.Authenticated(*sess)
}
