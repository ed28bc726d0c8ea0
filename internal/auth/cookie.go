package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/spcool555/leav-managment-fe/internal/session"
)

const cookieMaxAge = 86400 // 1 hari

// CookieCodec menandatangani session ID ke dalam cookie web (HS256),
// sehingga sid tidak bisa ditebak atau diubah client.
type CookieCodec struct {
	secret []byte
	isProd bool
}

func NewCookieCodec(secret string, isProd bool) *CookieCodec {
	return &CookieCodec{secret: []byte(secret), isProd: isProd}
}

func (cc *CookieCodec) Issue(sid string) (string, error) {
	claims := jwt.MapClaims{
		"sid": sid,
		"exp": time.Now().Add(time.Duration(cookieMaxAge) * time.Second).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(cc.secret)
}

func (cc *CookieCodec) Decode(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return cc.secret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid session cookie")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid session cookie")
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", errors.New("invalid session cookie")
	}
	return sid, nil
}

func (cc *CookieCodec) Set(c *gin.Context, token string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		Secure:   cc.isProd,
		SameSite: http.SameSiteLaxMode,
	})
}

func (cc *CookieCodec) Clear(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cc.isProd,
		SameSite: http.SameSiteLaxMode,
	})
}
