package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spcool555/leav-managment-fe/internal/routeguard"
)

// Guard mengevaluasi routeguard.Decide pada SETIAP request; keputusan tidak
// pernah di-cache antar request atau antar perubahan state.
func Guard(policy routeguard.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := CurrentState(c)
		d := routeguard.Decide(st, policy, c.Request.URL.Path)

		if d.Waiting {
			// AuthState belum resolve: indikator tunggu netral, bukan redirect.
			c.AbortWithStatusJSON(http.StatusAccepted, gin.H{"status": "loading"})
			return
		}
		if d.Redirect != "" {
			c.Redirect(http.StatusFound, d.Redirect)
			c.Abort()
			return
		}

		c.Next()
	}
}
