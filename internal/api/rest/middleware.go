package rest

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rendau/jobly/internal/cns"
	"github.com/rendau/jobly/internal/errs"
	"github.com/rendau/jobly/internal/types"
)

const sessionCtxKey = "session"

// mwSession resolves the bearer token into a session. Missing or invalid
// tokens produce the anonymous session; the route guards below decide
// whether that is acceptable.
func (a *St) mwSession(c *gin.Context) {
	token := c.GetHeader(cns.TokenHeaderKey)
	token = strings.TrimPrefix(token, cns.TokenPrefix)

	c.Set(sessionCtxKey, a.cr.Auth.GetSession(token))

	c.Next()
}

func getSession(c *gin.Context) types.SessionSt {
	if v, ok := c.Get(sessionCtxKey); ok {
		if sess, ok := v.(types.SessionSt); ok {
			return sess
		}
	}

	return types.SessionSt{}
}

func (a *St) abortErr(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func (a *St) mwRequireAuth(c *gin.Context) {
	if !getSession(c).IsAuthenticated() {
		a.abortErr(c, errs.NotAuthorized)
		return
	}

	c.Next()
}

func (a *St) mwRequireAdmin(c *gin.Context) {
	sess := getSession(c)

	if !sess.IsAuthenticated() {
		a.abortErr(c, errs.NotAuthorized)
		return
	}
	if !sess.IsAdmin {
		a.abortErr(c, errs.PermissionDenied)
		return
	}

	c.Next()
}

// mwRequireAdminOrSelf allows admins and the user named by the "username"
// route parameter.
func (a *St) mwRequireAdminOrSelf(c *gin.Context) {
	sess := getSession(c)

	if !sess.IsAuthenticated() {
		a.abortErr(c, errs.NotAuthorized)
		return
	}
	if !sess.IsAdmin && sess.Username != c.Param("username") {
		a.abortErr(c, errs.PermissionDenied)
		return
	}

	c.Next()
}
