package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rendau/jobly/internal/errs"
	"github.com/rendau/jobly/internal/types"
)

func statusFor(err errs.Err) int {
	switch err {
	case errs.ObjectNotFound, errs.NoRows:
		return http.StatusNotFound
	case errs.NotAuthorized, errs.WrongAuthCreds, errs.BadJwt:
		return http.StatusUnauthorized
	case errs.PermissionDenied:
		return http.StatusForbidden
	case errs.ServiceNA:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadRequest
	}
}

func (a *St) errorHandler(c *gin.Context, err error) {
	switch cErr := err.(type) {
	case errs.Err:
		c.AbortWithStatusJSON(statusFor(cErr), types.ErrRep{
			ErrorCode: cErr.Error(),
		})
	case errs.ErrWithDesc:
		c.AbortWithStatusJSON(statusFor(cErr.Err), types.ErrRep{
			ErrorCode: cErr.Err.Error(),
			Desc:      cErr.Desc,
		})
	default:
		a.lg.Errorw(
			"Error in http handler",
			err,
			"method", c.Request.Method,
			"path", c.Request.URL.String(),
		)

		c.AbortWithStatus(http.StatusInternalServerError)
	}
}
