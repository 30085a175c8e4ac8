package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rendau/jobly/internal/adapters/logger"
	"github.com/rendau/jobly/internal/adapters/server/https"
	"github.com/rendau/jobly/internal/domain/core"
)

type St struct {
	lg logger.WarnAndError
	cr *core.St
}

func Router(lg logger.WarnAndError, cr *core.St, debug bool) *gin.Engine {
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	a := &St{
		lg: lg,
		cr: cr,
	}

	r := gin.New()
	r.Use(https.MwRecovery(lg, a.errorHandler))
	r.Use(https.MwCors())
	r.Use(a.mwSession)

	r.GET("/healthcheck", a.healthcheck)

	auth := r.Group("/auth")
	{
		auth.POST("/register", a.register)
		auth.POST("/token", a.login)
	}

	companies := r.Group("/companies")
	{
		companies.GET("", a.companyList)
		companies.GET("/:handle", a.companyGet)
		companies.POST("", a.mwRequireAdmin, a.companyCreate)
		companies.PATCH("/:handle", a.mwRequireAdmin, a.companyUpdate)
		companies.DELETE("/:handle", a.mwRequireAdmin, a.companyDelete)
	}

	jobs := r.Group("/jobs")
	{
		jobs.GET("", a.jobList)
		jobs.GET("/:id", a.jobGet)
		jobs.POST("", a.mwRequireAdmin, a.jobCreate)
		jobs.PATCH("/:id", a.mwRequireAdmin, a.jobUpdate)
		jobs.DELETE("/:id", a.mwRequireAdmin, a.jobDelete)
	}

	users := r.Group("/users", a.mwRequireAuth)
	{
		users.GET("", a.mwRequireAdmin, a.userList)
		users.POST("", a.mwRequireAdmin, a.userCreate)
		users.GET("/:username", a.mwRequireAdminOrSelf, a.userGet)
		users.PATCH("/:username", a.mwRequireAdminOrSelf, a.userUpdate)
		users.DELETE("/:username", a.mwRequireAdminOrSelf, a.userDelete)
		users.POST("/:username/jobs/:id", a.mwRequireAdminOrSelf, a.userApply)
	}

	return r
}

func (a *St) healthcheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
