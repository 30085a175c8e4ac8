package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rendau/jobly/internal/adapters/server/https"
	"github.com/rendau/jobly/internal/domain/entities"
	"github.com/rendau/jobly/internal/errs"
)

func jobIdParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		https.Error(c, errs.ErrWithDesc{Err: errs.BadQueryParams, Desc: "invalid job id"})
		return 0, false
	}

	return id, true
}

func (a *St) jobList(c *gin.Context) {
	pars := entities.JobListParsSt{}
	if !https.BindQuery(c, &pars) {
		return
	}

	result, err := a.cr.Job.List(c.Request.Context(), pars)
	if https.Error(c, err) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": result})
}

func (a *St) jobGet(c *gin.Context) {
	id, ok := jobIdParam(c)
	if !ok {
		return
	}

	result, err := a.cr.Job.Get(c.Request.Context(), id)
	if https.Error(c, err) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"job": result})
}

func (a *St) jobCreate(c *gin.Context) {
	req := entities.JobCreateReqSt{}
	if !https.BindJSON(c, &req) {
		return
	}

	result, err := a.cr.Job.Create(c.Request.Context(), req)
	if https.Error(c, err) {
		return
	}

	c.JSON(http.StatusCreated, gin.H{"job": result})
}

func (a *St) jobUpdate(c *gin.Context) {
	id, ok := jobIdParam(c)
	if !ok {
		return
	}

	data := map[string]any{}
	if !https.BindJSON(c, &data) {
		return
	}

	result, err := a.cr.Job.Update(c.Request.Context(), id, data)
	if https.Error(c, err) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"job": result})
}

func (a *St) jobDelete(c *gin.Context) {
	id, ok := jobIdParam(c)
	if !ok {
		return
	}

	err := a.cr.Job.Delete(c.Request.Context(), id)
	if https.Error(c, err) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
