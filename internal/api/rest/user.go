package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rendau/jobly/internal/adapters/server/https"
	"github.com/rendau/jobly/internal/domain/entities"
)

func (a *St) userList(c *gin.Context) {
	result, err := a.cr.User.List(c.Request.Context())
	if https.Error(c, err) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": result})
}

func (a *St) userGet(c *gin.Context) {
	result, err := a.cr.User.Get(c.Request.Context(), c.Param("username"))
	if https.Error(c, err) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": result})
}

func (a *St) userCreate(c *gin.Context) {
	req := entities.UserCreateReqSt{}
	if !https.BindJSON(c, &req) {
		return
	}

	result, err := a.cr.User.Create(c.Request.Context(), req)
	if https.Error(c, err) {
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": result})
}

func (a *St) userUpdate(c *gin.Context) {
	data := map[string]any{}
	if !https.BindJSON(c, &data) {
		return
	}

	result, err := a.cr.User.Update(c.Request.Context(), c.Param("username"), data)
	if https.Error(c, err) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": result})
}

func (a *St) userDelete(c *gin.Context) {
	username := c.Param("username")

	err := a.cr.User.Delete(c.Request.Context(), username)
	if https.Error(c, err) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": username})
}

func (a *St) userApply(c *gin.Context) {
	jobId, ok := jobIdParam(c)
	if !ok {
		return
	}

	err := a.cr.User.Apply(c.Request.Context(), c.Param("username"), jobId)
	if https.Error(c, err) {
		return
	}

	c.JSON(http.StatusCreated, gin.H{"applied": jobId})
}
