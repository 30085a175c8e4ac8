package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rendau/jobly/internal/adapters/server/https"
	"github.com/rendau/jobly/internal/domain/entities"
)

func (a *St) register(c *gin.Context) {
	req := entities.UserRegisterReqSt{}
	if !https.BindJSON(c, &req) {
		return
	}

	usr, token, err := a.cr.User.Register(c.Request.Context(), req)
	if https.Error(c, err) {
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": usr, "token": token})
}

func (a *St) login(c *gin.Context) {
	req := entities.UserLoginReqSt{}
	if !https.BindJSON(c, &req) {
		return
	}

	token, err := a.cr.Auth.Login(c.Request.Context(), req.Username, req.Password)
	if https.Error(c, err) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
