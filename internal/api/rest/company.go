package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rendau/jobly/internal/adapters/server/https"
	"github.com/rendau/jobly/internal/domain/entities"
)

func (a *St) companyList(c *gin.Context) {
	pars := entities.CompanyListParsSt{}
	if !https.BindQuery(c, &pars) {
		return
	}

	result, err := a.cr.Company.List(c.Request.Context(), pars)
	if https.Error(c, err) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"companies": result})
}

func (a *St) companyGet(c *gin.Context) {
	result, err := a.cr.Company.Get(c.Request.Context(), c.Param("handle"))
	if https.Error(c, err) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"company": result})
}

func (a *St) companyCreate(c *gin.Context) {
	req := entities.CompanyCreateReqSt{}
	if !https.BindJSON(c, &req) {
		return
	}

	result, err := a.cr.Company.Create(c.Request.Context(), req)
	if https.Error(c, err) {
		return
	}

	c.JSON(http.StatusCreated, gin.H{"company": result})
}

func (a *St) companyUpdate(c *gin.Context) {
	data := map[string]any{}
	if !https.BindJSON(c, &data) {
		return
	}

	result, err := a.cr.Company.Update(c.Request.Context(), c.Param("handle"), data)
	if https.Error(c, err) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"company": result})
}

func (a *St) companyDelete(c *gin.Context) {
	handle := c.Param("handle")

	err := a.cr.Company.Delete(c.Request.Context(), handle)
	if https.Error(c, err) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": handle})
}
