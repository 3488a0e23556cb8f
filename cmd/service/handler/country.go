package handler

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/roamlog/roam-api/internal/logic/v1"
	"github.com/roamlog/roam-api/internal/response"
)

func (s *HttpSrv) ListCountries(c *gin.Context) {
	list, err := v1.NewCountryLogic(c, s.Core).ListCountries()
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, list)
}

func (s *HttpSrv) GetCountry(c *gin.Context) {
	country, err := v1.NewCountryLogic(c, s.Core).GetCountry(c.Param("code"))
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, country)
}
