package service

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/roamlog/roam-api/cmd/service/handler"
	"github.com/roamlog/roam-api/internal/core"
	v1 "github.com/roamlog/roam-api/internal/logic/v1"
	"github.com/roamlog/roam-api/internal/response"
)

func serve(core *core.Core) {
	httpSrv := &handler.HttpSrv{
		Core:   core,
		Engine: core.HttpEngine(),
	}
	setupHttpRouter(httpSrv)

	httpSrv.Engine.Run(core.Cfg().Addr)
}

func GetIPLimitBuilder(core *core.Core) func(key string) gin.HandlerFunc {
	return func(key string) gin.HandlerFunc {
		return UseLimit(core, key, func(c *gin.Context) string {
			return key + ":" + c.ClientIP()
		})
	}
}

func GetUserLimitBuilder(core *core.Core) func(key string) gin.HandlerFunc {
	return func(key string) gin.HandlerFunc {
		return UseLimit(core, key, func(c *gin.Context) string {
			token, _ := v1.InjectTokenClaim(c)
			return key + ":" + strconv.FormatInt(token.UserID, 10)
		})
	}
}

func setupHttpRouter(s *handler.HttpSrv) {
	ipLimit := GetIPLimitBuilder(s.Core)
	userLimit := GetUserLimitBuilder(s.Core)

	s.Engine.Use(I18n(), response.NewResponse())
	s.Engine.Use(Cors)
	s.Engine.Use(Metrics(s.Core))

	s.Engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := s.Engine.Group("/auth")
	{
		auth.POST("/login", ipLimit("login"), s.Login)
		auth.POST("/register", ipLimit("register"), s.Register)
		auth.GET("/profile", Authorization(s.Core), s.Profile)
	}

	journal := s.Engine.Group("/journal")
	journal.Use(Authorization(s.Core))
	{
		journal.GET("", s.ListJournalEntries)
		journal.GET("/country/:countryCode", s.ListCountryJournalEntries)
		journal.GET("/status/:countryCode", s.GetCountryStatus)

		journal.POST("", userLimit("journal_modify"), s.CreateJournalEntry)
		journal.PUT("/:id", userLimit("journal_modify"), s.UpdateJournalEntry)
		journal.DELETE("/:id", userLimit("journal_modify"), s.DeleteJournalEntry)
	}

	countries := s.Engine.Group("/countries")
	countries.Use(OptionalAuthorization(s.Core))
	{
		countries.GET("", s.ListCountries)
		countries.GET("/:code", s.GetCountry)
	}
}
