package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/roamlog/roam-api/internal/core"
)

type HttpSrv struct {
	Core   *core.Core
	Engine *gin.Engine
}
