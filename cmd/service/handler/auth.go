package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/roamlog/roam-api/internal/logic/v1"
	"github.com/roamlog/roam-api/internal/response"
	"github.com/roamlog/roam-api/pkg/errors"
	"github.com/roamlog/roam-api/pkg/i18n"
	"github.com/roamlog/roam-api/pkg/types"
	"github.com/roamlog/roam-api/pkg/utils"
)

type AuthResponse struct {
	User  *types.User `json:"user"`
	Token string      `json:"token"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *HttpSrv) Login(c *gin.Context) {
	var req LoginRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	user, token, err := v1.NewAuthLogic(c, s.Core).Login(req.Username, req.Password)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, AuthResponse{User: user, Token: token})
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *HttpSrv) Register(c *gin.Context) {
	var req RegisterRequest
	if err := utils.BindArgsWithGin(c, &req); err != nil {
		response.APIError(c, err)
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		response.APIError(c, errors.New("Register.check", i18n.ERROR_FIELDS_REQUIRED, nil).Code(http.StatusBadRequest))
		return
	}

	user, token, err := v1.NewAuthLogic(c, s.Core).Register(req.Username, req.Email, req.Password)
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APICreated(c, AuthResponse{User: user, Token: token})
}

func (s *HttpSrv) Profile(c *gin.Context) {
	user, err := v1.NewUserLogic(c, s.Core).GetUser()
	if err != nil {
		response.APIError(c, err)
		return
	}

	response.APISuccess(c, user)
}
