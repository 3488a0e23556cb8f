package v1

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/roamlog/roam-api/internal/core"
	"github.com/roamlog/roam-api/pkg/errors"
	"github.com/roamlog/roam-api/pkg/i18n"
	"github.com/roamlog/roam-api/pkg/security"
	"github.com/roamlog/roam-api/pkg/types"
	"github.com/roamlog/roam-api/pkg/utils"
)

type AuthLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewAuthLogic(ctx context.Context, core *core.Core) *AuthLogic {
	return &AuthLogic{
		ctx:  ctx,
		core: core,
	}
}

// demoUser is the fixed demo/demo account. It never lives in the users table.
func demoUser() *types.User {
	return &types.User{
		ID:       types.DEMO_USER_ID,
		Username: "demo",
		Email:    "demo@example.com",
	}
}

func (l *AuthLogic) Login(username, password string) (*types.User, string, error) {
	if username == "demo" && password == "demo" {
		user := demoUser()
		token, err := l.core.Srv().Credentials().Issue(security.TokenClaims{UserID: user.ID, Username: user.Username})
		if err != nil {
			return nil, "", errors.New("AuthLogic.Login.Credentials.Issue", i18n.ERROR_INTERNAL, err)
		}
		return user, token, nil
	}

	user, err := l.core.Store().UserStore().GetByUsername(l.ctx, username)
	if err != nil && err != sql.ErrNoRows {
		return nil, "", errors.New("AuthLogic.Login.UserStore.GetByUsername", i18n.ERROR_INTERNAL, err)
	}
	if user == nil || user.Password != utils.GenUserPassword(user.Salt, password) {
		return nil, "", errors.New("AuthLogic.Login.check", i18n.ERROR_INVALID_CREDENTIALS, nil).Code(http.StatusUnauthorized)
	}

	token, err := l.core.Srv().Credentials().Issue(security.TokenClaims{UserID: user.ID, Username: user.Username})
	if err != nil {
		return nil, "", errors.New("AuthLogic.Login.Credentials.Issue", i18n.ERROR_INTERNAL, err)
	}
	return user, token, nil
}

func (l *AuthLogic) Register(username, email, password string) (*types.User, string, error) {
	exists, err := l.core.Store().UserStore().ExistsByUsernameOrEmail(l.ctx, username, email)
	if err != nil {
		return nil, "", errors.New("AuthLogic.Register.UserStore.ExistsByUsernameOrEmail", i18n.ERROR_INTERNAL, err)
	}
	if exists {
		return nil, "", errors.New("AuthLogic.Register.exists", i18n.ERROR_USER_EXIST, nil).Code(http.StatusBadRequest)
	}

	salt := utils.RandomStr(16)
	user := types.User{
		ID:        utils.GenSpecID(),
		Username:  username,
		Email:     email,
		Password:  utils.GenUserPassword(salt, password),
		Salt:      salt,
		CreatedAt: time.Now(),
	}
	if err = l.core.Store().UserStore().Create(l.ctx, user); err != nil {
		return nil, "", errors.New("AuthLogic.Register.UserStore.Create", i18n.ERROR_INTERNAL, err)
	}

	token, err := l.core.Srv().Credentials().Issue(security.TokenClaims{UserID: user.ID, Username: user.Username})
	if err != nil {
		return nil, "", errors.New("AuthLogic.Register.Credentials.Issue", i18n.ERROR_INTERNAL, err)
	}
	return &user, token, nil
}

type UserLogic struct {
	ctx  context.Context
	core *core.Core
	user security.TokenClaims
}

func NewUserLogic(ctx context.Context, core *core.Core) *UserLogic {
	return &UserLogic{
		ctx:  ctx,
		core: core,
		user: setupUserInfo(ctx),
	}
}

// GetUser resolves the authenticated caller's profile.
func (l *UserLogic) GetUser() (*types.User, error) {
	data, err := l.core.Store().UserStore().GetUser(l.ctx, l.user.UserID)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("UserLogic.GetUser.UserStore.GetUser", i18n.ERROR_INTERNAL, err)
	}
	if data == nil {
		if l.user.UserID == types.DEMO_USER_ID {
			return demoUser(), nil
		}
		return nil, errors.New("UserLogic.GetUser.nil", i18n.ERROR_USER_NOTFOUND, nil).Code(http.StatusNotFound)
	}
	return data, nil
}
