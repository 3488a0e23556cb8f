package v1

import (
	"context"
	"net/http"

	"github.com/roamlog/roam-api/internal/core"
	"github.com/roamlog/roam-api/pkg/errors"
	"github.com/roamlog/roam-api/pkg/i18n"
	"github.com/roamlog/roam-api/pkg/types"
)

type CountryLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewCountryLogic(ctx context.Context, core *core.Core) *CountryLogic {
	return &CountryLogic{
		ctx:  ctx,
		core: core,
	}
}

func (l *CountryLogic) ListCountries() ([]types.Country, error) {
	list, err := l.core.Srv().CountryDirectory().List(l.ctx)
	if err != nil {
		return nil, errors.New("CountryLogic.ListCountries.CountryDirectory.List", i18n.ERROR_COUNTRIES_FETCH, err)
	}
	if list == nil {
		list = []types.Country{}
	}
	return list, nil
}

func (l *CountryLogic) GetCountry(code string) (*types.Country, error) {
	country, err := l.core.Srv().CountryDirectory().Lookup(l.ctx, code)
	if err != nil {
		return nil, errors.New("CountryLogic.GetCountry.CountryDirectory.Lookup", i18n.ERROR_COUNTRY_FETCH, err)
	}
	if country == nil {
		return nil, errors.New("CountryLogic.GetCountry.nil", i18n.ERROR_COUNTRY_NOTFOUND, nil).Code(http.StatusNotFound)
	}
	return country, nil
}
