package sqlstore

import (
	"context"
	"fmt"

	"github.com/roamlog/roam-api/pkg/sqlstore"
)

type SqlProviderAchieve interface {
	GetMaster(ctx context.Context) sqlstore.Executor
	GetReplica(ctx context.Context) sqlstore.Executor
}

// CommonFields is embedded by every store in this package.
type CommonFields struct {
	provider   SqlProviderAchieve
	table      string
	allColumns []string
}

func (c *CommonFields) SetProvider(p SqlProviderAchieve) {
	c.provider = p
}

func (c *CommonFields) SetTable(table string) {
	c.table = table
}

func (c *CommonFields) SetAllColumns(columns ...string) {
	c.allColumns = columns
}

func (c *CommonFields) GetTable() string {
	return c.table
}

func (c *CommonFields) GetAllColumns() []string {
	return c.allColumns
}

func (c *CommonFields) GetMaster(ctx context.Context) sqlstore.Executor {
	return c.provider.GetMaster(ctx)
}

func (c *CommonFields) GetReplica(ctx context.Context) sqlstore.Executor {
	return c.provider.GetReplica(ctx)
}

func errorSqlBuild(err error) error {
	return fmt.Errorf("sql build failed: %w", err)
}
