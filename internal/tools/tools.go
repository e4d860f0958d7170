// Package tools declares the Firefly III operation tables and builds the
// registry providers from them.
package tools

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/firefly-mcp/firefly-mcp/internal/firefly"
	"github.com/firefly-mcp/firefly-mcp/internal/registry"
)

// op builds one table entry from a typed client method.
func op[Req, Resp any](name, description string, fn func(context.Context, *Req) (Resp, error), tags ...string) registry.OperationSpec {
	return registry.OperationSpec{
		Name:        name,
		Description: description,
		Request:     registry.ShapeOf[Req](),
		Response:    registry.ShapeOf[Resp](),
		Call:        registry.Bind(fn),
		Tags:        tags,
	}
}

type table func(*firefly.Client) []registry.OperationSpec

var tables = []struct {
	entity registry.EntityType
	ops    table
}{
	{registry.EntityAccount, accountOperations},
	{registry.EntityBill, billOperations},
	{registry.EntityBudget, budgetOperations},
	{registry.EntityCategory, categoryOperations},
	{registry.EntityPiggyBank, piggyBankOperations},
	{registry.EntityRuleGroup, ruleGroupOperations},
	{registry.EntityRule, ruleOperations},
	{registry.EntityTag, tagOperations},
	{registry.EntityTransaction, transactionOperations},
}

// Providers builds one provider per entity, backed by c.
func Providers(c *firefly.Client) ([]*registry.EntityProvider, error) {
	providers := make([]*registry.EntityProvider, 0, len(tables))
	for _, t := range tables {
		p, err := registry.NewEntityProvider(t.entity, t.ops(c))
		if err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}
	return providers, nil
}

// Setup registers every provider with reg. A provider that fails to
// register is logged and skipped. It returns how many providers ended up
// in the registry.
func Setup(reg *registry.Registry, c *firefly.Client, log logrus.FieldLogger) (int, error) {
	providers, err := Providers(c)
	if err != nil {
		return 0, err
	}

	for _, p := range providers {
		if err := reg.RegisterProvider(p); err != nil {
			log.WithError(err).WithField("entity", p.Entity()).Error("failed to register provider")
		}
	}

	registered := reg.Stats().Providers
	log.Infof("registered %d/%d providers", registered, len(providers))
	return registered, nil
}
