// Package registry holds the entity/operation catalogue behind the MCP
// front ends: providers register named operations per entity, and the
// registry validates requests and dispatches calls to them.
package registry

import "strings"

// EntityType identifies a kind of ledger object exposed as tools.
type EntityType string

const (
	EntityAccount     EntityType = "account"
	EntityTransaction EntityType = "transaction"
	EntityBudget      EntityType = "budget"
	EntityCategory    EntityType = "category"
	EntityTag         EntityType = "tag"
	EntityRule        EntityType = "rule"
	EntityRuleGroup   EntityType = "rule_group"
	EntityBill        EntityType = "bill"
	EntityPiggyBank   EntityType = "piggy_bank"
)

var entityTypes = []EntityType{
	EntityAccount,
	EntityTransaction,
	EntityBudget,
	EntityCategory,
	EntityTag,
	EntityRule,
	EntityRuleGroup,
	EntityBill,
	EntityPiggyBank,
}

// AllEntityTypes returns every entity type in declaration order.
func AllEntityTypes() []EntityType {
	out := make([]EntityType, len(entityTypes))
	copy(out, entityTypes)
	return out
}

// ParseEntityType converts a wire value into an EntityType. Matching is
// exact: "Account" is rejected.
func ParseEntityType(s string) (EntityType, error) {
	for _, e := range entityTypes {
		if string(e) == s {
			return e, nil
		}
	}
	return "", &UnknownEntityError{Value: s}
}

func (e EntityType) String() string {
	return string(e)
}

// Title returns the display name used in messages, e.g. "Piggy bank".
func (e EntityType) Title() string {
	s := strings.ReplaceAll(string(e), "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func entityIndex(e EntityType) int {
	for i, known := range entityTypes {
		if known == e {
			return i
		}
	}
	return len(entityTypes)
}

func entityNames() []string {
	names := make([]string, len(entityTypes))
	for i, e := range entityTypes {
		names[i] = string(e)
	}
	return names
}
