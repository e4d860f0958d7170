package registry

import (
	"fmt"
)

// EntityProvider owns the operations of one entity type.
type EntityProvider struct {
	entity    EntityType
	ops       map[string]Operation
	order     []string
	available func() bool
}

// ProviderOption customises an EntityProvider.
type ProviderOption func(*EntityProvider)

// WithAvailability overrides the provider's availability check.
func WithAvailability(fn func() bool) ProviderOption {
	return func(p *EntityProvider) {
		p.available = fn
	}
}

// NewEntityProvider builds a provider from an operation table. Names must be
// unique and every entry needs a CallFunc.
func NewEntityProvider(entity EntityType, specs []OperationSpec, opts ...ProviderOption) (*EntityProvider, error) {
	if _, err := ParseEntityType(string(entity)); err != nil {
		return nil, err
	}

	p := &EntityProvider{
		entity: entity,
		ops:    make(map[string]Operation, len(specs)),
		order:  make([]string, 0, len(specs)),
	}
	for _, spec := range specs {
		if spec.Name == "" {
			return nil, fmt.Errorf("%s: operation with empty name", entity)
		}
		if spec.Call == nil {
			return nil, fmt.Errorf("%s.%s: no call function", entity, spec.Name)
		}
		if _, dup := p.ops[spec.Name]; dup {
			return nil, fmt.Errorf("%s.%s: duplicate operation", entity, spec.Name)
		}
		p.ops[spec.Name] = newOperation(spec)
		p.order = append(p.order, spec.Name)
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Entity returns the entity type the provider serves.
func (p *EntityProvider) Entity() EntityType {
	return p.entity
}

// Operations returns the provider's operations in table order.
func (p *EntityProvider) Operations() []Operation {
	out := make([]Operation, 0, len(p.order))
	for _, name := range p.order {
		out = append(out, p.ops[name])
	}
	return out
}

// Operation looks up an operation by name.
func (p *EntityProvider) Operation(name string) (Operation, error) {
	op, ok := p.ops[name]
	if !ok {
		return Operation{}, &OperationNotFoundError{Entity: p.entity, Operation: name}
	}
	return op, nil
}

// Available reports whether the provider should be exposed.
func (p *EntityProvider) Available() bool {
	if p.available == nil {
		return true
	}
	return p.available()
}
