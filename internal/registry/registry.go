package registry

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/firefly-mcp/firefly-mcp/internal/requestid"
)

// Serializable is implemented by results that know how to render
// themselves as plain JSON-compatible data.
type Serializable interface {
	ToMap() map[string]any
}

// OperationInfo is the discovery record of one operation.
type OperationInfo struct {
	Name        string   `json:"name" yaml:"name"`
	Entity      string   `json:"entity" yaml:"entity"`
	Operation   string   `json:"operation" yaml:"operation"`
	Description string   `json:"description" yaml:"description"`
	Tags        []string `json:"tags" yaml:"tags"`
}

// Stats summarises the registry contents.
type Stats struct {
	Providers  int         `json:"providers"`
	Operations int         `json:"operations"`
	Entities   []string    `json:"entities"`
	Config     StatsConfig `json:"config"`
}

// StatsConfig is the configuration part of Stats.
type StatsConfig struct {
	DirectMode      bool     `json:"direct_mode"`
	EnabledEntities []string `json:"enabled_entities"`
}

// Registry maps entity types to providers and dispatches operations.
// Providers are registered during startup; once Seal has been called the
// provider set is fixed and the registry is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	sealed    bool
	config    Config
	providers map[EntityType]*EntityProvider
	converter *SchemaConverter
	log       logrus.FieldLogger
}

// New creates an empty registry.
func New(cfg Config, log logrus.FieldLogger) *Registry {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if cfg.EnabledEntities == nil {
		cfg.EnabledEntities = DefaultConfig().EnabledEntities
	}
	return &Registry{
		config:    cfg,
		providers: make(map[EntityType]*EntityProvider),
		converter: NewSchemaConverter(log),
		log:       log,
	}
}

// Config returns the registry configuration.
func (r *Registry) Config() Config {
	return r.config
}

// Converter returns the schema converter used for validation.
func (r *Registry) Converter() *SchemaConverter {
	return r.converter
}

// RegisterProvider adds p if its entity is enabled and it reports itself
// available. Skipped providers are logged and are not an error. A provider
// for an already registered entity replaces the previous one.
func (r *Registry) RegisterProvider(p *EntityProvider) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return fmt.Errorf("registry is sealed, cannot register %s", p.Entity())
	}

	log := r.log.WithField("entity", p.Entity())
	if !r.config.Enabled(p.Entity()) {
		log.Debug("entity not enabled, skipping provider")
		return nil
	}
	if !p.Available() {
		log.Warn("provider not available, skipping")
		return nil
	}

	r.providers[p.Entity()] = p
	log.WithField("operations", len(p.order)).Info("registered provider")
	return nil
}

// Seal freezes the provider set.
func (r *Registry) Seal() {
	r.mu.Lock()
	r.sealed = true
	r.mu.Unlock()
}

// Provider returns the provider for e.
func (r *Registry) Provider(e EntityType) (*EntityProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[e]
	if !ok {
		return nil, &EntityNotAvailableError{Entity: e}
	}
	return p, nil
}

// Providers returns the registered providers in entity declaration order.
func (r *Registry) Providers() []*EntityProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*EntityProvider, 0, len(r.providers))
	for _, p := range r.providers {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return entityIndex(out[i].entity) < entityIndex(out[j].entity)
	})
	return out
}

func (r *Registry) resolve(entity, operation string) (EntityType, Operation, error) {
	e, err := ParseEntityType(entity)
	if err != nil {
		return "", Operation{}, err
	}
	p, err := r.Provider(e)
	if err != nil {
		return e, Operation{}, err
	}
	op, err := p.Operation(operation)
	if err != nil {
		return e, Operation{}, err
	}
	return e, op, nil
}

// ExecuteOperation validates params against the operation's request shape,
// calls the backend and returns a JSON-compatible result.
//
// Lookup and validation failures are returned as their own error types.
// Anything else, including a panic in the backend, comes back as a
// *RegistryError wrapping the cause.
func (r *Registry) ExecuteOperation(ctx context.Context, entity, operation string, params any) (result any, err error) {
	ctx, reqID := requestid.Ensure(ctx)
	log := r.log.WithFields(logrus.Fields{
		"entity":     entity,
		"operation":  operation,
		"request_id": reqID,
	})

	e, op, err := r.resolve(entity, operation)
	if err != nil {
		log.WithError(err).Warn("operation lookup failed")
		return nil, err
	}

	req, err := r.converter.ValidateRequest(params, op.Request())
	if err != nil {
		if IsDispatchError(err) {
			log.WithError(err).Warn("request validation failed")
			return nil, err
		}
		log.WithError(err).Error("request decoding failed")
		return nil, &RegistryError{Entity: e, Operation: operation, Err: err}
	}

	defer func() {
		if rec := recover(); rec != nil {
			log.Errorf("operation panicked: %v", rec)
			result = nil
			err = &RegistryError{Entity: e, Operation: operation, Err: fmt.Errorf("panic: %v", rec)}
		}
	}()

	start := time.Now()
	res, err := op.Call(ctx, req)
	log = log.WithField("elapsed", time.Since(start))
	if err != nil {
		if IsDispatchError(err) {
			log.WithError(err).Warn("operation rejected")
			return nil, err
		}
		log.WithError(err).Error("operation execution failed")
		return nil, &RegistryError{Entity: e, Operation: operation, Err: err}
	}
	log.Debug("operation executed")
	return serialize(res), nil
}

func serialize(v any) any {
	s, ok := v.(Serializable)
	if !ok {
		return v
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil
	}
	return s.ToMap()
}

// ListOperations returns discovery records sorted by "<entity>.<operation>".
// An empty filter lists every registered provider.
func (r *Registry) ListOperations(filter EntityType) ([]OperationInfo, error) {
	var providers []*EntityProvider
	if filter != "" {
		p, err := r.Provider(filter)
		if err != nil {
			return nil, err
		}
		providers = []*EntityProvider{p}
	} else {
		providers = r.Providers()
	}

	ops := make([]OperationInfo, 0)
	for _, p := range providers {
		for _, op := range p.Operations() {
			ops = append(ops, OperationInfo{
				Name:        string(p.entity) + "." + op.Name(),
				Entity:      string(p.entity),
				Operation:   op.Name(),
				Description: op.Description(),
				Tags:        op.Tags(),
			})
		}
	}
	sort.Slice(ops, func(i, j int) bool {
		return ops[i].Name < ops[j].Name
	})
	return ops, nil
}

// OperationSchema returns the JSON Schema of the operation's request.
func (r *Registry) OperationSchema(entity, operation string) (map[string]any, error) {
	_, op, err := r.resolve(entity, operation)
	if err != nil {
		return nil, err
	}
	return r.converter.ToJSONSchema(op.Request()), nil
}

// Stats reports provider and operation counts along with the config.
func (r *Registry) Stats() Stats {
	providers := r.Providers()
	stats := Stats{
		Providers: len(providers),
		Entities:  make([]string, 0, len(providers)),
		Config: StatsConfig{
			DirectMode:      r.config.DirectMode,
			EnabledEntities: r.config.EntityNames(),
		},
	}
	for _, p := range providers {
		stats.Operations += len(p.order)
		stats.Entities = append(stats.Entities, string(p.entity))
	}
	return stats
}
