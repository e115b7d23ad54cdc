package typeset

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/classmeta/annotation"
	"github.com/wippyai/classmeta/descriptor"
	"github.com/wippyai/classmeta/errors"
)

// Constant declares one enum constant for registration
type Constant struct {
	Value    any
	Name     string
	Exported bool
}

// Option configures a Registry
type Option func(*Registry)

// WithLogger sets the registry logger. A no-op logger is used by default.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		r.logger = l
	}
}

// Registry is an in-memory annotation.Resolver over registered type
// metadata
type Registry struct {
	logger *zap.Logger
	types  map[string]*TypeInfo
	mu     sync.RWMutex
}

// New creates an empty registry
func New(opts ...Option) *Registry {
	r := &Registry{
		logger: zap.NewNop(),
		types:  make(map[string]*TypeInfo),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddEnum registers an enumeration type with its constants
func (r *Registry) AddEnum(name string, constants ...Constant) *TypeInfo {
	t := &TypeInfo{name: name, enum: true, fields: make(map[string]*fieldInfo, len(constants))}
	for _, c := range constants {
		t.fields[c.Name] = &fieldInfo{
			owner:     name,
			name:      c.Name,
			value:     c.Value,
			enumConst: true,
			exported:  c.Exported,
		}
	}

	r.mu.Lock()
	r.types[name] = t
	r.mu.Unlock()

	r.logger.Debug("registered enum",
		zap.String("type", name),
		zap.Int("constants", len(constants)))
	return t
}

// AddClass registers a plain (non-enum) class type
func (r *Registry) AddClass(name string) *TypeInfo {
	t := &TypeInfo{name: name, fields: make(map[string]*fieldInfo)}

	r.mu.Lock()
	r.types[name] = t
	r.mu.Unlock()

	r.logger.Debug("registered class", zap.String("type", name))
	return t
}

// ResolveType implements annotation.Resolver
func (r *Registry) ResolveType(name string) (annotation.Type, error) {
	r.mu.RLock()
	t, ok := r.types[name]
	r.mu.RUnlock()

	if !ok {
		r.logger.Debug("type not found", zap.String("type", name))
		return nil, errors.TypeNotFound(name)
	}
	return t, nil
}

// InstantiateSignature implements annotation.Resolver. Primitive and array
// signatures yield synthetic builtin types; class base types must be
// registered.
func (r *Registry) InstantiateSignature(sig *descriptor.TypeSignature) (annotation.Type, error) {
	if sig == nil {
		return nil, errors.InvalidData(errors.PhaseResolve, nil, "nil type signature")
	}

	if sig.IsPrimitive() {
		return &TypeInfo{name: sig.String()}, nil
	}

	r.mu.RLock()
	t, ok := r.types[sig.ClassName()]
	r.mu.RUnlock()

	if !ok {
		r.logger.Debug("signature base type not found", zap.String("type", sig.ClassName()))
		return nil, errors.TypeNotFound(sig.ClassName())
	}
	if sig.Dims() == 0 {
		return t, nil
	}
	return &TypeInfo{name: sig.String()}, nil
}

// TypeInfo is registered type metadata implementing annotation.Type
type TypeInfo struct {
	fields map[string]*fieldInfo
	name   string
	enum   bool
}

// Name implements annotation.Type
func (t *TypeInfo) Name() string { return t.name }

// IsEnum implements annotation.Type
func (t *TypeInfo) IsEnum() bool { return t.enum }

// DeclaredField implements annotation.Type
func (t *TypeInfo) DeclaredField(name string) (annotation.Field, bool) {
	f, ok := t.fields[name]
	if !ok {
		return nil, false
	}
	return f, true
}

// AddStaticField declares a plain static field on the type. Used alongside
// enum constants to model types that mix both.
func (t *TypeInfo) AddStaticField(name string, value any, exported bool) *TypeInfo {
	t.fields[name] = &fieldInfo{
		owner:    t.name,
		name:     name,
		value:    value,
		exported: exported,
	}
	return t
}

type fieldInfo struct {
	value     any
	owner     string
	name      string
	enumConst bool
	exported  bool
}

func (f *fieldInfo) Name() string { return f.name }

func (f *fieldInfo) IsEnumConstant() bool { return f.enumConst }

func (f *fieldInfo) Get() (any, error) {
	if !f.exported {
		return nil, errors.AccessDenied(f.owner, f.name)
	}
	return f.value, nil
}
