package staff

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
)

const (
	DefaultEmployeeRaise  = 1.04
	DefaultDeveloperRaise = 1.10
	DefaultEmailDomain    = "email.com"
)

// Registry holds the state shared by every entity built from it: the head
// count, the raise default per kind, and where notifications go.
type Registry struct {
	mu     sync.Mutex
	count  int
	raise  map[Kind]float64
	domain string
	out    io.Writer
	log    *zap.Logger
}

type Option func(*Registry)

func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// WithOutput sets the writer for "Name Deleted!" and report listings.
func WithOutput(w io.Writer) Option {
	return func(r *Registry) {
		if w != nil {
			r.out = w
		}
	}
}

func WithEmailDomain(domain string) Option {
	return func(r *Registry) {
		if domain != "" {
			r.domain = domain
		}
	}
}

// WithRaise sets the default for kind. Zero removes a developer or
// manager default so the kind falls back to the employee one.
func WithRaise(kind Kind, amount float64) Option {
	return func(r *Registry) {
		if amount == 0 && kind != KindEmployee {
			delete(r.raise, kind)
			return
		}
		if amount > 0 {
			r.raise[kind] = amount
		}
	}
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		raise: map[Kind]float64{
			KindEmployee:  DefaultEmployeeRaise,
			KindDeveloper: DefaultDeveloperRaise,
		},
		domain: DefaultEmailDomain,
		out:    os.Stdout,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide registry.
func Default() *Registry {
	defaultOnce.Do(func() { defaultReg = NewRegistry() })
	return defaultReg
}

func orDefault(r *Registry) *Registry {
	if r == nil {
		return Default()
	}
	return r
}

// Count is the number of entities constructed so far. It never goes down.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// RaiseAmount resolves the default for kind, falling back to the employee
// default when kind has none of its own.
func (r *Registry) RaiseAmount(kind Kind) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.raise[kind]; ok {
		return v
	}
	return r.raise[KindEmployee]
}

// SetRaiseAmount changes the default for kind. Instances with their own
// override are unaffected.
func (r *Registry) SetRaiseAmount(kind Kind, amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRaise, amount)
	}
	r.mu.Lock()
	r.raise[kind] = amount
	r.mu.Unlock()
	r.log.Info("raise default changed", zap.Stringer("kind", kind), zap.Float64("amount", amount))
	return nil
}

func (r *Registry) EmailDomain() string { return r.domain }

func (r *Registry) Output() io.Writer { return r.out }

func (r *Registry) Logger() *zap.Logger { return r.log }

func (r *Registry) register(kind Kind) {
	r.mu.Lock()
	r.count++
	n := r.count
	r.mu.Unlock()
	r.log.Debug("employee registered", zap.Stringer("kind", kind), zap.Int("count", n))
}
