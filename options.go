package atomset

// Option customizes a Set under construction.
type Option interface{ apply(set *Set) }

// WithLogf installs a printf-style function that traces every atom added to
// the Set.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithCapacity sizes the Set up front to hold n atoms beyond any common ones
// without growing.
func WithCapacity(n int) Option { return capacityOption(n) }

type withLogfn func(mess string, args ...interface{})
type capacityOption int
type options []Option

func (logfn withLogfn) apply(set *Set) { set.logfn = logfn }

func (n capacityOption) apply(set *Set) {
	if n > 0 {
		set.capacity = int(n)
	}
}

func (opts options) apply(set *Set) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(set)
		}
	}
}
