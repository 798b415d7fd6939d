package if97

// Units selects the unit system a Table reports properties in. The choice
// is fixed at construction time and is never read from process-global
// state (spec.md §9 design note). Only Table.Properties reads it; the
// other Table methods take and return industrial units (K, MPa, kJ/kg,
// kJ/(kg*K)) whatever this is set to.
type Units int

const (
	// Industrial is {MPa, kJ/kg, kJ/(kg*K)} — the IAPWS-IF97 native units
	// and the default.
	Industrial Units = iota
	// SI is strict {Pa, J/kg, J/(kg*K)}.
	SI
)

// Options configures a Table. Build it with New(opts...); there is no
// mutable global equivalent.
type Options struct {
	units      Units
	refine     bool
	cache      bool
	cacheSize  int
}

// Option mutates Options during construction.
type Option func(*Options)

// WithUnits selects the unit system. Default: Industrial.
func WithUnits(u Units) Option {
	return func(o *Options) { o.units = u }
}

// WithRegion3Refinement records whether the region 3 density should be
// Newton-refined (spec.md §4.6). Default: enabled. The setting does not
// change results: Table.Properties always solves region 3 density by
// Newton iteration (region3.DensityFromTP), with or without it.
func WithRegion3Refinement(enabled bool) Option {
	return func(o *Options) { o.refine = enabled }
}

// WithMemoization enables an in-process, size-bounded TTL cache in front
// of Properties, keyed on the exact (T,p) bit pattern; when full, the
// oldest inserted entry is evicted. Off by default:
// spec.md does not mandate caching, and most callers sweep a continuous
// range of operating points where a cache would never hit.
func WithMemoization(enabled bool, maxEntries int) Option {
	return func(o *Options) {
		o.cache = enabled
		o.cacheSize = maxEntries
	}
}

func defaultOptions() Options {
	return Options{units: Industrial, refine: true, cache: false, cacheSize: 1024}
}

func newOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
