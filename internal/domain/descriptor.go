package domain

// idJoin joins a suite name and a test name into a candidate id.
const idJoin = '_'

// Kind discriminates how a declared test executes.
type Kind int

// Available Kind values.
const (
	// KindPlain is a test with a bare body.
	KindPlain Kind = iota
	// KindFixture is a test whose body closes over per-run fixture state.
	KindFixture
	// KindCartesian is a test executed once per combination of its Space.
	KindCartesian
)

// String returns a short human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindFixture:
		return "fixture"
	case KindCartesian:
		return "cartesian"
	default:
		return "unknown"
	}
}

// Body is the runnable part of a plain or fixture test. Returning nil means
// the test passed; returning a *model.Failure reports a failed check; any
// other error (or a panic) is an unexpected failure.
type Body func() error

// CartesianBody is the runnable part of a cartesian test. It receives one
// selected value per axis and the ordinal of the current iteration.
type CartesianBody func(values []any, iteration int) error

// Descriptor is a declared test: static identity plus its runnable body.
// Exactly one of Body and CartesianBody is set, according to Kind; only
// KindCartesian descriptors hold a Space.
//
// Descriptors are created once at declaration time, owned by their Registry
// and never moved or destroyed before process exit.
type Descriptor struct {
	Suite string
	Name  string
	Kind  Kind

	Body          Body
	CartesianBody CartesianBody
	Space         *Space

	next *Descriptor
}

// BaseID returns the suite and test name joined by '_', without any
// combination suffix.
func (d *Descriptor) BaseID() string {
	return d.Suite + string(idJoin) + d.Name
}

// invoke runs the test body once, against the current combination for
// cartesian descriptors.
func (d *Descriptor) invoke() error {
	if d.Kind == KindCartesian {
		return d.CartesianBody(d.Space.Current(), d.Space.Iteration())
	}

	return d.Body()
}
