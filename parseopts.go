package mathexpr

// Option is an option for parsing and compiling formulas.
type Option interface {
	option(config) config
}

type (
	paramsopt  []string
	modulesopt []Module
	backendopt struct {
		b Backend
	}
)

// config holds the settings for one formula.
type config struct {
	// params is the ordered list of parameter names.
	params []string
	// mods is the list of modules searched for constants and functions.
	mods []Module
	// backend compiles parsed formulas.
	backend Backend
}

// Params declares parameters of the formula, in order. Compiled functions take
// their arguments in the order of all declared parameters. Names are matched
// case-insensitively and must be distinct.
func Params(names ...string) Option {
	return paramsopt(names)
}

func (o paramsopt) option(c config) config {
	// Always make a copy.
	c.params = append(append([]string(nil), c.params...), o...)
	return c
}

// Modules adds modules to search for constants and functions. Modules given
// earlier are searched first. No name in any module may equal a parameter
// name.
func Modules(mods ...Module) Option {
	return modulesopt(mods)
}

func (o modulesopt) option(c config) config {
	c.mods = append(append([]Module(nil), c.mods...), o...)
	return c
}

// WithMath is shorthand for Modules(Math()).
func WithMath() Option {
	return modulesopt{mathModule}
}

// WithBackend sets the backend used to compile formulas. The default is
// Interpreter.
func WithBackend(b Backend) Option {
	return &backendopt{b}
}

func (o *backendopt) option(c config) config {
	c.backend = o.b
	return c
}

// Preset combines options into one, which is convenient when many formulas
// share a configuration. Options applied after a preset add to it.
func Preset(opts ...Option) Option {
	c := newConfig(opts)
	return &c
}

func (o *config) option(c config) config {
	c = paramsopt(o.params).option(c)
	c = modulesopt(o.mods).option(c)
	if o.backend != nil {
		c.backend = o.backend
	}
	return c
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		c = opt.option(c)
	}
	return c
}
