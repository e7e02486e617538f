package router

import "github.com/logtap/logtap/core"

// Target is the declarative form of a routing rule, as supplied in
// configuration: a level spec ("*", an inclusion list, or a !-prefixed
// exclusion list), a sink descriptor, and an optional format template.
type Target struct {
	Levels string `mapstructure:"levels"`
	Sink   string `mapstructure:"sink"`
	Format string `mapstructure:"format"`
}

// Rule is a compiled routing rule. Levels is always resolved to an
// explicit set and Format is always concrete: an omitted target format
// captures the default template at compile time, so later changes to
// the default never retroactively affect compiled rules.
type Rule struct {
	Levels core.LevelSet
	Sink   string
	Format string
}

// Matches reports whether the rule fires for the given level
func (r Rule) Matches(level core.Level) bool {
	return r.Levels.Has(level)
}

// Table is an ordered set of compiled rules. Order is evaluation
// order, preserved from configuration; all matching rules fire, so
// order determines fan-out sequence rather than precedence.
type Table struct {
	rules []Rule
}

// Compile resolves declarative targets into a Table. Sink descriptors
// are not validated here: a string that names no console stream is
// treated as a file-path template at dispatch time.
func Compile(targets []Target, defaultFormat string) Table {
	if len(targets) == 0 {
		targets = DefaultTargets()
	}

	rules := make([]Rule, 0, len(targets))
	for _, t := range targets {
		format := t.Format
		if format == "" {
			format = defaultFormat
		}
		rules = append(rules, Rule{
			Levels: core.ParseLevelSpec(t.Levels),
			Sink:   t.Sink,
			Format: format,
		})
	}

	return Table{rules: rules}
}

// Rules returns the compiled rules in evaluation order
func (t Table) Rules() []Rule {
	return t.rules
}

// Len returns the number of compiled rules
func (t Table) Len() int {
	return len(t.rules)
}

// DefaultTargets returns the routing used when the caller supplies
// none: everything except warn/error/fatal/trace to the console log
// stream, warn/error/fatal to the error stream, trace to the trace
// stream.
func DefaultTargets() []Target {
	return []Target{
		{Levels: "!warn,error,fatal,trace", Sink: "log"},
		{Levels: "warn,error,fatal", Sink: "error"},
		{Levels: "trace", Sink: "trace"},
	}
}
