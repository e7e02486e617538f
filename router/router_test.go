package router

import (
	"testing"

	"github.com/logtap/logtap/core"
)

func TestCompile_ResolvesLevelsAndFormats(t *testing.T) {
	table := Compile([]Target{
		{Levels: "warn,error", Sink: "error", Format: "%m"},
		{Levels: "*", Sink: "log"},
	}, "%L %m%E")

	rules := table.Rules()
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rules))
	}

	if !rules[0].Matches(core.WarnLevel) || rules[0].Matches(core.InfoLevel) {
		t.Errorf("rule 0 resolved to wrong set: %v", rules[0].Levels.Levels())
	}
	if rules[0].Format != "%m" {
		t.Errorf("rule 0 format = %q", rules[0].Format)
	}

	// Omitted format captures the default at compile time
	if rules[1].Format != "%L %m%E" {
		t.Errorf("rule 1 format = %q", rules[1].Format)
	}
	if !rules[1].Matches(core.FileLevel) {
		t.Error("rule 1 with spec * should match every level")
	}
}

func TestCompile_PreservesOrder(t *testing.T) {
	table := Compile([]Target{
		{Levels: "info", Sink: "third.log"},
		{Levels: "info", Sink: "first.log"},
		{Levels: "info", Sink: "log"},
	}, "%m")

	want := []string{"third.log", "first.log", "log"}
	for i, rule := range table.Rules() {
		if rule.Sink != want[i] {
			t.Errorf("rule %d sink = %q, want %q", i, rule.Sink, want[i])
		}
	}
}

func TestCompile_EmptyTargetsUseDefaults(t *testing.T) {
	table := Compile(nil, "%m")
	if table.Len() != 3 {
		t.Fatalf("expected 3 default rules, got %d", table.Len())
	}

	rules := table.Rules()

	// Rule 0: everything except warn/error/fatal/trace -> log stream
	if rules[0].Sink != "log" {
		t.Errorf("rule 0 sink = %q", rules[0].Sink)
	}
	for _, l := range []core.Level{core.DebugLevel, core.InfoLevel, core.FileLevel} {
		if !rules[0].Matches(l) {
			t.Errorf("default log rule should match %v", l)
		}
	}
	for _, l := range []core.Level{core.WarnLevel, core.ErrorLevel, core.FatalLevel, core.TraceLevel} {
		if rules[0].Matches(l) {
			t.Errorf("default log rule should not match %v", l)
		}
	}

	// Rule 1: warn/error/fatal -> error stream
	if rules[1].Sink != "error" || !rules[1].Matches(core.FatalLevel) || rules[1].Matches(core.InfoLevel) {
		t.Errorf("default error rule is wrong: %q %v", rules[1].Sink, rules[1].Levels.Levels())
	}

	// Rule 2: trace -> trace stream
	if rules[2].Sink != "trace" || !rules[2].Matches(core.TraceLevel) {
		t.Errorf("default trace rule is wrong: %q %v", rules[2].Sink, rules[2].Levels.Levels())
	}
}

func TestCompile_FanOutSameLevel(t *testing.T) {
	table := Compile([]Target{
		{Levels: "error", Sink: "error"},
		{Levels: "error,fatal", Sink: "errors.log"},
	}, "%m")

	matched := 0
	for _, rule := range table.Rules() {
		if rule.Matches(core.ErrorLevel) {
			matched++
		}
	}
	if matched != 2 {
		t.Errorf("expected both rules to match error, got %d", matched)
	}
}

func TestCompile_UnknownSinkKept(t *testing.T) {
	table := Compile([]Target{{Levels: "info", Sink: "out/%h-%p.log"}}, "%m")
	if got := table.Rules()[0].Sink; got != "out/%h-%p.log" {
		t.Errorf("sink descriptor altered at compile time: %q", got)
	}
}
