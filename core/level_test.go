package core

import "testing"

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		want  Level
		known bool
	}{
		{"trace", TraceLevel, true},
		{"debug", DebugLevel, true},
		{"log", InfoLevel, true},
		{"info", InfoLevel, true},
		{"warn", WarnLevel, true},
		{"error", ErrorLevel, true},
		{"fatal", FatalLevel, true},
		{"file", FileLevel, true},
		{" INFO ", InfoLevel, true},
		{"verbose", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseLevel(tt.name)
		if ok != tt.known {
			t.Errorf("ParseLevel(%q) known = %v, want %v", tt.name, ok, tt.known)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLevelLabel(t *testing.T) {
	if got := ErrorLevel.Label(); got != "ERROR" {
		t.Errorf("ErrorLevel.Label() = %q, want ERROR", got)
	}
	if got := FileLevel.Label(); got != "" {
		t.Errorf("FileLevel.Label() = %q, want empty", got)
	}
}

func TestParseLevelSpec_All(t *testing.T) {
	set := ParseLevelSpec("*")
	for _, l := range []Level{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel, FileLevel} {
		if !set.Has(l) {
			t.Errorf("spec * is missing level %v", l)
		}
	}
}

func TestParseLevelSpec_Inclusion(t *testing.T) {
	set := ParseLevelSpec("warn,error,fatal")
	if got := set.Levels(); len(got) != 3 {
		t.Fatalf("expected 3 levels, got %v", got)
	}
	if !set.Has(WarnLevel) || !set.Has(ErrorLevel) || !set.Has(FatalLevel) {
		t.Errorf("inclusion list resolved to wrong set: %v", set.Levels())
	}
}

func TestParseLevelSpec_Exclusion(t *testing.T) {
	// Both info slots collapse, so the 7-level universe minus the four
	// excluded levels leaves exactly {debug, info, file}.
	set := ParseLevelSpec("!warn,error,fatal,trace")
	want := []Level{DebugLevel, InfoLevel, FileLevel}
	got := set.Levels()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestParseLevelSpec_DuplicateInfoSlot(t *testing.T) {
	set := ParseLevelSpec("log,info")
	if got := set.Levels(); len(got) != 1 || got[0] != InfoLevel {
		t.Errorf("log,info should collapse to {info}, got %v", got)
	}
}

func TestParseLevelSpec_UnknownNamesIgnored(t *testing.T) {
	set := ParseLevelSpec("info,bogus,warn")
	if got := set.Levels(); len(got) != 2 {
		t.Errorf("unknown names should be ignored, got %v", got)
	}
}

func TestLevelSetAddRemove(t *testing.T) {
	var set LevelSet
	if !set.Empty() {
		t.Fatal("zero LevelSet should be empty")
	}
	set = set.Add(DebugLevel).Add(ErrorLevel)
	if !set.Has(DebugLevel) || !set.Has(ErrorLevel) || set.Has(InfoLevel) {
		t.Errorf("unexpected membership: %v", set.Levels())
	}
	set = set.Remove(DebugLevel)
	if set.Has(DebugLevel) {
		t.Error("Remove did not clear the level")
	}
}

func TestCurrentIdentity(t *testing.T) {
	id := CurrentIdentity()
	if id.PID <= 0 {
		t.Errorf("PID = %d, want positive", id.PID)
	}
	if id.Hostname == "" {
		t.Error("Hostname is empty")
	}
	if id.EOL != "\n" && id.EOL != "\r\n" {
		t.Errorf("EOL = %q", id.EOL)
	}
	if id.PIDString() == "" {
		t.Error("PIDString is empty")
	}
}
