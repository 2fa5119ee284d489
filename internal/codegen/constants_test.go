package codegen

import "testing"

func TestTableName(t *testing.T) {
	tests := []struct {
		name   string
		suffix string
		want   string
	}{
		{"AStarB", EdgesSuffix, "aStarBEdges"},
		{"Email", ClosuresSuffix, "emailClosures"},
		{"x", NumStatesSuffix, "xNumStates"},
	}

	for _, tt := range tests {
		got := TableName(tt.name, tt.suffix)
		if got != tt.want {
			t.Errorf("TableName(%q, %q) = %q, want %q", tt.name, tt.suffix, got, tt.want)
		}
	}
}

func TestCompiledName(t *testing.T) {
	if got := CompiledName("AStarB"); got != "CompiledAStarB" {
		t.Errorf("CompiledName(AStarB) = %q, want %q", got, "CompiledAStarB")
	}
}

func TestTestFuncName(t *testing.T) {
	if got := TestFuncName("aOrB", "MatchString"); got != "TestAOrBMatchString" {
		t.Errorf("TestFuncName(aOrB, MatchString) = %q", got)
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"A", true},
		{"a1", true},
		{"_x", true},
		{"1a", false},
		{"a-b", false},
		{"Größe", true},
	}

	for _, tt := range tests {
		got := IsIdentifier(tt.input)
		if got != tt.want {
			t.Errorf("IsIdentifier(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsReserved(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"func", true},
		{"type", true},
		{"bool", true},
		{"string", true},
		{"nil", true},
		{"len", true},
		{"any", true},
		{"testing", true},
		{"AStarB", false},
		{"String", false},
		{"matcher", false},
	}

	for _, tt := range tests {
		got := IsReserved(tt.input)
		if got != tt.want {
			t.Errorf("IsReserved(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestTestFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"out/matcher.go", "out/matcher_test.go"},
		{"matcher", "matcher_test.go"},
	}

	for _, tt := range tests {
		got := TestFileName(tt.input)
		if got != tt.want {
			t.Errorf("TestFileName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLowerFirst(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"A", "a"},
		{"ABC", "aBC"},
		{"Hello", "hello"},
		{"hello", "hello"},
	}

	for _, tt := range tests {
		got := LowerFirst(tt.input)
		if got != tt.want {
			t.Errorf("LowerFirst(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestUpperFirst(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"a", "A"},
		{"abc", "Abc"},
		{"Hello", "Hello"},
	}

	for _, tt := range tests {
		got := UpperFirst(tt.input)
		if got != tt.want {
			t.Errorf("UpperFirst(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
