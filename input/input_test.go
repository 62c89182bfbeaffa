package input

import "testing"

func TestGetString(t *testing.T) {
	m := map[string]any{
		"str":   "value",
		"int":   8080,
		"float": 2.5,
		"bool":  true,
		"nil":   nil,
		"other": []string{"x"},
	}

	tests := []struct {
		name string
		key  string
		want string
	}{
		{name: "string passthrough", key: "str", want: "value"},
		{name: "int formatted", key: "int", want: "8080"},
		{name: "float formatted", key: "float", want: "2.5"},
		{name: "bool formatted", key: "bool", want: "true"},
		{name: "nil falls back", key: "nil", want: "default"},
		{name: "missing falls back", key: "missing", want: "default"},
		{name: "unsupported type falls back", key: "other", want: "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetString(m, tt.key, "default"); got != tt.want {
				t.Errorf("GetString(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}

	if got := GetString(nil, "any", "default"); got != "default" {
		t.Errorf("nil map: got %q", got)
	}
}

func TestGetInt(t *testing.T) {
	m := map[string]any{
		"int":     40,
		"int64":   int64(41),
		"float":   42.9,
		"numeric": "43",
		"bad":     "forty",
	}

	tests := []struct {
		key  string
		want int
	}{
		{key: "int", want: 40},
		{key: "int64", want: 41},
		{key: "float", want: 42},
		{key: "numeric", want: 43},
		{key: "bad", want: -1},
		{key: "missing", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := GetInt(m, tt.key, -1); got != tt.want {
				t.Errorf("GetInt(%q) = %d, want %d", tt.key, got, tt.want)
			}
		})
	}
}

func TestGetFloat(t *testing.T) {
	m := map[string]any{
		"float":   1.5,
		"int":     2,
		"numeric": "3.25",
	}

	if got := GetFloat(m, "float", 0); got != 1.5 {
		t.Errorf("float: got %v", got)
	}
	if got := GetFloat(m, "int", 0); got != 2.0 {
		t.Errorf("int: got %v", got)
	}
	if got := GetFloat(m, "numeric", 0); got != 3.25 {
		t.Errorf("numeric: got %v", got)
	}
	if got := GetFloat(m, "missing", 9.9); got != 9.9 {
		t.Errorf("missing: got %v", got)
	}
}

func TestGetBool(t *testing.T) {
	m := map[string]any{
		"bool":    true,
		"numeric": "1",
		"word":    "false",
		"bad":     "yes",
	}

	if got := GetBool(m, "bool", false); !got {
		t.Error("bool: got false")
	}
	if got := GetBool(m, "numeric", false); !got {
		t.Error("numeric: got false")
	}
	if got := GetBool(m, "word", true); got {
		t.Error("word: got true")
	}
	if got := GetBool(m, "bad", true); !got {
		t.Error("bad value should fall back to default")
	}
	if got := GetBool(nil, "any", true); !got {
		t.Error("nil map should fall back to default")
	}
}
