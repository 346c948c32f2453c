package raw

import "testing"

func TestGet(t *testing.T) {
	t.Setenv("TESTRAW_NAME", "  value  ")
	c := New().Prefix("TESTRAW_")
	if got := c.Get("NAME", "def"); got != "value" {
		t.Fatalf("Get = %q, want trimmed value", got)
	}
	if got := c.Get("MISSING", "def"); got != "def" {
		t.Fatalf("Get missing = %q, want def", got)
	}
}

func TestGetBool(t *testing.T) {
	cases := []struct {
		val  string
		want bool
	}{
		{"1", true}, {"true", true}, {"yes", true}, {"TRUE", true},
		{"0", false}, {"no", false}, {"banana", false},
	}
	for _, c := range cases {
		t.Setenv("TESTRAW_FLAG", c.val)
		if got := New().Prefix("TESTRAW_").GetBool("FLAG", false); got != c.want {
			t.Fatalf("GetBool(%q) = %v, want %v", c.val, got, c.want)
		}
	}
	if !New().GetBool("TESTRAW_ABSENT", true) {
		t.Fatalf("GetBool default not honored")
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("TESTRAW_N", "42")
	if got := New().Prefix("TESTRAW_").GetInt("N", 7); got != 42 {
		t.Fatalf("GetInt = %d, want 42", got)
	}
	t.Setenv("TESTRAW_N", "4x2")
	if got := New().Prefix("TESTRAW_").GetInt("N", 7); got != 7 {
		t.Fatalf("GetInt non-numeric = %d, want default", got)
	}
	if got := New().GetInt("TESTRAW_ABSENT", 7); got != 7 {
		t.Fatalf("GetInt missing = %d, want default", got)
	}
}
