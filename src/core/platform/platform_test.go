package platform

import "testing"

func TestFamily(t *testing.T) {
	cases := map[Platform]Platform{
		Win10:   Windows,
		Win11:   Windows,
		Linux:   Unix,
		Windows: "",
		Unix:    "",
		Mac:     "",
		Any:     "",
	}
	for p, want := range cases {
		if got := p.Family(); got != want {
			t.Errorf("Family(%s) = %q, want %q", p, got, want)
		}
	}
}

func TestIs(t *testing.T) {
	if !Win10.Is(Windows) {
		t.Error("Expected WIN10 to belong to the WINDOWS family")
	}
	if !Win10.Is(Win10) {
		t.Error("Expected WIN10 to match itself")
	}
	if Linux.Is(Windows) {
		t.Error("Expected LINUX not to belong to the WINDOWS family")
	}
	if !Linux.Is(Unix) {
		t.Error("Expected LINUX to belong to the UNIX family")
	}
}

func TestFromString(t *testing.T) {
	cases := []struct {
		in   string
		want Platform
		ok   bool
	}{
		{"WIN10", Win10, true},
		{"windows 10", Win10, true},
		{"linux", Linux, true},
		{"darwin", Mac, true},
		{"macos", Mac, true},
		{"any", Any, true},
		{"*", Any, true},
		{"  WINDOWS  ", Windows, true},
		{"", "", false},
		{"solaris", "", false},
	}
	for _, c := range cases {
		got, ok := FromString(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("FromString(%q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestCurrentIsKnown(t *testing.T) {
	cur := Current()
	if cur == "" || cur == Any {
		t.Errorf("Current() = %q, expected a concrete platform", cur)
	}
}
