package design

import "testing"

func TestForName(t *testing.T) {
	for _, name := range []string{"default", "blue", "light", "dracula", "gruvbox"} {
		if got := ForName(name); got.Name != name {
			t.Errorf("ForName(%q) resolved to %q", name, got.Name)
		}
	}

	if got := ForName(""); got.Name != "default" {
		t.Errorf("expected empty name to resolve to default, got %q", got.Name)
	}
	if got := ForName("no-such-theme"); got.Name != "default" {
		t.Errorf("expected unknown names to fall back to default, got %q", got.Name)
	}
}

func TestNamedThemesDiffer(t *testing.T) {
	if Dracula().Primary == Default().Primary {
		t.Error("expected dracula to carry its own palette")
	}
	if Gruvbox().Highlight == Blue().Highlight {
		t.Error("expected gruvbox and blue to differ")
	}
}

func TestStatusBarKinds(t *testing.T) {
	th := Default()
	kinds := []StatusKind{StatusNeutral, StatusInfo, StatusSuccess, StatusWarning, StatusError}

	for _, k := range kinds {
		// Each kind renders without panicking and yields a usable style.
		if out := th.StatusBar(k).Render("msg"); out == "" {
			t.Errorf("expected non-empty render for kind %d", k)
		}
	}
}
