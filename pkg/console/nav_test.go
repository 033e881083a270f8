package console

import "testing"

func TestNavigatorStartsOnNarratives(t *testing.T) {
	nav := NewNavigator()
	if got := nav.Active(); got != TabNarratives {
		t.Errorf("initial tab = %v", got)
	}
}

func TestSelectTabAlwaysSucceeds(t *testing.T) {
	nav := NewNavigator()

	nav.SelectTab(TabCreate)
	if got := nav.Active(); got != TabCreate {
		t.Errorf("after SelectTab(Create): %v", got)
	}

	// Re-selecting the active tab is a permitted no-op.
	nav.SelectTab(TabCreate)
	if got := nav.Active(); got != TabCreate {
		t.Errorf("after re-select: %v", got)
	}

	nav.SelectTab(TabDreams)
	if got := nav.Active(); got != TabDreams {
		t.Errorf("after SelectTab(Dreams): %v", got)
	}
}

func TestNextTabWrapsAround(t *testing.T) {
	nav := NewNavigator()
	want := []Tab{TabDreams, TabCreate, TabNarratives, TabDreams}
	for i, w := range want {
		nav.NextTab()
		if got := nav.Active(); got != w {
			t.Fatalf("step %d: tab = %v, want %v", i, got, w)
		}
	}
}

func TestTabString(t *testing.T) {
	names := map[Tab]string{
		TabNarratives: "Narratives",
		TabDreams:     "Dreams",
		TabCreate:     "Create",
	}
	for tab, want := range names {
		if got := tab.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", tab, got, want)
		}
	}
}
