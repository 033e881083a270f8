package console

// Tab identifies one of the console's mutually exclusive views.
type Tab int

const (
	TabNarratives Tab = iota
	TabDreams
	TabCreate
)

// AllTabs lists the tabs in display order.
var AllTabs = []Tab{TabNarratives, TabDreams, TabCreate}

// String returns the tab's display label.
func (t Tab) String() string {
	switch t {
	case TabNarratives:
		return "Narratives"
	case TabDreams:
		return "Dreams"
	case TabCreate:
		return "Create"
	}
	return "Unknown"
}

// Navigator tracks which view is active. It is pure and synchronous:
// transitions have no guards and no side effects, and all calls happen
// on the single UI control thread.
type Navigator struct {
	active Tab
}

// NewNavigator returns a navigator with the Narratives tab active.
func NewNavigator() *Navigator {
	return &Navigator{active: TabNarratives}
}

// Active returns the currently active tab.
func (n *Navigator) Active() Tab {
	return n.active
}

// SelectTab unconditionally activates the given tab.
func (n *Navigator) SelectTab(tab Tab) {
	n.active = tab
}

// NextTab activates the tab after the current one, wrapping around.
func (n *Navigator) NextTab() {
	n.active = AllTabs[(int(n.active)+1)%len(AllTabs)]
}
