package navigation

// DrawerState is the open state of the mobile navigation drawer.
type DrawerState int

const (
	DrawerClosed DrawerState = iota
	DrawerOpen
)

// DrawerInput is a user interaction with the drawer.
type DrawerInput int

const (
	MenuTap DrawerInput = iota
	DestinationTap
	CloseTap
	OutsideTap
)

// Next returns the drawer state after in.
func (d DrawerState) Next(in DrawerInput) DrawerState {
	if in == MenuTap {
		return DrawerOpen
	}
	return DrawerClosed
}

// Open reports whether the drawer is open.
func (d DrawerState) Open() bool { return d == DrawerOpen }
