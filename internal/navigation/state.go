package navigation

import "time"

// EntranceDelay is how long after the first render the entrance transition fires.
const EntranceDelay = 400 * time.Millisecond

// State is one visitor's position in the public site. It is kept in the
// visitor's session and changed only through its methods.
type State struct {
	ScrollOffset int
	ActiveScreen Screen
	Drawer       DrawerState
	MountedAt    time.Time
	Entered      bool
	Mobile       bool
}

// Navigate scrolls to screen. It returns false and leaves the state unchanged
// when screen is not part of layout.
func (s *State) Navigate(layout Layout, screen Screen) bool {
	offset, ok := layout.OffsetFor(screen)
	if !ok {
		return false
	}
	s.ScrollOffset = offset
	s.ActiveScreen = screen
	return true
}

// Tap applies a drawer interaction. A destination tap also navigates to dest.
func (s *State) Tap(in DrawerInput, layout Layout, dest Screen) {
	s.Drawer = s.Drawer.Next(in)
	if in == DestinationTap {
		s.Navigate(layout, dest)
	}
}

// OpenDrawer opens the navigation drawer.
func (s *State) OpenDrawer() { s.Tap(MenuTap, Layout{}, ScreenNone) }

// CloseDrawer closes the navigation drawer without navigating.
func (s *State) CloseDrawer() { s.Tap(CloseTap, Layout{}, ScreenNone) }

// SetMobile records whether the visitor uses a mobile device.
func (s *State) SetMobile(mobile bool) { s.Mobile = mobile }

// Mount records the first render. Later calls have no effect.
func (s *State) Mount(now time.Time) {
	if s.MountedAt.IsZero() {
		s.MountedAt = now
	}
}

// Enter fires the one-way entrance transition once EntranceDelay has passed since mount.
func (s *State) Enter(now time.Time) {
	if s.Entered || s.MountedAt.IsZero() {
		return
	}
	if now.Sub(s.MountedAt) >= EntranceDelay {
		s.Entered = true
	}
}

// Reconcile clamps the state to layout after the site's pages changed.
func (s *State) Reconcile(layout Layout) {
	if layout.ScreenAt(s.ScrollOffset) != s.ActiveScreen || s.ActiveScreen == ScreenNone {
		s.ScrollOffset = 0
		s.ActiveScreen = ScreenHome
	}
}

// ShowLinkBar reports whether the floating link bar is visible.
func (s State) ShowLinkBar() bool {
	return s.ScrollOffset != 0 && !s.Mobile
}
