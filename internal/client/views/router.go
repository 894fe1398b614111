// Package views models the tab-based navigation of the client: exactly one
// tab is active at a time, and the generator tabs are gated behind an
// authenticated session.
package views

// Tab identifies one navigable panel.
type Tab string

const (
	TabLogin    Tab = "login"
	TabRegister Tab = "register"
	TabBlog     Tab = "blog"
	TabVideo    Tab = "video"
	TabImage    Tab = "image"
	TabAdmin    Tab = "admin"
)

// Session is the read-only slice of session state the router consults.
type Session interface {
	IsAuthenticated() bool
	IsAdmin() bool
}

// Router switches tabs and owns the visibility of the persistent login
// affordance. It never mutates session state.
type Router struct {
	session Session
	notify  func(msg string)

	active Tab
}

// NewRouter starts on the login tab. notify receives the user-facing message
// when a navigation is redirected.
func NewRouter(session Session, notify func(msg string)) *Router {
	if notify == nil {
		notify = func(string) {}
	}
	return &Router{session: session, notify: notify, active: TabLogin}
}

// Active returns the currently visible tab.
func (r *Router) Active() Tab {
	return r.active
}

// Switch activates the requested tab, applying the gates:
//
//   - a generator tab while anonymous redirects to login with a notice;
//     the requested navigation never happens
//   - the admin tab requires the admin role
//
// The resulting active tab is returned.
func (r *Router) Switch(tab Tab) Tab {
	switch tab {
	case TabBlog, TabVideo, TabImage:
		if !r.session.IsAuthenticated() {
			r.notify("Please login to generate content")
			r.active = TabLogin
			return r.active
		}
	case TabAdmin:
		if !r.session.IsAuthenticated() {
			r.notify("Please login")
			r.active = TabLogin
			return r.active
		}
		if !r.session.IsAdmin() {
			r.notify("Access denied: admin privileges required")
			return r.active
		}
	}

	r.active = tab
	return r.active
}

// LoginVisible reports whether the persistent login affordance should be
// shown: only while anonymous, and never while an auth panel is already
// open (to avoid duplicate entry points).
func (r *Router) LoginVisible() bool {
	if r.session.IsAuthenticated() {
		return false
	}
	return r.active != TabLogin && r.active != TabRegister
}

// Tabs lists the tabs currently offered; the admin link appears only for
// admin users.
func (r *Router) Tabs() []Tab {
	tabs := []Tab{TabLogin, TabRegister, TabBlog, TabVideo, TabImage}
	if r.session.IsAuthenticated() && r.session.IsAdmin() {
		tabs = append(tabs, TabAdmin)
	}
	return tabs
}
