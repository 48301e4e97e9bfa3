// Package navigation models the UI's navigation state as an explicit,
// serializable value. The client holds one State at a time; there is no
// history stack and every transition is legal.
package navigation

// Page identifies one of the application views.
type Page string

const (
	PageHome    Page = "home"
	PageSearch  Page = "search"
	PageSchool  Page = "school"
	PageCompare Page = "compare"
)

// State is the complete navigation state: the current page plus the payload
// carried alongside the transition.
type State struct {
	Page        Page   `json:"page"`
	SchoolID    string `json:"school_id,omitempty"`
	SearchQuery string `json:"search_query,omitempty"`
}

// valid reports whether p names a known page.
func (p Page) valid() bool {
	switch p {
	case PageHome, PageSearch, PageSchool, PageCompare:
		return true
	}
	return false
}

// Resolve normalizes a proposed state: an unknown page falls back to home,
// and the school page without a selected id falls back to home. Payload
// fields irrelevant to the resolved page are dropped.
func Resolve(s State) State {
	if !s.Page.valid() {
		return State{Page: PageHome}
	}

	switch s.Page {
	case PageSchool:
		if s.SchoolID == "" {
			return State{Page: PageHome}
		}
		return State{Page: PageSchool, SchoolID: s.SchoolID}
	case PageSearch:
		return State{Page: PageSearch, SearchQuery: s.SearchQuery}
	default:
		return State{Page: s.Page}
	}
}
