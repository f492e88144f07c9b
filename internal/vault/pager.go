// Package vault holds the pagination state behind the photo grid.
//
// A Pager owns the accumulated photo list, the next page cursor and the
// loading/error flags. It has no UI dependency: screens feed it transitions
// and read snapshots back.
package vault

import "github.com/mmcdole/photovault/internal/domain"

// FirstPage is the cursor a fresh Pager starts from
const FirstPage = 1

// Phase is the coarse state of the pager
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseFailure
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Display selects which full-screen view the vault should render
type Display int

const (
	DisplayGrid Display = iota
	DisplayLoading
	DisplayFailed
)

// State is a point-in-time copy of the pager
type State struct {
	Photos   []domain.Photo
	NextPage int
	Loading  bool
	Error    bool
}

// Pager is the pagination state machine.
// Photos only grow; duplicates from overlapping pages are kept.
type Pager struct {
	photos   []domain.Photo
	nextPage int
	loading  bool
	err      bool
	phase    Phase
}

// New creates a pager in its initial state
func New() *Pager {
	return &Pager{
		nextPage: FirstPage,
		phase:    PhaseIdle,
	}
}

// StartLoading marks a fetch as outstanding. Photos and the error flag are untouched.
func (p *Pager) StartLoading() {
	p.loading = true
	p.phase = PhaseLoading
}

// FetchSucceeded appends records and advances the cursor past pageFetched
func (p *Pager) FetchSucceeded(records []domain.Photo, pageFetched int) {
	p.photos = append(p.photos, records...)
	p.nextPage = pageFetched + 1
	p.loading = false
	p.err = false
	p.phase = PhaseSuccess
}

// FetchFailed clears loading and sets the sticky error flag
func (p *Pager) FetchFailed() {
	p.loading = false
	p.err = true
	p.phase = PhaseFailure
}

// FetchNext begins a fetch for the next page.
// It returns ok=false while another fetch is still outstanding, so a
// repeated end-reached signal cannot start a second request.
func (p *Pager) FetchNext() (page int, ok bool) {
	if p.loading {
		return 0, false
	}
	p.StartLoading()
	return p.nextPage, true
}

// Photos returns the accumulated list. Callers must not modify it.
func (p *Pager) Photos() []domain.Photo {
	return p.photos
}

// Len returns the number of accumulated photos
func (p *Pager) Len() int {
	return len(p.photos)
}

// NextPage returns the page cursor
func (p *Pager) NextPage() int {
	return p.nextPage
}

// Loading reports whether a fetch is outstanding
func (p *Pager) Loading() bool {
	return p.loading
}

// Failed reports whether the last settled fetch failed
func (p *Pager) Failed() bool {
	return p.err
}

// Phase returns the current phase
func (p *Pager) Phase() Phase {
	return p.phase
}

// Display applies the presentation policy. Once any photo has loaded the
// grid is always shown, so failures past the first page stay invisible.
func (p *Pager) Display() Display {
	if len(p.photos) > 0 {
		return DisplayGrid
	}
	if p.loading {
		return DisplayLoading
	}
	if p.err {
		return DisplayFailed
	}
	return DisplayGrid
}

// Snapshot returns a copy of the current state
func (p *Pager) Snapshot() State {
	photos := make([]domain.Photo, len(p.photos))
	copy(photos, p.photos)
	return State{
		Photos:   photos,
		NextPage: p.nextPage,
		Loading:  p.loading,
		Error:    p.err,
	}
}
