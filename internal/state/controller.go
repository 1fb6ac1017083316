// Package state owns the dashboard's transient UI state: search text,
// theme, sort order, day filter, the open menu and the contact modal.
//
// A Controller is driven from a single event loop and is not safe for
// concurrent use.
package state

import (
	"errors"
	"log/slog"
	"time"

	"github.com/jh3/class-schedule/internal/schedule"
	"github.com/jh3/class-schedule/internal/session"
)

var (
	ErrUnknownTheme = errors.New("unknown theme")
	ErrUnknownSort  = errors.New("unknown sort option")
)

// Modal is the open contact modal.
type Modal struct {
	Session session.Session
	Contact session.Contact
	gen     uint64
}

// Snapshot is a read-only copy of the controller state.
type Snapshot struct {
	SearchQuery string
	Theme       Theme
	Sort        schedule.SortOption
	Days        session.DaySet
	OpenMenu    Menu
	Modal       *Modal
	Feedback    CopyKind
}

// ModalOpen reports whether the contact modal is showing.
func (s Snapshot) ModalOpen() bool {
	return s.Modal != nil
}

// Controller holds the live UI state and its transition rules.
type Controller struct {
	searchQuery string
	theme       Theme
	sortOption  schedule.SortOption
	days        session.DaySet
	openMenu    Menu

	modal         *Modal
	modalGen      uint64
	feedback      CopyKind
	feedbackDelay time.Duration
	resets        resetScheduler
}

// Option adjusts a new controller's starting state.
type Option func(*Controller)

// WithTheme starts with theme t. Invalid themes are ignored.
func WithTheme(t Theme) Option {
	return func(c *Controller) {
		if t.Valid() {
			c.theme = t
		}
	}
}

// WithSort starts with sort option o. Invalid options are ignored.
func WithSort(o schedule.SortOption) Option {
	return func(c *Controller) {
		if o.Valid() {
			c.sortOption = o
		}
	}
}

// WithDays starts with the given day selection.
func WithDays(days session.DaySet) Option {
	return func(c *Controller) {
		c.days = days
	}
}

// WithSearch starts with a search query.
func WithSearch(q string) Option {
	return func(c *Controller) {
		c.searchQuery = q
	}
}

// WithFeedbackDelay overrides how long copy feedback stays up.
func WithFeedbackDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.feedbackDelay = d
		}
	}
}

// New returns a controller in its default state: empty search, nebula
// theme, time sort, every day selected, nothing open.
func New(opts ...Option) *Controller {
	c := &Controller{
		theme:         DefaultTheme,
		sortOption:    schedule.SortTime,
		days:          session.AllDays(),
		feedbackDelay: FeedbackDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Snapshot copies out the current state.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		SearchQuery: c.searchQuery,
		Theme:       c.theme,
		Sort:        c.sortOption,
		Days:        c.days,
		OpenMenu:    c.openMenu,
		Feedback:    c.feedback,
	}
	if c.modal != nil {
		m := *c.modal
		s.Modal = &m
	}
	return s
}

// Query is the pipeline input for the current state.
func (c *Controller) Query() schedule.Query {
	return schedule.Query{Search: c.searchQuery, Days: c.days, Sort: c.sortOption}
}

// ThemeScope is the global style-scope token for the active theme.
func (c *Controller) ThemeScope() string {
	return c.theme.Scope()
}

func (c *Controller) SetSearchQuery(text string) {
	c.searchQuery = text
}

// SetTheme switches palettes and closes the theme menu.
func (c *Controller) SetTheme(t Theme) error {
	if !t.Valid() {
		return ErrUnknownTheme
	}
	c.theme = t
	c.closeMenu(MenuTheme)
	return nil
}

// SetSortOption changes the ordering and closes the sort menu.
func (c *Controller) SetSortOption(o schedule.SortOption) error {
	if !o.Valid() {
		return ErrUnknownSort
	}
	c.sortOption = o
	c.closeMenu(MenuSort)
	return nil
}

func (c *Controller) ToggleDay(d session.Day) {
	c.days = c.days.Toggle(d)
}

func (c *Controller) SelectAllDays() {
	c.days = session.AllDays()
}

func (c *Controller) DeselectAllDays() {
	c.days = 0
}

// ToggleMenu opens which, closing any other menu, or closes it if it is
// already open.
func (c *Controller) ToggleMenu(which Menu) {
	if c.openMenu == which {
		c.openMenu = MenuNone
		return
	}
	c.openMenu = which
}

// CloseMenu closes whatever menu is open.
func (c *Controller) CloseMenu() {
	c.openMenu = MenuNone
}

// PointerDownOutsideMenu reacts to a press outside the open menu's panel.
func (c *Controller) PointerDownOutsideMenu() {
	c.CloseMenu()
}

func (c *Controller) closeMenu(which Menu) {
	if c.openMenu == which {
		c.openMenu = MenuNone
	}
}

// OpenContactModal shows the contact details for s. Sessions without an
// email address are ignored and false is returned.
func (c *Controller) OpenContactModal(s session.Session) bool {
	if !s.HasContact() {
		return false
	}
	c.modalGen++
	c.modal = &Modal{
		Session: s,
		Contact: session.ParseContact(s.Contact),
		gen:     c.modalGen,
	}
	c.resetFeedback()
	return true
}

// CloseContactModal hides the modal and drops any pending feedback reset.
func (c *Controller) CloseContactModal() {
	c.modal = nil
	c.resetFeedback()
}

// HandleEscape closes the modal if it is open, otherwise the open menu.
func (c *Controller) HandleEscape() {
	if c.modal != nil {
		c.CloseContactModal()
		return
	}
	c.CloseMenu()
}

// BackdropPointerDown reacts to a press outside the modal panel.
func (c *Controller) BackdropPointerDown() {
	if c.modal != nil {
		c.CloseContactModal()
	}
}

// ModalPointerDown reacts to a press inside the modal panel. It is absorbed
// so the backdrop does not see it.
func (c *Controller) ModalPointerDown() {}

func (c *Controller) resetFeedback() {
	c.feedback = CopyNone
	c.resets.cancel()
}

// CopyRequest is a pending clipboard write for the open modal.
type CopyRequest struct {
	Kind CopyKind
	Text string
	gen  uint64
}

// RequestCopy prepares a clipboard write of the phone or email shown in the
// modal. It returns false when the modal is closed, the field is absent, or
// that field's "Copied!" marker is still showing.
func (c *Controller) RequestCopy(kind CopyKind) (CopyRequest, bool) {
	if c.modal == nil || c.feedback == kind {
		return CopyRequest{}, false
	}

	var text string
	switch kind {
	case CopyPhone:
		text = c.modal.Contact.Phone
	case CopyEmail:
		text = c.modal.Contact.Email
	}
	if text == "" {
		return CopyRequest{}, false
	}
	return CopyRequest{Kind: kind, Text: text, gen: c.modal.gen}, true
}

// CopySucceeded marks the copied field and schedules the marker's reset,
// replacing any reset still pending. Completions for a modal that has since
// closed or been rebound are ignored.
func (c *Controller) CopySucceeded(req CopyRequest) (ResetHandle, bool) {
	if c.modal == nil || req.gen != c.modal.gen {
		return ResetHandle{}, false
	}
	c.feedback = req.Kind
	return c.resets.schedule(req.Kind, c.feedbackDelay), true
}

// CopyFailed records a failed clipboard write. Nothing changes on screen.
func (c *Controller) CopyFailed(req CopyRequest, err error) {
	slog.Debug("clipboard write failed", "kind", req.Kind.String(), "error", err)
}

// ExpireFeedback clears the "Copied!" marker if h is the live reset.
func (c *Controller) ExpireFeedback(h ResetHandle) bool {
	if !c.resets.consume(h) {
		return false
	}
	c.feedback = CopyNone
	return true
}
