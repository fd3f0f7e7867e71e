// Package tui provides the terminal user interface for nosh.
package tui

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/noshapp/nosh/internal/logging"
	"github.com/noshapp/nosh/internal/menu"
	"github.com/noshapp/nosh/internal/recommend"
	"github.com/noshapp/nosh/internal/session"
	"github.com/noshapp/nosh/internal/tui/components"
	"github.com/noshapp/nosh/internal/tui/styles"
)

// Page identifies one of the app's screens.
type Page int

// Pages in tab order.
const (
	PageSwipe Page = iota
	PageFavorites
	PageRecommended
	PageAchievements
	PageProfile
	pageCount
)

var pageNames = [pageCount]string{"Swipe", "Favorites", "Nearby", "Badges", "Profile"}

// favSort selects the favorites page ordering.
type favSort int

const (
	sortByName favSort = iota
	sortByPrice
	sortByCuisine
	favSortCount
)

var favSortNames = [favSortCount]string{"name", "price", "cuisine"}

// Options wires the model to the rest of the app.
type Options struct {
	Menu     *menu.Store
	Sessions *session.Store
	Engine   *recommend.Engine
	// RecommendLimit caps the Nearby page list.
	RecommendLimit int
}

// Model is the Bubble Tea model for the nosh TUI.
type Model struct {
	// Components
	card      *components.DishCard
	statusBar *components.StatusBar
	levelBar  *components.Progress
	badges    *components.BadgeGrid
	noteInput *components.NoteInput
	favSearch *components.SearchInput
	help      *components.HelpOverlay

	// Dependencies
	menu     *menu.Store
	sessions *session.Store
	engine   *recommend.Engine
	recLimit int

	// State
	page     Page
	deck     []menu.Dish
	deckPos  int
	filter   menu.Filter
	dietPos  int // index into menu.DietaryTags, -1 when unfiltered
	match    menu.Restaurant
	matchFor string
	favSort  favSort
	favSel   int
	recs     []recommend.Scored
	recErr   string
	ranking  bool
	message  string
	quitting bool

	// Window dimensions
	width  int
	height int
}

// New creates a new TUI model.
func New(opts Options) *Model {
	m := &Model{
		card:      components.NewDishCard(),
		statusBar: components.NewStatusBar(),
		levelBar:  components.NewProgress(),
		badges:    components.NewBadgeGrid(),
		noteInput: components.NewNoteInput(),
		favSearch: components.NewSearchInput(),
		help:      components.NewHelpOverlay(),
		menu:      opts.Menu,
		sessions:  opts.Sessions,
		engine:    opts.Engine,
		recLimit:  opts.RecommendLimit,
		dietPos:   -1,
		filter:    menu.Filter{Mood: menu.MoodAny},
	}
	m.rebuildDeck()
	return m
}

// Init is the Bubble Tea initialization function.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update is the Bubble Tea update function.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.card.SetWidth(min(msg.Width-4, 60))
		m.statusBar.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case BadgesAwardedMsg:
		m.message = "Badge earned: " + strings.Join(msg.Badges, ", ")
		return m, clearMessageCmd()

	case RecommendationsMsg:
		m.ranking = false
		if msg.Err != nil {
			m.recErr = msg.Err.Error()
			return m, nil
		}
		m.recErr = ""
		m.recs = msg.Scored
		return m, nil

	case SessionSavedMsg:
		if msg.Err != nil {
			logging.Error("failed to save session", "error", msg.Err)
			m.message = "Could not save your session"
			return m, clearMessageCmd()
		}
		return m, nil

	case clearMessageMsg:
		m.message = ""
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The note input swallows everything except enter and esc.
	if m.noteInput.Visible() {
		switch msg.String() {
		case "enter":
			if d, ok := m.currentDish(); ok {
				m.sessions.Session().SetNote(d.Name, m.noteInput.Value())
			}
			m.noteInput.Hide()
			return m, m.saveCmd()
		case "esc":
			m.noteInput.Hide()
			return m, nil
		default:
			return m, m.noteInput.Update(msg)
		}
	}

	if m.help.Visible() {
		switch msg.String() {
		case "?", "esc", "q":
			m.help.Hide()
		}
		return m, nil
	}

	if m.favSearch.Focused() {
		switch msg.String() {
		case "enter", "esc":
			m.favSearch.Blur()
			return m, nil
		default:
			m.favSel = 0
			return m, m.favSearch.Update(msg)
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "?":
		m.help.Toggle()
		return m, nil

	case "tab":
		m.page = (m.page + 1) % pageCount
		return m, m.enterPageCmd()

	case "shift+tab":
		m.page = (m.page + pageCount - 1) % pageCount
		return m, m.enterPageCmd()

	case "1", "2", "3", "4", "5":
		m.page = Page(int(msg.String()[0] - '1'))
		return m, m.enterPageCmd()
	}

	switch m.page {
	case PageSwipe:
		return m.handleSwipeKey(msg)
	case PageFavorites:
		return m.handleFavoritesKey(msg)
	case PageRecommended:
		if msg.String() == "r" {
			return m, m.rankCmd()
		}
	}
	return m, nil
}

func (m *Model) handleFavoritesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "/":
		return m, m.favSearch.Focus()

	case "o":
		m.favSort = (m.favSort + 1) % favSortCount
		return m, nil

	case "down", "j":
		if m.favSel < len(m.favoriteLikes())-1 {
			m.favSel++
		}
		return m, nil

	case "up", "k":
		if m.favSel > 0 {
			m.favSel--
		}
		return m, nil

	case "x":
		likes := m.favoriteLikes()
		if m.favSel < len(likes) {
			m.sessions.Session().Unlike(likes[m.favSel].Dish.Name)
			if m.favSel >= len(likes)-1 && m.favSel > 0 {
				m.favSel--
			}
			m.rebuildDeck()
			return m, m.saveCmd()
		}
		return m, nil

	case "esc":
		m.favSearch.Reset()
		return m, nil
	}
	return m, nil
}

// favoriteLikes returns the likes matching the search query, in the
// selected sort order.
func (m *Model) favoriteLikes() []session.Like {
	sess := m.sessions.Session()
	query := strings.ToLower(m.favSearch.Value())

	likes := make([]session.Like, 0, len(sess.Likes))
	for _, l := range sess.Likes {
		if query != "" &&
			!strings.Contains(strings.ToLower(l.Dish.Name), query) &&
			!strings.Contains(strings.ToLower(l.Dish.Culture), query) {
			continue
		}
		likes = append(likes, l)
	}

	sort.SliceStable(likes, func(i, j int) bool {
		switch m.favSort {
		case sortByPrice:
			return likes[i].Dish.AvgPrice < likes[j].Dish.AvgPrice
		case sortByCuisine:
			return likes[i].Dish.Culture < likes[j].Dish.Culture
		default:
			return likes[i].Dish.Name < likes[j].Dish.Name
		}
	})
	return likes
}

func (m *Model) handleSwipeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "right", "l":
		return m, m.like()

	case "left", "h":
		if d, ok := m.currentDish(); ok {
			m.sessions.Session().Dislike(d.Name)
			m.advance()
			return m, m.saveCmd()
		}
		return m, nil

	case "s":
		m.surprise()
		return m, nil

	case "n":
		if d, ok := m.currentDish(); ok {
			return m, m.noteInput.Show(d.Name, m.sessions.Session().Note(d.Name))
		}
		return m, nil

	case "m":
		m.cycleMood()
		return m, nil

	case "d":
		m.cycleDiet()
		return m, nil

	case "c":
		m.filter = menu.Filter{Mood: menu.MoodAny}
		m.dietPos = -1
		m.rebuildDeck()
		return m, nil
	}
	return m, nil
}

// like records a like for the current dish and reports new badges.
func (m *Model) like() tea.Cmd {
	d, ok := m.currentDish()
	if !ok {
		return nil
	}
	awarded := m.sessions.Session().Like(d, time.Now())
	m.advance()

	cmds := []tea.Cmd{m.saveCmd()}
	if len(awarded) > 0 {
		cmds = append(cmds, func() tea.Msg { return BadgesAwardedMsg{Badges: awarded} })
	}
	return tea.Batch(cmds...)
}

// surprise jumps to a random unswiped dish.
func (m *Model) surprise() {
	remaining := len(m.deck) - m.deckPos
	if remaining > 1 {
		m.deckPos += 1 + rand.Intn(remaining-1)
	}
}

func (m *Model) cycleMood() {
	for i, mood := range menu.Moods {
		if mood == m.filter.Mood || (m.filter.Mood == "" && mood == menu.MoodAny) {
			m.filter.Mood = menu.Moods[(i+1)%len(menu.Moods)]
			break
		}
	}
	m.rebuildDeck()
}

func (m *Model) cycleDiet() {
	m.dietPos++
	if m.dietPos >= len(menu.DietaryTags) {
		m.dietPos = -1
		m.filter.Diet = nil
	} else {
		m.filter.Diet = []string{menu.DietaryTags[m.dietPos]}
	}
	m.rebuildDeck()
}

// rebuildDeck filters out already swiped dishes and applies the filter.
func (m *Model) rebuildDeck() {
	sess := m.sessions.Session()
	seen := make(map[string]struct{}, len(sess.Likes)+len(sess.Dislikes))
	for _, l := range sess.Likes {
		seen[l.Dish.Name] = struct{}{}
	}
	for _, name := range sess.Dislikes {
		seen[name] = struct{}{}
	}

	m.deck = m.deck[:0]
	for _, d := range m.filter.Apply(m.menu.Dishes()) {
		if _, ok := seen[d.Name]; !ok {
			m.deck = append(m.deck, d)
		}
	}
	m.deckPos = 0
}

func (m *Model) currentDish() (menu.Dish, bool) {
	if m.deckPos >= len(m.deck) {
		return menu.Dish{}, false
	}
	return m.deck[m.deckPos], true
}

func (m *Model) advance() {
	if m.deckPos < len(m.deck) {
		m.deck = append(m.deck[:m.deckPos], m.deck[m.deckPos+1:]...)
	}
}

// enterPageCmd kicks off work a page needs on entry.
func (m *Model) enterPageCmd() tea.Cmd {
	ctx := logging.WithPage(context.Background(), pageNames[m.page])
	logging.Global().WithContext(ctx).Debug("page opened")
	if m.page == PageRecommended && len(m.recs) == 0 && !m.ranking {
		return m.rankCmd()
	}
	return nil
}

// rankCmd runs the recommendation engine off the update loop.
func (m *Model) rankCmd() tea.Cmd {
	m.ranking = true
	restaurants := m.menu.Restaurants()
	likes := m.sessions.Session().CuisineFrequency()
	mood := m.filter.Mood
	engine := m.engine
	limit := m.recLimit

	return func() tea.Msg {
		scored, err := engine.Rank(context.Background(), restaurants, likes, mood, limit)
		return RecommendationsMsg{Scored: scored, Err: err}
	}
}

// saveCmd snapshots the session on the update goroutine; the returned
// command only marshals the copy, so later swipes cannot race the write.
func (m *Model) saveCmd() tea.Cmd {
	snap := m.sessions.Snapshot()
	return func() tea.Msg {
		return SessionSavedMsg{Err: m.sessions.SaveSnapshot(snap)}
	}
}

func clearMessageCmd() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearMessageMsg{}
	})
}

// View is the Bubble Tea view function.
func (m *Model) View() string {
	if m.quitting {
		return "Bon appétit!\n"
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.page {
	case PageSwipe:
		b.WriteString(m.renderSwipe())
	case PageFavorites:
		b.WriteString(m.renderFavorites())
	case PageRecommended:
		b.WriteString(m.renderRecommended())
	case PageAchievements:
		b.WriteString(m.renderAchievements())
	case PageProfile:
		b.WriteString(m.renderProfile())
	}

	b.WriteString("\n\n")
	m.refreshStatusBar()
	b.WriteString(m.statusBar.View())

	base := b.String()
	if m.help.Visible() {
		return m.renderOverlay(base, m.help.View())
	}
	if m.noteInput.Visible() {
		return m.renderOverlay(base, m.noteInput.View())
	}
	return base
}

func (m *Model) renderTabs() string {
	tabs := make([]string, 0, pageCount+1)
	tabs = append(tabs, styles.TitleStyle.Render("nosh"))
	for i, name := range pageNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if Page(i) == m.page {
			tabs = append(tabs, styles.ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, styles.TabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderSwipe() string {
	d, ok := m.currentDish()
	if !ok {
		m.card.SetDish(menu.Dish{})
		return m.card.View()
	}
	m.card.SetDish(d)
	m.card.SetNote(m.sessions.Session().Note(d.Name))

	var b strings.Builder
	b.WriteString(m.card.View())
	b.WriteString("\n")

	// Keep the same match while the dish is on screen.
	if m.matchFor != d.Name {
		m.match, _ = m.menu.RestaurantFor(d)
		m.matchFor = d.Name
	}
	if m.match.Name != "" {
		b.WriteString(styles.CardLabelStyle.Render("Try it at: "))
		b.WriteString(styles.CardValueStyle.Render(m.match.Name))
		if m.match.Address != "" {
			b.WriteString(styles.MutedTextStyle.Render(" · " + m.match.Address))
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.MutedTextStyle.Render(
		fmt.Sprintf("%d/%d dishes in the deck", m.deckPos+1, len(m.deck))))
	return b.String()
}

func (m *Model) renderFavorites() string {
	sess := m.sessions.Session()
	if len(sess.Likes) == 0 {
		return styles.MutedTextStyle.Render("Nothing liked yet. Swipe right on something tasty.")
	}

	var b strings.Builder
	b.WriteString(m.favSearch.View())
	b.WriteString(styles.MutedTextStyle.Render("   sort: " + favSortNames[m.favSort] + " (o)"))
	b.WriteString("\n\n")

	likes := m.favoriteLikes()
	if len(likes) == 0 {
		b.WriteString(styles.MutedTextStyle.Render("No favorites match the filter."))
		return b.String()
	}

	for i, l := range likes {
		cursor := "  "
		if i == m.favSel {
			cursor = styles.HighlightStyle.Render("> ")
		}
		b.WriteString(cursor + styles.IconLike + " " + styles.CardValueStyle.Render(l.Dish.Name))
		b.WriteString(styles.MutedTextStyle.Render(fmt.Sprintf(" (%s, $%.2f)", l.Dish.Culture, l.Dish.AvgPrice)))
		if note := sess.Note(l.Dish.Name); note != "" {
			b.WriteString("\n      " + styles.MutedTextStyle.Render(note))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) renderRecommended() string {
	if m.ranking {
		return styles.MutedTextStyle.Render("Finding restaurants near you...")
	}
	if m.recErr != "" {
		return styles.ErrorTextStyle.Render(m.recErr)
	}
	if len(m.recs) == 0 {
		return styles.MutedTextStyle.Render("No recommendations yet. Press r to refresh.")
	}

	var b strings.Builder
	for i, s := range m.recs {
		b.WriteString(styles.HighlightStyle.Render(fmt.Sprintf("%2d.", i+1)))
		b.WriteString(" " + styles.CardValueStyle.Render(s.Restaurant.Name))
		b.WriteString(styles.MutedTextStyle.Render(" · " + s.Restaurant.Cuisine))
		if s.DistanceKm >= 0 {
			b.WriteString(styles.MutedTextStyle.Render(fmt.Sprintf(" · %.1f km", s.DistanceKm)))
		}
		if avg, count := m.sessions.Session().CommunityRating(s.Restaurant.Name); count > 0 {
			b.WriteString(styles.TagStyle.Render(fmt.Sprintf(" · ★ %.1f (%d)", avg, count)))
		}
		if s.Restaurant.Address != "" {
			b.WriteString("\n    " + styles.MutedTextStyle.Render(s.Restaurant.Address))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) renderAchievements() string {
	sess := m.sessions.Session()
	entries := make([]components.BadgeEntry, 0, len(session.AllBadges()))
	for _, badge := range session.AllBadges() {
		e := components.BadgeEntry{
			Name:   badge,
			Desc:   badgeDesc(badge),
			Earned: sess.HasBadge(badge),
		}
		if !e.Earned {
			// Locked badges stay a mystery; the hint and count remain.
			e.Name = "???"
		}
		if have, need, ok := sess.BadgeProgress(badge); ok {
			e.Current, e.Target = have, need
		}
		entries = append(entries, e)
	}
	m.badges.SetEntries(entries)
	return m.badges.View()
}

func badgeDesc(badge string) string {
	switch badge {
	case session.BadgeTaster:
		return "Like 10 dishes"
	case session.BadgeFoodie:
		return "Like 25 dishes"
	case session.BadgeGourmand:
		return "Like 50 dishes"
	case session.BadgeExplorer:
		return "Like 3 cuisines in one week"
	}
	return ""
}

func (m *Model) renderProfile() string {
	p := m.sessions.Session().Profile()

	var b strings.Builder
	b.WriteString(styles.CardTitleStyle.Render("Your taste profile"))
	b.WriteString("\n\n")

	rows := []struct{ label, value string }{
		{"Level", p.Level.Name},
		{"XP", fmt.Sprintf("%d", p.XP)},
		{"Dishes liked", fmt.Sprintf("%d", p.TotalLikes)},
		{"Favourite cuisine", p.FavouriteCuisine},
		{"Avg dish price", fmt.Sprintf("$%.2f", p.AvgPrice)},
	}
	for _, row := range rows {
		if row.value == "" || row.value == "$0.00" {
			continue
		}
		b.WriteString(styles.CardLabelStyle.Render(row.label+": "))
		b.WriteString(styles.CardValueStyle.Render(row.value))
		b.WriteString("\n")
	}

	if p.Level.Next != "" {
		m.levelBar.SetData(components.ProgressData{
			Label:   "Next: " + p.Level.Next,
			Current: p.XP,
			Target:  p.Level.NextXP,
		})
		b.WriteString("\n" + m.levelBar.View() + "\n")
	}

	if len(p.Badges) > 0 {
		b.WriteString("\n" + styles.CardLabelStyle.Render("Badges: "))
		b.WriteString(styles.TagStyle.Render(strings.Join(p.Badges, ", ")))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) refreshStatusBar() {
	sess := m.sessions.Session()
	data := components.StatusBarData{
		XP:            sess.XP,
		Level:         sess.Level().Name,
		Likes:         len(sess.Likes),
		Mood:          m.filter.Mood,
		Diet:          m.filter.Diet,
		Message:       m.message,
		ShowShortcuts: true,
		Shortcuts:     m.pageShortcuts(),
	}
	m.statusBar.SetData(data)
}

func (m *Model) pageShortcuts() []components.ShortcutDef {
	switch m.page {
	case PageSwipe:
		return []components.ShortcutDef{
			{Key: "→", Desc: "like"},
			{Key: "←", Desc: "pass"},
			{Key: "s", Desc: "surprise"},
			{Key: "n", Desc: "note"},
			{Key: "m", Desc: "mood"},
			{Key: "d", Desc: "diet"},
			{Key: "?", Desc: "help"},
		}
	case PageFavorites:
		return []components.ShortcutDef{
			{Key: "/", Desc: "filter"},
			{Key: "o", Desc: "sort"},
			{Key: "x", Desc: "remove"},
			{Key: "j/k", Desc: "move"},
			{Key: "?", Desc: "help"},
		}
	case PageRecommended:
		return []components.ShortcutDef{
			{Key: "r", Desc: "refresh"},
			{Key: "tab", Desc: "next page"},
			{Key: "?", Desc: "help"},
		}
	default:
		return []components.ShortcutDef{
			{Key: "tab", Desc: "next page"},
			{Key: "?", Desc: "help"},
		}
	}
}

// renderOverlay centers the overlay over the base view.
func (m *Model) renderOverlay(base, overlay string) string {
	if m.width == 0 || m.height == 0 {
		return overlay
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
}

// Run starts the TUI and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
