package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/photovault/internal/domain"
	"github.com/mmcdole/photovault/internal/search"
	"github.com/mmcdole/photovault/internal/tui/styles"
)

// Layout constants for grid
const (
	// Each cell renders id, author and dimensions inside a border
	CellContentLines = 3
	CellBorderLines  = 2
	CellHeight       = CellContentLines + CellBorderLines

	// Border + Padding(0,1) on each side
	CellFrameWidth = 4

	// Status line at top of the grid
	GridHeaderLines = 1

	MinCellWidth = 12
)

// EndReachedMsg signals the grid was scrolled near its last row.
// Count is the number of photos rendered when the signal fired.
type EndReachedMsg struct {
	Count int
}

// PhotoGrid renders photos in a fixed number of columns
type PhotoGrid struct {
	photos []domain.Photo

	columns   int
	threshold int // rows from the end that count as "near the end"

	// Selection (cursor is an index into the visible sequence)
	cursor    int
	offsetRow int

	// Dimensions
	width   int
	height  int
	focused bool

	// signaledAt is the photo count when EndReachedMsg last fired; the
	// signal re-arms once the count changes.
	signaledAt int

	// Filter state
	filterActive bool
	filterInput  textinput.Model
	filterQuery  string
	matches      []search.Match // nil when no query

	keys GridKeyMap
}

// NewGrid creates a new photo grid
func NewGrid(columns, threshold int) PhotoGrid {
	if columns < 1 {
		columns = 1
	}
	if threshold < 0 {
		threshold = 0
	}

	ti := textinput.New()
	ti.Placeholder = "filter by author..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return PhotoGrid{
		columns:     columns,
		threshold:   threshold,
		signaledAt:  -1,
		filterInput: ti,
		keys:        DefaultGridKeyMap(),
	}
}

// SetPhotos replaces the rendered list. The cursor is kept in range.
func (g *PhotoGrid) SetPhotos(photos []domain.Photo) {
	g.photos = photos
	if g.filterActive {
		g.applyFilter()
	}
	g.clampCursor()
}

// SetSize updates the component dimensions
func (g *PhotoGrid) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.ensureVisible()
}

// SetFocused sets the focus state
func (g *PhotoGrid) SetFocused(focused bool) {
	g.focused = focused
}

// Cursor returns the cursor position within the visible sequence
func (g PhotoGrid) Cursor() int {
	return g.cursor
}

// SetCursor moves the cursor, clamped to the visible sequence
func (g *PhotoGrid) SetCursor(pos int) {
	g.cursor = pos
	g.clampCursor()
}

// Len returns the number of photos currently shown (after filtering)
func (g PhotoGrid) Len() int {
	if g.matches != nil {
		return len(g.matches)
	}
	return len(g.photos)
}

// IsEmpty returns true if nothing is shown
func (g PhotoGrid) IsEmpty() bool {
	return g.Len() == 0
}

// SelectedPhoto returns the photo under the cursor
func (g PhotoGrid) SelectedPhoto() (domain.Photo, bool) {
	if g.cursor < 0 || g.cursor >= g.Len() {
		return domain.Photo{}, false
	}
	return g.photos[g.mapIndex(g.cursor)], true
}

// mapIndex maps a cursor position to an index into photos
func (g PhotoGrid) mapIndex(i int) int {
	if g.matches != nil && i < len(g.matches) {
		return g.matches[i].Index
	}
	return i
}

// rows returns the number of grid rows for the visible sequence
func (g PhotoGrid) rows() int {
	return (g.Len() + g.columns - 1) / g.columns
}

// visibleRows returns how many cell rows fit in the current height
func (g PhotoGrid) visibleRows() int {
	avail := g.height - GridHeaderLines
	if g.filterActive {
		avail--
	}
	n := avail / CellHeight
	if n < 1 {
		n = 1
	}
	return n
}

// cellWidth returns the outer width of one cell
func (g PhotoGrid) cellWidth() int {
	w := g.width / g.columns
	if w < MinCellWidth {
		w = MinCellWidth
	}
	return w
}

func (g *PhotoGrid) clampCursor() {
	n := g.Len()
	if g.cursor >= n {
		g.cursor = n - 1
	}
	if g.cursor < 0 {
		g.cursor = 0
	}
	g.ensureVisible()
}

// ensureVisible scrolls so the cursor row is on screen
func (g *PhotoGrid) ensureVisible() {
	row := g.cursor / g.columns
	visible := g.visibleRows()
	if row < g.offsetRow {
		g.offsetRow = row
	}
	if row >= g.offsetRow+visible {
		g.offsetRow = row - visible + 1
	}
	if g.offsetRow < 0 {
		g.offsetRow = 0
	}
}

// NearEnd reports whether the last rendered row is within threshold rows
// of the final row.
func (g PhotoGrid) NearEnd() bool {
	if g.Len() == 0 {
		return false
	}
	lastVisible := g.offsetRow + g.visibleRows() - 1
	return g.rows()-1-lastVisible <= g.threshold
}

// CheckEnd emits EndReachedMsg once per approach to the end of the list.
// Scrolling away from the end or a change in the photo count re-arms it.
// It stays quiet while a filter is active.
func (g *PhotoGrid) CheckEnd() tea.Cmd {
	if g.filterActive {
		return nil
	}
	if !g.NearEnd() {
		g.signaledAt = -1
		return nil
	}
	count := len(g.photos)
	if g.signaledAt == count {
		return nil
	}
	g.signaledAt = count
	return func() tea.Msg {
		return EndReachedMsg{Count: count}
	}
}

// ToggleFilter activates the filter input
func (g *PhotoGrid) ToggleFilter() {
	g.filterActive = true
	g.filterInput.Focus()
	g.ensureVisible()
}

// IsFiltering returns true if filter mode is active
func (g PhotoGrid) IsFiltering() bool {
	return g.filterActive
}

// IsFilterTyping returns true if filter is active AND input is focused
func (g PhotoGrid) IsFilterTyping() bool {
	return g.filterActive && g.filterInput.Focused()
}

// ClearFilter deactivates the filter and shows all photos
func (g *PhotoGrid) ClearFilter() {
	g.filterActive = false
	g.filterQuery = ""
	g.matches = nil
	g.filterInput.SetValue("")
	g.filterInput.Blur()
	g.clampCursor()
}

// applyFilter filters photos based on the current query
func (g *PhotoGrid) applyFilter() {
	query := g.filterInput.Value()
	if query != g.filterQuery {
		g.cursor = 0
		g.offsetRow = 0
	}
	g.filterQuery = query

	if strings.TrimSpace(query) == "" {
		g.matches = nil
		return
	}

	g.matches = search.FilterPhotos(query, g.photos)
	if g.matches == nil {
		g.matches = []search.Match{}
	}
}

// Init initializes the component
func (g PhotoGrid) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (g PhotoGrid) Update(msg tea.Msg) (PhotoGrid, tea.Cmd) {
	if !g.focused {
		return g, nil
	}

	// Filter input owns the keyboard while typing
	if g.IsFilterTyping() {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "esc":
				g.ClearFilter()
				return g, g.CheckEnd()
			case "enter":
				g.filterInput.Blur()
				return g, nil
			case "backspace":
				if g.filterInput.Value() == "" {
					g.ClearFilter()
					return g, g.CheckEnd()
				}
			}
		}

		var cmd tea.Cmd
		g.filterInput, cmd = g.filterInput.Update(msg)
		g.applyFilter()
		g.clampCursor()
		return g, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}

	if g.filterActive {
		switch {
		case key.Matches(keyMsg, g.keys.Escape):
			g.ClearFilter()
			return g, g.CheckEnd()
		case key.Matches(keyMsg, g.keys.Filter):
			g.filterInput.Focus()
			return g, nil
		}
	} else if key.Matches(keyMsg, g.keys.Filter) {
		g.ToggleFilter()
		return g, textinput.Blink
	}

	count := g.Len()
	if count == 0 {
		return g, nil
	}

	half := max(1, g.visibleRows()/2) * g.columns

	switch {
	case key.Matches(keyMsg, g.keys.Left):
		if g.cursor%g.columns > 0 {
			g.cursor--
		}
	case key.Matches(keyMsg, g.keys.Right):
		if g.cursor%g.columns < g.columns-1 && g.cursor < count-1 {
			g.cursor++
		}
	case key.Matches(keyMsg, g.keys.Up):
		if g.cursor-g.columns >= 0 {
			g.cursor -= g.columns
		}
	case key.Matches(keyMsg, g.keys.Down):
		if g.cursor+g.columns < count {
			g.cursor += g.columns
		} else if g.cursor/g.columns < g.rows()-1 {
			// Short last row: land on its last cell
			g.cursor = count - 1
		}
	case key.Matches(keyMsg, g.keys.Home):
		g.cursor = 0
	case key.Matches(keyMsg, g.keys.End):
		g.cursor = count - 1
	case key.Matches(keyMsg, g.keys.HalfDown):
		g.cursor = min(count-1, g.cursor+half)
	case key.Matches(keyMsg, g.keys.HalfUp):
		g.cursor = max(0, g.cursor-half)
	default:
		return g, nil
	}

	g.ensureVisible()
	return g, g.CheckEnd()
}

// View renders the component
func (g PhotoGrid) View() string {
	header := g.renderHeader()

	var body string
	if g.IsEmpty() {
		msg := "No photos"
		if g.filterActive && g.filterQuery != "" {
			msg = "No matches"
		}
		body = styles.DimStyle.Render(msg)
	} else {
		body = g.renderRows()
	}

	content := header + "\n" + body
	if g.filterActive {
		content += "\n" + g.renderFilterBar()
	}
	return content
}

// renderHeader renders the count and scroll position line
func (g PhotoGrid) renderHeader() string {
	if g.Len() == 0 {
		return " "
	}
	pos := fmt.Sprintf("%d/%d", g.cursor+1, g.Len())
	if g.matches != nil {
		pos += fmt.Sprintf(" (of %d)", len(g.photos))
	}

	var more []string
	if g.offsetRow > 0 {
		more = append(more, "↑ more")
	}
	if g.offsetRow+g.visibleRows() < g.rows() {
		more = append(more, "↓ more")
	}

	line := styles.AccentStyle.Render(pos)
	if len(more) > 0 {
		line += "  " + styles.DimStyle.Render(strings.Join(more, " "))
	}
	return line
}

// renderRows renders the visible rows of cells
func (g PhotoGrid) renderRows() string {
	start := g.offsetRow * g.columns
	end := min(g.Len(), (g.offsetRow+g.visibleRows())*g.columns)

	var rows []string
	for rowStart := start; rowStart < end; rowStart += g.columns {
		var cells []string
		for i := rowStart; i < min(rowStart+g.columns, end); i++ {
			cells = append(cells, g.renderCell(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderCell renders one photo cell
func (g PhotoGrid) renderCell(i int) string {
	photo := g.photos[g.mapIndex(i)]
	style := styles.GridCellStyle
	if i == g.cursor && g.focused {
		style = styles.GridCellSelectedStyle
	}

	inner := g.cellWidth() - CellFrameWidth
	author := styles.Truncate(photo.Author, inner)
	var authorLine string
	if g.matches != nil && i < len(g.matches) && len(g.matches[i].MatchedIndexes) > 0 && author == photo.Author {
		authorLine = styles.HighlightMatches(author, g.matches[i].MatchedIndexes, styles.BodyStyle)
	} else {
		authorLine = styles.BodyStyle.Render(author)
	}

	lines := []string{
		styles.AccentStyle.Render(styles.Truncate("#"+photo.ID, inner)),
		authorLine,
		styles.DimStyle.Render(styles.Truncate(dimensionLine(photo), inner)),
	}

	return style.Width(inner + 2).Render(strings.Join(lines, "\n"))
}

// dimensionLine shows the pixel size with a shape mark
func dimensionLine(photo domain.Photo) string {
	switch photo.Orientation() {
	case "landscape":
		return photo.Dimensions() + " ▭"
	case "portrait":
		return photo.Dimensions() + " ▯"
	case "square":
		return photo.Dimensions() + " □"
	}
	return photo.Dimensions()
}

// renderFilterBar renders the filter input bar
func (g PhotoGrid) renderFilterBar() string {
	input := g.filterInput.View()
	if g.filterQuery == "" {
		return input
	}
	return input + styles.DimStyle.Render(fmt.Sprintf(" [%d/%d]", g.Len(), len(g.photos)))
}

// KeyBindings returns the bindings shown in the help footer
func (g PhotoGrid) KeyBindings() []key.Binding {
	return []key.Binding{g.keys.Up, g.keys.Down, g.keys.Left, g.keys.Right, g.keys.Filter}
}
