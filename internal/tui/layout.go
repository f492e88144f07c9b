package tui

// Chrome heights: one header line with the route breadcrumb, one footer line
const (
	HeaderHeight = 1
	FooterHeight = 1
	ChromeHeight = HeaderHeight + FooterHeight
)

// contentHeight is the height available to the current screen
func (m Model) contentHeight() int {
	return max(0, m.Height-ChromeHeight)
}

// updateLayout updates screen sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	m.help.Width = m.Width
	height := m.contentHeight()
	m.Router.Each(func(s screen) {
		s.SetSize(m.Width, height)
	})
}
