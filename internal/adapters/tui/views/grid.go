package views

import (
	"fmt"
	"strings"

	"github.com/Deltawerks/starprint/internal/adapters/tui/styles"
	"github.com/Deltawerks/starprint/internal/domain"
)

type gridState int

const (
	gridIdle gridState = iota
	gridLoading
	gridReady
	gridEmpty
	gridError
)

// Card swatch glyphs. A broken or absent thumbnail degrades to the generic
// cube without touching name or type rendering.
const (
	swatchThumb   = "▣"
	swatchGeneric = "◆"
)

// GridModel renders the item cards occupying the grid: either a category's
// items or the latest search results.
type GridModel struct {
	state       gridState
	items       []domain.Item
	cursor      int
	fromSearch  bool
	placeholder string
}

// SetLoading replaces the grid with a loading placeholder.
func (g *GridModel) SetLoading() {
	g.state = gridLoading
	g.items = nil
	g.cursor = 0
	g.placeholder = "Loading..."
}

// SetItems replaces the grid with cards. fromSearch marks a cross-cutting
// search view, which drops the thumbnail-generation affordances.
func (g *GridModel) SetItems(items []domain.Item, fromSearch bool) {
	if len(items) == 0 {
		if fromSearch {
			g.SetEmpty("No results found.")
		} else {
			g.SetEmpty("No items found in this category.")
		}
		g.fromSearch = fromSearch
		return
	}
	g.state = gridReady
	g.items = items
	g.cursor = 0
	g.fromSearch = fromSearch
	g.placeholder = ""
}

// SetEmpty replaces the grid with a "nothing here" placeholder.
func (g *GridModel) SetEmpty(text string) {
	g.state = gridEmpty
	g.items = nil
	g.cursor = 0
	g.placeholder = text
}

// SetError replaces the grid with an error placeholder.
func (g *GridModel) SetError(text string) {
	g.state = gridError
	g.items = nil
	g.cursor = 0
	g.placeholder = text
}

// Loading reports whether a load placeholder is showing.
func (g *GridModel) Loading() bool {
	return g.state == gridLoading
}

// MoveUp moves the card cursor up.
func (g *GridModel) MoveUp() {
	if g.cursor > 0 {
		g.cursor--
	}
}

// MoveDown moves the card cursor down.
func (g *GridModel) MoveDown() {
	if g.cursor < len(g.items)-1 {
		g.cursor++
	}
}

// Selected returns the card under the cursor.
func (g *GridModel) Selected() (domain.Item, bool) {
	if g.state != gridReady || g.cursor >= len(g.items) {
		return domain.Item{}, false
	}
	return g.items[g.cursor], true
}

// Items exposes the rendered cards.
func (g *GridModel) Items() []domain.Item {
	return g.items
}

// View renders the grid pane contents.
func (g *GridModel) View(height int) string {
	var b strings.Builder

	switch g.state {
	case gridIdle:
		b.WriteString(RenderPlaceholder("Select a category to browse items."))
	case gridLoading, gridEmpty, gridError:
		if g.state == gridError {
			b.WriteString(styles.ErrorMsg.Render(g.placeholder))
		} else {
			b.WriteString(RenderPlaceholder(g.placeholder))
		}
	case gridReady:
		start, end := g.window(height)
		for i := start; i < end; i++ {
			b.WriteString(g.renderCard(g.items[i], i == g.cursor))
			b.WriteString("\n")
		}
		if end < len(g.items) {
			b.WriteString(styles.MutedText.Render(
				fmt.Sprintf("... and %d more", len(g.items)-end)))
		}
	}

	return b.String()
}

func (g *GridModel) renderCard(it domain.Item, selected bool) string {
	swatch := swatchGeneric
	if it.Thumbnail != "" {
		swatch = swatchThumb
	}

	name := it.Name
	typeLabel := it.TypeLabel()

	if selected {
		line := fmt.Sprintf(" %s %s ", swatch, name)
		if typeLabel != "" {
			line += fmt.Sprintf("· %s ", typeLabel)
		}
		return styles.CardSelected.Render(line)
	}

	line := fmt.Sprintf("%s %s", styles.CardSwatch.Render(swatch), styles.CardName.Render(name))
	if typeLabel != "" {
		line += " " + styles.CardType.Render(typeLabel)
	}
	return line
}

// window returns the slice of cards kept visible around the cursor.
func (g *GridModel) window(height int) (int, int) {
	max := height
	if max <= 0 {
		max = 20
	}
	if len(g.items) <= max {
		return 0, len(g.items)
	}
	start := g.cursor - max/2
	if start < 0 {
		start = 0
	}
	end := start + max
	if end > len(g.items) {
		end = len(g.items)
		start = end - max
	}
	return start, end
}
