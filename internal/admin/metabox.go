package admin

import (
	"html/template"
	"sort"

	documentDomain "github.com/allisson/jsondocs/internal/document/domain"
)

// Context is the edit screen column a meta box renders in.
type Context string

const (
	ContextNormal Context = "normal"
	ContextSide   Context = "side"
)

// Priority orders meta boxes within a context.
type Priority string

const (
	PriorityHigh    Priority = "high"
	PriorityCore    Priority = "core"
	PriorityDefault Priority = "default"
	PriorityLow     Priority = "low"
)

var (
	contextOrder  = map[Context]int{ContextNormal: 0, ContextSide: 1}
	priorityOrder = map[Priority]int{PriorityHigh: 0, PriorityCore: 1, PriorityDefault: 2, PriorityLow: 3}
)

// MetaBox is a panel attached to the edit screen of a document.
type MetaBox interface {
	ID() string
	Title() string
	Context() Context
	Priority() Priority

	// Scripts and Styles are asset URLs the page must load for the box to work.
	Scripts() []string
	Styles() []string

	Render(doc *documentDomain.Document) (template.HTML, error)
}

// RenderedMetaBox is a meta box ready to be placed on the page.
type RenderedMetaBox struct {
	ID    string
	Title string
	HTML  template.HTML
}

// SortMetaBoxes orders boxes by context, then priority. Unknown values sort last and
// registration order breaks ties.
func SortMetaBoxes(boxes []MetaBox) []MetaBox {
	sorted := make([]MetaBox, len(boxes))
	copy(sorted, boxes)

	sort.SliceStable(sorted, func(i, j int) bool {
		ci, cj := rank(contextOrder, sorted[i].Context()), rank(contextOrder, sorted[j].Context())
		if ci != cj {
			return ci < cj
		}
		return rank(priorityOrder, sorted[i].Priority()) < rank(priorityOrder, sorted[j].Priority())
	})
	return sorted
}

func rank[K comparable](order map[K]int, key K) int {
	if r, ok := order[key]; ok {
		return r
	}
	return len(order)
}
