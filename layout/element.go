package layout

// Direction controls the main axis children are placed along.
type Direction int

const (
	LeftToRight Direction = iota
	TopToBottom
)

// SizingKind selects how an element is sized along one axis.
type SizingKind int

const (
	// SizingFit sizes the element to its content (text width, or the sum
	// of children along the main axis). The default.
	SizingFit SizingKind = iota
	SizingFixed
	SizingGrow
	SizingPercent
)

// Sizing is a per-axis size policy.
type Sizing struct {
	Kind  SizingKind
	Value float64 // cells for Fixed, weight for Grow, 0..1 for Percent
}

// Fit sizes to content.
func Fit() Sizing { return Sizing{Kind: SizingFit} }

// Fixed sizes to an exact number of cells.
func Fixed(cells int) Sizing { return Sizing{Kind: SizingFixed, Value: float64(cells)} }

// Grow takes a weighted share of the parent's remaining space.
func Grow(weight float64) Sizing {
	if weight <= 0 {
		weight = 1
	}
	return Sizing{Kind: SizingGrow, Value: weight}
}

// Percent takes a fraction of the parent's content box.
func Percent(f float64) Sizing { return Sizing{Kind: SizingPercent, Value: f} }

// Align positions children inside leftover space on an axis.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// CustomPayload marks an element as a host for widget-drawn content. The
// engine passes it through untouched on the element's render command;
// widgets claim their own payloads by tag during the prepare pass.
type CustomPayload struct {
	Tag  string
	Data any
}

// Element is one node of the layout tree, declared fresh every frame.
type Element struct {
	ID        string // optional; named elements get bounds lookup
	Direction Direction
	Width     Sizing
	Height    Sizing
	Padding   int
	Gap       int
	AlignX    Align
	AlignY    Align

	Background Color

	// Text content. A text element occupies one row and is sized by its
	// visible width; children are ignored when Text is set.
	Text      string
	TextColor Color

	Custom *CustomPayload

	Children []*Element

	// measured preferred size, written by the engine
	prefW, prefH int
}

// Add appends children and returns the element for chained construction.
// Nil children are skipped, so widgets that render nothing can be added
// directly.
func (el *Element) Add(children ...*Element) *Element {
	for _, c := range children {
		if c != nil {
			el.Children = append(el.Children, c)
		}
	}
	return el
}
