package layout

// CommandKind identifies what a render command draws.
type CommandKind int

const (
	CmdRect CommandKind = iota
	CmdText
	CmdCustom
)

// BoundingBox is an absolute cell-space rectangle.
type BoundingBox struct {
	X, Y, W, H int
}

// RenderCommand is one flattened drawable produced by the engine. Commands
// are emitted depth-first, parents before children, so later commands paint
// over earlier ones.
type RenderCommand struct {
	Kind       CommandKind
	Box        BoundingBox
	ID         uint32 // hash of the element's ID, 0 for anonymous elements
	Background Color
	Text       string
	TextColor  Color
	Custom     *CustomPayload
}
