package xd2d

// Default buffer capacities reserved by NewPainter.
const (
	DefaultMaxCommands = 16384
	DefaultMaxVertices = 65536
)

// PainterOption configures a Painter during creation.
// Use functional options to customize Painter behavior.
//
// Example:
//
//	// Default capacities
//	p := xd2d.NewPainter()
//
//	// Small painter for a handful of rectangles per frame
//	p := xd2d.NewPainter(xd2d.WithVertexCapacity(600), xd2d.WithCommandCapacity(8))
type PainterOption func(*painterOptions)

// painterOptions holds optional configuration for Painter creation.
type painterOptions struct {
	commands int
	vertices int
}

// defaultOptions returns the default painter options.
func defaultOptions() painterOptions {
	return painterOptions{
		commands: DefaultMaxCommands,
		vertices: DefaultMaxVertices,
	}
}

// WithCommandCapacity sets how many commands the painter preallocates.
// The command list still grows past it when needed. Negative values are
// treated as zero.
func WithCommandCapacity(n int) PainterOption {
	return func(o *painterOptions) {
		o.commands = max(n, 0)
	}
}

// WithVertexCapacity sets how many vertices the painter preallocates.
// The vertex buffer still grows past it when needed. Negative values are
// treated as zero.
func WithVertexCapacity(n int) PainterOption {
	return func(o *painterOptions) {
		o.vertices = max(n, 0)
	}
}
