// internal/event/types.go
package event

const (
	// ShapeAdded fires when a shape joins a scene. Data is the shape.
	ShapeAdded Type = "shape_added"
	// ShapeRemoved fires when a shape leaves a scene. Data is the shape.
	ShapeRemoved Type = "shape_removed"
	// SurfaceResized fires when a surface's logical size changes. Data is
	// the surface.
	SurfaceResized Type = "surface_resized"
	// BackgroundChanged fires when a surface's background color is set or
	// cleared. Data is the surface.
	BackgroundChanged Type = "background_changed"
)
