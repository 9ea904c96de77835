package recording

import "github.com/gogpu/outlined"

// ResourcePool stores the paths and brushes referenced by commands.
// Paths are cloned on insertion. Brushes are comparable values and are
// stored once each.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	paths   []*outlined.Path
	brushes []outlined.Brush
	brushID map[outlined.Brush]BrushRef
}

// NewResourcePool creates an empty resource pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		paths:   make([]*outlined.Path, 0, 16),
		brushes: make([]outlined.Brush, 0, 8),
		brushID: make(map[outlined.Brush]BrushRef),
	}
}

// AddPath adds a copy of path to the pool and returns its reference.
func (p *ResourcePool) AddPath(path *outlined.Path) PathRef {
	p.paths = append(p.paths, path.Clone())
	// #nosec G115 -- pool size is bounded by available memory
	return PathRef(uint32(len(p.paths) - 1))
}

// GetPath returns the path for ref, or nil if ref is invalid.
func (p *ResourcePool) GetPath(ref PathRef) *outlined.Path {
	if uint64(ref) >= uint64(len(p.paths)) {
		return nil
	}
	return p.paths[ref]
}

// PathCount returns the number of paths in the pool.
func (p *ResourcePool) PathCount() int {
	return len(p.paths)
}

// AddBrush returns the reference of brush, adding it if it is new.
// A nil brush yields an invalid reference.
func (p *ResourcePool) AddBrush(brush outlined.Brush) BrushRef {
	if brush == nil {
		return BrushRef(InvalidRef)
	}
	if ref, ok := p.brushID[brush]; ok {
		return ref
	}
	p.brushes = append(p.brushes, brush)
	// #nosec G115 -- pool size is bounded by available memory
	ref := BrushRef(uint32(len(p.brushes) - 1))
	p.brushID[brush] = ref
	return ref
}

// GetBrush returns the brush for ref, or nil if ref is invalid.
func (p *ResourcePool) GetBrush(ref BrushRef) outlined.Brush {
	if uint64(ref) >= uint64(len(p.brushes)) {
		return nil
	}
	return p.brushes[ref]
}

// BrushCount returns the number of distinct brushes in the pool.
func (p *ResourcePool) BrushCount() int {
	return len(p.brushes)
}
