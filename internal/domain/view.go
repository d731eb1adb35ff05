package domain

// View names a list surface whose query state is kept separately.
type View string

const (
	ViewProposes View = "proposes"
	ViewBoard    View = "board"
	// ViewUsers is the user directory. It pages and searches but has no filters.
	ViewUsers View = "users"
)

// IsValid checks if the view is one of the known surfaces.
func (v View) IsValid() bool {
	switch v {
	case ViewProposes, ViewBoard, ViewUsers:
		return true
	default:
		return false
	}
}

// ListsProposes reports whether the view pages through proposes.
func (v View) ListsProposes() bool {
	return v == ViewProposes || v == ViewBoard
}
