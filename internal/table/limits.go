package table

// Limits bounds the size of a parsed table before padding and rendering.
// They exist to cap worst-case CPU and memory on adversarial or accidental
// huge inputs.
type Limits struct {
	MaxRows    int
	MaxColumns int
	MaxCells   int
}

// DefaultLimits returns the standard size caps.
func DefaultLimits() Limits {
	return Limits{
		MaxRows:    100_000,
		MaxColumns: 1_000,
		MaxCells:   1_000_000,
	}
}

// orDefaults fills any non-positive axis with its default cap.
func (l Limits) orDefaults() Limits {
	def := DefaultLimits()
	if l.MaxRows <= 0 {
		l.MaxRows = def.MaxRows
	}
	if l.MaxColumns <= 0 {
		l.MaxColumns = def.MaxColumns
	}
	if l.MaxCells <= 0 {
		l.MaxCells = def.MaxCells
	}
	return l
}
