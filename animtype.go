package sequencer

// AnimTypeID discriminates the kind of state a pre-animated snapshot belongs
// to, so unrelated systems capturing state on the same node never collide.
type AnimTypeID struct {
	id uint32
}

var (
	animTypeCounter uint32
	animTypeNames   = map[AnimTypeID]string{}
)

// NewAnimTypeID mints a new, unique animation type. The name is used for
// debug output only; two IDs created with the same name are still distinct.
// Intended to be called from package-level var declarations.
func NewAnimTypeID(name string) AnimTypeID {
	animTypeCounter++
	id := AnimTypeID{id: animTypeCounter}
	animTypeNames[id] = name
	return id
}

// String returns the name the ID was created with.
func (a AnimTypeID) String() string {
	if name, ok := animTypeNames[a]; ok {
		return name
	}
	return "unregistered"
}

// Built-in animation types.
var (
	VisibilityAnimType = NewAnimTypeID("visibility")
	AlphaAnimType      = NewAnimTypeID("alpha")
)
