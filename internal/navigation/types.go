package navigation

// State holds the navigation cursor
type State struct {
	Cursor int
}

// Direction represents movement directions
type Direction string

const (
	DirectionNext Direction = "next"
	DirectionPrev Direction = "prev"
)
