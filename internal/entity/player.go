package entity

// Mark is the content of a cell and doubles as the identity of the player who owns it.
type Mark int8

const (
	Empty Mark = iota
	PlayerA
	PlayerB
)

func (that Mark) Signature() string {
	switch that {
	case PlayerA:
		return "x"
	case PlayerB:
		return "o"
	default:
		return ""
	}
}

func (that Mark) Opponent() Mark {
	switch that {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	default:
		return Empty
	}
}

func (that Mark) String() string {
	switch that {
	case PlayerA:
		return "player-a"
	case PlayerB:
		return "player-b"
	default:
		return "empty"
	}
}

type Player struct {
	Name string `json:"name"`
	Mark Mark   `json:"mark"`
}

func (that Player) Signature() string {
	return that.Mark.Signature()
}
