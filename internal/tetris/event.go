package tetris

// EventType identifies the kind of engine event.
type EventType int

const (
	EventPieceLocked  EventType = iota // A piece was merged into the board
	EventLinesCleared                  // One or more rows were cleared (celebration)
	EventLevelUp                       // Level increased; gravity sped up
	EventGameOver                      // A freshly spawned piece collided
)

func (t EventType) String() string {
	switch t {
	case EventPieceLocked:
		return "piece_locked"
	case EventLinesCleared:
		return "lines_cleared"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a one-shot notification for renderers and hosts. Events carry no
// gameplay effect and are delivered once via Engine.Events.
type Event struct {
	Type  EventType
	Kind  Kind  // Locked piece kind (EventPieceLocked)
	Rows  []int // Pre-clear row indices, bottom first (EventLinesCleared)
	Count int   // Rows cleared (EventLinesCleared)
	Level int   // Level after the event
	Score int   // Score after the event
}
