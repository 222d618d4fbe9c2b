package ast

type (
	// NodeID addresses a node in the Builder's node arena.
	NodeID uint32
	// PayloadID addresses kind-specific data in a payload arena.
	PayloadID uint32
)

const (
	NoNodeID    NodeID    = 0
	NoPayloadID PayloadID = 0
)

func (id NodeID) IsValid() bool    { return id != NoNodeID }
func (id PayloadID) IsValid() bool { return id != NoPayloadID }
