package domain

import "time"

type GroupName string

func (g GroupName) String() string {
	return string(g)
}

// Group is a named set of connections. Members keep their join order and may
// repeat; nothing guarantees that a member is still connected.
type Group struct {
	Name      GroupName
	CreatedBy ConnectionID
	Members   []ConnectionID
	CreatedAt time.Time
}

// NewGroup returns a group whose only member is its creator.
func NewGroup(name GroupName, creator ConnectionID, at time.Time) Group {
	return Group{
		Name:      name,
		CreatedBy: creator,
		Members:   []ConnectionID{creator},
		CreatedAt: at,
	}
}

// Join appends a member without checking for duplicates.
func (g *Group) Join(id ConnectionID) {
	g.Members = append(g.Members, id)
}
