package domain

// EventKind is the route an inbound event is dispatched on.
// Transport events carry a leading '$', the others are the "action" field of
// a client frame.
type EventKind string

const (
	EventConnect            EventKind = "$connect"
	EventDisconnect         EventKind = "$disconnect"
	EventCreateGroup        EventKind = "createGroup"
	EventJoinGroup          EventKind = "joinGroup"
	EventSendMessage        EventKind = "sendMessage"
	EventBroadcastMessage   EventKind = "broadcastMessage"
	EventSendMessageToGroup EventKind = "sendMessageToGroup"
	EventDefault            EventKind = "$default"
)

var clientActions = map[string]EventKind{
	string(EventCreateGroup):        EventCreateGroup,
	string(EventJoinGroup):          EventJoinGroup,
	string(EventSendMessage):        EventSendMessage,
	string(EventBroadcastMessage):   EventBroadcastMessage,
	string(EventSendMessageToGroup): EventSendMessageToGroup,
}

// KindFromAction classifies the action of a client frame.
// Transport-only kinds can't be requested by a client and fall to EventDefault.
func KindFromAction(action string) EventKind {
	if kind, ok := clientActions[action]; ok {
		return kind
	}
	return EventDefault
}

// Event is one inbound request. Body is the raw client frame, empty for
// transport events.
type Event struct {
	Kind         EventKind
	ConnectionID ConnectionID
	Body         []byte
}
