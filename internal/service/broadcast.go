package service

// Broadcaster fans change notifications out to subscribed clients.
// Implemented by the websocket hub; tests substitute a recording fake.
type Broadcaster interface {
	Publish(topic, action string, data interface{})
}

// noopBroadcaster keeps services usable when no hub is wired (tests, tools)
type noopBroadcaster struct{}

func (noopBroadcaster) Publish(string, string, interface{}) {}

// orNoop guards against a nil Broadcaster at call sites
func orNoop(b Broadcaster) Broadcaster {
	if b == nil {
		return noopBroadcaster{}
	}
	return b
}
