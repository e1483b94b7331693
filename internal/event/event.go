// internal/event/event.go
package event

// Type identifies a kind of event.
type Type string

// Event carries a notification and optional payload to subscribers.
type Event struct {
	Type Type
	Data any
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc adapts a plain function to the Listener interface. Function
// values are not comparable, so a ListenerFunc cannot be unsubscribed; use a
// pointer listener when you need that.
type ListenerFunc func(e Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher routes events to subscribers by type.
type Dispatcher struct {
	listeners map[Type][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[Type][]Listener)}
}

// Subscribe registers listener for events of type t.
func (d *Dispatcher) Subscribe(t Type, listener Listener) {
	d.listeners[t] = append(d.listeners[t], listener)
}

// Unsubscribe removes the first registration of listener for type t.
func (d *Dispatcher) Unsubscribe(t Type, listener Listener) {
	listeners, ok := d.listeners[t]
	if !ok {
		return
	}
	for i, l := range listeners {
		if l == listener {
			d.listeners[t] = append(listeners[:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch delivers e to every listener subscribed to its type, in
// subscription order.
func (d *Dispatcher) Dispatch(e Event) {
	for _, l := range d.listeners[e.Type] {
		l.OnEvent(e)
	}
}
