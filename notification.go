package urx

type NotificationType string

const (
	OnNext     NotificationType = "next"
	OnError    NotificationType = "error"
	OnComplete NotificationType = "complete"
)

// A Notification is a single event flowing through a stream: a value, a
// terminal error, or a terminal completion.
type Notification struct {
	Type NotificationType
	Body interface{}
}

func Next(body interface{}) Notification {
	return Notification{Type: OnNext, Body: body}
}

func Error(err error) Notification {
	return Notification{Type: OnError, Body: err}
}

func Complete() Notification {
	return Notification{Type: OnComplete}
}

// Err returns the body as an error; nil unless this is an OnError notification.
func (n Notification) Err() error {
	err, _ := n.Body.(error)
	return err
}

// IsTerminal reports whether nothing may follow this notification.
func (n Notification) IsTerminal() bool {
	return n.Type == OnError || n.Type == OnComplete
}
