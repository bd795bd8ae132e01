package urx

import "sync"

// Subject is an observable that is fed by hand. Values broadcast to every
// current subscriber; the terminal notification is replayed to late ones.
type Subject struct {
	mu       sync.Mutex
	terminal *Notification
	targets  map[*simpleSubscriber]struct{}
}

func NewPublishSubject() *Subject {
	return &Subject{targets: make(map[*simpleSubscriber]struct{})}
}

func (s *Subject) Next(data interface{}) {
	s.Post(Next(data))
}

func (s *Subject) Error(err error) {
	s.Post(Error(err))
}

func (s *Subject) Complete() {
	s.Post(Complete())
}

func (s *Subject) Post(n Notification) {
	s.mu.Lock()
	if s.terminal != nil {
		s.mu.Unlock()
		return
	}
	if n.IsTerminal() {
		term := n
		s.terminal = &term
	}
	snapshot := make([]*simpleSubscriber, 0, len(s.targets))
	for target := range s.targets {
		snapshot = append(snapshot, target)
	}
	s.mu.Unlock()
	for _, target := range snapshot {
		target.Notify(n)
	}
}

func (s *Subject) Subscribe(target Observer) Subscription {
	return s.privSubscribe(target)
}

func (s *Subject) AsObservable() Observable {
	return wrapObservable(s)
}

func (s *Subject) privSubscribe(target Observer) Subscription {
	sub := initSimpleSubscriber(target)
	s.mu.Lock()
	if s.terminal != nil {
		term := *s.terminal
		s.mu.Unlock()
		sub.Notify(term)
		return sub
	}
	s.targets[sub] = struct{}{}
	s.mu.Unlock()
	sub.Add(func() {
		s.mu.Lock()
		delete(s.targets, sub)
		s.mu.Unlock()
	})
	return sub
}

func (s *Subject) Lift(op Operator) privObservable {
	return &liftedObservable{source: s, op: op}
}
