package core

// event runs on the engine goroutine.
type event func(e *Engine)

type eventList struct {
	head *eventItem
	tail *eventItem
}

type eventItem struct {
	ev   event
	next *eventItem
}

func (l *eventList) append(item *eventItem) {
	if l.head == nil {
		l.head = item
	} else {
		l.tail.next = item
	}
	l.tail = item
}

func (l *eventList) splice(src *eventList) {
	l.head, l.tail = src.head, src.tail
	src.head, src.tail = nil, nil
}

// post enqueues an event without blocking. It is safe to call from any
// goroutine, including transport and timer callbacks.
func (e *Engine) post(ev event) error {
	e.lock.Lock()
	if e.closed {
		e.lock.Unlock()
		return ErrClosed
	}
	e.events.append(&eventItem{ev: ev})
	e.lock.Unlock()
	e.wakeUp()
	return nil
}

func (e *Engine) wakeUp() {
	select {
	case e.wakeUpCh <- struct{}{}:
	default:
	}
}

func (e *Engine) processEvents() {
	var events eventList
	e.lock.Lock()
	events.splice(&e.events)
	e.lock.Unlock()
	for item := events.head; item != nil; item = item.next {
		item.ev(e)
	}
}
