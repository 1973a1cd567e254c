package goroutine

import (
	"runtime/debug"
	"time"

	"github.com/x-xyz/nftmarket/base/log"
)

type PanicEvent struct {
	Panic interface{}
	Stack []byte
}

// Go runs f in a new goroutine. The returned channel yields the panic
// if f panicked and is closed otherwise.
func Go(f func()) <-chan *PanicEvent {
	ch := make(chan *PanicEvent, 1)
	go func() {
		defer func() {
			p := recover()
			if p == nil {
				close(ch)
				return
			}
			stack := debug.Stack()
			log.Log().WithFields(log.Fields{"err": p, "stack": string(stack)}).Error("panic")
			ch <- &PanicEvent{Panic: p, Stack: stack}
		}()
		f()
	}()
	return ch
}

type supervisor struct {
	onPanic func(*PanicEvent)
	delay   time.Duration
}

type SuperviseOption func(*supervisor)

// OnPanic is called with every recovered panic before the restart
func OnPanic(fn func(*PanicEvent)) SuperviseOption {
	return func(s *supervisor) {
		s.onPanic = fn
	}
}

// RestartDelay waits d between a panic and the next run
func RestartDelay(d time.Duration) SuperviseOption {
	return func(s *supervisor) {
		s.delay = d
	}
}

// Supervise keeps f running until done is closed, restarting it after each panic.
// It returns once f returns normally.
func Supervise(done <-chan struct{}, f func(), opts ...SuperviseOption) {
	s := supervisor{}
	for _, opt := range opts {
		opt(&s)
	}

	for {
		ev, panicked := <-Go(f)
		if !panicked {
			return
		}
		if s.onPanic != nil {
			s.onPanic(ev)
		}

		select {
		case <-done:
			return
		default:
		}
		log.Log().WithFields(log.Fields{"panic": ev.Panic, "delay": s.delay}).Warn("restarting after panic")

		select {
		case <-done:
			return
		case <-time.After(s.delay):
		}
	}
}
