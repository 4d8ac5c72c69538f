package logging

import (
	"context"
	"sync"
)

type FakeLogger struct {
	Logged []string
	lock   sync.Mutex
}

func NewFakeLogger() *FakeLogger {
	return &FakeLogger{}
}

func (l *FakeLogger) Debug(ctx context.Context, msg string, entries ...LogEntry) {
	l.append(msg)
}

func (l *FakeLogger) Info(ctx context.Context, msg string, entries ...LogEntry) {
	l.append(msg)
}

func (l *FakeLogger) Warning(ctx context.Context, msg string, entries ...LogEntry) {
	l.append(msg)
}

func (l *FakeLogger) Error(ctx context.Context, msg string, entries ...LogEntry) {
	l.append(msg)
}

func (l *FakeLogger) append(msg string) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.Logged = append(l.Logged, msg)
}
