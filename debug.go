// +build debug

package perceptron

import (
	"bytes"
	"fmt"
	"sync"
)

type logstruct struct {
	msg  string
	args []interface{}
}

// lumberjack traces every training step. Only built with -tags debug.
type lumberjack struct {
	sync.Mutex
	*bytes.Buffer
	ch chan logstruct
}

func makeLumberJack() lumberjack {
	return lumberjack{
		Buffer: new(bytes.Buffer),
		ch:     make(chan logstruct),
	}
}

func (l *lumberjack) start() {
	for s := range l.ch {
		l.Lock()
		fmt.Fprintf(l.Buffer, s.msg, s.args...)
		l.WriteByte('\n')
		l.Unlock()
	}
}

func (l *lumberjack) log(msg string, args ...interface{}) {
	l.ch <- logstruct{msg: msg, args: args}
}

func (l *lumberjack) Reset() {
	l.Lock()
	l.Buffer.Reset()
	l.Unlock()
}

func (l *lumberjack) Log() string {
	l.Lock()
	defer l.Unlock()
	return l.String()
}
