package signals

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var (
	shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

	signalCtx context.Context
	once      sync.Once
)

// Context returns a Context that is cancelled on the first SIGTERM or
// SIGINT. A second signal terminates the program with exit code 1.
func Context() context.Context {
	once.Do(func() {
		signalCtx = notify(context.Background(), func() { os.Exit(1) }, shutdownSignals...)
	})
	return signalCtx
}

// notify cancels the returned context on the first of sigs and calls
// exit on the second.
func notify(parent context.Context, exit func(), sigs ...os.Signal) context.Context {
	c := make(chan os.Signal, 2)
	signal.Notify(c, sigs...)
	ctx, cancel := context.WithCancel(parent)
	go func() {
		<-c
		cancel()
		<-c
		exit()
	}()
	return ctx
}
