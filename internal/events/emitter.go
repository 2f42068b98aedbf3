package events

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Emit publishes evt under name. It does nothing until the desktop runtime
// is up, so services can run without it.
var Emit = func(ctx context.Context, name string, evt ChangeEvent) {}

func EnableRuntimeEmitter() {
	Emit = func(ctx context.Context, name string, evt ChangeEvent) {
		runtime.EventsEmit(ctx, name, evt)
		logRuntimeEvent(ctx, name, evt)
	}
}

func SetCustomEmitter(f func(ctx context.Context, name string, evt ChangeEvent)) {
	if f == nil {
		Emit = func(context.Context, string, ChangeEvent) {}
		return
	}
	Emit = f
}
