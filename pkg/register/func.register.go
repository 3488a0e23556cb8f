// Package register collects init-time setup funcs so store implementations
// can attach themselves to their provider without import cycles.
package register

import "sync"

var (
	locker   sync.Mutex
	handlers = make(map[any][]any)
)

func RegisterFunc[T any](key any, handler func(T)) {
	locker.Lock()
	defer locker.Unlock()
	handlers[key] = append(handlers[key], handler)
}

func ResolveFuncHandlers[T any](key any) []func(T) {
	locker.Lock()
	defer locker.Unlock()
	var res []func(T)
	for _, h := range handlers[key] {
		if f, ok := h.(func(T)); ok {
			res = append(res, f)
		}
	}
	return res
}
