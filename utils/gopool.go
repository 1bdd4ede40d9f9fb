package utils

import (
	"context"

	"github.com/panjf2000/ants/v2"

	"github.com/projecteru2/memsize/log"
)

// NewPool new a pool running func() tasks, Invoke blocks while all workers are busy
func NewPool(ctx context.Context, size int) (*ants.PoolWithFunc, error) {
	logger := log.WithFunc("utils.NewPool")
	return ants.NewPoolWithFunc(size, func(i any) {
		defer log.SentryDefer()
		f, _ := i.(func())
		f()
	}, ants.WithPanicHandler(func(r any) {
		logger.Warnf(ctx, "task panic: %+v", r)
	}))
}
