package core

import (
	"context"
	"sync"

	"github.com/ib-77/attempt/pkg/attempt"
)

type CancellationHandlers[In, Out any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan attempt.Attempt[In], outCh chan<- attempt.Attempt[Out])
	OnCancelUnprocessed func(ctx context.Context, unprocessed attempt.Attempt[In], outCh chan<- attempt.Attempt[Out])
	OnCancelProcessed   func(ctx context.Context, in attempt.Attempt[In], processed attempt.Attempt[Out], outCh chan<- attempt.Attempt[Out])
}

func Locomotive[In, Out any](ctx context.Context, inputCh <-chan attempt.Attempt[In], outCh chan<- attempt.Attempt[Out],
	engine func(ctx context.Context, input attempt.Attempt[In]) <-chan attempt.Attempt[Out],
	handlers CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, in attempt.Attempt[Out]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			case pr, running := <-engine(ctx, in):
				if !running {
					return
				}

				select {
				case <-ctx.Done():
					//outCh <- pr // onCancelProcessed possible duplicate!
					if handlers.OnCancelProcessed != nil {
						handlers.OnCancelProcessed(ctx, in, pr, outCh)
					}
					if handlers.OnCancel != nil {
						handlers.OnCancel(ctx, inputCh, outCh)
					}
					return
				case outCh <- pr:
					if onSuccess != nil {
						onSuccess(ctx, pr)
					}
				}
			}
		}
	}
}
