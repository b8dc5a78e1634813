package renko

import "github.com/quantkit/bricks/pkg/types"

//go:generate callbackgen -type BrickStream
type BrickStream struct {
	brickCallbacks       []func(bar types.RenkoBar)
	brickClosedCallbacks []func(bar types.RenkoBar)
}

var _ BrickEmitter = (*BrickStream)(nil)
