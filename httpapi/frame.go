package httpapi

import (
	"github.com/driftmap/dyng/frameview"
	"github.com/driftmap/dyng/graph"
)

func newFrameResponse(frame *graph.Graph) frameview.Frame {
	return frameview.New(frame)
}
