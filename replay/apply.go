package replay

// Apply performs e's visual effect on sink. Unknown kinds are ignored.
func Apply(e Event, sink Sink) {
	switch e.Kind {
	case KindStart:
		sink.Paint(e.At, StateStart)
	case KindEnd:
		sink.Paint(e.At, StateEnd)
	case KindVisited:
		sink.Paint(e.At, StateVisited)
	case KindFrontier:
		sink.Paint(e.At, StateFrontier)
		sink.Label(e.At, e.Label())
	case KindPath:
		sink.Paint(e.At, StatePath)
	}
}
