package emotes

// DefaultMaxDepth bounds container nesting when ParseOpt.MaxDepth is unset.
const DefaultMaxDepth = 64

// ParseOpt bundles parsing options.
type ParseOpt struct {
	MaxDepth int
}

func (o ParseOpt) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}
