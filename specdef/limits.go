package specdef

// Limits holds the fixed capacities of the three output tables and of the
// input itself. The tables are sized once at parser creation and never grow
// beyond these bounds; exceeding any of them is a fatal capacity error, a
// distinct class from syntax errors.
type Limits struct {
	// MaxNonterms caps the non-terminal table, forward references included.
	MaxNonterms int

	// MaxNameLen caps the length of one non-terminal name, without the $.
	MaxNameLen int

	// MaxExprs caps the expression-node pool across all bodies.
	MaxExprs int

	// MaxTermBytes caps the terminal byte pool, null terminators included.
	MaxTermBytes int

	// MaxLineLen caps the length of one physical specification line.
	MaxLineLen int
}

// DefaultLimits returns the stock configuration: 256 non-terminals with an
// average of 4 expression nodes each, 64-byte names, 8 KiB of terminal text,
// 1 KiB lines.
func DefaultLimits() Limits {
	return Limits{
		MaxNonterms:  256,
		MaxNameLen:   64,
		MaxExprs:     4 * 256,
		MaxTermBytes: 8192,
		MaxLineLen:   1024,
	}
}
