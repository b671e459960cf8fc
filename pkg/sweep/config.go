package sweep

import "fmt"

// Config is the sweep configuration, fixed once at harness start.
type Config struct {
	// EachFileBytes is the per-file payload size handed to the tool as
	// --each-file-size. Must be positive.
	EachFileBytes int

	// SplitMax is the inclusive upper bound of the split dimension.
	SplitMax int

	// DepthMax is the inclusive upper bound of the depth dimension.
	DepthMax int

	// Passthrough holds extra tool arguments, appended verbatim and in
	// order after the generated flags on every invocation.
	Passthrough []string
}

// Validate reports the first configuration error, or nil. It is called
// at the construction boundary; no run is attempted on an invalid config.
func (c Config) Validate() error {
	if c.EachFileBytes < 1 {
		return fmt.Errorf("each-file bytes must be positive, got %d", c.EachFileBytes)
	}
	if c.SplitMax < 0 {
		return fmt.Errorf("split max must be non-negative, got %d", c.SplitMax)
	}
	if c.DepthMax < 0 {
		return fmt.Errorf("depth max must be non-negative, got %d", c.DepthMax)
	}
	return nil
}
