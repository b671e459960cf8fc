package sweep

import (
	"fmt"
	"time"
)

// RunRecord fixes everything needed to launch one measurement run and
// name its output file. It is built immediately before the invocation and
// discarded once the tool exits and the file is closed.
type RunRecord struct {
	Config Config
	Point  Point

	// Date is the invocation date; only the calendar day reaches the
	// output filename.
	Date time.Time

	// HostLabel is the short hostname embedded in the output filename.
	HostLabel string
}

// Args returns the full tool argument list: the three generated flags,
// then the passthrough arguments in their original order.
func (r RunRecord) Args() []string {
	args := make([]string, 0, 3+len(r.Config.Passthrough))
	args = append(args,
		fmt.Sprintf("--each-file-size=%d", r.Config.EachFileBytes),
		"--dir-split="+Pad2(r.Point.Split),
		"--dir-depth="+Pad2(r.Point.Depth),
	)
	return append(args, r.Config.Passthrough...)
}

// OutputFileName returns the run's log file name:
//
//	<eachFileBytes>x<split2>x<depth2>--<YYYY-MM-DD>-<hostLabel>.txt
//
// Distinct grid points yield distinct names within one sweep. Re-running
// the same point on the same date and host reuses the name, overwriting
// the earlier file.
func (r RunRecord) OutputFileName() string {
	return fmt.Sprintf("%dx%sx%s--%s-%s.txt",
		r.Config.EachFileBytes,
		Pad2(r.Point.Split),
		Pad2(r.Point.Depth),
		r.Date.Format("2006-01-02"),
		r.HostLabel,
	)
}
