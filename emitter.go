package moea

import "k8s.io/klog/v2"

// Warning kinds delivered through Emitter, per spec.md §7: neither is a Go
// error returned to the caller, both let the run continue.
const (
	WarnEmptyPopulation = "EmptyPopulationWarning"
	WarnNumeric         = "NumericWarning"
)

// defaultEmitter logs through klog at the verbosity level it is given (the
// driver passes 1), matching the teacher's and the descheduler sibling's
// klog.V(N).InfoS structured-logging idiom.
func defaultEmitter(level int, msg string, keysAndValues ...interface{}) {
	klog.V(klog.Level(level)).InfoS(msg, keysAndValues...)
}
