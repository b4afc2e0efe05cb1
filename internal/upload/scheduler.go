package upload

import "time"

// Scheduler is the delay interface the pipeline uses to re-check
// in-flight submissions. The default implementation is a plain timer;
// tests substitute their own to observe (or fast-forward) scheduling.
type Scheduler interface {
	Schedule(delay time.Duration, fn func())
}

type timerScheduler struct{}

func NewTimerScheduler() Scheduler {
	return &timerScheduler{}
}

func (timerScheduler) Schedule(delay time.Duration, fn func()) {
	time.AfterFunc(delay, fn)
}
