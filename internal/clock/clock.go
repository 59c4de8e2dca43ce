package clock

import "time"

// Timer отменяет запланированный вызов.
type Timer interface {
	// Stop возвращает false, если вызов уже произошел или был отменен
	Stop() bool
}

// Scheduler abstracts delayed callbacks so timed UI behaviour is deterministic in tests.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Real планирует вызовы через time.AfterFunc.
type Real struct{}

func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
