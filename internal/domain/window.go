package domain

import (
	"errors"
	"time"
)

var ErrInvalidWindow = errors.New("domain: window end must be after start")

// Window полуоткрытый интервал времени [Start, End)
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow создает интервал, проверяя что он не пустой
func NewWindow(start, end time.Time) (Window, error) {
	if !end.After(start) {
		return Window{}, ErrInvalidWindow
	}
	return Window{Start: start, End: end}, nil
}

// WindowFrom интервал заданной длительности
func WindowFrom(start time.Time, d time.Duration) Window {
	return Window{Start: start, End: start.Add(d)}
}

// Overlaps проверяет пересечение интервалов
// Интервалы, которые только соприкасаются границами, не пересекаются
func (w Window) Overlaps(other Window) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

// Contains проверяет, что момент t попадает в интервал
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}
