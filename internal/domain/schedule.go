package domain

import (
	"errors"
	"time"
)

// Причины, по которым дата не подходит для слушания (в порядке проверки)
var (
	ErrWeekend              = errors.New("hearings cannot be scheduled on weekends")
	ErrHoliday              = errors.New("hearings cannot be scheduled on holidays")
	ErrOutsideBusinessHours = errors.New("hearings can only be scheduled during business hours")
	ErrTooSoon              = errors.New("hearings must be scheduled from tomorrow onwards")
	ErrTooFar               = errors.New("hearings cannot be scheduled more than the allowed horizon ahead")
)

// SchedulingPolicy правила допустимого времени слушания
type SchedulingPolicy struct {
	Location         *time.Location
	OpenHour         int // включительно
	CloseHour        int // не включительно
	MaxAdvanceMonths int
	HearingDuration  time.Duration
}

// DefaultSchedulingPolicy рабочие дни, 09:00-17:00, не дальше года вперед
func DefaultSchedulingPolicy(loc *time.Location) SchedulingPolicy {
	if loc == nil {
		loc = time.Local
	}
	return SchedulingPolicy{
		Location:         loc,
		OpenHour:         DefaultOpenHour,
		CloseHour:        DefaultCloseHour,
		MaxAdvanceMonths: DefaultMaxAdvanceMonths,
		HearingDuration:  DefaultHearingDuration,
	}
}

// Check проверяет момент at и возвращает первое нарушенное правило или nil
// Чистая функция от (at, now, holidays)
func (p SchedulingPolicy) Check(at, now time.Time, holidays []Holiday) error {
	local := at.In(p.location())

	if wd := local.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return ErrWeekend
	}

	for _, h := range holidays {
		if h.Matches(local) {
			return ErrHoliday
		}
	}

	if hour := local.Hour(); hour < p.OpenHour || hour >= p.CloseHour {
		return ErrOutsideBusinessHours
	}

	nowLocal := now.In(p.location())
	tomorrow := startOfDay(nowLocal).AddDate(0, 0, 1)
	if local.Before(tomorrow) {
		return ErrTooSoon
	}

	if local.After(nowLocal.AddDate(0, p.MaxAdvanceMonths, 0)) {
		return ErrTooFar
	}

	return nil
}

// IsSchedulable true, если в момент at можно назначить слушание
func (p SchedulingPolicy) IsSchedulable(at, now time.Time, holidays []Holiday) bool {
	return p.Check(at, now, holidays) == nil
}

// IsBusinessDay рабочий день: не выходной и не праздник
func (p SchedulingPolicy) IsBusinessDay(day time.Time, holidays []Holiday) bool {
	local := day.In(p.location())
	if wd := local.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}
	for _, h := range holidays {
		if h.Matches(local) {
			return false
		}
	}
	return true
}

// In переводит момент в часовой пояс политики
func (p SchedulingPolicy) In(t time.Time) time.Time {
	return t.In(p.location())
}

func (p SchedulingPolicy) location() *time.Location {
	if p.Location == nil {
		return time.Local
	}
	return p.Location
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
