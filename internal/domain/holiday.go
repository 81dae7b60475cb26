package domain

import "time"

// Holiday праздничный день
// Recurring праздник совпадает по месяцу и дню в любом году
type Holiday struct {
	ID          int64
	Date        time.Time // календарная дата, время не учитывается
	Description string
	Recurring   bool
}

// Matches проверяет, приходится ли календарная дата day на праздник
// Дата day берется в ее собственном часовом поясе
func (h Holiday) Matches(day time.Time) bool {
	y, m, d := day.Date()
	hy, hm, hd := h.Date.Date()

	if h.Recurring {
		return m == hm && d == hd
	}
	return y == hy && m == hm && d == hd
}
