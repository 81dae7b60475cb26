package domain

import (
	"fmt"
	"time"
)

// Modality формат зала
type Modality string

const (
	ModalityInPerson Modality = "in_person"
	ModalityVirtual  Modality = "virtual"
)

// RoomStatus статус зала
// В БД хранится только ручной статус (available или maintenance),
// occupied вычисляется из назначений
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

// Feature оснащение зала
type Feature string

const (
	FeatureVideoconference Feature = "videoconference"
	FeatureProjector       Feature = "projector"
	FeatureWifi            Feature = "wifi"
	FeatureRecording       Feature = "recording"
)

// Location площадка, которой принадлежат залы
type Location struct {
	ID         int64
	Name       string
	Prefix     string
	Address    string
	City       string
	Department string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Room зал для проведения слушаний
type Room struct {
	ID             int64
	LocationID     int64
	LocationName   string // денормализовано для сортировки
	LocationPrefix string
	Name           string
	Modality       Modality
	StartDate      time.Time // начало периода работы зала
	EndDate        time.Time // конец периода работы зала
	ManualStatus   RoomStatus
	Features       []Feature
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Code номер зала с префиксом площадки: CEN-10
func (r *Room) Code() string {
	if r.LocationPrefix == "" {
		return fmt.Sprintf("%d", r.ID)
	}
	return fmt.Sprintf("%s-%d", r.LocationPrefix, r.ID)
}

// InMaintenance зал вручную выведен на обслуживание
func (r *Room) InMaintenance() bool {
	return r.ManualStatus == RoomMaintenance
}

// Covers период работы зала полностью покрывает интервал
func (r *Room) Covers(w Window) bool {
	return !w.Start.Before(r.StartDate) && !w.End.After(r.EndDate)
}

// Availability вычисленное состояние зала для интервала
type Availability struct {
	Status       RoomStatus
	CoversWindow bool
	OccupiedBy   *int64 // ID слушания, занимающего зал
}

// Available зал можно назначить на интервал
func (a Availability) Available() bool {
	return a.Status == RoomAvailable && a.CoversWindow
}

// Assignment одобренное слушание, занимающее зал
type Assignment struct {
	HearingID int64
	RoomID    int64
	Window    Window
}

// ResolveAvailability вычисляет состояние зала на интервал по его назначениям
// assignments должны содержать одобренные слушания этого зала
func (r *Room) ResolveAvailability(w Window, assignments []Assignment) Availability {
	a := Availability{
		Status:       RoomAvailable,
		CoversWindow: r.Active && r.Covers(w),
	}

	if r.InMaintenance() {
		a.Status = RoomMaintenance
		return a
	}

	for _, as := range assignments {
		if as.RoomID != r.ID {
			continue
		}
		if as.Window.Overlaps(w) {
			id := as.HearingID
			a.Status = RoomOccupied
			a.OccupiedBy = &id
			break
		}
	}

	return a
}
