package memory

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-HearingService/internal/domain"
)

// Seed начальные данные хранилища (площадки, залы, праздники)
type Seed struct {
	Locations []SeedLocation `toml:"locations"`
	Rooms     []SeedRoom     `toml:"rooms"`
	Holidays  []SeedHoliday  `toml:"holidays"`
}

type SeedLocation struct {
	ID         int64  `toml:"id"`
	Name       string `toml:"name"`
	Prefix     string `toml:"prefix"`
	Address    string `toml:"address"`
	City       string `toml:"city"`
	Department string `toml:"department"`
}

type SeedRoom struct {
	ID         int64     `toml:"id"`
	LocationID int64     `toml:"location_id"`
	Name       string    `toml:"name"`
	Modality   string    `toml:"modality"`
	StartDate  time.Time `toml:"start_date"`
	EndDate    time.Time `toml:"end_date"`
	Status     string    `toml:"status"` // available или maintenance
	Features   []string  `toml:"features"`
	Inactive   bool      `toml:"inactive"`
}

type SeedHoliday struct {
	Date        time.Time `toml:"date"`
	Description string    `toml:"description"`
	Recurring   bool      `toml:"recurring"`
}

// LoadSeed читает начальные данные из TOML файла
func LoadSeed(path string) (*Seed, error) {
	var seed Seed
	if _, err := toml.DecodeFile(path, &seed); err != nil {
		return nil, fmt.Errorf("memory: decode seed %s: %w", path, err)
	}
	return &seed, nil
}

// Apply добавляет начальные данные в хранилище
func (s *Store) Apply(seed *Seed) error {
	for _, l := range seed.Locations {
		s.AddLocation(domain.Location{
			ID:         l.ID,
			Name:       l.Name,
			Prefix:     l.Prefix,
			Address:    l.Address,
			City:       l.City,
			Department: l.Department,
			Active:     true,
		})
	}

	for _, r := range seed.Rooms {
		modality := domain.Modality(r.Modality)
		if modality != domain.ModalityInPerson && modality != domain.ModalityVirtual {
			return fmt.Errorf("memory: room %d: unknown modality %q", r.ID, r.Modality)
		}
		status := domain.RoomStatus(r.Status)
		switch status {
		case "":
			status = domain.RoomAvailable
		case domain.RoomAvailable, domain.RoomMaintenance:
		default:
			return fmt.Errorf("memory: room %d: unknown status %q", r.ID, r.Status)
		}
		if !r.EndDate.After(r.StartDate) {
			return fmt.Errorf("memory: room %d: end_date must be after start_date", r.ID)
		}

		features := make([]domain.Feature, 0, len(r.Features))
		for _, f := range r.Features {
			features = append(features, domain.Feature(f))
		}

		s.AddRoom(domain.Room{
			ID:           r.ID,
			LocationID:   r.LocationID,
			Name:         r.Name,
			Modality:     modality,
			StartDate:    r.StartDate,
			EndDate:      r.EndDate,
			ManualStatus: status,
			Features:     features,
			Active:       !r.Inactive,
		})
	}

	for _, h := range seed.Holidays {
		s.AddHoliday(domain.Holiday{
			Date:        time.Date(h.Date.Year(), h.Date.Month(), h.Date.Day(), 0, 0, 0, 0, time.UTC),
			Description: h.Description,
			Recurring:   h.Recurring,
		})
	}

	return nil
}
