package repository

import (
	"github.com/kerrwood/stagebill-api/internal/domain/entity"
	domainRepo "github.com/kerrwood/stagebill-api/internal/domain/repository"
	"github.com/kerrwood/stagebill-api/pkg/apperror"
)

type servicePreset struct {
	ID    string
	Name  string
	Price float64
}

type serviceCategory struct {
	Name    string
	Presets []servicePreset
}

// catalog is the static preset table. Slices rather than maps so that
// flattening preserves declaration order.
var catalog = []serviceCategory{
	{Name: "singing", Presets: []servicePreset{
		{ID: "singing_waiter_duet", Name: "Singing Waiter - After Dessert (Duet)", Price: 650.0},
		{ID: "singing_waiter_trio", Name: "Singing Waiter - After Dessert (Trio)", Price: 975.0},
	}},
	{Name: "acoustic", Presets: []servicePreset{
		{ID: "acoustic_1pc", Name: "Acoustic - 1 piece - Guitar or Piano - Ceremony and Reception", Price: 280.0},
		{ID: "acoustic_duet", Name: "Acoustic - Duet - Guitar and Piano - Ceremony and Reception", Price: 400.0},
	}},
	{Name: "sax", Presets: []servicePreset{
		{ID: "sax_afternoon_solo", Name: "Sax Afternoon (solo + backing tracks)", Price: 350.0},
		{ID: "sax_evening_solo", Name: "Sax evening (solo + backing tracks)", Price: 400.0},
		{ID: "sax_with_band", Name: "Sax w/ band", Price: 300.0},
		{ID: "sax_and_dj", Name: "Sax & DJ", Price: 750.0},
	}},
	{Name: "bagpipes", Presets: []servicePreset{
		{ID: "bagpipes_arrival_ceremony", Name: "Bagpipes - Arrival - Ceremony", Price: 225.0},
		{ID: "bagpipes_arrival_speeches", Name: "Bagpipes - Arrival - Speeches", Price: 300.0},
		{ID: "bagpipes_evening_band", Name: "Bagpipes Evening w/ band", Price: 250.0},
	}},
	{Name: "band", Presets: []servicePreset{
		{ID: "band_3pc", Name: "Band (3 piece)", Price: 900.0},
		{ID: "band_5pc", Name: "Band (5 piece)", Price: 1500.0},
		{ID: "band_7pc", Name: "Band (7 piece)", Price: 2100.0},
	}},
	{Name: "film", Presets: []servicePreset{
		{ID: "film_highlights", Name: "Film (Highlights)", Price: 995.0},
		{ID: "film_highlights_2nd", Name: "Film (Highlights) + 2nd shooter", Price: 1245.0},
		{ID: "film_afternoon_2nd", Name: "Film (Afternoon) + 2nd shooter", Price: 1250.0},
		{ID: "film_afternoon_dance_2nd", Name: "Film (Afternoon + Dance) + 2nd shooter", Price: 1500.0},
		{ID: "film_feature_2nd", Name: "Film (Feature Length) + 2nd shooter", Price: 1750.0},
		{ID: "film_extended_highlights", Name: "Film (Extended Highlights)", Price: 1500.0},
		{ID: "film_stills", Name: "Film Stills", Price: 100.0},
	}},
	{Name: "photo", Presets: []servicePreset{
		{ID: "photos_aisle_speeches", Name: "Photos (aisle to speeches)", Price: 750.0},
		{ID: "photo_getting_ready_dancing", Name: "Photo (getting ready to dancing)", Price: 995.0},
		{ID: "photo_posed_group", Name: "Photo (posed group shots)", Price: 0.0},
	}},
	{Name: "dj", Presets: []servicePreset{
		{ID: "dj_only", Name: "DJ only", Price: 450.0},
	}},
	{Name: "other", Presets: []servicePreset{
		{ID: "extended_ceilidh", Name: "Extended Ceilidh", Price: 100.0},
		{ID: "late_finish_1am", Name: "Late Finish (1am)", Price: 125.0},
		{ID: "late_finish_2am", Name: "Late Finish (2am)", Price: 250.0},
	}},
}

// serviceRepository serves the static preset catalog.
type serviceRepository struct{}

// NewServiceRepository creates the static catalog repository.
func NewServiceRepository() domainRepo.ServiceRepository {
	return &serviceRepository{}
}

func (r *serviceRepository) GetByID(id string) (entity.LineItem, error) {
	for _, category := range catalog {
		for _, preset := range category.Presets {
			if preset.ID == id {
				return entity.LineItem{Description: preset.Name, Price: preset.Price}, nil
			}
		}
	}
	return entity.LineItem{}, apperror.NewServiceNotFoundError(id)
}

func (r *serviceRepository) GetAllFlat() []domainRepo.ServicePreset {
	var result []domainRepo.ServicePreset
	for _, category := range catalog {
		for _, preset := range category.Presets {
			result = append(result, domainRepo.ServicePreset{
				ID:       preset.ID,
				Name:     preset.Name,
				Category: category.Name,
				Price:    preset.Price,
			})
		}
	}
	return result
}
