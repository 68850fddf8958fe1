package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type RoomTypeResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	NightlyRate float64   `json:"nightly_rate"`
	MaxGuests   int       `json:"max_guests"`
	Amenities   []string  `json:"amenities"`
	IsBookable  bool      `json:"is_bookable"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type RoomTypeDetailResponse struct {
	RoomTypeResponse
	RatingAverage float64 `json:"rating_average"`
	RatingCount   int64   `json:"rating_count"`
}

func RoomTypeToResponse(rt *entity.RoomType) RoomTypeResponse {
	amenities := rt.Amenities
	if amenities == nil {
		amenities = entity.Amenities{}
	}

	return RoomTypeResponse{
		ID:          rt.ID.String(),
		Name:        rt.Name,
		Description: rt.Description,
		NightlyRate: rt.NightlyRate,
		MaxGuests:   rt.MaxGuests,
		Amenities:   amenities,
		IsBookable:  rt.IsBookable,
		ImageURL:    rt.ImageURL,
		CreatedAt:   rt.CreatedAt,
	}
}
