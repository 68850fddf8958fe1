package request

type CreateRoomTypeRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	Description *string  `json:"description,omitempty"`
	NightlyRate float64  `json:"nightly_rate" validate:"required,gt=0"`
	MaxGuests   int      `json:"max_guests" validate:"required,min=1,max=20"`
	Amenities   []string `json:"amenities,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty" validate:"omitempty,url"`
}

type UpdateRoomTypeRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description *string  `json:"description,omitempty"`
	NightlyRate *float64 `json:"nightly_rate,omitempty" validate:"omitempty,gt=0"`
	MaxGuests   *int     `json:"max_guests,omitempty" validate:"omitempty,min=1,max=20"`
	Amenities   []string `json:"amenities,omitempty"`
	IsBookable  *bool    `json:"is_bookable,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty" validate:"omitempty,url"`
}
