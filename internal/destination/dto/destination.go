package dto

type CreateDestinationRequest struct {
	// IDProvider may be omitted; it then comes from the authenticated
	// principal.
	IDProvider   string   `json:"idProvider,omitempty"`
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Address      string   `json:"address" binding:"required"`
	Latitude     *float64 `json:"latitude" binding:"required"`
	Longitude    *float64 `json:"longitude" binding:"required"`
	ImagesBase64 []string `json:"imagesBase64" binding:"required,min=1"`
}

// EditDestinationRequest carries the optional fields of a partial update.
// Pointer fields distinguish "absent" from "set to zero value".
type EditDestinationRequest struct {
	Name         *string   `json:"name,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Address      *string   `json:"address,omitempty"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	ImagesBase64 []string  `json:"imagesBase64,omitempty"`
	Categories   *[]string `json:"categories,omitempty"`
}

type CreateDestinationResponse struct {
	Message       string   `json:"message"`
	IDDestination string   `json:"idDestination"`
	ImageURLs     []string `json:"imageUrls"`
}

type EditDestinationResponse struct {
	Message       string   `json:"message"`
	IDDestination string   `json:"idDestination"`
	UpdatedFields []string `json:"updatedFields"`
}
