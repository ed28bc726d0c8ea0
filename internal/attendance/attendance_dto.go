package attendance

// LocationRequest adalah hasil geolocation browser: koordinat, atau alasan
// kegagalan saat akses lokasi ditolak/tidak tersedia.
type LocationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Error     string   `json:"error"`
}

type SubmitRequest struct {
	UserMessage string `json:"user_message"`
}

type SubmitResponse struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}
