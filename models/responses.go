package models

// ReportCreatePayload is the JSON body for POST /api/data. Coords is
// a slice, not a [2]float64: decoding into an array would zero-fill a
// short payload instead of leaving something validation can catch.
type ReportCreatePayload struct {
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Text   string    `json:"text"`
	Coords []float64 `json:"coords"`
	Photo  string    `json:"photo"`
}

// StatusResp is the fixed envelope for /api/data responses. Existing
// clients match on the literal strings "Success" and "Error".
type StatusResp struct {
	Message string `json:"message"`
}

// UploadPayload is the JSON body for POST /api/upload; Image is an
// inline base64 data URI produced by the browser's FileReader.
type UploadPayload struct {
	Image string `json:"image"`
}

// UploadResult is the success body for POST /api/upload.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// UploadErrorResp is the failure body for POST /api/upload.
type UploadErrorResp struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
