package dto

type UploadImageRequest struct {
	Image string `json:"image"`
}

type UploadImageResponse struct {
	URL string `json:"url"`
}
