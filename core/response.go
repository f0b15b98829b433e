package core

type ResponseBase[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

type DoorState struct {
	Index int    `json:"index"`
	Start string `json:"start"`
	End   string `json:"end"`
	Open  bool   `json:"open"`
	URL   string `json:"url,omitempty"`
}

type DoorStatus struct {
	Now         string      `json:"now"`
	ActiveIndex *int        `json:"activeIndex"`
	Doors       []DoorState `json:"doors"`
}
