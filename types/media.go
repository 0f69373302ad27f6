package types

// Media is an uploaded asset reference.
type Media struct {
	ID          string `json:"id"`
	BusinessID  string `json:"businessId,omitempty"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType,omitempty"`
	URL         string `json:"url"`
	SizeBytes   int64  `json:"sizeBytes,omitempty"`
	CreatedAt   int64  `json:"createdAt,omitempty"`
}
