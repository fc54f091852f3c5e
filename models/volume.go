package models

// VolumeList mirrors the relevant slice of the Google Books API search
// response: {items: [{id, volumeInfo: {...}}]}.
type VolumeList struct {
	TotalItems int      `json:"totalItems"`
	Items      []Volume `json:"items"`
}

// Volume is a single search result item.
type Volume struct {
	ID         string     `json:"id"`
	VolumeInfo VolumeInfo `json:"volumeInfo"`
}

// VolumeInfo holds the catalog metadata of a volume. Authors, description
// and image links may all be absent.
type VolumeInfo struct {
	Title       string      `json:"title"`
	Authors     []string    `json:"authors"`
	Description string      `json:"description"`
	ImageLinks  *ImageLinks `json:"imageLinks,omitempty"`
	InfoLink    string      `json:"infoLink"`
}

// ImageLinks groups the cover image URLs of a volume.
type ImageLinks struct {
	Thumbnail string `json:"thumbnail"`
}
