package model

// DirectoryEntry is one subdirectory in a listing, with counts of media
// files directly inside it (one level, non-recursive).
type DirectoryEntry struct {
	Name       string `json:"name"`
	Path       string `json:"path"`
	ImageCount int    `json:"image_count"`
	VideoCount int    `json:"video_count"`
}

// Listing describes a directory: its subdirectories and the counts of
// media files directly inside the directory itself.
type Listing struct {
	Path        string           `json:"path"`
	Directories []DirectoryEntry `json:"directories"`
	ImageCount  int              `json:"image_count"`
	VideoCount  int              `json:"video_count"`
}

// MediaEntry identifies one classified media file.
type MediaEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// MediaListing holds the image and video files directly inside a
// directory. Both slices are always non-nil so they encode as [].
type MediaListing struct {
	Path   string       `json:"path"`
	Images []MediaEntry `json:"images"`
	Videos []MediaEntry `json:"videos"`
}
