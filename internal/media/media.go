package media

import "strings"

// Type is a media category derived from a filename extension.
type Type string

const (
	TypeImage Type = "images"
	TypeVideo Type = "videos"
)

var imageExts = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"webp": true,
}

var videoExts = map[string]bool{
	"mp4":  true,
	"mov":  true,
	"avi":  true,
	"mkv":  true,
	"webm": true,
}

var contentTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
	"mp4":  "video/mp4",
	"mov":  "video/quicktime",
	"avi":  "video/x-msvideo",
	"mkv":  "video/x-matroska",
	"webm": "video/webm",
}

// ext returns the lowercased substring after the last dot. A name without
// a dot yields the whole name, which will not match any known extension.
func ext(filename string) string {
	name := strings.ToLower(filename)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// Classify maps a filename to its media type. ok is false for files that
// are neither images nor videos.
func Classify(filename string) (Type, bool) {
	e := ext(filename)
	switch {
	case imageExts[e]:
		return TypeImage, true
	case videoExts[e]:
		return TypeVideo, true
	}
	return "", false
}

// ContentType returns the MIME type to serve a file with.
func ContentType(filename string) string {
	if ct, ok := contentTypes[ext(filename)]; ok {
		return ct
	}
	return "application/octet-stream"
}

// ParseType validates a client-supplied media type string.
func ParseType(s string) (Type, bool) {
	switch Type(s) {
	case TypeImage:
		return TypeImage, true
	case TypeVideo:
		return TypeVideo, true
	}
	return "", false
}
