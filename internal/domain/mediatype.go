package domain

import "strings"

// Бакет — корневая папка одной категории медиа
type Bucket string

const (
	BucketVideos Bucket = "Videos"
	BucketImages Bucket = "Images"
)

// Поддерживаемые расширения. Два непересекающихся множества.
var (
	videoExt = map[string]struct{}{
		".mp4": {}, ".webm": {}, ".mov": {},
	}
	imageExt = map[string]struct{}{
		".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".webp": {}, ".avif": {},
	}
)

// Статическая карта расширение -> MIME
var mediaTypes = map[string]string{
	".mp4":  "video/mp4",
	".webm": "video/webm",
	".mov":  "video/quicktime",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".avif": "image/avif",
}

// BucketForExt определяет бакет по расширению (с точкой, регистр не важен).
// Неизвестное расширение — ok=false, никакой другой ошибки здесь нет.
func BucketForExt(ext string) (Bucket, bool) {
	ext = strings.ToLower(ext)
	if _, ok := videoExt[ext]; ok {
		return BucketVideos, true
	}
	if _, ok := imageExt[ext]; ok {
		return BucketImages, true
	}
	return "", false
}

func MIMEForExt(ext string) string {
	if mt, ok := mediaTypes[strings.ToLower(ext)]; ok {
		return mt
	}
	return "application/octet-stream"
}
