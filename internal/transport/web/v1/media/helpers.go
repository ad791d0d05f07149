package media

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"
)

// слабый ETag из mtime и полного размера файла. Идентифицирует
// представление целиком, поэтому одинаков для 200 и любого 206.
func weakETag(modTime time.Time, size int64) string {
	return fmt.Sprintf(`W/"%x-%x"`, modTime.UnixNano(), size)
}

// стем канонического имени: без каталога и расширения, path-unescape на всякий
func stemOf(name string) string {
	if u, err := url.PathUnescape(name); err == nil {
		name = u
	}
	name = filepath.Base(name)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
