package disk

import (
	"strconv"
	"strings"
)

// Span — включительные границы [Start, End] внутри файла
type Span struct {
	Start int64
	End   int64
}

func (s Span) Len() int64 { return s.End - s.Start + 1 }

// ParseRange разбирает заголовок Range в конкретный диапазон.
// Поддерживается одиночная форма: "bytes=A-B", "bytes=A-" (до конца),
// "bytes=-N" (последние N байт). Конец всегда прижимается к size-1.
// ok=false — диапазон не распознан; политику «отдать файл целиком»
// применяет вызывающий, не эта функция.
func ParseRange(header string, size int64) (Span, bool) {
	if size <= 0 || !strings.HasPrefix(header, "bytes=") {
		return Span{}, false
	}
	spec := strings.TrimPrefix(header, "bytes=")
	parts := strings.SplitN(spec, "-", 2)
	if len(parts) != 2 {
		return Span{}, false
	}

	switch {
	// bytes=A-B
	case parts[0] != "" && parts[1] != "":
		a, e1 := strconv.ParseInt(parts[0], 10, 64)
		b, e2 := strconv.ParseInt(parts[1], 10, 64)
		if e1 != nil || e2 != nil || a < 0 || b < a || a >= size {
			return Span{}, false
		}
		if b > size-1 {
			b = size - 1
		}
		return Span{Start: a, End: b}, true

	// bytes=A-  (от A до конца)
	case parts[0] != "":
		a, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil || a < 0 || a >= size {
			return Span{}, false
		}
		return Span{Start: a, End: size - 1}, true

	// bytes=-N  (последние N байт)
	case parts[1] != "":
		n, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil || n <= 0 {
			return Span{}, false
		}
		if n > size {
			n = size
		}
		return Span{Start: size - n, End: size - 1}, true
	}

	// "bytes=-"
	return Span{}, false
}
