package service

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ObjectKey builds the key a raw document is stored under:
// extractions/<yyyy>/<mm>/<uuid>/<sanitized file name>.
func ObjectKey(id uuid.UUID, fileName string, now time.Time) string {
	name := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "document"
	}
	name = strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			return '_'
		case r < 0x20 || r == 0x7f:
			return -1
		default:
			return r
		}
	}, name)
	return fmt.Sprintf("extractions/%04d/%02d/%s/%s", now.Year(), int(now.Month()), id, name)
}
