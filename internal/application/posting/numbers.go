package posting

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// nextDocumentNumber generates a document number like "JE-20231028-3F2A9B1C".
// Uniqueness comes from the random suffix, not the date.
func nextDocumentNumber(prefix string, at time.Time) string {
	return fmt.Sprintf("%s-%s-%s", prefix, at.Format("20060102"), strings.ToUpper(uuid.New().String()[:8]))
}
