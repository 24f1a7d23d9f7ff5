package diff

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"github.com/masoai/kbengine/model"
)

// changeID builds the deterministic id for a change. The id is a content
// hash of the entity's natural key, so regenerating the same diff yields the
// same ids and clients can safely reference them across calls.
func changeID(changeType model.ChangeType, action model.DiffAction, key string) string {
	sum := md5.Sum([]byte(fmt.Sprintf("%s:%s:%s", changeType, action, key)))
	return fmt.Sprintf("%s_%s_%s", changeType, action, hex.EncodeToString(sum[:])[:12])
}

// Natural keys per entity kind. Sections and documents prefer the URL and
// fall back to title/filename for entries scraped without one.

func faqKey(f model.FAQ) string { return f.Question }

func sectionKey(s model.ContentSection) string {
	if s.URL != "" {
		return s.URL
	}
	return s.Title
}

func documentKey(d model.PDFDocument) string {
	if d.URL != "" {
		return d.URL
	}
	return d.Filename
}

func arrangementKey(a model.Arrangement) string { return a.Name }
