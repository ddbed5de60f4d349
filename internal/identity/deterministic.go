package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID maps a stable key to the same UUID on every call, using go-hashid
// with SHA-256 and input normalization. Keys are namespaced by the callers
// ("go-coursebuilder:<entity>:<key>") so different entity types never share
// an identifier. Empty keys yield uuid.Nil.
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		// hashid rejects some inputs; fall back to name-based UUIDv5 so the
		// result stays deterministic.
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// WorksheetDocumentUUID derives the identity for a seeded worksheet document.
func WorksheetDocumentUUID(slug string) uuid.UUID {
	return UUID("go-coursebuilder:worksheet_document:" + strings.ToLower(strings.TrimSpace(slug)))
}

// LessonPlanDocumentUUID derives the identity for a seeded lesson-plan document.
func LessonPlanDocumentUUID(slug string) uuid.UUID {
	return UUID("go-coursebuilder:lesson_plan_document:" + strings.ToLower(strings.TrimSpace(slug)))
}
