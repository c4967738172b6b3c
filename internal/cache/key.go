// Package cache is the time-boxed store of generated report content,
// keyed by the hash of the generation-relevant quiz answers.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/jonathan/founder-fit/internal/types"
)

// SchemaVersion tags every cache entry. Bumping it after a prompt or
// payload-shape change invalidates all prior entries without touching
// stored data.
const SchemaVersion = "v3"

// Key derives the content-address for a set of answers: a SHA-256 over
// the generation projection plus the schema version. Answers differing
// only in fields outside the projection share a key.
func Key(answers *types.QuizAnswers, version string) string {
	projection := types.GenerationProjection{}
	if answers != nil {
		projection = answers.Projection()
	}

	// Struct marshaling has a fixed field order, so the digest is
	// deterministic for identical projections.
	data, err := json.Marshal(projection)
	if err != nil {
		// A projection of plain ints, strings, and string slices cannot
		// fail to marshal; keep the signature total anyway.
		data = nil
	}

	h := sha256.New()
	h.Write(data)
	h.Write([]byte(version))
	return hex.EncodeToString(h.Sum(nil))
}
