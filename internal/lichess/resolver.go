package lichess

import (
	"regexp"
	"strings"

	"github.com/vytor/movetable/internal/errors"
	"github.com/vytor/movetable/internal/models"
)

// HostPrefix is the only accepted beginning of a game URL.
const HostPrefix = "https://lichess.org/"

// GameIDLength is the length of a canonical Lichess game id.
const GameIDLength = 8

// The first path segment is either the game id or the 12-char player link
// (game id + 4-char player token). Anything after a separator is ignored.
var gameURLRe = regexp.MustCompile(`^https://lichess\.org/([a-zA-Z0-9]{8})(?:[a-zA-Z0-9]{4})?(?:[/?#].*)?$`)

var gameIDRe = regexp.MustCompile(`^[a-zA-Z0-9]{8}$`)

// ResolveGameURL extracts the game reference from a Lichess game URL.
func ResolveGameURL(raw string) (models.GameReference, error) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, HostPrefix) {
		return models.GameReference{}, errors.NewInvalidURLError()
	}

	m := gameURLRe.FindStringSubmatch(raw)
	if len(m) != 2 {
		return models.GameReference{}, errors.NewIDExtractionError()
	}
	return models.GameReference{GameID: m[1]}, nil
}

// ValidateGameID checks a bare game id.
func ValidateGameID(id string) error {
	if !gameIDRe.MatchString(id) {
		return errors.NewValidationError("game id", "must be 8 alphanumeric characters")
	}
	return nil
}
