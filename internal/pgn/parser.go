package pgn

import (
	"regexp"
	"strings"
)

var headerRe = regexp.MustCompile(`^\[(\w+)\s+"((?:[^"\\]|\\.)*)"\]$`)

// ParsePGNHeaders extracts PGN header tags into a map
func ParsePGNHeaders(pgn string) map[string]string {
	out := map[string]string{}
	for _, line := range strings.Split(pgn, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "[") {
			continue
		}
		m := headerRe.FindStringSubmatch(line)
		if len(m) == 3 {
			out[m[1]] = unescapeTagValue(m[2])
		}
	}
	return out
}

// MoveText returns the PGN with its tag-pair lines removed.
func MoveText(pgn string) string {
	var sb strings.Builder
	for _, line := range strings.Split(pgn, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "[") {
			continue
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return strings.TrimSpace(sb.String())
}

var resultTokens = map[string]bool{"1-0": true, "0-1": true, "1/2-1/2": true, "*": true}

// hasNoMoves reports whether the movetext is empty or only a game result.
func hasNoMoves(pgn string) bool {
	mt := MoveText(pgn)
	return mt == "" || resultTokens[mt]
}

func unescapeTagValue(v string) string {
	if !strings.Contains(v, `\`) {
		return v
	}
	return strings.NewReplacer(`\"`, `"`, `\\`, `\`).Replace(v)
}
