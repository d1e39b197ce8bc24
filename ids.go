package hookbook

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind names an entity family for id purposes.
type Kind string

// Entity kinds.
const (
	KindPiece  Kind = "PIECE"
	KindYarn   Kind = "YARN"
	KindStitch Kind = "STITCH"
	KindStyle  Kind = "STYLE"
)

// maxIDNumber is the ceiling of the 3-digit id space. It is a hard
// limit: NextID fails rather than wrapping or widening.
const maxIDNumber = 999

var knownKinds = map[Kind]bool{
	KindPiece:  true,
	KindYarn:   true,
	KindStitch: true,
	KindStyle:  true,
}

// NextID returns the next sequential id for a kind, formatted
// KIND-NNN with a zero-padded 3-digit number.
//
// The number is one past the highest existing number of that kind, so
// ids are strictly increasing in creation order and gaps left by
// archived records are never refilled. Ids of other kinds and malformed
// ids in existing are ignored.
func NextID(kind Kind, existing []string) (string, error) {
	if !knownKinds[kind] {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	prefix := string(kind) + "-"

	var maxNum int

	for _, id := range existing {
		if !strings.HasPrefix(id, prefix) {
			continue
		}

		num, ok := IDNumber(id)
		if ok && num > maxNum {
			maxNum = num
		}
	}

	if maxNum+1 > maxIDNumber {
		return "", fmt.Errorf("%s ids: %w", kind, ErrCapacity)
	}

	return fmt.Sprintf("%s-%03d", kind, maxNum+1), nil
}

// IDNumber extracts the numeric suffix of an entity id ("YARN-042"
// yields 42). Reports false for ids without a numeric suffix.
func IDNumber(id string) (int, bool) {
	i := strings.LastIndexByte(id, '-')
	if i < 0 || i == len(id)-1 {
		return 0, false
	}

	num, err := strconv.Atoi(id[i+1:])
	if err != nil || num < 0 {
		return 0, false
	}

	return num, true
}

// IDKind determines the entity kind an id belongs to.
func IDKind(id string) (Kind, bool) {
	prefix, _, found := strings.Cut(id, "-")
	if !found {
		return "", false
	}

	kind := Kind(prefix)
	if !knownKinds[kind] {
		return "", false
	}

	return kind, true
}

// ValidateID reports whether id is well-formed for the given kind:
// KIND-NNN with exactly three digits.
func ValidateID(kind Kind, id string) bool {
	prefix := string(kind) + "-"

	suffix, ok := strings.CutPrefix(id, prefix)
	if !ok || !knownKinds[kind] || len(suffix) != 3 {
		return false
	}

	for _, c := range suffix {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}
