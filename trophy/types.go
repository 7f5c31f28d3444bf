package trophy

import (
	"fmt"
	"strings"
)

// TrophyType is the tier of a trophy as stored in an entry.
type TrophyType int32

const (
	Platinum TrophyType = 1
	Gold     TrophyType = 2
	Silver   TrophyType = 3
	Bronze   TrophyType = 4
)

func (t TrophyType) String() string {
	switch t {
	case Platinum:
		return "Platinum"
	case Gold:
		return "Gold"
	case Silver:
		return "Silver"
	case Bronze:
		return "Bronze"
	default:
		return fmt.Sprintf("TrophyType(%d)", int32(t))
	}
}

// Points returns the grade value of the tier, 0 for unknown tiers.
func (t TrophyType) Points() int {
	switch t {
	case Platinum:
		return 180
	case Gold:
		return 90
	case Silver:
		return 30
	case Bronze:
		return 15
	default:
		return 0
	}
}

// ParseTrophyType accepts the single-letter ttype codes used by trophy
// definitions ("P", "G", "S", "B"), tier names, or the numeric value.
func ParseTrophyType(s string) (TrophyType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "p", "platinum", "1":
		return Platinum, nil
	case "g", "gold", "2":
		return Gold, nil
	case "s", "silver", "3":
		return Silver, nil
	case "b", "bronze", "4":
		return Bronze, nil
	default:
		return 0, fmt.Errorf("trophy: unknown trophy type %q", s)
	}
}
