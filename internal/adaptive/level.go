package adaptive

// Level is a difficulty tier in the progression order.
// Values are ordered and never wrap around.
type Level int

const (
	Foundational Level = iota // entry level for every category
	Competent
	Proficient
	Advanced
)

var levelNames = [...]string{"foundational", "competent", "proficient", "advanced"}

func (l Level) String() string {
	if l < Foundational || l > Advanced {
		return "unknown"
	}
	return levelNames[l]
}

// Valid reports whether l is one of the four defined tiers.
func (l Level) Valid() bool {
	return l >= Foundational && l <= Advanced
}

// Next returns the level above l, capped at Advanced.
func (l Level) Next() Level {
	if l >= Advanced {
		return Advanced
	}
	return l + 1
}

// Prev returns the level below l, floored at Foundational.
func (l Level) Prev() Level {
	if l <= Foundational {
		return Foundational
	}
	return l - 1
}

// ParseLevel maps a stored name back to its Level. Unknown names map to
// Foundational so stale rows degrade to the entry level instead of failing.
func ParseLevel(s string) Level {
	for i, name := range levelNames {
		if s == name {
			return Level(i)
		}
	}
	return Foundational
}
