package game

import "strings"

// MonsterKind defines the different species of monsters
type MonsterKind int

const (
	MonsterFly        MonsterKind = iota // Fallback species for unknown kinds
	MonsterAnglerFish                    // Deep-water ambusher
	MonsterLamprey                       // Weak, numerous swarmer
	MonsterSquid                         // Huge and slow, hits hard
	MonsterSwordFish                     // Fast charger
)

// MonsterKinds lists every spawnable species in a stable order
var MonsterKinds = []MonsterKind{MonsterLamprey, MonsterSquid, MonsterAnglerFish, MonsterSwordFish}

var monsterKindNames = map[MonsterKind]string{
	MonsterFly:        "fly",
	MonsterAnglerFish: "angler_fish",
	MonsterLamprey:    "lamprey",
	MonsterSquid:      "squid",
	MonsterSwordFish:  "sword_fish",
}

func (k MonsterKind) String() string {
	if name, ok := monsterKindNames[k]; ok {
		return name
	}
	return monsterKindNames[MonsterFly]
}

// ParseMonsterKind resolves a species name. Unknown names resolve to MonsterFly
// and report false.
func ParseMonsterKind(name string) (MonsterKind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for kind, n := range monsterKindNames {
		if n == name {
			return kind, true
		}
	}
	return MonsterFly, false
}

// MarshalText implements encoding.TextMarshaler
func (k MonsterKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler; unknown names become MonsterFly
func (k *MonsterKind) UnmarshalText(text []byte) error {
	*k, _ = ParseMonsterKind(string(text))
	return nil
}

// MonsterProfile holds the stats of a monster species
type MonsterProfile struct {
	Kind     MonsterKind
	Health   int
	SpeedMin int // Speed is drawn uniformly from [SpeedMin, SpeedMax] px/s
	SpeedMax int
	Damage   int
	XP       int // Reward granted once on death
	Frames   int // Animation frames per facing
	Width    float64
	Height   float64
}

// GetMonsterProfile returns the profile for a monster kind
func GetMonsterProfile(kind MonsterKind) MonsterProfile {
	switch kind {
	case MonsterAnglerFish:
		return MonsterProfile{
			Kind:     MonsterAnglerFish,
			Health:   60,
			SpeedMin: 50,
			SpeedMax: 70,
			Damage:   10,
			XP:       15,
			Frames:   6,
			Width:    40,
			Height:   40,
		}
	case MonsterLamprey:
		return MonsterProfile{
			Kind:     MonsterLamprey,
			Health:   20,
			SpeedMin: 50,
			SpeedMax: 70,
			Damage:   10,
			XP:       10,
			Frames:   4,
			Width:    35,
			Height:   35,
		}
	case MonsterSquid:
		return MonsterProfile{
			Kind:     MonsterSquid,
			Health:   200,
			SpeedMin: 30,
			SpeedMax: 40,
			Damage:   30,
			XP:       50,
			Frames:   4,
			Width:    200,
			Height:   200,
		}
	case MonsterSwordFish:
		return MonsterProfile{
			Kind:     MonsterSwordFish,
			Health:   40,
			SpeedMin: 100,
			SpeedMax: 150,
			Damage:   25,
			XP:       30,
			Frames:   3,
			Width:    56,
			Height:   32,
		}
	case MonsterFly:
		return MonsterProfile{
			Kind:     MonsterFly,
			Health:   20,
			SpeedMin: 30,
			SpeedMax: 50,
			Damage:   5,
			XP:       50,
			Frames:   1,
			Width:    40,
			Height:   40,
		}
	default:
		return GetMonsterProfile(MonsterFly)
	}
}
