package game

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Bounds is the playable area of the world
type Bounds struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`

	// NorthLimit is the surface line; actors never rise above it
	NorthLimit float64 `yaml:"north_limit"`
}

// Width returns the horizontal extent of the bounds
func (b Bounds) Width() float64 { return b.Right - b.Left }

// Height returns the vertical extent of the bounds
func (b Bounds) Height() float64 { return b.Bottom - b.Top }

// Rect returns the bounds as a rectangle
func (b Bounds) Rect() Rect { return RectFromCorners(b.Left, b.Top, b.Right, b.Bottom) }

// WorldConfig describes static geometry and the player start
type WorldConfig struct {
	Bounds Bounds `yaml:"bounds"`

	// CleanupTop is the northern edge used to discard stray torpedoes
	CleanupTop float64 `yaml:"cleanup_top"`

	// CellSize is the size of each spatial partition cell in pixels
	CellSize float64 `yaml:"cell_size"`

	// Obstacles block every actor and torpedo
	Obstacles []Rect `yaml:"obstacles"`

	// Props only stop torpedoes
	Props []Rect `yaml:"props"`

	// BorderWallThickness adds solid walls around the bounds (0 disables them)
	BorderWallThickness float64 `yaml:"border_wall_thickness"`

	PlayerStart Vec2 `yaml:"player_start"`
}

// PlayerConfig holds player movement, economy and progression tuning
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	Speed      float64 `yaml:"speed"`
	BoostSpeed float64 `yaml:"boost_speed"`
	Health     int     `yaml:"health"`
	Power      float64 `yaml:"power"`
	PowerRegen float64 `yaml:"power_regen"`

	BoostCost       float64 `yaml:"boost_cost"`
	TorpedoCost     float64 `yaml:"torpedo_cost"`
	TorpedoCooldown float64 `yaml:"torpedo_cooldown"`

	HitCooldown  float64 `yaml:"hit_cooldown"`
	HitFlash     float64 `yaml:"hit_flash"`
	LowHealth    int     `yaml:"low_health"`
	CrosshairLen float64 `yaml:"crosshair_length"`

	MaxLevel   int `yaml:"max_level"`
	BaseDamage int `yaml:"base_damage"`
	MaxDamage  int `yaml:"max_damage"`
	XPBase     int `yaml:"xp_base"`
	XPStep     int `yaml:"xp_step"`

	// Per-level cost reduction and the floor it stops at
	BoostCostStep    float64 `yaml:"boost_cost_step"`
	BoostCostFloor   float64 `yaml:"boost_cost_floor"`
	TorpedoCostStep  float64 `yaml:"torpedo_cost_step"`
	TorpedoCostFloor float64 `yaml:"torpedo_cost_floor"`

	HPRegenLevel int     `yaml:"hp_regen_level"`
	HPRegenDelay float64 `yaml:"hp_regen_delay"`
	HPRegenMin   float64 `yaml:"hp_regen_min"`
	HPRegenMax   float64 `yaml:"hp_regen_max"`

	AnimationInterval float64 `yaml:"animation_interval"`
}

// SonarConfig holds sonar ability tuning
type SonarConfig struct {
	Level    int     `yaml:"level"`
	Duration float64 `yaml:"duration"`
	Cooldown float64 `yaml:"cooldown"`
	Cost     float64 `yaml:"cost"`
	Range    float64 `yaml:"range"`
}

// MonsterConfig holds the AI tuning shared by all species
type MonsterConfig struct {
	DetectionRange    float64 `yaml:"detection_range"`
	LoseInterestRange float64 `yaml:"lose_interest_range"`
	WanderInterval    float64 `yaml:"wander_interval"`
	AttackCooldown    float64 `yaml:"attack_cooldown"`
	RepulsionDistance float64 `yaml:"repulsion_distance"`
	KnockbackDistance float64 `yaml:"knockback_distance"`
	VisibilityRadius  float64 `yaml:"visibility_radius"`
	FogRadius         float64 `yaml:"fog_radius"`
	HitboxMargin      float64 `yaml:"hitbox_margin"`
	AnimationInterval float64 `yaml:"animation_interval"`
}

// TorpedoConfig holds flight tuning
type TorpedoConfig struct {
	DropDuration  float64 `yaml:"drop_duration"`
	FloatDuration float64 `yaml:"float_duration"`
	AccelDuration float64 `yaml:"accel_duration"`

	DropSpeed    float64 `yaml:"drop_speed"`
	FloatSpeed   float64 `yaml:"float_speed"`
	Acceleration float64 `yaml:"acceleration"`
	MaxSpeed     float64 `yaml:"max_speed"`

	// MinSpeedRatio is the fraction of MaxSpeed an active torpedo never drops below
	MinSpeedRatio   float64 `yaml:"min_speed_ratio"`
	WobbleFrequency float64 `yaml:"wobble_frequency"`
	Gravity         Vec2    `yaml:"gravity"`
	Drag            float64 `yaml:"drag"`

	SplashRadius float64 `yaml:"splash_radius"`
	HitboxShrink float64 `yaml:"hitbox_shrink"`

	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	Frames            int     `yaml:"frames"`
	AnimationInterval float64 `yaml:"animation_interval"`
}

// SpawnKindConfig describes where and how often one species spawns
type SpawnKindConfig struct {
	Kind         MonsterKind `yaml:"kind"`
	Areas        []Rect      `yaml:"areas"`
	InitialCount int         `yaml:"initial_count"`
	WaveRatio    float64     `yaml:"wave_ratio"`
}

// SpawnerConfig holds wave timing and per-species spawn data
type SpawnerConfig struct {
	Interval           float64           `yaml:"interval"`
	DifficultyInterval float64           `yaml:"difficulty_interval"`
	DifficultyStep     float64           `yaml:"difficulty_step"`
	Kinds              []SpawnKindConfig `yaml:"kinds"`
}

// RespawnConfig holds respawn points and protection timing
type RespawnConfig struct {
	Points        []Vec2  `yaml:"points"`
	SafeRadius    float64 `yaml:"safe_radius"`
	Delay         float64 `yaml:"delay"`
	Protection    float64 `yaml:"protection"`
	FlashInterval float64 `yaml:"flash_interval"`
}

// PortalConfig holds the portal footprints in ring order
type PortalConfig struct {
	Rects             []Rect  `yaml:"rects"`
	Cooldown          float64 `yaml:"cooldown"`
	InteractionRadius float64 `yaml:"interaction_radius"`
	Frames            int     `yaml:"frames"`
	AnimationInterval float64 `yaml:"animation_interval"`
}

// ExplosionConfig holds the impact effect animation
type ExplosionConfig struct {
	Frames int     `yaml:"frames"`
	FPS    float64 `yaml:"fps"`
	Size   float64 `yaml:"size"`
}

// Config holds game configuration
type Config struct {
	// Seed for the simulation random source (0 picks one from the clock)
	Seed int64 `yaml:"seed"`

	// ScreenWidth is the window width in pixels
	ScreenWidth int `yaml:"screen_width"`

	// ScreenHeight is the window height in pixels
	ScreenHeight int `yaml:"screen_height"`

	World     WorldConfig     `yaml:"world"`
	Player    PlayerConfig    `yaml:"player"`
	Sonar     SonarConfig     `yaml:"sonar"`
	Monsters  MonsterConfig   `yaml:"monsters"`
	Torpedo   TorpedoConfig   `yaml:"torpedo"`
	Spawner   SpawnerConfig   `yaml:"spawner"`
	Respawn   RespawnConfig   `yaml:"respawn"`
	Portals   PortalConfig    `yaml:"portals"`
	Explosion ExplosionConfig `yaml:"explosion"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  1280,
		ScreenHeight: 720,
		World: WorldConfig{
			Bounds: Bounds{
				Left:       -6400,
				Right:      6400,
				Top:        795,
				Bottom:     3520,
				NorthLimit: 795,
			},
			CleanupTop: -3520,
			CellSize:   256,
			Obstacles: []Rect{
				{X: 2400, Y: 2400, W: 320, H: 160},
				{X: -1600, Y: 1800, W: 480, H: 240},
				{X: 4600, Y: 1200, W: 256, H: 256},
			},
			Props: []Rect{
				{X: 1500, Y: 2600, W: 96, H: 64},
				{X: 5200, Y: 2900, W: 128, H: 48},
			},
			BorderWallThickness: 64,
			PlayerStart:         Vec2{X: 1920, Y: 1080},
		},
		Player: PlayerConfig{
			Width:            32,
			Height:           32,
			Speed:            120,
			BoostSpeed:       200,
			Health:           100,
			Power:            100,
			PowerRegen:       5,
			BoostCost:        10,
			TorpedoCost:      15,
			TorpedoCooldown:  0.5,
			HitCooldown:      1.0,
			HitFlash:         0.2,
			LowHealth:        20,
			CrosshairLen:     50,
			MaxLevel:         20,
			BaseDamage:       20,
			MaxDamage:        100,
			XPBase:           50,
			XPStep:           25,
			BoostCostStep:    0.4,
			BoostCostFloor:   3,
			TorpedoCostStep:  0.6,
			TorpedoCostFloor: 5,
			HPRegenLevel:     3,
			HPRegenDelay:     5.0,
			HPRegenMin:       1,
			HPRegenMax:       5,

			AnimationInterval: 0.15,
		},
		Sonar: SonarConfig{
			Level:    5,
			Duration: 3.5,
			Cooldown: 8.0,
			Cost:     35,
			Range:    1000,
		},
		Monsters: MonsterConfig{
			DetectionRange:    400,
			LoseInterestRange: 500,
			WanderInterval:    2.0,
			AttackCooldown:    1.0,
			RepulsionDistance: 2,
			KnockbackDistance: 20,
			VisibilityRadius:  275,
			FogRadius:         300,
			HitboxMargin:      0.2,
			AnimationInterval: 0.4,
		},
		Torpedo: TorpedoConfig{
			DropDuration:      0.3,
			FloatDuration:     0.1,
			AccelDuration:     0.2,
			DropSpeed:         30,
			FloatSpeed:        10,
			Acceleration:      1000,
			MaxSpeed:          1500,
			MinSpeedRatio:     0.7,
			WobbleFrequency:   8,
			Gravity:           Vec2{X: 0, Y: 0.15},
			Drag:              0.995,
			SplashRadius:      80,
			HitboxShrink:      15,
			Width:             40,
			Height:            16,
			Frames:            5,
			AnimationInterval: 0.2,
		},
		Spawner: SpawnerConfig{
			Interval:           30,
			DifficultyInterval: 60,
			DifficultyStep:     0.25,
			Kinds: []SpawnKindConfig{
				{
					Kind:         MonsterLamprey,
					Areas:        []Rect{RectFromCorners(344, 900, 2176, 900), RectFromCorners(344, 1080, 2176, 1080)},
					InitialCount: 20,
					WaveRatio:    4,
				},
				{
					Kind:         MonsterSquid,
					Areas:        []Rect{RectFromCorners(2472, 1521, 4027, 1521), RectFromCorners(2472, 1864, 4027, 1864)},
					InitialCount: 4,
					WaveRatio:    1,
				},
				{
					Kind:         MonsterAnglerFish,
					Areas:        []Rect{RectFromCorners(2764, 3420, 3948, 3420), RectFromCorners(2764, 3198, 3948, 3198)},
					InitialCount: 15,
					WaveRatio:    3,
				},
				{
					Kind:         MonsterSwordFish,
					Areas:        []Rect{RectFromCorners(5576, 928, 6236, 928), RectFromCorners(5576, 1306, 6236, 1306)},
					InitialCount: 4,
					WaveRatio:    2,
				},
			},
		},
		Respawn: RespawnConfig{
			Points:        []Vec2{{X: 6025, Y: 3150}, {X: 867, Y: 2145}, {X: 1050, Y: 3380}},
			SafeRadius:    350,
			Delay:         2.0,
			Protection:    10,
			FlashInterval: 0.2,
		},
		Portals: PortalConfig{
			Rects: []Rect{
				RectFromCorners(1176, 1079, 1291, 1237),
				RectFromCorners(3671, 1922, 3786, 2080),
				RectFromCorners(3973, 2718, 4088, 2876),
				RectFromCorners(6249, 2072, 6364, 2230),
			},
			Cooldown:          10,
			InteractionRadius: 100,
			Frames:            6,
			AnimationInterval: 0.15,
		},
		Explosion: ExplosionConfig{
			Frames: 6,
			FPS:    15,
			Size:   32,
		},
	}
}

// LoadConfig reads a YAML file and applies it on top of DefaultConfig
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML overrides on top of DefaultConfig and validates the result
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the relations the simulation depends on
func (c Config) Validate() error {
	b := c.World.Bounds
	switch {
	case b.Right <= b.Left || b.Bottom <= b.Top:
		return fmt.Errorf("%w: world bounds are empty", ErrInvalidConfig)
	case c.World.CellSize <= 0:
		return fmt.Errorf("%w: world.cell_size must be positive", ErrInvalidConfig)
	case c.Monsters.LoseInterestRange <= c.Monsters.DetectionRange:
		return fmt.Errorf("%w: monsters.lose_interest_range (%v) must exceed detection_range (%v)",
			ErrInvalidConfig, c.Monsters.LoseInterestRange, c.Monsters.DetectionRange)
	case c.Monsters.FogRadius <= c.Monsters.VisibilityRadius:
		return fmt.Errorf("%w: monsters.fog_radius must exceed visibility_radius", ErrInvalidConfig)
	case c.Monsters.WanderInterval <= 0:
		return fmt.Errorf("%w: monsters.wander_interval must be positive", ErrInvalidConfig)
	case c.Torpedo.DropDuration <= 0 || c.Torpedo.FloatDuration <= 0 || c.Torpedo.AccelDuration <= 0:
		return fmt.Errorf("%w: torpedo phase durations must be positive", ErrInvalidConfig)
	case c.Torpedo.MaxSpeed <= 0:
		return fmt.Errorf("%w: torpedo.max_speed must be positive", ErrInvalidConfig)
	case c.Player.Health <= 0 || c.Player.Power <= 0:
		return fmt.Errorf("%w: player health and power must be positive", ErrInvalidConfig)
	case c.Player.MaxLevel < 2:
		return fmt.Errorf("%w: player.max_level must be at least 2", ErrInvalidConfig)
	case c.Player.HPRegenLevel >= c.Player.MaxLevel:
		return fmt.Errorf("%w: player.hp_regen_level must be below max_level", ErrInvalidConfig)
	case c.Player.XPBase <= 0 || c.Player.XPStep < 0:
		return fmt.Errorf("%w: player xp table must be increasing from a positive base", ErrInvalidConfig)
	case c.Spawner.Interval <= 0 || c.Spawner.DifficultyInterval <= 0:
		return fmt.Errorf("%w: spawner intervals must be positive", ErrInvalidConfig)
	case c.Spawner.DifficultyStep < 0:
		return fmt.Errorf("%w: spawner.difficulty_step must not be negative", ErrInvalidConfig)
	case c.Respawn.FlashInterval <= 0:
		return fmt.Errorf("%w: respawn.flash_interval must be positive", ErrInvalidConfig)
	case c.Explosion.FPS <= 0:
		return fmt.Errorf("%w: explosion.fps must be positive", ErrInvalidConfig)
	}
	for _, k := range c.Spawner.Kinds {
		if len(k.Areas) == 0 {
			return fmt.Errorf("%w: spawner kind %s has no areas", ErrInvalidConfig, k.Kind)
		}
	}
	return nil
}

// CellCountX returns the number of cells in the X direction
func (c Config) CellCountX() int {
	return max(1, int(c.World.Bounds.Width()/c.World.CellSize)+1)
}

// CellCountY returns the number of cells in the Y direction
func (c Config) CellCountY() int {
	return max(1, int(c.World.Bounds.Height()/c.World.CellSize)+1)
}
