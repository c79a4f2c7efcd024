package game

import (
	"math"

	"github.com/sirupsen/logrus"
)

// XPToNext returns the XP needed to advance from level
func (p *Player) XPToNext(level int) int {
	return p.cfg.XPBase + (level-1)*p.cfg.XPStep
}

// AddXP accumulates XP and levels up as many times as it covers.
// At max level the leftover never exceeds the last threshold.
func (p *Player) AddXP(amount int) {
	if amount <= 0 || p.Level >= p.cfg.MaxLevel {
		return
	}

	p.XP += amount
	for p.Level < p.cfg.MaxLevel && p.XP >= p.XPToNext(p.Level) {
		p.XP -= p.XPToNext(p.Level)
		p.levelUp()
	}

	if p.Level >= p.cfg.MaxLevel {
		p.XP = min(p.XP, p.XPToNext(p.Level))
	}
}

func (p *Player) levelUp() {
	p.Level++
	cfg := p.cfg

	step := float64(cfg.MaxDamage-cfg.BaseDamage) / float64(cfg.MaxLevel-1)
	p.Damage = int(math.Round(float64(cfg.BaseDamage) + step*float64(p.Level-1)))

	p.BoostCost = max(cfg.BoostCostFloor, cfg.BoostCost-float64(p.Level)*cfg.BoostCostStep)
	p.TorpedoCost = max(cfg.TorpedoCostFloor, cfg.TorpedoCost-float64(p.Level)*cfg.TorpedoCostStep)
	p.updateHPRegenRate()

	p.log.WithFields(logrus.Fields{
		"level":  p.Level,
		"damage": p.Damage,
	}).Info("level up")
}

// updateHPRegenRate sets the regen rate for the current level: nothing
// below the required level, the minimum until the upper half of the range,
// then the maximum
func (p *Player) updateHPRegenRate() {
	cfg := p.cfg
	if p.Level < cfg.HPRegenLevel {
		p.HPRegenRate = 0
		return
	}
	increment := math.Round(float64(p.Level-cfg.HPRegenLevel) / float64(cfg.MaxLevel-cfg.HPRegenLevel))
	p.HPRegenRate = math.Round(cfg.HPRegenMin + increment*(cfg.HPRegenMax-cfg.HPRegenMin))
}
