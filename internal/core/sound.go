package core

// SoundID names one of the fixed set of sound assets.
type SoundID string

const (
	SoundBonus         SoundID = "bonus"
	SoundShield        SoundID = "shield"
	SoundShipFire      SoundID = "ship_fire"
	SoundBangLarge     SoundID = "bang_large"
	SoundBangMedium    SoundID = "bang_medium"
	SoundBangSmall     SoundID = "bang_small"
	SoundSaucerBig     SoundID = "saucer_big"
	SoundSaucerSmall   SoundID = "saucer_small"
	SoundShipThrust    SoundID = "ship_thrust"
	SoundShipExplosion SoundID = "ship_explosion"
	SoundTrails        SoundID = "trails"
)

// AllSounds lists every sound the game requests, in load order.
func AllSounds() []SoundID {
	return []SoundID{
		SoundBonus,
		SoundShield,
		SoundShipFire,
		SoundBangLarge,
		SoundBangMedium,
		SoundBangSmall,
		SoundSaucerBig,
		SoundSaucerSmall,
		SoundShipThrust,
		SoundShipExplosion,
		SoundTrails,
	}
}

// SoundDevice plays the game's sound effects.
// Load is called once at startup; the remaining calls never fail.
type SoundDevice interface {
	Load(ids []SoundID) error
	Play(id SoundID, loop bool)
	Stop(id SoundID)
	StopAll()
	SetMasterVolume(v float64)
}

// NopSound is a silent SoundDevice.
type NopSound struct{}

func (NopSound) Load([]SoundID) error    { return nil }
func (NopSound) Play(SoundID, bool)      {}
func (NopSound) Stop(SoundID)            {}
func (NopSound) StopAll()                {}
func (NopSound) SetMasterVolume(float64) {}
