package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vi-cosmos/generator"
	"github.com/lixenwraith/vi-cosmos/parameter"
)

// arrivalFrequencies returns the two note pitches for a from -> to arrival
func arrivalFrequencies(from, to generator.Tier) (first, second float64) {
	finer := max(from, to)
	base := parameter.ArrivalBaseFrequency * math.Pow(parameter.ArrivalInterval, float64(finer-1))
	high := base * parameter.ArrivalInterval
	if to > from {
		return base, high
	}
	return high, base
}

func arrivalNote(freq float64) note {
	return note{
		freq:    freq,
		wave:    triangle,
		length:  parameter.ArrivalNoteDuration,
		attack:  parameter.ArrivalNoteAttack,
		release: parameter.ArrivalNoteRelease,
		gain:    1,
	}
}

// ArrivalTone builds the two-note arrival cue
func ArrivalTone(from, to generator.Tier, rate beep.SampleRate) beep.Streamer {
	f1, f2 := arrivalFrequencies(from, to)
	return beep.Seq(arrivalNote(f1).streamer(rate), arrivalNote(f2).streamer(rate))
}

// InspectTone builds the short inspection tick
func InspectTone(rate beep.SampleRate) beep.Streamer {
	return note{
		freq:    parameter.InspectSoundFrequency,
		wave:    sine,
		length:  parameter.InspectSoundDuration,
		attack:  parameter.InspectSoundAttack,
		release: parameter.InspectSoundRelease,
		gain:    parameter.InspectSoundVolume,
	}.streamer(rate)
}
