// Package facts holds the "did you know" space facts shown on the page.
package facts

import "math/rand/v2"

var spaceFacts = []string{
	"Venus spins backwards, so the Sun rises in the west there.",
	"A day on Venus is longer than a year on Venus because it rotates very slowly.",
	"There are more stars in the observable universe than grains of sand on all of Earth's beaches.",
	"A teaspoon of neutron star would weigh about 6 billion tons on Earth.",
	"The footprints on the Moon will likely remain for millions of years because the Moon has no atmosphere.",
	"Jupiter's Great Red Spot is a storm larger than Earth and has existed for centuries.",
	"Space is not completely empty: it contains sparse gas, dust, and cosmic rays.",
	"A cloud holding 140 trillion times the water of Earth's oceans was found around a quasar.",
	"Trillions of neutrinos from the Sun pass through your body every second without you noticing.",
	"Pluto's shadowed regions plunge below -400°F (-240°C).",
}

// Picker chooses a fact. The zero value uses the global random source.
type Picker struct {
	IntN func(n int) int
}

func (p Picker) Random() string {
	intN := p.IntN
	if intN == nil {
		intN = rand.IntN
	}
	return spaceFacts[intN(len(spaceFacts))]
}

// All returns a copy of every fact.
func All() []string {
	return append([]string(nil), spaceFacts...)
}
