// internal/advisor/fallback.go
package advisor

import "fmt"

// FallbackAdvice is used when a summary cannot be generated.
var FallbackAdvice = []string{
	"Hold the mountain pass, for the Eagle!",
	"The mountains are our fortress, honor is our shield.",
	"Let the Osmans hear the roar of the Albanian lion!",
	"Steel your hearts; the high ground belongs to us.",
	"By Skanderbeg's blade, no invader shall pass!",
	"The enemy outnumbers us, but they cannot outmatch our spirit.",
	"Krujë must not fall! Check your sentry overlaps.",
	"A gold-rich treasury is useless if the gates are broken.",
	"Watch the rearguard; mountain raiders are cunning.",
}

// FallbackWaves is used when a wave description cannot be generated.
var FallbackWaves = []string{
	"Scouts report a vanguard of raiders approaching from the valley.",
	"The horizon is dark with the banners of the coalition forces.",
	"Dust rises from the mountain trail; heavy infantry is sighted.",
	"A massive detachment of Janissaries is preparing for a breach.",
	"The enemy regrouped. This wave looks stronger than the last.",
	"Archers! Prepare for a coordinated assault from the flanks.",
	"The coalition forces are mobilizing their elite phalanxes.",
}

// FallbackWave returns the static description for wave.
func FallbackWave(wave int) string {
	if wave < 0 {
		wave = -wave
	}
	return FallbackWaves[wave%len(FallbackWaves)]
}

func wavePrompt(wave int) string {
	return fmt.Sprintf("Describe Wave %d of a medieval invasion by the Osman coalition against Albania. "+
		"Field report style. Max 15 words.", wave)
}

func summaryPrompt(st State) string {
	return fmt.Sprintf("Context: A Medieval Tower Defense Game set in Albania (era of Skanderbeg).\n"+
		"Current Stats: Wave %d, Gold %d, Castle Integrity %d%%.\n"+
		"You are a grizzled Albanian war advisor. Provide a one-sentence tactical advice or a rallying cry "+
		"in a medieval warrior's tone. Mention 'Osmans', 'Serbs', or 'Greeks' if relevant. "+
		"Invoke the 'Eagle' or 'Krujë'. Max 15 words.", st.Wave, st.Gold, st.Lives)
}
