package config

// Presets offers one named configuration per end-to-end scenario in
// spec.md §8, keeping the teacher's named-preset lookup pattern.
var Presets = map[string]*Config{
	"scenario1_rk4_cosine": {
		Method: "rk4_classical", Problem: "cos", Dt: 2 * 3.14159265358979 / 180, Steps: 180,
	},
	"scenario2_euler_exp": {
		Method: "euler", Problem: "exp", Dt: 0.01, Steps: 100,
	},
	"scenario2_rk4_exp": {
		Method: "rk4_classical", Problem: "exp", Dt: 0.01, Steps: 100,
	},
	"scenario3_dopri8": {
		Method: "dopri8", Problem: "sin(x)*cos(10x)", Dt: 2 * 3.14159265358979 / 180, Steps: 180,
	},
	"scenario4_everhart15_exp": {
		Method: "everhart_15", Problem: "exp", Dt: 1, Steps: 1,
		Everhart: EverhartConfig{Order: 15, LocalError: 1e-11, MaxIterations: 100, VerifyConvergence: true},
	},
	"scenario5_everhart_interpolation": {
		Method: "everhart_9", Problem: "exp", Dt: 0.05, Steps: 10, InterpolationPoints: 3,
		Everhart: EverhartConfig{Order: 9, LocalError: 1e-11, MaxIterations: 100, VerifyConvergence: true},
	},
	"spacecraft_leo": {
		Method: "dopri8", Problem: "spacecraft", Dt: 1.0, Steps: 5400,
	},
}

// GetPreset looks up a named preset, returning nil if it doesn't exist.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns every preset name.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
