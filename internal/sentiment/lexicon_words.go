package sentiment

var defaultWords = map[string]float64{
	// positive
	"love":        0.5,
	"loved":       0.7,
	"loves":       0.5,
	"lovely":      0.5,
	"great":       0.8,
	"good":        0.7,
	"excellent":   1.0,
	"amazing":     0.6,
	"awesome":     1.0,
	"fantastic":   0.4,
	"wonderful":   1.0,
	"brilliant":   0.9,
	"perfect":     1.0,
	"perfectly":   1.0,
	"best":        1.0,
	"better":      0.5,
	"flawless":    0.8,
	"flawlessly":  0.8,
	"happy":       0.8,
	"glad":        0.5,
	"impressive":  1.0,
	"impressed":   0.7,
	"helpful":     0.5,
	"useful":      0.3,
	"easy":        0.43,
	"fast":        0.2,
	"faster":      0.3,
	"reliable":    0.5,
	"smooth":      0.4,
	"seamless":    0.6,
	"seamlessly":  0.6,
	"secure":      0.4,
	"powerful":    0.3,
	"recommend":   0.4,
	"recommended": 0.4,
	"nice":        0.6,
	"solid":       0.3,
	"stable":      0.3,
	"thanks":      0.2,
	"thank":       0.2,
	"superb":      1.0,
	"outstanding": 0.5,
	"exceptional": 0.67,
	"intuitive":   0.5,
	"innovative":  0.5,
	"valuable":    0.5,
	"win":         0.8,
	"success":     0.3,
	"successful":  0.75,
	"enjoy":       0.4,
	"enjoyed":     0.4,
	"pleased":     0.5,
	"exciting":    0.3,
	"excited":     0.4,
	"incredible":  0.9,
	"efficient":   0.4,
	"robust":      0.4,
	"favorite":    0.5,
	"beautiful":   0.85,
	"clean":       0.37,
	"clear":       0.1,
	"wow":         0.1,
	"improved":    0.3,
	"improvement": 0.3,

	// negative
	"bad":           -0.7,
	"terrible":      -1.0,
	"awful":         -1.0,
	"horrible":      -1.0,
	"worst":         -1.0,
	"worse":         -0.4,
	"poor":          -0.4,
	"broken":        -0.4,
	"breaks":        -0.4,
	"issue":         -0.3,
	"issues":        -0.4,
	"problem":       -0.4,
	"problems":      -0.4,
	"breach":        -0.6,
	"breached":      -0.6,
	"unresolved":    -0.5,
	"slow":          -0.3,
	"slower":        -0.3,
	"fail":          -0.5,
	"fails":         -0.5,
	"failed":        -0.5,
	"failure":       -0.5,
	"bug":           -0.4,
	"bugs":          -0.4,
	"buggy":         -0.6,
	"crash":         -0.6,
	"crashed":       -0.6,
	"crashes":       -0.6,
	"disappointed":  -0.75,
	"disappointing": -0.6,
	"frustrating":   -0.6,
	"frustrated":    -0.7,
	"useless":       -0.5,
	"error":         -0.4,
	"errors":        -0.4,
	"outage":        -0.6,
	"downtime":      -0.5,
	"vulnerable":    -0.5,
	"hate":          -0.8,
	"annoying":      -0.8,
	"confusing":     -0.4,
	"unreliable":    -0.5,
	"insecure":      -0.5,
	"delayed":       -0.3,
	"wrong":         -0.5,
	"sad":           -0.5,
	"angry":         -0.5,
	"unacceptable":  -0.8,
	"incompatible":  -0.5,
	"lost":          -0.3,
	"leak":          -0.5,
	"leaked":        -0.5,
	"painful":       -0.7,
	"nightmare":     -0.8,
	"ridiculous":    -0.33,
	"overpriced":    -0.5,
	"stupid":        -0.8,
	"waste":         -0.6,
}

var defaultIntensifiers = map[string]float64{
	"very":       1.3,
	"really":     1.3,
	"extremely":  1.5,
	"incredibly": 1.5,
	"super":      1.3,
	"highly":     1.3,
	"totally":    1.3,
	"absolutely": 1.5,
	"truly":      1.3,
	"quite":      1.1,
	"somewhat":   0.7,
	"slightly":   0.5,
	"barely":     0.5,
}

var defaultNegators = []string{
	"not", "no", "never", "nothing", "nor", "neither", "without", "cannot", "hardly",
}
