package walk

// Default parameters of a single simulated walk.
const (
	DefaultProbability = 0.5 // probability of an up-step
	DefaultSteps       = 100 // number of steps of a single walk
	DefaultStart       = 0   // start position of the walk
)

// Default parameters of a Monte Carlo study of the walk statistics.
const (
	StudySteps    = 222    // number of steps per walk of a study
	DefaultTrials = 10_000 // number of independent walks of a study
)

// NumECDFPoints sets the number of points in the empirical cumulative distribution function.
const NumECDFPoints = 300
