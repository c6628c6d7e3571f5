package estconfig

// EffectRef is one entry of a set-valued effect key (spec §6:
// "structParams = {…}, attrParams = {Sender(bin_attr_name), …}"): the
// effect's registered name plus whatever parenthesized arguments it was
// given (a decay constant, an attribute name, a pair of covariate names).
type EffectRef struct {
	Name string
	Args []string
}

// Config is one parsed task configuration (spec §6). Field names mirror
// the config keys in UpperCamelCase; defaults are applied by
// defaultConfig before parsing overwrites them.
type Config struct {
	ACAS  float64
	ACAEE float64
	CompC float64

	SamplerSteps  int // m
	SSteps        int // M1_steps
	EESteps       int // M_out
	EEInnerSteps  int // M_in

	OutputAllSteps           bool
	UseIFDSampler            bool
	IfdK                     float64
	OutputSimulatedNetwork   bool
	UseConditionalEstimation bool
	ForbidReciprocity        bool

	ArclistFile  string
	BinattrFile  string
	CatattrFile  string
	ContattrFile string
	SetattrFile  string
	ZoneFile     string

	ThetaFilePrefix  string
	DzAFilePrefix    string
	SimNetFilePrefix string

	StructParams          []EffectRef
	AttrParams            []EffectRef
	DyadicParams          []EffectRef
	AttrInteractionParams []EffectRef

	// MuFloor and SigmaFloor expose the §4.6/§9 magic constants (0.1 and
	// 1e-10 in the reference source) as configuration, per spec §9's
	// design note, with those values as defaults.
	MuFloor    float64
	SigmaFloor float64

	// UseBorisenkoUpdate, LearningRate, and MinTheta are declared but
	// never read by AlgorithmEE (spec §9's open question: "do not guess
	// the update rule"). Parsed and validated as well-typed, kept for
	// forward compatibility, never consumed.
	UseBorisenkoUpdate bool
	LearningRate       float64
	MinTheta           float64
}

// defaultConfig returns a Config with every documented default applied
// (spec §6's table); Parse starts from this and overwrites fields the
// input file sets explicitly.
func defaultConfig() *Config {
	return &Config{
		ACAS:       1e-9, // spec §6 only documents ACA_EE's default; ACA_S mirrors it absent other guidance
		ACAEE:      1e-9,
		CompC:      1e-2,
		IfdK:       0.1,
		MuFloor:    0.1,
		SigmaFloor: 1e-10,
	}
}
