package automaton

// Size limits mirroring the teacher's DefaultMaxStates/StrictMaxStates
// constants (fsm/validation.go), generalized from the teacher's
// state-count-only limits to also bound alphabet size, since this
// package's alphabet is an explicit constructor argument rather than an
// implicit AddSymbol sequence.
const (
	DefaultMaxStates       = 1000
	DefaultMaxAlphabetSize = 100
	StrictMaxStates        = 100
	StrictMaxAlphabetSize  = 50
)

// ValidatorConfig controls which limits InputValidator enforces, mirroring
// the teacher's fsm.ValidatorConfig.
type ValidatorConfig struct {
	StrictMode      bool
	MaxStates       int
	MaxAlphabetSize int
}

// DefaultValidatorConfig mirrors the teacher's fsm.DefaultValidatorConfig.
func DefaultValidatorConfig() ValidatorConfig {
	return ValidatorConfig{MaxStates: DefaultMaxStates, MaxAlphabetSize: DefaultMaxAlphabetSize}
}

// StrictValidatorConfig mirrors the teacher's fsm.StrictValidatorConfig.
func StrictValidatorConfig() ValidatorConfig {
	return ValidatorConfig{StrictMode: true, MaxStates: StrictMaxStates, MaxAlphabetSize: StrictMaxAlphabetSize}
}

// InputValidator enforces resource-bound sanity checks before a Builder
// assembles an automaton, mirroring the teacher's fsm.InputValidator but
// scoped to the checks that make sense ahead of the dense-int core: size
// and alphabet-size ceilings. Shape invariants proper (initial in range,
// destinations in range) are always enforced by Assemble regardless of
// this validator, so they are not duplicated here.
type InputValidator struct {
	config ValidatorConfig
}

// NewInputValidator builds an InputValidator from config.
func NewInputValidator(config ValidatorConfig) *InputValidator {
	return &InputValidator{config: config}
}

// ValidateShape checks size and alphabetSize against the configured
// limits, collecting every violation via an ErrorCollector the way the
// teacher's Validate does, rather than stopping at the first failure.
func (v *InputValidator) ValidateShape(size, alphabetSize int) error {
	var collector ErrorCollector
	if v.config.MaxStates > 0 && size > v.config.MaxStates {
		collector.Add(NewValidationError("state count exceeds configured maximum").
			WithContext("size", size).WithContext("max", v.config.MaxStates))
	}
	if v.config.MaxAlphabetSize > 0 && alphabetSize > v.config.MaxAlphabetSize {
		collector.Add(NewValidationError("alphabet size exceeds configured maximum").
			WithContext("alphabet_size", alphabetSize).WithContext("max", v.config.MaxAlphabetSize))
	}
	return collector.ToError()
}
