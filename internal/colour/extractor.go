package colour

import "fmt"

// Algorithm represents the colour extraction algorithm type.
type Algorithm string

const (
	// AlgorithmDominant classifies sampled pixels against a fixed whitelist
	// and ranks the whitelist by hit frequency.
	AlgorithmDominant Algorithm = "dominant"

	// AlgorithmKMeans uses k-means clustering for colour extraction.
	// Not implemented - clustering is out of scope for huecount.
	AlgorithmKMeans Algorithm = "kmeans"

	// AlgorithmMedianCut uses the median cut algorithm for colour extraction.
	// Not implemented - placeholder for future.
	AlgorithmMedianCut Algorithm = "mediancut"
)

// ValidAlgorithms returns a list of valid algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{
		AlgorithmDominant,
		// Future algorithms will be added here
	}
}

// IsValidAlgorithm checks if the given algorithm name is valid.
func IsValidAlgorithm(alg Algorithm) bool {
	for _, valid := range ValidAlgorithms() {
		if alg == valid {
			return true
		}
	}
	return false
}

// ExtractorConfig holds configuration for colour extraction.
type ExtractorConfig struct {
	Algorithm     Algorithm
	Precision     int
	DefaultLength int
	Whitelist     []Packed
}

// DefaultExtractorConfig returns the default extractor configuration.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		Algorithm:     AlgorithmDominant,
		Precision:     DefaultPrecision,
		DefaultLength: DefaultLength,
		Whitelist:     DefaultWhitelist(),
	}
}

// Validate validates the extractor configuration.
func (c ExtractorConfig) Validate() error {
	if !IsValidAlgorithm(c.Algorithm) {
		return fmt.Errorf("invalid algorithm: %s", c.Algorithm)
	}
	if c.Precision < 1 {
		return fmt.Errorf("precision must be at least 1, got %d", c.Precision)
	}
	if c.DefaultLength < 0 {
		return fmt.Errorf("palette length cannot be negative, got %d", c.DefaultLength)
	}
	if len(c.Whitelist) == 0 {
		return fmt.Errorf("whitelist cannot be empty")
	}
	return nil
}

// NewExtractor creates a DominantExtractor from the given configuration.
// Returns an error if the algorithm is not recognised or not implemented.
func NewExtractor(cfg ExtractorConfig) (*DominantExtractor, error) {
	switch cfg.Algorithm {
	case AlgorithmDominant:
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return &DominantExtractor{
			Precision:     cfg.Precision,
			Whitelist:     cfg.Whitelist,
			DefaultLength: cfg.DefaultLength,
		}, nil
	case AlgorithmKMeans:
		return nil, fmt.Errorf("k-means algorithm not implemented")
	case AlgorithmMedianCut:
		return nil, fmt.Errorf("median cut algorithm not implemented")
	default:
		return nil, fmt.Errorf("unknown algorithm: %s (valid algorithms: %v)", cfg.Algorithm, ValidAlgorithms())
	}
}
