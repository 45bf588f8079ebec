package colour

import (
	"testing"
)

func TestExtractorConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ExtractorConfig)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *ExtractorConfig) {},
			wantErr: false,
		},
		{
			name:    "unknown algorithm",
			mutate:  func(c *ExtractorConfig) { c.Algorithm = "quantum" },
			wantErr: true,
		},
		{
			name:    "zero precision",
			mutate:  func(c *ExtractorConfig) { c.Precision = 0 },
			wantErr: true,
		},
		{
			name:    "negative length",
			mutate:  func(c *ExtractorConfig) { c.DefaultLength = -1 },
			wantErr: true,
		},
		{
			name:    "zero length is allowed",
			mutate:  func(c *ExtractorConfig) { c.DefaultLength = 0 },
			wantErr: false,
		},
		{
			name:    "empty whitelist",
			mutate:  func(c *ExtractorConfig) { c.Whitelist = nil },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultExtractorConfig()
			tt.mutate(&config)
			err := config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewExtractor(t *testing.T) {
	tests := []struct {
		name      string
		algorithm Algorithm
		wantErr   bool
	}{
		{name: "dominant", algorithm: AlgorithmDominant, wantErr: false},
		{name: "kmeans not implemented", algorithm: AlgorithmKMeans, wantErr: true},
		{name: "mediancut not implemented", algorithm: AlgorithmMedianCut, wantErr: true},
		{name: "unknown", algorithm: "sorcery", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultExtractorConfig()
			config.Algorithm = tt.algorithm
			extractor, err := NewExtractor(config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewExtractor() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && extractor == nil {
				t.Error("NewExtractor() returned nil extractor without error")
			}
		})
	}
}

func TestNewExtractorUsesConfig(t *testing.T) {
	config := DefaultExtractorConfig()
	config.Precision = 3
	config.DefaultLength = 7
	config.Whitelist = []Packed{0x000000, 0xffffff}

	extractor, err := NewExtractor(config)
	if err != nil {
		t.Fatalf("NewExtractor() error = %v", err)
	}

	if extractor.Precision != 3 {
		t.Errorf("Precision = %d, want 3", extractor.Precision)
	}
	if extractor.DefaultLength != 7 {
		t.Errorf("DefaultLength = %d, want 7", extractor.DefaultLength)
	}
	if len(extractor.Whitelist) != 2 {
		t.Errorf("len(Whitelist) = %d, want 2", len(extractor.Whitelist))
	}
}

func TestIsValidAlgorithm(t *testing.T) {
	if !IsValidAlgorithm(AlgorithmDominant) {
		t.Error("IsValidAlgorithm(dominant) = false, want true")
	}
	if IsValidAlgorithm(AlgorithmKMeans) {
		t.Error("IsValidAlgorithm(kmeans) = true, want false (not implemented)")
	}
}
