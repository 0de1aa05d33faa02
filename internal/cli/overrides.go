package cli

import (
	"fmt"
	"os"

	"zk-contact-backend/config"
	"zk-contact-backend/internal/domain"
	"zk-contact-backend/pkg/email"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Overrides is the optional YAML file accepted by --config.
//
//	branding:
//	  logoUrl: https://cdn.zkconcept.be/logo.png
//	samples:
//	  quote:
//	    fullName: Marie Peeters
type Overrides struct {
	Branding email.Branding               `yaml:"branding"`
	Samples  map[string]map[string]string `yaml:"samples"`
}

// LoadOverrides reads an overrides file. An empty path yields no overrides.
func LoadOverrides(path string) (*Overrides, error) {
	if path == "" {
		return &Overrides{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables
	data = []byte(os.ExpandEnv(string(data)))

	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &o, nil
}

// ResolveBranding layers the file branding over the environment. Fields
// left blank in both fall back to the renderer defaults at render time.
func (o *Overrides) ResolveBranding() (email.Branding, error) {
	var fromEnv config.BrandingConfig
	if err := env.Parse(&fromEnv); err != nil {
		return email.Branding{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	brand := o.Branding
	if err := mergo.Merge(&brand, email.Branding{
		LogoURL:      fromEnv.LogoURL,
		PrivacyURL:   fromEnv.PrivacyURL,
		LegalURL:     fromEnv.LegalURL,
		CompanyEmail: fromEnv.CompanyEmail,
		CompanyPhone: fromEnv.CompanyPhone,
	}); err != nil {
		return email.Branding{}, fmt.Errorf("failed to merge branding: %w", err)
	}
	return brand, nil
}

// Sample returns the built-in sample for kind with the file's fields
// applied on top.
func (o *Overrides) Sample(kind domain.FormKind, base domain.RawSubmission) (domain.RawSubmission, error) {
	fields, ok := o.Samples[string(kind)]
	if !ok {
		return base, nil
	}

	patch := make(domain.RawSubmission, len(fields))
	for k, v := range fields {
		patch[k] = v
	}
	if err := mergo.Merge(&base, patch, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge %s sample: %w", kind, err)
	}
	return base, nil
}
