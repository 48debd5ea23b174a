package privacy

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

//go:embed privacy-policy.json
var defaultPolicy []byte

var Paths = []string{"/privacy", "/privacy-policy"}

type Policy struct {
	EffectiveDate string `json:"effective_date" example:"2025-01-01"`
	Policy        string `json:"policy"`
}

// Load reads the policy document at path, or the built-in one when path is
// empty.
func Load(path string) (*Policy, error) {
	data := defaultPolicy
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("read privacy policy: %w", err)
		}
	}

	var p Policy
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse privacy policy: %w", err)
	}
	if p.Policy == "" {
		return nil, errors.New("privacy policy text is empty")
	}
	return &p, nil
}
