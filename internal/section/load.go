package section

import (
	"encoding/json"
	"os"
)

// LoadFromFile loads a section definition from a JSON file
func LoadFromFile(filepath string) (*Dimensions, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var dims Dimensions
	if err := json.Unmarshal(data, &dims); err != nil {
		return nil, err
	}

	if err := dims.Validate(); err != nil {
		return nil, err
	}

	return &dims, nil
}
