package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SigningAuthority is a person authorized to sign the final bid report.
type SigningAuthority struct {
	Name        string `yaml:"name"`
	Designation string `yaml:"designation"`
	DIN         string `yaml:"din,omitempty"`
}

// CompanyProfile holds the responding company's details. Consumed only
// by report rendering, never by the pipeline core.
type CompanyProfile struct {
	CompanyName        string             `yaml:"companyName"`
	CompanyAddress     string             `yaml:"companyAddress"`
	GSTIN              string             `yaml:"gstin"`
	PAN                string             `yaml:"pan"`
	SigningAuthorities []SigningAuthority `yaml:"signingAuthorities"`
}

// DefaultProfile returns the demo company profile used when no profile
// file is configured.
func DefaultProfile() CompanyProfile {
	return CompanyProfile{
		CompanyName:    "Bidforge Industrial Supplies Pvt. Ltd.",
		CompanyAddress: "Plot 14, Sector 5, Rourkela Industrial Estate, Odisha 769002",
		GSTIN:          "21AAACB1234F1Z5",
		PAN:            "AAACB1234F",
		SigningAuthorities: []SigningAuthority{
			{Name: "R. K. Mahapatra", Designation: "Director, Sales", DIN: "01234567"},
		},
	}
}

// LoadProfile reads a company profile from a YAML file.
func LoadProfile(path string) (CompanyProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CompanyProfile{}, fmt.Errorf("read profile: %w", err)
	}

	var profile CompanyProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return CompanyProfile{}, fmt.Errorf("parse profile: %w", err)
	}

	if profile.CompanyName == "" {
		return CompanyProfile{}, fmt.Errorf("profile %s is missing companyName", path)
	}

	return profile, nil
}
