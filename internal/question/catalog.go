package question

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownBank is returned when a bank key is not in the catalog.
	ErrUnknownBank = errors.New("unknown question bank")

	// ErrBankUnavailable is returned for catalog banks without a dataset.
	ErrBankUnavailable = errors.New("question bank has no dataset yet")
)

// Tier groups certification banks by level.
type Tier string

const (
	TierFoundational Tier = "foundational"
	TierAssociate    Tier = "associate"
	TierProfessional Tier = "professional"
)

// Bank describes one question bank. Its Key doubles as the namespace
// prefix for every question identifier loaded from it.
type Bank struct {
	Key       string
	Name      string
	ShortName string
	Tier      Tier

	// Dataset is the file name under the data directory. Empty means the
	// bank is listed but not yet available.
	Dataset string
}

// Available reports whether the bank can be loaded.
func (b Bank) Available() bool {
	return b.Dataset != ""
}

// Catalog lists every known bank, grouped by tier.
var Catalog = []Bank{
	{Key: "cdl", Name: "Cloud Digital Leader", ShortName: "CDL", Tier: TierFoundational},
	{Key: "genai", Name: "Generative AI Leader", ShortName: "GenAI", Tier: TierFoundational, Dataset: "genai.json"},
	{Key: "ace", Name: "Cloud Engineer", ShortName: "ACE", Tier: TierAssociate},
	{Key: "adp", Name: "Data Practitioner", ShortName: "ADP", Tier: TierAssociate},
	{Key: "agwa", Name: "Google Workspace Administrator", ShortName: "AGWA", Tier: TierAssociate},
	{Key: "pca", Name: "Cloud Architect", ShortName: "PCA", Tier: TierProfessional},
	{Key: "pcde", Name: "Cloud Database Engineer", ShortName: "PCDE", Tier: TierProfessional},
	{Key: "pcd", Name: "Cloud Developer", ShortName: "PCD", Tier: TierProfessional},
	{Key: "pde", Name: "Data Engineer", ShortName: "PDE", Tier: TierProfessional, Dataset: "pde.json"},
	{Key: "pcdo", Name: "Cloud DevOps Engineer", ShortName: "PCDO", Tier: TierProfessional},
	{Key: "pcse", Name: "Cloud Security Engineer", ShortName: "PCSE", Tier: TierProfessional},
	{Key: "pcne", Name: "Cloud Network Engineer", ShortName: "PCNE", Tier: TierProfessional},
	{Key: "pmle", Name: "Machine Learning Engineer", ShortName: "PMLE", Tier: TierProfessional, Dataset: "pmle.json"},
	{Key: "psoe", Name: "Security Operations Engineer", ShortName: "PSOE", Tier: TierProfessional},
}

// DefaultBank is used when no bank has been selected yet.
const DefaultBank = "pmle"

// Lookup returns the catalog entry for key.
func Lookup(key string) (Bank, error) {
	for _, b := range Catalog {
		if b.Key == key {
			return b, nil
		}
	}
	return Bank{}, fmt.Errorf("%w: %q", ErrUnknownBank, key)
}

// Available returns the banks that have a dataset, in catalog order.
func Available() []Bank {
	var out []Bank
	for _, b := range Catalog {
		if b.Available() {
			out = append(out, b)
		}
	}
	return out
}
