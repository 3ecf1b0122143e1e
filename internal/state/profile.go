package state

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrInvalidProfileField indicates an unknown profile field name.
var ErrInvalidProfileField = errors.New("invalid profile field")

// ProfileField names one slot of accumulated client facts. The set is
// fixed; the model picks from this enum when calling updateClientProfile.
type ProfileField string

const (
	FieldProjectInterestedIn     ProfileField = "projectInterestedIn"
	FieldBudget                  ProfileField = "budget"
	FieldCommunitiesInterestedIn ProfileField = "communitiesInterestedIn"
	FieldWorkLocation            ProfileField = "workLocation"
	FieldMaxBedrooms             ProfileField = "maxBedrooms"
	FieldMaxBathrooms            ProfileField = "maxBathrooms"
	FieldPropertyType            ProfileField = "property_type"
	FieldProjectType             ProfileField = "project_type"
	FieldAge                     ProfileField = "age"
	FieldSalary                  ProfileField = "salary"
	FieldIsFirstProperty         ProfileField = "isFirstProperty"
	FieldPurpose                 ProfileField = "purpose"
	FieldDownpaymentReady        ProfileField = "downpaymentReady"
	FieldIsMarried               ProfileField = "isMarried"
	FieldChildrenCount           ProfileField = "childrenCount"
	FieldSpecificRequirements    ProfileField = "specificRequirements"
	FieldHandoverConsideration   ProfileField = "handoverConsideration"
	FieldNeedsMortgageAgent      ProfileField = "needsMortgageAgent"
	FieldNeedsGoldenVisa         ProfileField = "needsGoldenVisa"
)

// ProfileFields lists every valid field, in declaration order. Exposed for
// the tool declaration enum.
var ProfileFields = []ProfileField{
	FieldProjectInterestedIn, FieldBudget, FieldCommunitiesInterestedIn,
	FieldWorkLocation, FieldMaxBedrooms, FieldMaxBathrooms,
	FieldPropertyType, FieldProjectType, FieldAge, FieldSalary,
	FieldIsFirstProperty, FieldPurpose, FieldDownpaymentReady,
	FieldIsMarried, FieldChildrenCount, FieldSpecificRequirements,
	FieldHandoverConsideration, FieldNeedsMortgageAgent, FieldNeedsGoldenVisa,
}

// multiValueFields accumulate distinct values comma-separated instead of
// overwriting.
var multiValueFields = map[ProfileField]bool{
	FieldCommunitiesInterestedIn: true,
	FieldProjectInterestedIn:     true,
	FieldSpecificRequirements:    true,
	FieldPropertyType:            true,
}

// ValidProfileField reports whether name is a known field.
func ValidProfileField(name string) bool {
	for _, f := range ProfileFields {
		if string(f) == name {
			return true
		}
	}
	return false
}

// Profile accumulates facts about the client over a session. Multi-value
// fields are monotonically enriched with duplicate suppression; single
// value fields are last-write-wins.
type Profile struct {
	mu     sync.RWMutex
	values map[ProfileField]string
}

// NewProfile creates an empty profile.
func NewProfile() *Profile {
	return &Profile{values: make(map[ProfileField]string)}
}

// Update applies value to field under the field's update rule.
func (p *Profile) Update(field ProfileField, value string) error {
	if !ValidProfileField(string(field)) {
		return fmt.Errorf("%w: %q", ErrInvalidProfileField, field)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if multiValueFields[field] {
		if existing, ok := p.values[field]; ok && existing != "" {
			for _, v := range strings.Split(existing, ",") {
				if strings.TrimSpace(v) == strings.TrimSpace(value) {
					return nil // duplicate, keep as-is
				}
			}
			p.values[field] = existing + ", " + value
			return nil
		}
	}

	p.values[field] = value
	return nil
}

// Get returns the value for field.
func (p *Profile) Get(field ProfileField) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.values[field]
}

// All returns a snapshot copy of the profile.
func (p *Profile) All() map[ProfileField]string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[ProfileField]string, len(p.values))
	for k, v := range p.values {
		out[k] = v
	}
	return out
}

// Reset empties the profile. Called on session reset, not on resume.
func (p *Profile) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values = make(map[ProfileField]string)
}
