// Package rescue holds the fixed rescue-type profiles and translates a rescue-type
// label into a record filter.
package rescue

import (
	"shelterapi/internal/model"
	"shelterapi/internal/query"
)

// Rescue-type labels.
const (
	WaterRescue        = "Water Rescue"
	MountainWilderness = "Mountain or Wilderness Rescue"
	DisasterTracking   = "Disaster or Individual Tracking"
)

// Profile is the breed, sex and age criteria for one rescue type.
type Profile struct {
	Label       string   `json:"label"`
	Breeds      []string `json:"breeds"`
	Sex         string   `json:"sex"`
	AgeMinWeeks int      `json:"age_min_weeks"`
	AgeMaxWeeks int      `json:"age_max_weeks"`
}

var profiles = []Profile{
	{
		Label: WaterRescue,
		Breeds: []string{
			"Labrador Retriever Mix",
			"Chesapeake Bay Retriever",
			"Newfoundland",
		},
		Sex:         "Intact Female",
		AgeMinWeeks: 26,
		AgeMaxWeeks: 156,
	},
	{
		Label: MountainWilderness,
		Breeds: []string{
			"German Shepherd",
			"Alaskan Malamute",
			"Old English Sheepdog",
			"Siberian Husky",
			"Rottweiler",
		},
		Sex:         "Intact Male",
		AgeMinWeeks: 26,
		AgeMaxWeeks: 156,
	},
	{
		Label: DisasterTracking,
		Breeds: []string{
			"Doberman Pinscher",
			"German Shepherd",
			"Golden Retriever",
			"Bloodhound",
			"Rottweiler",
		},
		Sex:         "Intact Male",
		AgeMinWeeks: 20,
		AgeMaxWeeks: 300,
	},
}

var byLabel = func() map[string]int {
	m := make(map[string]int, len(profiles))
	for i, p := range profiles {
		m[p.Label] = i
	}
	return m
}()

func (p Profile) clone() Profile {
	p.Breeds = append([]string(nil), p.Breeds...)
	return p
}

// Lookup returns a copy of the profile for label.
func Lookup(label string) (Profile, bool) {
	i, ok := byLabel[label]
	if !ok {
		return Profile{}, false
	}
	return profiles[i].clone(), true
}

// Labels returns the known rescue-type labels in table order.
func Labels() []string {
	out := make([]string, len(profiles))
	for i, p := range profiles {
		out[i] = p.Label
	}
	return out
}

// Profiles returns copies of every profile in table order.
func Profiles() []Profile {
	out := make([]Profile, len(profiles))
	for i, p := range profiles {
		out[i] = p.clone()
	}
	return out
}

// Filter builds the record filter for this profile: dogs of an eligible breed and the
// required sex whose age in weeks lies within the profile's inclusive range.
func (p Profile) Filter() model.Filter {
	return query.And(
		query.Eq(model.FieldAnimalType, "Dog"),
		query.In(model.FieldBreed, p.Breeds...),
		query.Eq(model.FieldSexUponOutcome, p.Sex),
		query.Between(model.FieldAgeInWeeks, p.AgeMinWeeks, p.AgeMaxWeeks),
	)
}

// QueryForRescueType maps a rescue-type label to a record filter.
// Unknown and empty labels yield the match-all filter, which is how "All" and
// "Reset" selections are expressed.
func QueryForRescueType(label string) model.Filter {
	p, ok := Lookup(label)
	if !ok {
		return query.MatchAll()
	}
	return p.Filter()
}
