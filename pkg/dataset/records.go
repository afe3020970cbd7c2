package dataset

import "strings"

// Dataset names. Each maps to "<name>.yaml" in a Source.
const (
	FirstNames      = "first_names"
	LastNames       = "last_names"
	States          = "states"
	Schools         = "schools"
	Courses         = "courses"
	Degrees         = "degrees"
	Faculties       = "faculties"
	PhonePrefixes   = "phone_prefixes"
	PlateCodes      = "plate_codes"
	MaritalStatuses = "marital_statuses"
	Religions       = "religions"
)

// Record is a flat reference entry whose scalar fields are addressable by
// their dataset key. List fields and unknown keys return "".
type Record interface {
	Field(name string) string
}

// normalizer is implemented by records that derive fields after decoding.
type normalizer interface {
	normalize()
}

type FirstName struct {
	Tribe  string `yaml:"tribe" json:"tribe"`
	Gender string `yaml:"gender" json:"gender"`
	Name   string `yaml:"name" json:"name"`
}

func (r FirstName) Field(name string) string {
	switch name {
	case "tribe":
		return r.Tribe
	case "gender":
		return r.Gender
	case "name":
		return r.Name
	}
	return ""
}

type LastName struct {
	Tribe string `yaml:"tribe" json:"tribe"`
	Name  string `yaml:"name" json:"name"`
}

func (r LastName) Field(name string) string {
	switch name {
	case "tribe":
		return r.Tribe
	case "name":
		return r.Name
	}
	return ""
}

// State is a Nigerian state (or the FCT) with its local government areas.
// RegionAbbr is derived at load time and is not part of the file schema.
type State struct {
	Name       string   `yaml:"name" json:"name"`
	Code       string   `yaml:"code" json:"code"`
	Capital    string   `yaml:"capital" json:"capital"`
	Slogan     string   `yaml:"slogan" json:"slogan"`
	Region     string   `yaml:"region" json:"region"`
	PostalCode string   `yaml:"postal_code" json:"postal_code"`
	LGAs       []string `yaml:"lgas" json:"lgas"`
	RegionAbbr string   `yaml:"-" json:"region_abbr"`
}

func (r State) Field(name string) string {
	switch name {
	case "name":
		return r.Name
	case "code":
		return r.Code
	case "capital":
		return r.Capital
	case "slogan":
		return r.Slogan
	case "region":
		return r.Region
	case "postal_code":
		return r.PostalCode
	case "region_abbr":
		return r.RegionAbbr
	}
	return ""
}

func (r *State) normalize() {
	r.RegionAbbr = Abbreviate(r.Region)
}

// Abbreviate returns the upper-cased initials of each whitespace-separated
// word, e.g. "South West" -> "SW".
func Abbreviate(s string) string {
	var b strings.Builder
	for _, word := range strings.Fields(s) {
		for _, r := range word {
			b.WriteString(strings.ToUpper(string(r)))
			break
		}
	}
	return b.String()
}

type School struct {
	Name      string `yaml:"name" json:"name"`
	Acronym   string `yaml:"acronym" json:"acronym"`
	State     string `yaml:"state" json:"state"`
	Type      string `yaml:"type" json:"type"`
	Ownership string `yaml:"ownership" json:"ownership"`
}

func (r School) Field(name string) string {
	switch name {
	case "name":
		return r.Name
	case "acronym":
		return r.Acronym
	case "state":
		return r.State
	case "type":
		return r.Type
	case "ownership":
		return r.Ownership
	}
	return ""
}

type Course struct {
	Name string `yaml:"name" json:"name"`
	Code string `yaml:"code" json:"code"`
}

func (r Course) Field(name string) string {
	switch name {
	case "name":
		return r.Name
	case "code":
		return r.Code
	}
	return ""
}

type Degree struct {
	Name       string `yaml:"name" json:"name"`
	DegreeType string `yaml:"degree_type" json:"degree_type"`
	Abbr       string `yaml:"abbr" json:"abbr"`
}

func (r Degree) Field(name string) string {
	switch name {
	case "name":
		return r.Name
	case "degree_type":
		return r.DegreeType
	case "abbr":
		return r.Abbr
	}
	return ""
}

type Faculty struct {
	Name        string   `yaml:"name" json:"name"`
	Departments []string `yaml:"departments" json:"departments"`
}

func (r Faculty) Field(name string) string {
	if name == "name" {
		return r.Name
	}
	return ""
}

// PhonePrefix maps a mobile network to one of its four-digit prefixes.
type PhonePrefix struct {
	Network string `yaml:"network" json:"network"`
	Prefix  string `yaml:"prefix" json:"prefix"`
}

func (r PhonePrefix) Field(name string) string {
	switch name {
	case "network":
		return r.Network
	case "prefix":
		return r.Prefix
	}
	return ""
}

// PlateCode is the three-letter license plate code of a local government area.
type PlateCode struct {
	State string `yaml:"state" json:"state"`
	LGA   string `yaml:"lga" json:"lga"`
	Code  string `yaml:"code" json:"code"`
}

func (r PlateCode) Field(name string) string {
	switch name {
	case "state":
		return r.State
	case "lga":
		return r.LGA
	case "code":
		return r.Code
	}
	return ""
}

type MaritalStatus struct {
	Status string `yaml:"status" json:"status"`
}

func (r MaritalStatus) Field(name string) string {
	if name == "status" {
		return r.Status
	}
	return ""
}

type Religion struct {
	Name string `yaml:"name" json:"name"`
}

func (r Religion) Field(name string) string {
	if name == "name" {
		return r.Name
	}
	return ""
}
