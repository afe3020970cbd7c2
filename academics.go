package naijafake

import (
	"strings"

	"github.com/dmitrymomot/naijafake/pkg/dataset"
	"github.com/dmitrymomot/naijafake/pkg/filter"
)

func (f *Faker) Course() (dataset.Course, error) {
	return f.courses.Get(nil)
}

// CourseName returns a course name not yet returned by this Faker.
func (f *Faker) CourseName() (string, error) {
	return f.courses.Unique("name", nil)
}

func (f *Faker) CourseCode() (string, error) {
	return f.courses.Unique("code", nil)
}

// Degree returns one degree of degreeType (see DegreeTypes), or of any type
// when degreeType is blank.
func (f *Faker) Degree(degreeType string) (dataset.Degree, error) {
	return f.degrees.Get(filter.Where("degree_type", degreeType))
}

// Degrees returns every degree of degreeType. No match is an empty slice.
func (f *Faker) Degrees(degreeType string) ([]dataset.Degree, error) {
	return f.degrees.Find(filter.Where("degree_type", degreeType))
}

func (f *Faker) Faculty() (dataset.Faculty, error) {
	return f.faculties.Get(nil)
}

// FacultyName returns a faculty name not yet returned by this Faker.
func (f *Faker) FacultyName() (string, error) {
	return f.faculties.Unique("name", nil)
}

// Department returns a department of faculty, or of a random faculty when
// faculty is blank. Departments repeat only after all of the faculty's
// departments were returned.
func (f *Faker) Department(faculty string) (string, error) {
	var (
		fac dataset.Faculty
		err error
	)
	if strings.TrimSpace(faculty) == "" {
		fac, err = f.faculties.Get(nil)
	} else {
		fac, err = f.faculties.Get(filter.Where("name", faculty))
	}
	if err != nil {
		return "", err
	}
	if len(fac.Departments) == 0 {
		return "", &filter.NoMatchingDataError{
			Category:    dataset.Faculties + " departments",
			Constraints: filter.Where("name", fac.Name),
		}
	}
	return f.faculties.UniqueFrom("departments."+fac.Name, fac.Departments)
}
