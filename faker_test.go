package naijafake_test

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/naijafake"
	"github.com/dmitrymomot/naijafake/pkg/dataset"
	"github.com/dmitrymomot/naijafake/pkg/logger"
	"github.com/dmitrymomot/naijafake/pkg/validator"
)

func newFaker(t *testing.T, opts ...naijafake.Option) *naijafake.Faker {
	t.Helper()
	f, err := naijafake.New(context.Background(), opts...)
	require.NoError(t, err)
	return f
}

// builtinWith returns the embedded datasets with some files replaced.
func builtinWith(t *testing.T, files map[string]string) fstest.MapFS {
	t.Helper()
	fsys := fstest.MapFS{}
	for _, name := range []string{
		dataset.FirstNames, dataset.LastNames, dataset.States, dataset.Schools,
		dataset.Courses, dataset.Degrees, dataset.Faculties, dataset.PhonePrefixes,
		dataset.PlateCodes, dataset.MaritalStatuses, dataset.Religions,
	} {
		rc, err := dataset.Builtin().Open(context.Background(), dataset.FileName(name))
		require.NoError(t, err)
		buf := new(bytes.Buffer)
		_, err = buf.ReadFrom(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		fsys[dataset.FileName(name)] = &fstest.MapFile{Data: buf.Bytes()}
	}
	for name, data := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(data)}
	}
	return fsys
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("builtin datasets", func(t *testing.T) {
		t.Parallel()
		f := newFaker(t)
		assert.NotEmpty(t, f.SessionID())
		assert.Len(t, f.Regions(), 6)
		assert.ElementsMatch(t, []string{"yoruba", "igbo", "hausa", "edo", "fulani", "ijaw"}, f.Tribes())
		assert.ElementsMatch(t, []string{"mtn", "glo", "airtel", "9mobile"}, f.Networks())
	})

	t.Run("distinct sessions", func(t *testing.T) {
		t.Parallel()
		assert.NotEqual(t, newFaker(t).SessionID(), newFaker(t).SessionID())
	})

	t.Run("schema error aborts construction", func(t *testing.T) {
		t.Parallel()
		fsys := builtinWith(t, map[string]string{
			"states.yaml": "- name: Lagos\n  code: LA\n  capital: Ikeja\n  slogan: x\n  region: South West\n  lgas: [Ikeja]\n",
		})
		_, err := naijafake.New(context.Background(), naijafake.WithSource(dataset.FS(fsys)))
		require.ErrorIs(t, err, naijafake.ErrSchema)
		assert.Contains(t, err.Error(), "postal_code")
	})

	t.Run("missing dataset", func(t *testing.T) {
		t.Parallel()
		fsys := builtinWith(t, nil)
		delete(fsys, "religions.yaml")
		_, err := naijafake.New(context.Background(), naijafake.WithSource(dataset.FS(fsys)))
		require.ErrorIs(t, err, naijafake.ErrDatasetNotFound)
	})

	t.Run("logs dataset loads", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithLevelName("debug"),
			logger.WithContextExtractors(logger.DatasetExtractor),
		)
		f := newFaker(t, naijafake.WithLogger(log))
		out := buf.String()
		assert.Contains(t, out, `"dataset":"states"`)
		assert.Contains(t, out, `"session_id":"`+f.SessionID()+`"`)
	})

	t.Run("seeded fakers agree", func(t *testing.T) {
		t.Parallel()
		a := newFaker(t, naijafake.WithSeed(7))
		b := newFaker(t, naijafake.WithSeed(7))
		for range 10 {
			x, err := a.FullName(naijafake.NameOptions{Middle: true})
			require.NoError(t, err)
			y, err := b.FullName(naijafake.NameOptions{Middle: true})
			require.NoError(t, err)
			assert.Equal(t, x, y)
		}
	})
}

func TestStates(t *testing.T) {
	t.Parallel()

	t.Run("region filter and abbreviation", func(t *testing.T) {
		t.Parallel()
		f := newFaker(t)
		byName, err := f.States(naijafake.StateFilter{Region: "south west"})
		require.NoError(t, err)
		byAbbr, err := f.States(naijafake.StateFilter{Region: "SW"})
		require.NoError(t, err)
		assert.Len(t, byName, 6)
		assert.Equal(t, byName, byAbbr)
		for _, s := range byName {
			assert.Equal(t, "South West", s.Region)
			assert.Equal(t, "SW", s.RegionAbbr)
		}
	})

	t.Run("unknown region", func(t *testing.T) {
		t.Parallel()
		_, err := newFaker(t).State(naijafake.StateFilter{Region: "South Wst"})
		require.ErrorIs(t, err, naijafake.ErrInvalidFilterValue)
		assert.Contains(t, err.Error(), "South West")
	})

	t.Run("unique names cycle", func(t *testing.T) {
		t.Parallel()
		f := newFaker(t)
		seen := map[string]bool{}
		for range 5 {
			name, err := f.StateName(naijafake.StateFilter{Region: "South East"})
			require.NoError(t, err)
			assert.False(t, seen[name], "repeated %s", name)
			seen[name] = true
		}
		name, err := f.StateName(naijafake.StateFilter{Region: "South East"})
		require.NoError(t, err)
		assert.True(t, seen[name])
	})

	t.Run("capital and code", func(t *testing.T) {
		t.Parallel()
		f := newFaker(t)
		capital, err := f.StateCapital(naijafake.StateFilter{})
		require.NoError(t, err)
		assert.NotEmpty(t, capital)
		code, err := f.StateCode(naijafake.StateFilter{})
		require.NoError(t, err)
		assert.Regexp(t, `^[A-Z]{2}$`, code)
	})

	t.Run("lgas of lagos", func(t *testing.T) {
		t.Parallel()
		f := newFaker(t)
		lagos, err := f.States(naijafake.StateFilter{})
		require.NoError(t, err)
		var lgas []string
		for _, s := range lagos {
			if s.Name == "Lagos" {
				lgas = s.LGAs
			}
		}
		require.NotEmpty(t, lgas)

		var got []string
		for range lgas {
			lga, err := f.LGA("LAGOS")
			require.NoError(t, err)
			got = append(got, lga)
		}
		assert.ElementsMatch(t, lgas, got)
	})

	t.Run("postal code", func(t *testing.T) {
		t.Parallel()
		f := newFaker(t)
		code, err := f.PostalCode("Lagos")
		require.NoError(t, err)
		assert.Equal(t, "100001", code)

		code, err = f.PostalCode("")
		require.NoError(t, err)
		assert.Regexp(t, `^\d{6}$`, code)
	})

	t.Run("unknown state", func(t *testing.T) {
		t.Parallel()
		_, err := newFaker(t).LGA("Lagoss")
		require.ErrorIs(t, err, naijafake.ErrInvalidFilterValue)
		assert.Contains(t, err.Error(), `did you mean "Lagos"?`)
	})
}

func TestSchools(t *testing.T) {
	t.Parallel()

	f := newFaker(t)

	schools, err := f.Schools(naijafake.SchoolFilter{Type: "university", Ownership: "federal"})
	require.NoError(t, err)
	require.NotEmpty(t, schools)
	for _, s := range schools {
		assert.Equal(t, "University", s.Type)
		assert.Equal(t, "Federal", s.Ownership)
	}

	_, err = f.School(naijafake.SchoolFilter{Type: "polytechnik"})
	require.ErrorIs(t, err, naijafake.ErrInvalidFilterValue)
	assert.Contains(t, err.Error(), "Polytechnic")

	_, err = f.School(naijafake.SchoolFilter{State: "Narnia"})
	require.ErrorIs(t, err, naijafake.ErrInvalidFilterValue)

	name, err := f.SchoolName(naijafake.SchoolFilter{})
	require.NoError(t, err)
	assert.NotEmpty(t, name)

	acronym, err := f.SchoolAcronym(naijafake.SchoolFilter{Ownership: "Private"})
	require.NoError(t, err)
	assert.NotEmpty(t, acronym)
}

func TestAcademics(t *testing.T) {
	t.Parallel()

	f := newFaker(t)

	t.Run("degrees by type", func(t *testing.T) {
		masters, err := f.Degrees("Masters")
		require.NoError(t, err)
		require.NotEmpty(t, masters)
		for _, d := range masters {
			assert.Equal(t, "masters", d.DegreeType)
		}

		d, err := f.Degree("doctorate")
		require.NoError(t, err)
		assert.Equal(t, "doctorate", d.DegreeType)

		_, err = f.Degree("master")
		require.ErrorIs(t, err, naijafake.ErrInvalidFilterValue)
		assert.Contains(t, err.Error(), `did you mean "masters"?`)
	})

	t.Run("courses", func(t *testing.T) {
		c, err := f.Course()
		require.NoError(t, err)
		assert.NotEmpty(t, c.Name)

		seen := map[string]bool{}
		for range 10 {
			code, err := f.CourseCode()
			require.NoError(t, err)
			assert.False(t, seen[code])
			seen[code] = true
		}
		_, err = f.CourseName()
		require.NoError(t, err)
	})

	t.Run("faculties and departments", func(t *testing.T) {
		fac, err := f.Faculty()
		require.NoError(t, err)
		require.NotEmpty(t, fac.Departments)

		dept, err := f.Department(strings.ToUpper(fac.Name))
		require.NoError(t, err)
		assert.Contains(t, fac.Departments, dept)

		_, err = f.Department("")
		require.NoError(t, err)
		_, err = f.FacultyName()
		require.NoError(t, err)

		_, err = f.Department("Faculty of Magic")
		require.ErrorIs(t, err, naijafake.ErrInvalidFilterValue)
	})
}

func TestPeople(t *testing.T) {
	t.Parallel()

	f := newFaker(t, naijafake.WithEmailDomains("example.ng"))

	t.Run("names", func(t *testing.T) {
		n, err := f.Name(naijafake.NameOptions{Tribe: "hausa", Gender: "female", Middle: true})
		require.NoError(t, err)
		assert.Equal(t, "hausa", n.Tribe)
		assert.NotEqual(t, n.First, n.Middle)

		_, err = f.FirstName("yorba", "")
		require.ErrorIs(t, err, naijafake.ErrInvalidFilterValue)

		last, err := f.LastName("igbo")
		require.NoError(t, err)
		assert.NotEmpty(t, last)
	})

	t.Run("emails", func(t *testing.T) {
		for range 1000 {
			email, err := f.Email(naijafake.EmailOptions{})
			require.NoError(t, err)
			require.True(t, validator.IsValidEmail(email), email)
			require.True(t, strings.HasSuffix(email, "@example.ng"), email)
		}

		_, err := f.Email(naijafake.EmailOptions{Domain: "invalid..domain"})
		require.ErrorIs(t, err, naijafake.ErrInvalidDomain)
	})

	t.Run("phones", func(t *testing.T) {
		phone, err := f.PhoneNumber(naijafake.PhoneOptions{Network: "9mobile", Format: "international"})
		require.NoError(t, err)
		assert.Regexp(t, `^\+234\d{10}$`, phone)
	})

	t.Run("plates", func(t *testing.T) {
		re := regexp.MustCompile(`^[A-Z]{3}-\d{3}[A-Z]{2}$`)
		for range 200 {
			plate, err := f.LicensePlate("")
			require.NoError(t, err)
			require.Regexp(t, re, plate)
		}
		plate, err := f.LicensePlate("lagos")
		require.NoError(t, err)
		assert.Regexp(t, `^(IKJ|EPE|IKD|AKD|EKY|BDG)-`, plate)
	})

	t.Run("prices", func(t *testing.T) {
		price, err := f.Price(naijafake.PriceOptions{})
		require.NoError(t, err)
		assert.Regexp(t, `^₦\d{1,3}(,\d{3})*(\.\d{2})?$`, price)
	})

	t.Run("marital status and religion", func(t *testing.T) {
		m, err := f.MaritalStatus()
		require.NoError(t, err)
		assert.NotEmpty(t, m)
		r, err := f.Religion()
		require.NoError(t, err)
		assert.NotEmpty(t, r)
	})
}

func TestUniqueUntilExhausted(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	src := dataset.Builtin()

	marital, err := dataset.Load[dataset.MaritalStatus](ctx, src, dataset.MaritalStatuses)
	require.NoError(t, err)
	religions, err := dataset.Load[dataset.Religion](ctx, src, dataset.Religions)
	require.NoError(t, err)
	states, err := dataset.Load[dataset.State](ctx, src, dataset.States)
	require.NoError(t, err)

	postal := make(map[string]struct{})
	for _, s := range states.Records() {
		postal[s.PostalCode] = struct{}{}
	}

	tests := []struct {
		name string
		size int
		draw func(f *naijafake.Faker) (string, error)
	}{
		{"marital status", marital.Len(), (*naijafake.Faker).MaritalStatus},
		{"religion", religions.Len(), (*naijafake.Faker).Religion},
		{"postal code", len(postal), func(f *naijafake.Faker) (string, error) { return f.PostalCode("") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Positive(t, tt.size)
			for _, seed := range []uint64{1, 14, 99} {
				f := newFaker(t, naijafake.WithSeed(seed))
				seen := make(map[string]struct{}, tt.size)
				for range tt.size {
					v, err := tt.draw(f)
					require.NoError(t, err)
					assert.NotContains(t, seen, v)
					seen[v] = struct{}{}
				}
				assert.Len(t, seen, tt.size)

				// the next cycle starts over
				_, err := tt.draw(f)
				require.NoError(t, err)
			}
		})
	}
}

func TestReset(t *testing.T) {
	t.Parallel()

	f := newFaker(t)
	first, err := f.StateName(naijafake.StateFilter{Region: "SE"})
	require.NoError(t, err)

	f.Reset()
	seen := map[string]bool{}
	for range 5 {
		name, err := f.StateName(naijafake.StateFilter{Region: "SE"})
		require.NoError(t, err)
		seen[name] = true
	}
	assert.True(t, seen[first])
	assert.Len(t, seen, 5)
}
