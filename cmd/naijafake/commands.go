package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/naijafake"
	"github.com/dmitrymomot/naijafake/pkg/sanitizer"
	"github.com/dmitrymomot/naijafake/pkg/validator"
)

func (a *app) nameCmd() *cobra.Command {
	var opts naijafake.NameOptions
	cmd := &cobra.Command{
		Use:   "name",
		Short: "Generate personal names",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.repeat(func() (any, error) {
				if a.format == formatText {
					return a.faker.FullName(opts)
				}
				return a.faker.Name(opts)
			})
		},
	}
	cmd.Flags().StringVar(&opts.Tribe, "tribe", "", "tribe to draw from (random when empty)")
	cmd.Flags().StringVar(&opts.Gender, "gender", "", "male or female (random when empty)")
	cmd.Flags().BoolVar(&opts.Middle, "middle", false, "include a middle name")
	return cmd
}

func (a *app) emailCmd() *cobra.Command {
	var opts naijafake.EmailOptions
	cmd := &cobra.Command{
		Use:   "email",
		Short: "Generate email addresses",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if err := validator.Apply(
				validator.Optional(opts.Domain, validator.ValidDomain("domain", opts.Domain)),
			); err != nil {
				return err
			}
			return a.repeat(func() (any, error) { return a.faker.Email(opts) })
		},
	}
	cmd.Flags().StringVar(&opts.Name, "name", "", "build the address from this name")
	cmd.Flags().StringVar(&opts.Tribe, "tribe", "", "tribe for the generated name")
	cmd.Flags().StringVar(&opts.Gender, "gender", "", "gender for the generated name")
	cmd.Flags().StringVar(&opts.Domain, "domain", "", "email domain (random default when empty)")
	return cmd
}

func (a *app) phoneCmd() *cobra.Command {
	var opts naijafake.PhoneOptions
	cmd := &cobra.Command{
		Use:   "phone",
		Short: "Generate mobile phone numbers",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.repeat(func() (any, error) { return a.faker.PhoneNumber(opts) })
		},
	}
	styles := make([]string, 0, len(sanitizer.PhoneFormats))
	for _, f := range sanitizer.PhoneFormats {
		styles = append(styles, string(f))
	}
	cmd.Flags().StringVar(&opts.Network, "network", "", "mobile network (random when empty)")
	cmd.Flags().StringVar(&opts.Format, "style", "", "number layout: "+strings.Join(styles, ", "))
	return cmd
}

func (a *app) plateCmd() *cobra.Command {
	var state string
	cmd := &cobra.Command{
		Use:   "plate",
		Short: "Generate vehicle licence plates",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.repeat(func() (any, error) { return a.faker.LicensePlate(state) })
		},
	}
	cmd.Flags().StringVar(&state, "state", "", "state whose plate codes to use")
	return cmd
}

func (a *app) priceCmd() *cobra.Command {
	var opts naijafake.PriceOptions
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Generate naira prices",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.repeat(func() (any, error) { return a.faker.Price(opts) })
		},
	}
	cmd.Flags().IntVar(&opts.Min, "min", 0, "lowest amount in naira")
	cmd.Flags().IntVar(&opts.Max, "max", 0, "highest amount in naira")
	cmd.Flags().StringVar(&opts.Symbol, "symbol", "", "currency symbol prefix")
	return cmd
}

func (a *app) stateCmd() *cobra.Command {
	var (
		sf    naijafake.StateFilter
		field string
	)
	fields := []string{"name", "capital", "code", "lga", "postal", "record"}
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Generate states and state attributes",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if err := validator.Apply(validator.OneOf("field", field, fields...)); err != nil {
				return err
			}
			return a.repeat(func() (any, error) {
				s, err := a.faker.State(sf)
				if err != nil {
					return nil, err
				}
				switch strings.ToLower(field) {
				case "capital":
					return s.Capital, nil
				case "code":
					return s.Code, nil
				case "lga":
					return a.faker.LGA(s.Name)
				case "postal":
					return a.faker.PostalCode(s.Name)
				case "record":
					return s, nil
				}
				return s.Name, nil
			})
		},
	}
	cmd.Flags().StringVar(&sf.Region, "region", "", "geopolitical zone, full name or abbreviation")
	cmd.Flags().StringVar(&field, "field", "name", "what to print: "+strings.Join(fields, ", "))
	return cmd
}

func (a *app) schoolCmd() *cobra.Command {
	var (
		sf    naijafake.SchoolFilter
		field string
	)
	fields := []string{"name", "acronym", "record"}
	cmd := &cobra.Command{
		Use:   "school",
		Short: "Generate tertiary institutions",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if err := validator.Apply(validator.OneOf("field", field, fields...)); err != nil {
				return err
			}
			return a.repeat(func() (any, error) {
				s, err := a.faker.School(sf)
				if err != nil {
					return nil, err
				}
				switch strings.ToLower(field) {
				case "acronym":
					return s.Acronym, nil
				case "record":
					return s, nil
				}
				return s.Name, nil
			})
		},
	}
	cmd.Flags().StringVar(&sf.State, "state", "", "state the school is in")
	cmd.Flags().StringVar(&sf.Type, "type", "", "school type: "+strings.Join(naijafake.SchoolTypes, ", "))
	cmd.Flags().StringVar(&sf.Ownership, "ownership", "", "owner: "+strings.Join(naijafake.Ownerships, ", "))
	cmd.Flags().StringVar(&field, "field", "name", "what to print: "+strings.Join(fields, ", "))
	return cmd
}

func (a *app) courseCmd() *cobra.Command {
	var field string
	fields := []string{"name", "code", "record"}
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Generate course titles and codes",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if err := validator.Apply(validator.OneOf("field", field, fields...)); err != nil {
				return err
			}
			return a.repeat(func() (any, error) {
				c, err := a.faker.Course()
				if err != nil {
					return nil, err
				}
				switch strings.ToLower(field) {
				case "code":
					return c.Code, nil
				case "record":
					return c, nil
				}
				return c.Name, nil
			})
		},
	}
	cmd.Flags().StringVar(&field, "field", "name", "what to print: "+strings.Join(fields, ", "))
	return cmd
}

func (a *app) degreeCmd() *cobra.Command {
	var degreeType string
	cmd := &cobra.Command{
		Use:   "degree",
		Short: "Generate academic degrees",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.repeat(func() (any, error) { return a.faker.Degree(degreeType) })
		},
	}
	cmd.Flags().StringVar(&degreeType, "type", "", "degree type: "+strings.Join(naijafake.DegreeTypes, ", "))
	return cmd
}

func (a *app) facultyCmd() *cobra.Command {
	var (
		department bool
		faculty    string
	)
	cmd := &cobra.Command{
		Use:   "faculty",
		Short: "Generate faculties or departments",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.repeat(func() (any, error) {
				if department || faculty != "" {
					return a.faker.Department(faculty)
				}
				return a.faker.FacultyName()
			})
		},
	}
	cmd.Flags().BoolVar(&department, "department", false, "print a department instead of a faculty")
	cmd.Flags().StringVar(&faculty, "faculty", "", "faculty to draw departments from (implies --department)")
	return cmd
}

func (a *app) maritalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "marital",
		Short: "Generate marital statuses",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.repeat(func() (any, error) { return a.faker.MaritalStatus() })
		},
	}
}

func (a *app) religionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "religion",
		Short: "Generate religions",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.repeat(func() (any, error) { return a.faker.Religion() })
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	lists := map[string]func() []string{
		"tribes":       func() []string { return a.faker.Tribes() },
		"networks":     func() []string { return a.faker.Networks() },
		"regions":      func() []string { return a.faker.Regions() },
		"school-types": func() []string { return naijafake.SchoolTypes },
		"ownerships":   func() []string { return naijafake.Ownerships },
		"degree-types": func() []string { return naijafake.DegreeTypes },
	}
	names := []string{"tribes", "networks", "regions", "school-types", "ownerships", "degree-types"}

	return &cobra.Command{
		Use:       "list " + strings.Join(names, "|"),
		Short:     "List the values accepted by filter flags",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: names,
		RunE: func(_ *cobra.Command, args []string) error {
			values := lists[args[0]]()
			p := newPrinter(a.stdout, a.format)
			if a.format != formatText {
				if err := p.print(values); err != nil {
					return err
				}
				return p.close()
			}
			for _, v := range values {
				if _, err := fmt.Fprintln(a.stdout, v); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
