// Package naijafake generates realistic Nigerian fake data: personal names,
// email addresses, phone numbers, license plates, prices, states and LGAs,
// schools, courses, degrees, faculties, marital statuses and religions.
//
// Values are drawn from curated reference datasets. The defaults are embedded
// in the binary; WithSource reads them from a directory or an S3 bucket
// instead (see pkg/storage).
//
//	f, err := naijafake.New(ctx, naijafake.WithSeed(42))
//	if err != nil {
//		return err
//	}
//
//	name, _ := f.FullName(naijafake.NameOptions{Tribe: "yoruba", Gender: "female"})
//	email, _ := f.Email(naijafake.EmailOptions{Domain: "example.ng"})
//	plate, _ := f.LicensePlate("Lagos")
//	school, _ := f.SchoolName(naijafake.SchoolFilter{Type: "University", Ownership: "Federal"})
//
// Filter values are matched case-insensitively. An unknown value fails with
// *InvalidFilterValueError, which suggests close matches ("did you mean
// \"yoruba\"?"). A valid combination without data fails with
// *NoMatchingDataError; constraints are never relaxed.
//
// Methods named after a field (StateName, SchoolName, CourseCode, LGA, ...)
// avoid repeating a value within one Faker until every candidate has been
// returned once. Reset forgets that history.
package naijafake
