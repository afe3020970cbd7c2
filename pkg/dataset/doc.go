// Package dataset defines the reference record types used by the generators
// and loads them from YAML files with strict schema validation.
//
// Every category (first names, last names, states, schools, courses, degrees,
// faculties, phone prefixes, plate codes, marital statuses, religions) is a
// concrete struct whose yaml tags declare the exact set of fields a record
// must carry. Load rejects any record whose key set differs from that set,
// reporting both the missing and the unexpected keys through *SchemaError.
//
// # Sources
//
// Datasets are read through the Source interface. Builtin returns a Source
// backed by the YAML files embedded in this package; FS adapts any fs.FS
// (os.DirFS, fstest.MapFS, ...). Remote backends live in pkg/storage.
//
// # Usage
//
//	states, err := dataset.Load[dataset.State](ctx, dataset.Builtin(), dataset.States)
//	if err != nil {
//	    var schemaErr *dataset.SchemaError
//	    if errors.As(err, &schemaErr) {
//	        log.Printf("record %d is missing %v", schemaErr.Index, schemaErr.Missing)
//	    }
//	    return err
//	}
//	for _, s := range states.Records() {
//	    fmt.Println(s.Name, s.RegionAbbr)
//	}
//
// Collections are immutable: Records returns a copy of the underlying slice.
package dataset
