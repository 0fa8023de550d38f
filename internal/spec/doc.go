// Package spec provides the YAML schema of specification files, parsing,
// marshaling and validation.
//
// A specification declares, for one container struct, the closed set of
// named values its classified integer field may hold. The generator turns
// each entry into a typed enumeration with a classifier and reconstructors.
//
// # Schema Overview
//
//	version: "1"
//	enums:
//	  - name: Hellos          # generated enumeration type
//	    container: Hello      # struct holding the classified field
//	    field: Data           # the classified field
//	    type: uint8           # optional, resolved from source when omitted
//	    range: [0, 22]        # optional validation interval, also "0..=22"
//	    super: HelloRecord    # optional struct sharing the field
//	    doc: Hellos classifies Hello.Data.
//	    variants:
//	      V0: 0
//	      V1: 1
//	      V2: 0x0c
//
// Variants may also be written as a sequence, which allows per-variant docs:
//
//	    variants:
//	      - name: V3
//	        value: 13
//	        doc: V3 is the thirteenth greeting.
//	      - V4: 22
//
// # Validation
//
// Validate reports every problem of a file as a diagnostic instead of
// stopping at the first: duplicate names or values, literals the field type
// cannot represent, an empty or malformed range, and variants outside the
// range are all errors. A file with errors never reaches generation.
package spec
