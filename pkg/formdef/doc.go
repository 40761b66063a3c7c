// Package formdef loads form definitions and value documents from YAML or
// JSON.
//
// A definition carries the field list with its rules, the initial values and
// the display options that are passed through to renderers:
//
//	colon: true
//	layout: horizontal
//	hideRequiredMark: false
//	initialValues:
//	  name: ""
//	fields:
//	  - fieldCode: name
//	    rules:
//	      - kind: required
//	        message: Name is required
//	      - kind: minLength
//	        min: 3
//	        message: At least 3 characters
//
// In YAML, rule parameters sit next to kind and message. In JSON they live
// under a "params" object. Omitted display options default to colon on,
// horizontal layout and visible required marks. Null entries in the field
// list are skipped.
package formdef
