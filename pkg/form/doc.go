// Package form provides declarative field validators for Rynex
// applications and tooling.
//
// Validators are small composable checks built with a message override:
//
//	fields := form.Fields{
//	    "name":  form.Rules(form.Required(""), form.MinLength(2, "")),
//	    "email": form.Rules(form.Required(""), form.Email("")),
//	    "age":   form.Rules(form.Range(13, 120, "")),
//	}
//
//	errs := form.ValidateFields(values, fields)
//	for _, e := range errs {
//	    fmt.Println(e.Field, e.Message)
//	}
//
// Length, pattern, and numeric validators treat empty values as valid so
// that Required alone decides whether a field is mandatory.
package form
