// Package field defines typed form fields and runs their validator chains.
//
// A field has a kind (text, search, tel, url, password, email, textarea), a
// property set built from small mixins (MinMaxLength, PatternProp,
// MultipleProp, RowsColsWrap, SpellCheckProp, PlaceHolderProp, InputModeProp)
// and an ordered list of validator references. Each kind starts with one
// default validator:
//
//	text, search, textarea  safe_string
//	email                   email
//	password                password
//	tel                     phone
//	url                     url
//
// Setting minlength, maxlength or pattern adds the length or pattern
// validator when the chain does not already contain one.
//
// # Binding
//
// On the first Bind or Validate call, named validators are resolved from the
// field's registry and every validator is bound to the field. Binding copies
// shared properties in both directions: a validator configured with a value
// pushes it onto an unset field property, an unconfigured validator adopts
// the field's value, and differing values fail with
// validator.ErrConflictingConfig.
//
//	email, err := field.New(field.KindEmail, "contact",
//	    field.WithLabel("Contact address"),
//	    field.WithMultiple(true),
//	    field.WithMaxLength(200),
//	)
//	value, err := email.Validate(ctx, validator.String(r.FormValue("contact")))
//
// Validate never fails on bad input. It returns the sanitized value, or null
// when the input could not be interpreted, along with the validation errors
// of that pass as validator.ValidationErrors. No HTML is rendered here;
// Attributes exposes the configured properties for a renderer.
package field
