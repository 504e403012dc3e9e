// Package messages loads validator message overrides from YAML or JSON files
// and applies them to a validator.Registry.
//
//	overrides, err := messages.LoadFile(ctx, "messages.yaml")
//	if err != nil {
//	    return err
//	}
//	reg := validator.DefaultRegistry()
//	if err := overrides.Apply(reg); err != nil {
//	    return err
//	}
//
// Templates use the same placeholders as the defaults: {0} is the field
// display name and {1}, {2} ... are validator parameters.
package messages
