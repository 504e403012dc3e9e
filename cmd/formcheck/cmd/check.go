package cmd

import (
	"encoding/json"
	"errors"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/pkg/field"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// ErrInvalidValue is returned by check when the value fails validation.
var ErrInvalidValue = errors.New("value is invalid")

type checkOptions struct {
	kind      string
	values    []string
	label     string
	minLength int
	maxLength int
	pattern   string
	multiple  bool
}

func newCheckCmd(a *app) *cobra.Command {
	var o checkOptions

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a value as a field of the given kind",
		Long: `Validate a value as a field of the given kind and print the result as JSON.

Repeat --value to submit several values. Omit it to submit nothing.
The command exits with a non-zero status when the value is invalid.`,
		Example: `  formcheck check --kind email --value john@example.com
  formcheck check --kind email --multiple --value "a@b.cz, c@d.cz"
  formcheck check --kind text --min-length 3 --pattern '/^[a-z]+$/i' --value Hello`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCheck(cmd, o)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&o.kind, "kind", "k", "", "field kind (text, search, tel, url, password, email, textarea)")
	flags.StringArrayVar(&o.values, "value", nil, "submitted value, repeatable")
	flags.StringVar(&o.label, "label", "", "label used in error messages")
	flags.IntVar(&o.minLength, "min-length", 0, "minlength attribute")
	flags.IntVar(&o.maxLength, "max-length", 0, "maxlength attribute")
	flags.StringVar(&o.pattern, "pattern", "", "pattern attribute, bare or delimited (/.../i)")
	flags.BoolVar(&o.multiple, "multiple", false, "accept a comma separated list (email only)")
	_ = cmd.MarkFlagRequired("kind")

	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, o checkOptions) error {
	kind, err := field.ParseKind(o.kind)
	if err != nil {
		return err
	}

	opts := []field.Option{
		field.WithRegistry(a.registry),
		field.WithLogger(a.logger),
	}
	if o.label != "" {
		opts = append(opts, field.WithLabel(o.label))
	}

	flags := cmd.Flags()
	if flags.Changed("min-length") {
		opts = append(opts, field.WithMinLength(o.minLength))
	}
	if flags.Changed("max-length") {
		opts = append(opts, field.WithMaxLength(o.maxLength))
	}
	if flags.Changed("pattern") {
		opts = append(opts, field.WithPattern(o.pattern))
	}
	if flags.Changed("multiple") {
		opts = append(opts, field.WithMultiple(o.multiple))
	}

	f, err := field.New(kind, "value", opts...)
	if err != nil {
		return err
	}

	raw := field.RawValue(url.Values{"value": o.values}, "value")
	value, err := f.Validate(cmd.Context(), raw)
	if err != nil && !validator.IsValidationError(err) {
		return err
	}

	result := field.NewResult(f.Name(), value, err)
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return err
	}

	if !result.Valid {
		return ErrInvalidValue
	}
	return nil
}
