package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// ErrInvalidArguments wraps every failure reported by Bind.
var ErrInvalidArguments = errors.New("invalid arguments")

func validateCommand(cmd *Command) error {
	if cmd == nil || cmd.Name == "" {
		return errors.New("command must have a name")
	}
	if cmd.Run == nil {
		return fmt.Errorf("command '%s' has no handler", cmd.Name)
	}
	seen := make(map[string]struct{}, len(cmd.Options))
	for _, opt := range cmd.Options {
		if opt.Name == "" {
			return fmt.Errorf("command '%s' declares an option without a name", cmd.Name)
		}
		if opt.Type == cty.NilType {
			return fmt.Errorf("command '%s', option '%s': missing type", cmd.Name, opt.Name)
		}
		if _, dup := seen[opt.Name]; dup {
			return fmt.Errorf("command '%s' declares option '%s' twice", cmd.Name, opt.Name)
		}
		seen[opt.Name] = struct{}{}
	}
	return nil
}

// Bind checks raw against the command's option table and converts each
// value to the declared type. Unknown options are rejected; absent options
// are simply missing from the result.
func (c *Command) Bind(raw map[string]cty.Value) (Args, error) {
	byName := make(map[string]Option, len(c.Options))
	for _, opt := range c.Options {
		byName[opt.Name] = opt
	}

	var errs []string
	args := make(Args, len(raw))
	for name, val := range raw {
		opt, ok := byName[name]
		if !ok {
			errs = append(errs, fmt.Sprintf("unsupported option '%s'", name))
			continue
		}
		if !val.IsWhollyKnown() {
			errs = append(errs, fmt.Sprintf("option '%s': value is not known", name))
			continue
		}
		converted, err := convert.Convert(val, opt.Type)
		if err != nil {
			errs = append(errs, fmt.Sprintf("option '%s': %s required, got %s", name, opt.Type.FriendlyName(), val.Type().FriendlyName()))
			continue
		}
		args[name] = converted
	}

	if len(errs) > 0 {
		sort.Strings(errs)
		return nil, fmt.Errorf("%w for '%s': %s", ErrInvalidArguments, c.Name, strings.Join(errs, "; "))
	}
	return args, nil
}
