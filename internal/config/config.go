package config

import (
	"fmt"
	"strings"

	"github.com/crossbind/crossbind/internal/cfg"
)

// Config is the full conversion configuration for one engine run.
type Config struct {
	// Crate is the name of the source crate the records were captured from.
	// Required. Stub bodies call into it by its identifier form.
	Crate string `json:"crate" yaml:"crate"`

	// Edition selects the Rust edition of the generated source. The 2024
	// edition changes how the no-mangle attribute is spelled. Defaults to
	// "2021".
	Edition string `json:"edition,omitempty" yaml:"edition,omitempty"`

	// Feature resolution.
	EnabledFeatures        []string          `json:"enabled_features,omitempty" yaml:"enabled_features,omitempty"`
	DisabledFeatures       []string          `json:"disabled_features,omitempty" yaml:"disabled_features,omitempty"`
	FeatureRenames         map[string]string `json:"feature_renames,omitempty" yaml:"feature_renames,omitempty"`
	DisableUnknownFeatures bool              `json:"disable_unknown_features,omitempty" yaml:"disable_unknown_features,omitempty"`

	// Target selection. Either a full triple or individual axes; the triple
	// fills in any axis not set explicitly.
	Target       string `json:"target,omitempty" yaml:"target,omitempty"`
	TargetArch   string `json:"target_arch,omitempty" yaml:"target_arch,omitempty"`
	TargetVendor string `json:"target_vendor,omitempty" yaml:"target_vendor,omitempty"`
	TargetOS     string `json:"target_os,omitempty" yaml:"target_os,omitempty"`
	TargetEnv    string `json:"target_env,omitempty" yaml:"target_env,omitempty"`

	// AllowedPrefixes extends the standard set of type path prefixes the
	// output may reference without conversion.
	AllowedPrefixes []string `json:"allowed_prefixes,omitempty" yaml:"allowed_prefixes,omitempty"`

	// TransparentWrappers are generic wrapper paths stripped down to their
	// first type argument, e.g. std::mem::MaybeUninit.
	TransparentWrappers []string `json:"transparent_wrappers,omitempty" yaml:"transparent_wrappers,omitempty"`

	// PrefixedExportedTypes are paths whose final segment names an exported
	// type; references through them collapse to the bare name.
	PrefixedExportedTypes []string `json:"prefixed_exported_types,omitempty" yaml:"prefixed_exported_types,omitempty"`

	// Record group selection. Groups picks specific groups; ExceptGroups
	// inverts the selection. Both empty means all groups.
	Groups       []string `json:"groups,omitempty" yaml:"groups,omitempty"`
	ExceptGroups []string `json:"except_groups,omitempty" yaml:"except_groups,omitempty"`

	// Output is the path the generated Rust source is written to.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}

// Validation error codes (E100-E199).
const (
	ErrCrateRequired      = "E101" // crate name is required
	ErrInvalidEdition     = "E102" // unknown Rust edition
	ErrFeatureConflict    = "E103" // feature both enabled and disabled
	ErrRenameConflict     = "E104" // renamed feature also enabled or disabled
	ErrInvalidTriple      = "E105" // target triple does not parse
	ErrTripleAxisConflict = "E106" // triple and explicit axis disagree
	ErrEmptyPath          = "E107" // empty type path in a path list
	ErrGroupConflict      = "E108" // group both selected and excluded
)

var knownEditions = map[string]bool{
	"2015": true,
	"2018": true,
	"2021": true,
	"2024": true,
}

// ValidationError describes one configuration problem.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Validate checks the configuration and returns all problems found. A nil
// result means the configuration is usable.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(c.Crate) == "" {
		errs = append(errs, ValidationError{
			Field:   "crate",
			Message: "crate name is required and must be non-empty",
			Code:    ErrCrateRequired,
		})
	}

	if c.Edition != "" && !knownEditions[c.Edition] {
		errs = append(errs, ValidationError{
			Field:   "edition",
			Message: fmt.Sprintf("unknown edition %q (expected 2015, 2018, 2021, or 2024)", c.Edition),
			Code:    ErrInvalidEdition,
		})
	}

	disabled := make(map[string]bool, len(c.DisabledFeatures))
	for _, f := range c.DisabledFeatures {
		disabled[f] = true
	}
	enabled := make(map[string]bool, len(c.EnabledFeatures))
	for _, f := range c.EnabledFeatures {
		enabled[f] = true
		if disabled[f] {
			errs = append(errs, ValidationError{
				Field:   "enabled_features",
				Message: fmt.Sprintf("feature %q is both enabled and disabled", f),
				Code:    ErrFeatureConflict,
			})
		}
	}
	for from := range c.FeatureRenames {
		if enabled[from] || disabled[from] {
			errs = append(errs, ValidationError{
				Field:   "feature_renames",
				Message: fmt.Sprintf("renamed feature %q is also enabled or disabled", from),
				Code:    ErrRenameConflict,
			})
		}
	}

	if c.Target != "" {
		triple, err := ParseTriple(c.Target)
		if err != nil {
			errs = append(errs, ValidationError{
				Field:   "target",
				Message: err.Error(),
				Code:    ErrInvalidTriple,
			})
		} else {
			for _, axis := range []struct {
				field    string
				explicit string
				fromT    string
			}{
				{"target_arch", c.TargetArch, triple.Arch},
				{"target_vendor", c.TargetVendor, triple.Vendor},
				{"target_os", c.TargetOS, triple.OS},
				{"target_env", c.TargetEnv, triple.Env},
			} {
				if axis.explicit != "" && axis.fromT != "" && axis.explicit != axis.fromT {
					errs = append(errs, ValidationError{
						Field:   axis.field,
						Message: fmt.Sprintf("explicit value %q disagrees with target triple %q", axis.explicit, c.Target),
						Code:    ErrTripleAxisConflict,
					})
				}
			}
		}
	}

	for _, list := range []struct {
		field string
		paths []string
	}{
		{"allowed_prefixes", c.AllowedPrefixes},
		{"transparent_wrappers", c.TransparentWrappers},
		{"prefixed_exported_types", c.PrefixedExportedTypes},
	} {
		for _, p := range list.paths {
			if strings.TrimSpace(p) == "" {
				errs = append(errs, ValidationError{
					Field:   list.field,
					Message: "empty type path",
					Code:    ErrEmptyPath,
				})
			}
		}
	}

	except := make(map[string]bool, len(c.ExceptGroups))
	for _, g := range c.ExceptGroups {
		except[g] = true
	}
	for _, g := range c.Groups {
		if except[g] {
			errs = append(errs, ValidationError{
				Field:   "groups",
				Message: fmt.Sprintf("group %q is both selected and excluded", g),
				Code:    ErrGroupConflict,
			})
		}
	}

	return errs
}

// EditionOrDefault returns the configured edition, defaulting to 2021.
func (c *Config) EditionOrDefault() string {
	if c.Edition == "" {
		return "2021"
	}
	return c.Edition
}

// CrateIdent returns the crate name as a Rust identifier: package names use
// dashes, paths in code use underscores.
func (c *Config) CrateIdent() string {
	return strings.ReplaceAll(c.Crate, "-", "_")
}

// Rules resolves the feature and target settings into predicate rules. The
// target triple fills in axes not set explicitly; an unparseable triple is
// ignored here, Validate reports it.
func (c *Config) Rules() cfg.Rules {
	r := cfg.NewRules()
	for _, f := range c.EnabledFeatures {
		r.Enabled[f] = true
	}
	for _, f := range c.DisabledFeatures {
		r.Disabled[f] = true
	}
	for from, to := range c.FeatureRenames {
		r.Renames[from] = to
	}
	r.DisableUnknownFeatures = c.DisableUnknownFeatures

	r.TargetArch = c.TargetArch
	r.TargetVendor = c.TargetVendor
	r.TargetOS = c.TargetOS
	r.TargetEnv = c.TargetEnv
	if c.Target != "" {
		if triple, err := ParseTriple(c.Target); err == nil {
			if r.TargetArch == "" {
				r.TargetArch = triple.Arch
			}
			if r.TargetVendor == "" {
				r.TargetVendor = triple.Vendor
			}
			if r.TargetOS == "" {
				r.TargetOS = triple.OS
			}
			if r.TargetEnv == "" {
				r.TargetEnv = triple.Env
			}
		}
	}
	return r
}

// StandardAllowedPrefixes is the built-in set of type path prefixes that are
// always FFI-acceptable without conversion. Single-segment entries match a
// bare name exactly; multi-segment entries match any path they prefix.
func StandardAllowedPrefixes() []string {
	return []string{
		"std", "core", "alloc", "libc",
		"Option", "Result", "Vec", "String", "Box", "Rc", "Arc",
		"Cell", "RefCell", "Mutex", "RwLock",
		"HashMap", "HashSet", "BTreeMap", "BTreeSet",
		"c_char", "c_schar", "c_uchar",
		"c_short", "c_ushort", "c_int", "c_uint",
		"c_long", "c_ulong", "c_longlong", "c_ulonglong",
		"c_float", "c_double", "c_void",
	}
}

// AllAllowedPrefixes is the standard set extended with the configured extras.
func (c *Config) AllAllowedPrefixes() []string {
	return append(StandardAllowedPrefixes(), c.AllowedPrefixes...)
}
