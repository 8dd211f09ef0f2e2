package stub

import (
	"fmt"
	"strings"

	"github.com/crossbind/crossbind/internal/ir"
	"github.com/crossbind/crossbind/internal/rewrite"
)

// SignatureError reports a function signature the FFI boundary cannot carry.
type SignatureError struct {
	Function string
	Message  string
	Loc      ir.Location
}

func (e *SignatureError) Error() string {
	return fmt.Sprintf("function '%s': %s (at %s)", e.Function, e.Message, e.Loc)
}

// Synthesize builds the forwarding stub for one function declaration. The
// stub keeps the function's name and residual cfg guards, converts every
// parameter and the return type through the rewriter, and forwards to the
// source crate. Generic and lifetime parameters are dropped: they are
// meaningless once references become pointers.
func Synthesize(d ir.Decl, rw *rewrite.Rewriter, crateIdent, edition string, loc ir.Location) (ir.Decl, error) {
	if d.Fn == nil {
		return ir.Decl{}, &SignatureError{Function: d.Name, Message: "declaration is not a function", Loc: loc}
	}
	if d.Fn.HasReceiver {
		return ir.Decl{}, &SignatureError{
			Function: d.Name,
			Message:  "cannot have receiver arguments: all parameters must be typed arguments for C compatibility",
			Loc:      loc,
		}
	}

	needsUnsafe := false
	params := make([]ir.Param, len(d.Fn.Params))
	callArgs := make([]string, len(d.Fn.Params))
	for i, p := range d.Fn.Params {
		if p.Name == "" || p.Name == "_" {
			return ir.Decl{}, &SignatureError{
				Function: d.Name,
				Message:  fmt.Sprintf("parameter %d must have a name, wildcard patterns are not supported", i+1),
				Loc:      loc,
			}
		}

		local, changed, err := rw.RewriteType(p.Type, fmt.Sprintf("parameter %d of function '%s'", i+1, d.Name), loc)
		if err != nil {
			return ir.Decl{}, err
		}
		params[i] = ir.Param{Name: p.Name, Type: local}

		// Source references arrive as raw pointers and are re-borrowed
		// before the call; everything else passes through.
		arg := p.Name
		if p.Type.Kind == ir.TypeRef {
			if p.Type.Mut {
				arg = "&mut *" + p.Name
			} else {
				arg = "&*" + p.Name
			}
			needsUnsafe = true
		}
		if changed {
			arg = "unsafe { std::mem::transmute(" + arg + ") }"
			needsUnsafe = true
		}
		callArgs[i] = arg
	}

	retChanged := false
	var ret *ir.TypeExpr
	if d.Fn.Ret != nil {
		local, changed, err := rw.RewriteType(*d.Fn.Ret, fmt.Sprintf("return type of function '%s'", d.Name), loc)
		if err != nil {
			return ir.Decl{}, err
		}
		ret = &local
		retChanged = changed
		if changed {
			needsUnsafe = true
		}
	}

	call := fmt.Sprintf("%s::%s(%s)", crateIdent, d.Name, strings.Join(callArgs, ", "))
	var body []string
	if retChanged {
		body = []string{
			"let result = " + call + ";",
			"unsafe { std::mem::transmute(result) }",
		}
	} else {
		body = []string{call}
	}

	attrs := []ir.Attr{noMangleAttr(edition)}
	attrs = append(attrs, d.CfgAttrs()...)

	return ir.Decl{
		Kind:  ir.DeclFunction,
		Name:  d.Name,
		Attrs: attrs,
		Fn: &ir.FnSig{
			Params: params,
			Ret:    ret,
			Unsafe: needsUnsafe,
			Abi:    "C",
		},
		Body: body,
	}, nil
}

// noMangleAttr spells the no-mangle marker for the target edition: the 2024
// edition requires the unsafe attribute form.
func noMangleAttr(edition string) ir.Attr {
	if edition == "2024" {
		return ir.Attr{Name: "unsafe", Args: "no_mangle"}
	}
	return ir.Attr{Name: "no_mangle"}
}
