// Package types implements the closed type lattice (§3, §4.1): a fixed
// set of primitives plus array, class, and function types, with the
// assignability and numeric-unification rules the checker and IR emitter
// both depend on.
package types

import "strings"

// Type is implemented by every member of the type lattice. Kind
// identifies which concrete variant a Type is without a type switch at
// every call site; String renders the type the way diagnostics do.
type Type interface {
	Kind() Kind
	String() string
	Equals(other Type) bool
}

// Kind tags the concrete variant of a Type.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindBool
	KindString
	KindVoid
	KindNull
	KindArray
	KindClass
	KindFunc
)

// primitive is the shared representation of the six interned singleton
// types; only their Kind differs.
type primitive struct {
	kind Kind
	name string
}

func (p *primitive) Kind() Kind     { return p.kind }
func (p *primitive) String() string { return p.name }
func (p *primitive) Equals(other Type) bool {
	o, ok := other.(*primitive)
	return ok && o.kind == p.kind
}

// The primitive types are interned singletons: every reference to "Int"
// in the program points at the same *primitive value, so identity
// comparison (==) and Equals agree and map keys built from Type work.
var (
	Int    Type = &primitive{KindInt, "Int"}
	Float  Type = &primitive{KindFloat, "Float"}
	Bool   Type = &primitive{KindBool, "Bool"}
	String Type = &primitive{KindString, "String"}
	Void   Type = &primitive{KindVoid, "Void"}
	// Null is the type of the `null` literal and of a declaration left
	// without an initializer: CanAssign treats a Null destination as a
	// placeholder that accepts any source, never equal to a primitive.
	Null Type = &primitive{KindNull, "Null"}
)

// IsNumeric reports whether t is Int or Float.
func IsNumeric(t Type) bool {
	return t == Int || t == Float
}

// ArrayType is Base[]*Dimensions, e.g. ArrayType{Int, 2} is int[][].
type ArrayType struct {
	Base       Type
	Dimensions uint
}

func (a *ArrayType) Kind() Kind { return KindArray }
func (a *ArrayType) String() string {
	return a.Base.String() + strings.Repeat("[]", int(a.Dimensions))
}
func (a *ArrayType) Equals(other Type) bool {
	o, ok := other.(*ArrayType)
	return ok && o.Dimensions == a.Dimensions && o.Base.Equals(a.Base)
}

// ClassType is compared by identity (the same declaration always
// produces the same *ClassType pointer), matching the spec's "class
// identity, not name" rule. Fields/Methods hold member names in
// declaration order; the member symbols themselves live in the class's
// scope in package symtab.
type ClassType struct {
	Name    string
	Super   *ClassType // nil for a root class
	Fields  []string
	Methods []string
}

func (c *ClassType) Kind() Kind     { return KindClass }
func (c *ClassType) String() string { return c.Name }

// Equals for classes is pointer identity: two ClassType values with the
// same Name are NOT equal unless they are the same declaration (spec's
// closed-world single compilation unit never declares a class twice, so
// this only matters for construction-time identity, not for comparing
// classes across distinct programs).
func (c *ClassType) Equals(other Type) bool {
	o, ok := other.(*ClassType)
	return ok && o == c
}

// IsSubclassOf reports whether c is super, or inherits from it
// transitively through the Super chain.
func (c *ClassType) IsSubclassOf(super *ClassType) bool {
	for cur := c; cur != nil; cur = cur.Super {
		if cur == super {
			return true
		}
	}
	return false
}

// FuncType describes a callable's signature: ordinary functions and
// methods alike (a method's receiver is not part of the signature, it is
// resolved through the class's member scope instead).
type FuncType struct {
	Return Type
	Params []Type
}

func (f *FuncType) Kind() Kind { return KindFunc }
func (f *FuncType) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, p := range f.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString(") -> ")
	sb.WriteString(f.Return.String())
	return sb.String()
}
func (f *FuncType) Equals(other Type) bool {
	o, ok := other.(*FuncType)
	if !ok || len(o.Params) != len(f.Params) || !o.Return.Equals(f.Return) {
		return false
	}
	for i := range f.Params {
		if !o.Params[i].Equals(f.Params[i]) {
			return false
		}
	}
	return true
}

// ArrayCovariance selects how CanAssign treats an array's base type when
// the dimensions match but the bases differ (§9 Open Question).
type ArrayCovariance int

const (
	// ArrayStrict requires the array base types to be identical; no
	// numeric widening is permitted at the array base because there is
	// no store-time runtime check to catch a narrowing write (§9).
	ArrayStrict ArrayCovariance = iota
	// ArrayWidening allows the same numeric widening CanAssign permits
	// for scalars (Int[] assignable to Float[]), matching §4.1's literal
	// text at the cost of an unchecked covariant write.
	ArrayWidening
)

// CanAssign reports whether a value of type src may be assigned/passed
// to a destination of type dst, per §4.1:
//  1. identical types are always assignable.
//  2. Int widens to Float (never the reverse).
//  3. a Null destination is a placeholder (an uninitialized `let x;`) and
//     accepts any source.
//  4. a subclass is assignable to any of its superclasses.
//  5. arrays are covariant by dimension; base-type compatibility is
//     governed by covariance.
//
// A deliberate addition beyond those five (see DESIGN.md): a Null
// *source* — the `null` literal, or a try/catch binder (§4.3) — is also
// accepted at a class-typed destination, so `let a: Animal = null;` and
// `catch (e) { let a: Animal = e; }` both type-check.
func CanAssign(dst, src Type, covariance ArrayCovariance) bool {
	if dst.Equals(src) {
		return true
	}
	if dst == Null {
		return true
	}
	if dst == Float && src == Int {
		return true
	}
	if dc, ok := dst.(*ClassType); ok {
		if src == Null {
			return true
		}
		if sc, ok := src.(*ClassType); ok {
			return sc.IsSubclassOf(dc)
		}
		return false
	}
	if da, ok := dst.(*ArrayType); ok {
		sa, ok := src.(*ArrayType)
		if !ok || sa.Dimensions != da.Dimensions {
			return false
		}
		if covariance == ArrayWidening {
			return CanAssign(da.Base, sa.Base, covariance)
		}
		return da.Base.Equals(sa.Base)
	}
	return false
}

// UnifyNumeric returns the common numeric type two operands promote to
// for arithmetic (Int op Int -> Int, anything mixed with Float -> Float)
// and false if either operand is not numeric.
func UnifyNumeric(a, b Type) (Type, bool) {
	if !IsNumeric(a) || !IsNumeric(b) {
		return nil, false
	}
	if a == Float || b == Float {
		return Float, true
	}
	return Int, true
}
