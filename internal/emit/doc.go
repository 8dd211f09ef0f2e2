// Package emit turns collected type-equivalence pairs into compile-time
// static assertions proving the local and origin forms share memory size and
// alignment, making the generated transmute casts safe.
package emit
