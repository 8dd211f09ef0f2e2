package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/crossbind/crossbind/internal/ir"
)

// RenderFile assembles a full compilation unit: a generated-file banner
// naming the source crate, then each declaration separated by a blank line.
func RenderFile(crate string, decls []ir.Decl) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// Generated by crossbind from crate %s. Do not edit.\n", crate)
	for _, d := range decls {
		b.WriteByte('\n')
		b.WriteString(RenderDecl(d))
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteFile renders the unit and writes it, creating parent directories as
// needed.
func WriteFile(path, crate string, decls []ir.Decl) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(RenderFile(crate, decls)), 0o644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	return nil
}
