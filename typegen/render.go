package typegen

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/speakeasy-api/openapi-typegen/tstype"
)

// Generate parses data and renders its declarations.
func Generate(ctx context.Context, data []byte, opts Options) (string, error) {
	doc, err := Parse(ctx, data)
	if err != nil {
		return "", err
	}
	return Render(ctx, doc, opts)
}

// Filter lowers the document's schemas and applies the filters selected by opts. Declarations
// that are excluded by name, or whose type is filtered away, are dropped.
func Filter(ctx context.Context, doc *Document, opts Options) ([]tstype.Declaration, error) {
	decls, err := doc.Declarations()
	if err != nil {
		return nil, err
	}

	excluded := tstype.NewNameSet(opts.ExcludedTypeNames...)
	if opts.ExcludeQuery != "" {
		names, err := doc.SelectSchemas(opts.ExcludeQuery, opts.JSONPathMode)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			excluded[name] = struct{}{}
		}
	}

	out := make([]tstype.Declaration, 0, len(decls))
	for _, decl := range decls {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if excluded.Has(decl.Name) {
			continue
		}

		t, ok := decl.Type, true
		if opts.SkipEmptyTypes {
			t, ok = tstype.PruneEmpty(t)
		}
		if ok {
			t, ok = tstype.ExcludeNamed(t, excluded)
		}
		if !ok {
			continue
		}

		if opts.Sort {
			t = tstype.SortFields(t)
		}
		out = append(out, tstype.Declaration{Name: decl.Name, Type: t})
	}

	if opts.Sort {
		slices.SortStableFunc(out, func(a, b tstype.Declaration) int {
			return cmp.Compare(a.Name, b.Name)
		})
	}

	return out, nil
}

// Render writes the banner line followed by one `export type` line per surviving declaration.
func Render(ctx context.Context, doc *Document, opts Options) (string, error) {
	decls, err := Filter(ctx, doc, opts)
	if err != nil {
		return "", err
	}
	return Format(decls, opts), nil
}

// Format writes the banner line of opts followed by one `export type` line per declaration.
func Format(decls []tstype.Declaration, opts Options) string {
	lines := make([]string, len(decls))
	for i, decl := range decls {
		lines[i] = decl.String()
	}

	return opts.banner() + "\n" + strings.Join(lines, "\n")
}
