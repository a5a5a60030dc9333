package validation

import (
	"cmp"
	"slices"

	"github.com/speakeasy-api/openapi-typegen/errors"
)

// SortValidationErrors orders validation errors by position in the document so the first
// reported error is the first problem a reader would hit. Other errors follow in their
// original order.
func SortValidationErrors(allErrors []error) {
	positioned := make([]*Error, 0, len(allErrors))
	rest := make([]error, 0, len(allErrors))
	for _, err := range allErrors {
		var vErr *Error
		if errors.As(err, &vErr) {
			positioned = append(positioned, vErr)
			continue
		}
		rest = append(rest, err)
	}

	slices.SortStableFunc(positioned, func(a, b *Error) int {
		return cmp.Or(
			cmp.Compare(a.GetLineNumber(), b.GetLineNumber()),
			cmp.Compare(a.GetColumnNumber(), b.GetColumnNumber()),
			cmp.Compare(a.UnderlyingError.Error(), b.UnderlyingError.Error()),
			cmp.Compare(a.DocumentLocation, b.DocumentLocation),
		)
	})

	i := 0
	for _, vErr := range positioned {
		allErrors[i] = vErr
		i++
	}
	for _, err := range rest {
		allErrors[i] = err
		i++
	}
}
