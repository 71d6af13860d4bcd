// Package pagination provides the list flags shared by CLI commands:
// offset- or page-based windows over a result slice and field sorting.
//
//   - Params: --limit/--offset or --page/--page-size, validated
//   - Meta: page metadata for JSON output
//   - Sorter: named sort fields over any element type
package pagination
