package static

import _ "embed"

// CatalogYAML contains the default status catalog.
//
//go:embed catalog.yaml
var CatalogYAML []byte
