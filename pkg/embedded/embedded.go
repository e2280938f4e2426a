package embedded

import (
	_ "embed"
)

// Reference mood catalogue: descriptions, progression templates and performance settings
//
//go:embed data/catalogue.json
var CatalogueJSON []byte
