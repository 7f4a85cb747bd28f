package seed

import _ "embed"

//go:embed testdata.json
var defaultDocument []byte

// Default parses and maps the embedded demo dataset.
func Default() (Data, error) {
	doc, err := Parse(defaultDocument)
	if err != nil {
		return Data{}, err
	}
	return Build(doc)
}
