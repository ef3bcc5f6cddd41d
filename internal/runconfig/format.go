package runconfig

// Format identifies one of the supported output kinds.
type Format string

const (
	FormatJSONDump Format = "jsondump"
	FormatMkDocs   Format = "mkdocs"
	FormatPlantUML Format = "plantuml"
	FormatRDF      Format = "rdf"
	FormatTeX      Format = "tex"
	FormatWebPages Format = "webpages"
)

// AllFormats returns the supported formats in stable order. The order is
// also the directory-creation order, which keeps logs deterministic.
func AllFormats() []Format {
	return []Format{
		FormatJSONDump,
		FormatMkDocs,
		FormatPlantUML,
		FormatRDF,
		FormatTeX,
		FormatWebPages,
	}
}

// DisplayName returns the human-readable name used in diagnostics.
func (f Format) DisplayName() string {
	switch f {
	case FormatJSONDump:
		return "JSON dump"
	case FormatMkDocs:
		return "MkDocs"
	case FormatPlantUML:
		return "PlantUML"
	case FormatRDF:
		return "RDF"
	case FormatTeX:
		return "TeX"
	case FormatWebPages:
		return "Web pages"
	default:
		return string(f)
	}
}

// Target holds the resolved generation state for a single format.
// OutputPath is only meaningful when Enabled is true; an enabled target with
// an empty path means resolution failed and an error was recorded.
type Target struct {
	Enabled    bool
	OutputPath string
}
