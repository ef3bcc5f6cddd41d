package runconfig

import (
	"fmt"
	"os/exec"

	"git.home.luguber.info/inful/spec-parser/internal/logfields"
)

// lookPath resolves external executables; swapped in tests.
var lookPath = exec.LookPath

// requiredPrograms lists external executables a format needs on PATH.
var requiredPrograms = map[Format][]string{
	FormatTeX: {"pandoc"},
}

// requiredModules lists the renderer modules a format depends on. The
// standard build links all of them in; the registry below exists so a
// stripped build (or a test) surfaces a diagnostic instead of failing
// mid-generation.
var requiredModules = map[Format][]string{
	FormatJSONDump: {"jsondump"},
	FormatMkDocs:   {"templates"},
	FormatRDF:      {"rdf"},
	FormatTeX:      {"templates"},
}

// registeredModules tracks which renderer modules are linked into this
// binary. Renderer packages register themselves at init time; the defaults
// cover the standard build.
var registeredModules = map[string]bool{
	"jsondump":  true,
	"templates": true,
	"rdf":       true,
}

// RegisterModule marks a renderer module as available. Intended for renderer
// package init functions in custom builds.
func RegisterModule(name string) {
	registeredModules[name] = true
}

// checkRequirements verifies each enabled format's dependencies, recording
// an error per missing one. It never aborts: all problems are reported
// together with the rest of the configuration diagnostics.
func (rc *RunConfig) checkRequirements() {
	for _, f := range AllFormats() {
		target := rc.Targets[f]
		if target == nil || !target.Enabled {
			continue
		}

		for _, module := range requiredModules[f] {
			if !registeredModules[module] {
				rc.diags.Error(
					fmt.Sprintf("Renderer module '%s' is required when %s generation is specified. Make sure it is linked into this build.",
						module, f.DisplayName()),
					logfields.Format(string(f)),
					logfields.Module(module))
			}
		}

		for _, program := range requiredPrograms[f] {
			if _, err := lookPath(program); err != nil {
				rc.diags.Error(
					fmt.Sprintf("Program '%s' is required when %s generation is specified. Make sure it's installed and present in your PATH.",
						program, f.DisplayName()),
					logfields.Format(string(f)),
					logfields.Program(program))
			}
		}
	}
}
