package builtin

import (
	"github.com/scientificaj/icl/internal/bundle"
	"github.com/scientificaj/icl/internal/lowered"
	"github.com/scientificaj/icl/internal/pack"
)

// Web is the browser scaffold target: it emits JS with "print" calls
// redirected at a #icl-output element and wraps it in an HTML/CSS shell.
type Web struct{}

func (Web) Manifest() pack.Manifest {
	return pack.Manifest{
		PackID:                "icl.pack.web",
		Version:               "1.0.0",
		Target:                "web",
		Stability:             pack.StabilityStable,
		FileExtension:         "html",
		BlockModel:            "braces",
		StatementTermination:  ";",
		TypeStrategy:          "dynamic",
		RuntimeHelpers:        []string{"print"},
		ScaffoldingPrimaryKey: "index.html",
		FeatureCoverage:       fullCatalogCoverage(),
	}
}

func (w Web) Emit(mod *lowered.Module, ctx pack.EmitContext) (string, error) {
	js := JS{printTarget: "icl-output"}
	return js.Emit(mod, ctx)
}

func (w Web) Scaffold(code string, ctx pack.EmitContext) (bundle.OutputBundle, error) {
	files := map[string]string{
		"index.html": webIndexHTML,
		"styles.css": webStylesCSS,
		"app.js":     code,
	}
	return bundle.OutputBundle{PrimaryPath: "index.html", Files: files}, nil
}

const webIndexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>icl compiled program</title>
  <link rel="stylesheet" href="styles.css">
</head>
<body>
  <pre id="icl-output"></pre>
  <script src="app.js"></script>
</body>
</html>
`

const webStylesCSS = `body {
  font-family: monospace;
  background: #111;
  color: #eee;
  padding: 1rem;
}

#icl-output {
  white-space: pre-wrap;
}
`
