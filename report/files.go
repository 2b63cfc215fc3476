// Copyright (c) The Test Unit Authors, All rights reserved.
// Test Unit source code and usage is governed by a MIT style
// license that can be found in the LICENSE file.

package report

import (
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/testunit/cmd/suite"
	"github.com/testunit/cmd/utils"
)

// The HTML page rendered per suite into the result directory.
const suiteResultTemplate = `<!DOCTYPE html>
<html>
<head><title>{{.Name}} - suite result</title></head>
<body>
<h1>{{.Name}}</h1>
<p>Passed: {{.Passed}}, Failed: {{.Failed}}</p>
<table border="1" cellpadding="4">
<tr><th>Case</th><th>Result</th><th>Message</th></tr>
{{range .Results}}<tr>
<td>{{.Name}}</td>
<td>{{if .Passed}}PASS{{else}}FAIL{{end}}</td>
<td>{{.Message}}</td>
</tr>
{{end}}</table>
</body>
</html>
`

// verdictName is the lower case pass/fail token used in result file
// names, e.g. smoke.passed.html.
func verdictName(summary *suite.Summary) string {
	if summary.Ok() {
		return "passed"
	}
	return "failed"
}

// fileStem keeps suite names path-safe. Unnamed suites file under
// "unnamed".
func fileStem(summary *suite.Summary) string {
	stem := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', ' ':
			return '-'
		}
		return r
	}, summary.Name)
	if stem == "" {
		stem = "unnamed"
	}
	return stem
}

// WriteSuiteFiles writes the text, JSON and HTML renderings of one
// summary into the result directory.
func WriteSuiteFiles(resultPath string, summary *suite.Summary) error {
	stem := fileStem(summary) + "." + verdictName(summary)

	if err := utils.WriteResultFile(resultPath, stem+".txt", summary.String()); err != nil {
		return err
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return utils.NewRunIfError(err, "Failed to encode summary", "suite", summary.Name)
	}
	if err := ioutil.WriteFile(filepath.Join(resultPath, stem+".json"), data, 0666); err != nil {
		return utils.NewRunIfError(err, "Failed to write summary json", "suite", summary.Name)
	}

	return utils.GenerateTemplate(filepath.Join(resultPath, stem+".html"), suiteResultTemplate, summary)
}
