package utils

import (
	"bytes"
	"html/template"
	"io/ioutil"
	"os"
	"path/filepath"
)

// DirExists returns true if the given path exists and is a directory.
func DirExists(filename string) bool {
	fileInfo, err := os.Stat(filename)
	return err == nil && fileInfo.IsDir()
}

// Exists returns true if the given path exists.
func Exists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

// GenerateTemplate renders the given template source to the given file,
// creating parent directories as needed.
func GenerateTemplate(filename, templateSource string, args interface{}) (err error) {
	tmpl := template.Must(template.New("").Parse(templateSource))

	var b bytes.Buffer
	if err = tmpl.Execute(&b, args); err != nil {
		return NewRunIfError(err, "GenerateTemplate: Execute failed")
	}

	filePath := filepath.Dir(filename)
	if !DirExists(filePath) {
		err = os.MkdirAll(filePath, 0777)
		if err != nil && !os.IsExist(err) {
			return NewRunIfError(err, "Failed to make directory", "dir", filePath)
		}
	}

	// Create the file
	file, err := os.Create(filename)
	if err != nil {
		return NewRunIfError(err, "Failed to create file", "file", filename)
	}
	defer func() {
		_ = file.Close()
	}()

	if _, err = file.Write(b.Bytes()); err != nil {
		return NewRunIfError(err, "Failed to write to file", "file", filename)
	}

	return
}

// WriteResultFile writes content to a marker file inside the result
// directory.
func WriteResultFile(resultPath, name, content string) error {
	target := filepath.Join(resultPath, name)
	if err := ioutil.WriteFile(target, []byte(content), 0666); err != nil {
		return NewRunIfError(err, "Failed to write result file", "file", target)
	}
	return nil
}
