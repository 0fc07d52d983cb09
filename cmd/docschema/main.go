package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/docschema/docschema"
	"github.com/docschema/docschema/i18n"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "validate":
		os.Exit(validateCmd(os.Args[2:], os.Stdin, os.Stdout, os.Stderr))
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "docschema CLI\n\nUsage:\n  docschema validate -schema schema.(json|yaml|yml) [-data doc.json] [-lang en|ja]\n\nNotes:\n  - The data document is read from stdin when -data is omitted.\n  - Exit status: 0 valid, 1 invalid, 2 usage or read error.")
}

func validateCmd(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var schemaPath string
	var dataPath string
	var lang string
	fs.StringVar(&schemaPath, "schema", "", "schema document (JSON or YAML)")
	fs.StringVar(&dataPath, "data", "", "data document (JSON); stdin when empty")
	fs.StringVar(&lang, "lang", "en", "message language (en or ja)")
	_ = fs.Parse(args)
	if schemaPath == "" {
		fs.Usage()
		return 2
	}
	i18n.SetLanguage(lang)

	s, err := loadSchema(schemaPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	raw, err := readData(dataPath, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	v, err := docschema.DecodeValue(raw)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	res := docschema.SafeValidate(s, v)
	if !res.Valid {
		fmt.Fprintln(stderr, res.Err.Error())
		return 1
	}
	fmt.Fprintln(stdout, "ok")
	return 0
}

func loadSchema(path string) (*docschema.Schema, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return docschema.ParseSchemaYAML(raw)
	default:
		return docschema.ParseSchema(raw)
	}
}

func readData(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
