package common

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/hmartiniano/variant-catalog/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"
)

// MiniDataset is a small dataset with one variant per study encoding
const MiniDataset = `{
	"LDLR": {
		"fullName": "Low density lipoprotein receptor",
		"summary": "",
		"variants": [
			{
				"id": "rs121908028",
				"aliases": ["FH-Toulouse"],
				"c.": "c.681C>G",
				"FH VCEP Classification": "Pathogenic",
				"functionalStudies": [
					{"type": "Flow cytometry", "result": "30%", "author": "Doe et al.", "year": 2015, "pubmedId": "123"}
				]
			},
			{
				"id": "rs2",
				"c.": "c.681C>G",
				"Type of functional study (sample type, assay)1": "Luciferase",
				"PMID1": "456"
			}
		]
	},
	"APOB": {
		"fullName": "Apolipoprotein B",
		"summary": "",
		"variants": []
	}
}`

func InitConfig() *models.Config {
	var cfg models.Config

	// get this file's path
	_, filename, _, _ := runtime.Caller(0)
	folderpath := path.Dir(filename)

	// retrieve common's test.config
	f, err := os.Open(fmt.Sprintf("%s/test.config.yml", folderpath))
	if err != nil {
		processError(err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&cfg)
	if err != nil {
		processError(err)
	}

	return &cfg
}

// NewTestLogger discards output unless the test config enables debug
func NewTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	if InitConfig().Debug {
		log.SetOutput(os.Stderr)
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// WriteTempFile writes content to a file under a per-test directory
func WriteTempFile(t *testing.T, name string, content string) string {
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func GetJsonBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	// - unmarshal or decode the JSON to a declared empty interface.
	var bodyJson map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bodyJson))

	return bodyJson
}

func processError(err error) {
	fmt.Println(err)
	os.Exit(2)
}
