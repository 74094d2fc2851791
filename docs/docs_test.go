package docs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

var routerLine = regexp.MustCompile(`@Router\s+(\S+)\s+\[(\w+)\]`)

type document struct {
	Paths       map[string]map[string]json.RawMessage `json:"paths"`
	Definitions map[string]json.RawMessage            `json:"definitions"`
}

func readDocument(t *testing.T) (document, string) {
	t.Helper()
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)
	var doc document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc, raw
}

// annotatedRoutes collects "METHOD path" for every @Router annotation of the
// HTTP transport.
func annotatedRoutes(t *testing.T) []string {
	t.Helper()
	files, err := filepath.Glob(filepath.Join("..", "internal", "transport", "http", "*.go"))
	require.NoError(t, err)

	var routes []string
	for _, f := range files {
		if strings.HasSuffix(f, "_test.go") {
			continue
		}
		src, err := os.ReadFile(f)
		require.NoError(t, err)
		for _, m := range routerLine.FindAllStringSubmatch(string(src), -1) {
			routes = append(routes, strings.ToUpper(m[2])+" "+m[1])
		}
	}
	sort.Strings(routes)
	return routes
}

func TestDocumentCoversEveryAnnotatedRoute(t *testing.T) {
	doc, _ := readDocument(t)

	var documented []string
	for path, ops := range doc.Paths {
		for method := range ops {
			documented = append(documented, strings.ToUpper(method)+" "+path)
		}
	}
	sort.Strings(documented)

	want := annotatedRoutes(t)
	require.NotEmpty(t, want)
	assert.Equal(t, want, documented)
}

func TestDocumentReferencesResolve(t *testing.T) {
	doc, raw := readDocument(t)

	refs := regexp.MustCompile(`"#/definitions/([^"]+)"`).FindAllStringSubmatch(raw, -1)
	require.NotEmpty(t, refs)
	for _, m := range refs {
		assert.Contains(t, doc.Definitions, m[1])
	}
}
