// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509tree_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	x509certinfo "github.com/H0llyW00dzZ/cert-tree/src/internal/x509/certinfo"
	x509tree "github.com/H0llyW00dzZ/cert-tree/src/internal/x509/tree"
)

// exportSchema pins the export document contract consumed by external
// visualization tools.
const exportSchema = `{
  "type": "object",
  "required": ["timestamp", "nodeCount", "rootCount", "nodes", "relationships"],
  "properties": {
    "timestamp": {"type": "string"},
    "nodeCount": {"type": "integer", "minimum": 0},
    "rootCount": {"type": "integer", "minimum": 0},
    "nodes": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["index", "parentIndex", "depth", "subject", "issuer", "validityStatus", "validationStatus"],
        "properties": {
          "index": {"type": "integer", "minimum": 0},
          "parentIndex": {"type": "integer", "minimum": -1},
          "depth": {"type": "integer", "minimum": 0},
          "subject": {"type": "string"},
          "issuer": {"type": "string"},
          "validityStatus": {"enum": ["valid", "expiring_soon", "expired"]},
          "validationStatus": {"enum": ["valid", "invalid_chain", "unknown"]}
        }
      }
    },
    "relationships": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["fromIndex", "toIndex", "type"],
        "properties": {
          "fromIndex": {"type": "integer", "minimum": 0},
          "toIndex": {"type": "integer", "minimum": 0},
          "type": {"enum": ["issued_by"]}
        }
      }
    }
  }
}`

func TestExportDocumentStructure(t *testing.T) {
	forest := buildChainForest(t)
	doc := x509tree.Export(forest)

	assert.Equal(t, 3, doc.NodeCount)
	assert.Equal(t, 1, doc.RootCount)
	require.Len(t, doc.Nodes, 3)
	require.Len(t, doc.Relationships, 2)

	root := doc.Nodes[0]
	assert.Equal(t, 0, root.Index)
	assert.Equal(t, -1, root.ParentIndex)
	assert.Equal(t, 0, root.Depth)
	assert.Equal(t, "CN=Root CA", root.Subject)

	leaf := doc.Nodes[2]
	assert.Equal(t, 1, leaf.ParentIndex)
	assert.Equal(t, 2, leaf.Depth)

	for _, rel := range doc.Relationships {
		assert.Equal(t, "issued_by", rel.Type)
		assert.Equal(t, rel.FromIndex-1, rel.ToIndex,
			"in a linear chain every node is issued by the previous one")
	}
}

func TestExportJSONMatchesSchema(t *testing.T) {
	data, err := x509tree.ExportJSON(buildChainForest(t))
	require.NoError(t, err)

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(exportSchema),
		gojsonschema.NewBytesLoader(data),
	)
	require.NoError(t, err)

	for _, desc := range result.Errors() {
		t.Errorf("schema violation: %s", desc)
	}
	assert.True(t, result.Valid())
}

func TestExportJSONEmptyForest(t *testing.T) {
	data, err := x509tree.ExportJSON(&x509tree.Forest{})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.EqualValues(t, 0, doc["nodeCount"])

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(exportSchema),
		gojsonschema.NewBytesLoader(data),
	)
	require.NoError(t, err)
	assert.True(t, result.Valid())
}

func TestExportYAML(t *testing.T) {
	data, err := x509tree.ExportYAML(x509tree.BuildForest([]x509certinfo.Record{
		record("CN=Root", "CN=Root"),
		record("CN=Leaf", "CN=Root"),
	}, nil))
	require.NoError(t, err)

	var doc x509tree.ExportDocument
	require.NoError(t, yaml.Unmarshal(data, &doc))

	assert.Equal(t, 2, doc.NodeCount)
	require.Len(t, doc.Nodes, 2)
	assert.Equal(t, "CN=Root", doc.Nodes[0].Subject)
	assert.Equal(t, "valid", doc.Nodes[1].ValidationStatus)
}
