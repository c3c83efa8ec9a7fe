// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509tree

import (
	"encoding/json"
	"time"

	"gopkg.in/yaml.v3"
)

// ExportNode is the flattened, serialization-friendly view of one node in
// the export document.
type ExportNode struct {
	Index              int    `json:"index" yaml:"index"`
	ParentIndex        int    `json:"parentIndex" yaml:"parentIndex"` // -1 for roots
	Depth              int    `json:"depth" yaml:"depth"`
	Subject            string `json:"subject" yaml:"subject"`
	Issuer             string `json:"issuer" yaml:"issuer"`
	SerialNumber       string `json:"serialNumber" yaml:"serialNumber"`
	NotBefore          string `json:"notBefore" yaml:"notBefore"`
	NotAfter           string `json:"notAfter" yaml:"notAfter"`
	PublicKeyAlgorithm string `json:"publicKeyAlgorithm" yaml:"publicKeyAlgorithm"`
	SignatureAlgorithm string `json:"signatureAlgorithm" yaml:"signatureAlgorithm"`
	IsCA               bool   `json:"isCA" yaml:"isCA"`
	ValidityStatus     string `json:"validityStatus" yaml:"validityStatus"`
	ValidationStatus   string `json:"validationStatus" yaml:"validationStatus"`
}

// ExportRelationship links a child node to the node that issued it.
type ExportRelationship struct {
	FromIndex int    `json:"fromIndex" yaml:"fromIndex"`
	ToIndex   int    `json:"toIndex" yaml:"toIndex"`
	Type      string `json:"type" yaml:"type"`
}

// ExportDocument is the structured representation of an assembled forest
// for external tools and programmatic processing.
type ExportDocument struct {
	Timestamp     string               `json:"timestamp" yaml:"timestamp"`
	NodeCount     int                  `json:"nodeCount" yaml:"nodeCount"`
	RootCount     int                  `json:"rootCount" yaml:"rootCount"`
	Nodes         []ExportNode         `json:"nodes" yaml:"nodes"`
	Relationships []ExportRelationship `json:"relationships" yaml:"relationships"`
}

// Export flattens the forest into an [ExportDocument] in depth-first
// display order.
func Export(f *Forest) ExportDocument {
	doc := ExportDocument{
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		NodeCount:     f.NodeCount(),
		RootCount:     len(f.Roots),
		Nodes:         make([]ExportNode, 0, f.NodeCount()),
		Relationships: []ExportRelationship{},
	}

	for _, root := range f.Roots {
		exportNode(&doc, root, -1, 0)
	}

	return doc
}

func exportNode(doc *ExportDocument, node *Node, parentIndex, depth int) {
	index := len(doc.Nodes)
	doc.Nodes = append(doc.Nodes, ExportNode{
		Index:              index,
		ParentIndex:        parentIndex,
		Depth:              depth,
		Subject:            node.Record.Subject,
		Issuer:             node.Record.Issuer,
		SerialNumber:       node.Record.SerialNumber,
		NotBefore:          node.Record.NotBefore,
		NotAfter:           node.Record.NotAfter,
		PublicKeyAlgorithm: node.Record.PublicKeyAlgorithm,
		SignatureAlgorithm: node.Record.SignatureAlgorithm,
		IsCA:               node.Record.IsCA,
		ValidityStatus:     node.ValidityStatus.String(),
		ValidationStatus:   node.ValidationStatus.String(),
	})

	if parentIndex >= 0 {
		doc.Relationships = append(doc.Relationships, ExportRelationship{
			FromIndex: index,
			ToIndex:   parentIndex,
			Type:      "issued_by",
		})
	}

	for _, child := range node.Children {
		exportNode(doc, child, index, depth+1)
	}
}

// ExportJSON marshals the forest's export document as indented JSON.
func ExportJSON(f *Forest) ([]byte, error) {
	return json.MarshalIndent(Export(f), "", "  ")
}

// ExportYAML marshals the forest's export document as YAML.
func ExportYAML(f *Forest) ([]byte, error) {
	return yaml.Marshal(Export(f))
}
