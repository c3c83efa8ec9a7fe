// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509tree

import (
	x509certinfo "github.com/H0llyW00dzZ/cert-tree/src/internal/x509/certinfo"
)

// Assemble builds a forest of chain trees from an ordered list of decoded
// certificate records, linking issuer to subject by exact string equality.
//
// Every distinct subject among the input records materializes exactly one
// node. When two records share a subject, the later one wins the lookup
// slot; only a single node for that subject is ever created because the
// processed guard is keyed by subject. Well-formed inputs are assumed to
// carry distinct subjects.
//
// Root discovery runs in two sequential passes over the input order:
//
//  1. A record whose issuer is absent from the subject set, or whose
//     subject equals its issuer (self-signed), roots a tree.
//  2. An orphan sweep forces any record still unprocessed into the root
//     list. This recovers records caught in an issuer cycle, or whose
//     issuer chain never reached a pass-1 root; the first such record in
//     input order becomes the root of its cycle.
//
// Marking a subject processed before descending into the records it issued
// bounds the recursion even when issuer/subject links form a cycle.
//
// Assemble never fails: empty input yields an empty forest, and malformed
// string fields only ever miss equality checks. For fixed input order the
// forest shape, root order, and child order are fully deterministic.
//
// Every node's ValidationStatus is left at [ValidationUnknown]; run
// [Validate] to finish the forest. A nil classifier defaults to
// [NewClassifier].
func Assemble(records []x509certinfo.Record, classifier *Classifier) *Forest {
	if classifier == nil {
		classifier = NewClassifier()
	}

	recordBySubject := make(map[string]x509certinfo.Record, len(records))
	issuedSubjects := make(map[string][]string, len(records))
	for _, rec := range records {
		recordBySubject[rec.Subject] = rec
		issuedSubjects[rec.Issuer] = append(issuedSubjects[rec.Issuer], rec.Subject)
	}

	b := &assembler{
		recordBySubject: recordBySubject,
		issuedSubjects:  issuedSubjects,
		processed:       make(map[string]bool, len(records)),
		classifier:      classifier,
	}

	forest := &Forest{}

	// Pass 1: issuer absent from the subject set, or self-signed.
	for _, rec := range records {
		if _, known := recordBySubject[rec.Issuer]; !known || rec.Subject == rec.Issuer {
			if !b.processed[rec.Subject] {
				forest.Roots = append(forest.Roots, b.buildNode(rec))
			}
		}
	}

	// Pass 2: orphan sweep for issuer cycles and unreachable chains.
	for _, rec := range records {
		if !b.processed[rec.Subject] {
			forest.Roots = append(forest.Roots, b.buildNode(rec))
		}
	}

	return forest
}

// BuildForest assembles the records and finishes the forest with
// [Validate] in one step.
func BuildForest(records []x509certinfo.Record, classifier *Classifier) *Forest {
	forest := Assemble(records, classifier)
	Validate(forest)
	return forest
}

// assembler carries the shared lookup state threaded through the recursive
// node materialization.
type assembler struct {
	recordBySubject map[string]x509certinfo.Record
	issuedSubjects  map[string][]string
	processed       map[string]bool
	classifier      *Classifier
}

// buildNode materializes one record as a node, depth-first. The subject is
// marked processed before recursing so that a subject is never revisited;
// this is the cycle guard.
func (b *assembler) buildNode(rec x509certinfo.Record) *Node {
	b.processed[rec.Subject] = true

	node := &Node{
		Record:           rec,
		ValidityStatus:   b.classifier.Classify(rec.NotAfter),
		ValidationStatus: ValidationUnknown,
	}

	// Children follow original input order among same-issuer siblings.
	for _, subject := range b.issuedSubjects[rec.Subject] {
		child, known := b.recordBySubject[subject]
		if !known || b.processed[subject] {
			continue
		}
		node.Children = append(node.Children, b.buildNode(child))
	}

	return node
}
