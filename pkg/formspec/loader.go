package formspec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load decodes and checks a YAML document.
func Load(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, nil
		}
		return Document{}, errors.Join(ErrInvalidDocument, err)
	}
	if err := doc.Check(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// LoadBytes is Load for in-memory documents.
func LoadBytes(data []byte) (Document, error) {
	return Load(bytes.NewReader(data))
}

// LoadFile reads a YAML document from disk.
func LoadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open form document: %w", err)
	}
	defer f.Close()

	doc, err := Load(f)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
